package pet

// Game constants
const (
	MaxStat       = 100.0
	MinStat       = 0.0
	MaxNameLength = 20
	InitialCoins  = 100

	PlayEnergyThreshold  = 20 // Minimum energy needed to play
	DehydrationThreshold = 20 // Thirst below this after a decay tick hurts the pet

	// Passive decay per tick
	HealthDecay      = 0.1
	SatietyDecay     = 0.2
	HappinessDecay   = 0.1
	CleanlinessDecay = 0.15
	EnergyRecovery   = 0.1 // Energy slowly comes back while idle
	ThirstDecay      = 0.25

	// Extra loss applied in the same tick when dehydrated
	DehydrationHealthPenalty    = 0.3
	DehydrationHappinessPenalty = 0.2

	// Care tips thresholds (stats screen)
	ThirstyThreshold  = 30
	HungryThreshold   = 30
	DirtyThreshold    = 40
	SleepyThreshold   = 20
	SadThreshold      = 50
	FewItemsThreshold = 5   // Suggest the shop below this many unlocked items
	RichThreshold     = 200 // Suggest spending above this many coins
	NewbieActions     = 5   // Total actions below which the pet counts as new

	// Care score tiers
	PerfectCareThreshold = 85
	HappyCareThreshold   = 70
	NormalCareThreshold  = 50
	AnxiousCareThreshold = 30
	GreatCareTipScore    = 80

	// Status emojis
	StatusEmojiHappy   = "😊"
	StatusEmojiThirsty = "💧"
	StatusEmojiHungry  = "🍖"
	StatusEmojiDirty   = "🛁"
	StatusEmojiSleepy  = "😴"
	StatusEmojiSad     = "😿"
)
