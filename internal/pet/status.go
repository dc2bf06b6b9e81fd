package pet

import "math"

// Mood is the pet's most pressing need.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodThirsty Mood = "thirsty"
	MoodHungry  Mood = "hungry"
	MoodDirty   Mood = "dirty"
	MoodSleepy  Mood = "sleepy"
	MoodSad     Mood = "sad"
)

// Tier buckets the overall care score.
type Tier string

const (
	TierPerfect   Tier = "perfect"
	TierHappy     Tier = "happy"
	TierNormal    Tier = "normal"
	TierAnxious   Tier = "anxious"
	TierNeedsCare Tier = "needs_care"
)

// CareScore is the weighted average of all stats, rounded to an integer.
func CareScore(s Stats) int {
	return int(math.Round(
		s.Health*0.25 +
			s.Happiness*0.20 +
			s.Satiety*0.15 +
			s.Cleanliness*0.15 +
			s.Energy*0.15 +
			s.Thirst*0.10,
	))
}

// GetTier maps a care score to its tier.
func GetTier(score int) Tier {
	switch {
	case score >= PerfectCareThreshold:
		return TierPerfect
	case score >= HappyCareThreshold:
		return TierHappy
	case score >= NormalCareThreshold:
		return TierNormal
	case score >= AnxiousCareThreshold:
		return TierAnxious
	default:
		return TierNeedsCare
	}
}

// Label returns the display text for the tier.
func (t Tier) Label() string {
	switch t {
	case TierPerfect:
		return "🌟 Perfect"
	case TierHappy:
		return "😊 Happy"
	case TierNormal:
		return "😐 Normal"
	case TierAnxious:
		return "😟 Anxious"
	default:
		return "😨 Needs care"
	}
}

// GetMood returns the need whose stat is lowest among those under their
// threshold, or MoodHappy when nothing is pressing.
func GetMood(p Pet) Mood {
	type need struct {
		value     float64
		threshold float64
		mood      Mood
	}
	needs := []need{
		{value: p.Stats.Thirst, threshold: ThirstyThreshold, mood: MoodThirsty},
		{value: p.Stats.Satiety, threshold: HungryThreshold, mood: MoodHungry},
		{value: p.Stats.Cleanliness, threshold: DirtyThreshold, mood: MoodDirty},
		{value: p.Stats.Energy, threshold: SleepyThreshold, mood: MoodSleepy},
		{value: p.Stats.Happiness, threshold: SadThreshold, mood: MoodSad},
	}

	mood := MoodHappy
	lowest := MaxStat + 1
	for _, n := range needs {
		if n.value < n.threshold && n.value < lowest {
			lowest = n.value
			mood = n.mood
		}
	}
	return mood
}

// Emoji returns the status emoji for the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodThirsty:
		return StatusEmojiThirsty
	case MoodHungry:
		return StatusEmojiHungry
	case MoodDirty:
		return StatusEmojiDirty
	case MoodSleepy:
		return StatusEmojiSleepy
	case MoodSad:
		return StatusEmojiSad
	default:
		return StatusEmojiHappy
	}
}

// GetStatus returns the status emoji for the pet
func GetStatus(p Pet) string {
	return GetMood(p).Emoji()
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(p Pet) string {
	mood := GetMood(p)
	switch mood {
	case MoodThirsty:
		return mood.Emoji() + " Thirsty"
	case MoodHungry:
		return mood.Emoji() + " Hungry"
	case MoodDirty:
		return mood.Emoji() + " Dirty"
	case MoodSleepy:
		return mood.Emoji() + " Sleepy"
	case MoodSad:
		return mood.Emoji() + " Sad"
	default:
		return mood.Emoji() + " Happy"
	}
}

// Tips returns care suggestions in display order.
func Tips(p Pet) []string {
	var tips []string
	if p.Stats.Thirst < ThirstyThreshold {
		tips = append(tips, "💧 Give your hippo some water!")
	}
	if p.Stats.Satiety < HungryThreshold {
		tips = append(tips, "🍖 Your hippo is hungry!")
	}
	if p.Stats.Cleanliness < DirtyThreshold {
		tips = append(tips, "✨ Time for a bath!")
	}
	if p.Stats.Energy < SleepyThreshold {
		tips = append(tips, "😴 Your hippo needs some sleep!")
	}
	if p.Stats.Happiness < SadThreshold {
		tips = append(tips, "🎮 Play with your hippo!")
	}
	if len(p.UnlockedIDs()) < FewItemsThreshold {
		tips = append(tips, "🛍️ Visit the shop for new clothes!")
	}
	if p.Coins > RichThreshold {
		tips = append(tips, "💰 You have plenty of coins, treat your hippo!")
	}
	if CareScore(p.Stats) >= GreatCareTipScore {
		tips = append(tips, "🎉 Great care, keep it up!")
	}
	if p.Counters.Total() < NewbieActions {
		tips = append(tips, "👶 New hippo? Take care of it more often!")
	}
	return tips
}
