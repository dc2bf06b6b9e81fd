package pet

// DecayDelta is the passive change applied on every tick.
var DecayDelta = Delta{
	Health:      -HealthDecay,
	Satiety:     -SatietyDecay,
	Happiness:   -HappinessDecay,
	Cleanliness: -CleanlinessDecay,
	Energy:      EnergyRecovery,
	Thirst:      -ThirstDecay,
}

// DehydrationDelta is applied on top of DecayDelta when thirst drops below
// DehydrationThreshold.
var DehydrationDelta = Delta{
	Health:    -DehydrationHealthPenalty,
	Happiness: -DehydrationHappinessPenalty,
}

// Decay returns the stats after one passive tick and whether the
// dehydration penalty was applied in that tick.
func Decay(s Stats) (Stats, bool) {
	next := s.Apply(DecayDelta)
	if next.Thirst < DehydrationThreshold {
		return next.Apply(DehydrationDelta), true
	}
	return next, false
}
