package pet

import (
	"log"
	"time"
)

// Action is a user-triggered care operation.
type Action string

const (
	ActionFeed  Action = "feed"
	ActionClean Action = "clean"
	ActionPlay  Action = "play"
	ActionSleep Action = "sleep"
	ActionWater Action = "water"
)

// Actions lists the care actions in menu order.
var Actions = []Action{ActionFeed, ActionClean, ActionPlay, ActionSleep, ActionWater}

// Effect is the fixed outcome of an action.
type Effect struct {
	Delta Delta
	Coins int
}

// Effects maps each action to its stat delta and coin reward.
var Effects = map[Action]Effect{
	ActionFeed: {
		Delta: Delta{Satiety: 30, Happiness: 10, Energy: 5, Thirst: -5},
		Coins: 5,
	},
	ActionClean: {
		Delta: Delta{Happiness: 5, Energy: -10, Cleanliness: 40},
		Coins: 5,
	},
	ActionPlay: {
		Delta: Delta{Satiety: -5, Happiness: 10, Energy: -20, Thirst: -5},
	},
	ActionSleep: {
		Delta: Delta{Satiety: -5, Energy: 50, Thirst: -10, Health: 5},
		Coins: 3,
	},
	ActionWater: {
		Delta: Delta{Happiness: 15, Thirst: 30, Health: 10},
		Coins: 4,
	},
}

// CanPerform reports whether the action is available for the given stats.
func CanPerform(a Action, s Stats) bool {
	if _, ok := Effects[a]; !ok {
		return false
	}
	if a == ActionPlay {
		return s.Energy >= PlayEnergyThreshold
	}
	return true
}

// ApplyAction applies the action's effect, bumps its counter and stamps its
// timestamp. It returns false and leaves p untouched when the action is
// refused.
func (p *Pet) ApplyAction(a Action, now time.Time) bool {
	if !CanPerform(a, p.Stats) {
		return false
	}
	eff := Effects[a]
	p.Stats = p.Stats.Apply(eff.Delta)
	p.Credit(eff.Coins)

	switch a {
	case ActionFeed:
		p.Counters.Feed++
		p.LastFed = now
		log.Printf("Fed pet. Satiety is now %.1f, Happiness is now %.1f", p.Stats.Satiety, p.Stats.Happiness)
	case ActionClean:
		p.Counters.Clean++
		p.LastCleaned = now
		log.Printf("Cleaned pet. Cleanliness is now %.1f", p.Stats.Cleanliness)
	case ActionPlay:
		p.Counters.Play++
		p.LastPlayed = now
		log.Printf("Played with pet. Happiness is now %.1f, Energy is now %.1f", p.Stats.Happiness, p.Stats.Energy)
	case ActionSleep:
		p.Counters.Sleep++
		p.LastSlept = now
		log.Printf("Pet slept. Energy is now %.1f", p.Stats.Energy)
	case ActionWater:
		p.Counters.Water++
		p.LastWatered = now
		log.Printf("Gave water. Thirst is now %.1f", p.Stats.Thirst)
	}
	return true
}
