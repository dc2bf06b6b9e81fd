// Package minigame defines the scored mini-games and how their results are
// turned into rewards. The games themselves live in the UI.
package minigame

import (
	"fmt"
	"math"
	"strings"
)

// ID names a mini-game.
type ID string

const (
	Bubble ID = "bubble"
	Dice   ID = "dice"
	Memory ID = "memory"
)

const (
	DefaultEnergyCost  = 20   // Energy spent per rewarded game
	BaseHappiness      = 10.0 // Happiness for any rewarded game
	MaxHappinessReward = 30.0 // Cap on the happiness a single game can grant
	ScorePerHappiness  = 10   // One happiness point per this many score points
	ScorePerCoin       = 20   // One bonus coin per this many score points
	SatietyCost        = 5
	ThirstCost         = 5
)

// Definition is the fixed reward profile of a game.
type Definition struct {
	ID         ID
	Name       string
	Icon       string
	BaseCoins  int
	EnergyCost int
}

// Definitions lists the games in menu order.
var Definitions = []Definition{
	{ID: Bubble, Name: "Bubble Pop", Icon: "🫧", BaseCoins: 10, EnergyCost: DefaultEnergyCost},
	{ID: Dice, Name: "Dice Guess", Icon: "🎲", BaseCoins: 12, EnergyCost: DefaultEnergyCost},
	{ID: Memory, Name: "Memory Match", Icon: "🧠", BaseCoins: 15, EnergyCost: DefaultEnergyCost},
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, d := range Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// ParseID accepts a game id case-insensitively. "diceGuess" is accepted as
// an alias for dice.
func ParseID(s string) (ID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "diceguess" {
		s = string(Dice)
	}
	if _, ok := Lookup(ID(s)); !ok {
		return "", fmt.Errorf("unknown game %q", s)
	}
	return ID(s), nil
}

// Result is what a game reports when it ends.
type Result struct {
	Score    int
	Finished bool // false when the player closed the game early
}

// Reward is the combined effect of a rewarded game.
type Reward struct {
	Happiness float64
	Energy    float64
	Satiety   float64
	Thirst    float64
	Coins     int
}

// Policy decides whether a result earns a reward.
type Policy string

const (
	// PolicyPositiveScore rewards any positive score, even when the game
	// was closed early.
	PolicyPositiveScore Policy = "positive_score"
	// PolicyFinishedOnly additionally requires the game to have ended
	// naturally.
	PolicyFinishedOnly Policy = "finished_only"
)

// ParsePolicy validates a policy name. The empty string selects the default.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "":
		return PolicyPositiveScore, nil
	case PolicyPositiveScore, PolicyFinishedOnly:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown reward policy %q", s)
	}
}

// Accepts reports whether res earns a reward under the policy.
func (p Policy) Accepts(res Result) bool {
	if res.Score <= 0 {
		return false
	}
	if p == PolicyFinishedOnly {
		return res.Finished
	}
	return true
}

// RewardFor computes the reward for a score. It does not apply the policy.
func (d Definition) RewardFor(score int) Reward {
	if score < 0 {
		score = 0
	}
	return Reward{
		Happiness: math.Min(MaxHappinessReward, BaseHappiness+float64(score)/ScorePerHappiness),
		Energy:    -float64(d.EnergyCost),
		Satiety:   -SatietyCost,
		Thirst:    -ThirstCost,
		Coins:     d.BaseCoins + score/ScorePerCoin,
	}
}
