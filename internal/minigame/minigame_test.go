package minigame

import (
	"math"
	"testing"
)

func TestRewardFor(t *testing.T) {
	tests := []struct {
		name      string
		id        ID
		score     int
		happiness float64
		coins     int
	}{
		{"bubble small score", Bubble, 5, 10.5, 10},
		{"bubble bonus coins", Bubble, 45, 14.5, 12},
		{"dice base", Dice, 19, 11.9, 12},
		{"dice one bonus", Dice, 20, 12, 13},
		{"memory big score caps happiness", Memory, 500, 30, 40},
		{"memory exactly at cap", Memory, 200, 30, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := Lookup(tt.id)
			if !ok {
				t.Fatalf("game %s not found", tt.id)
			}
			r := def.RewardFor(tt.score)
			if math.Abs(r.Happiness-tt.happiness) > 1e-9 {
				t.Errorf("happiness = %v, want %v", r.Happiness, tt.happiness)
			}
			if r.Coins != tt.coins {
				t.Errorf("coins = %d, want %d", r.Coins, tt.coins)
			}
			if r.Energy != -20 || r.Satiety != -5 || r.Thirst != -5 {
				t.Errorf("unexpected costs %+v", r)
			}
		})
	}
}

func TestPolicyAccepts(t *testing.T) {
	tests := []struct {
		policy Policy
		res    Result
		want   bool
	}{
		{PolicyPositiveScore, Result{Score: 10, Finished: true}, true},
		{PolicyPositiveScore, Result{Score: 10, Finished: false}, true},
		{PolicyPositiveScore, Result{Score: 0, Finished: true}, false},
		{PolicyPositiveScore, Result{Score: -3, Finished: true}, false},
		{PolicyFinishedOnly, Result{Score: 10, Finished: true}, true},
		{PolicyFinishedOnly, Result{Score: 10, Finished: false}, false},
		{PolicyFinishedOnly, Result{Score: 0, Finished: true}, false},
	}
	for _, tt := range tests {
		if got := tt.policy.Accepts(tt.res); got != tt.want {
			t.Errorf("%s.Accepts(%+v) = %v, want %v", tt.policy, tt.res, got, tt.want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != PolicyPositiveScore {
		t.Errorf("empty policy: got %q, %v", p, err)
	}
	if p, err := ParsePolicy("finished_only"); err != nil || p != PolicyFinishedOnly {
		t.Errorf("finished_only: got %q, %v", p, err)
	}
	if _, err := ParsePolicy("always"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestParseID(t *testing.T) {
	tests := map[string]ID{
		"bubble":    Bubble,
		"DICE":      Dice,
		"diceGuess": Dice,
		" memory ":  Memory,
	}
	for in, want := range tests {
		got, err := ParseID(in)
		if err != nil || got != want {
			t.Errorf("ParseID(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseID("snake"); err == nil {
		t.Error("expected error for unknown game")
	}
}
