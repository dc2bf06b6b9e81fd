package pet

import (
	"strings"
	"testing"
)

func uniform(v float64) Stats {
	return Stats{Health: v, Satiety: v, Happiness: v, Cleanliness: v, Energy: v, Thirst: v}
}

func TestCareScore(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  int
	}{
		{"full", uniform(100), 100},
		{"empty", uniform(0), 0},
		{"half", uniform(50), 50},
		{"health weighs most", Stats{Health: 80, Satiety: 60, Happiness: 60, Cleanliness: 60, Energy: 60, Thirst: 60}, 65},
		{"thirst weighs least", Stats{Thirst: 100}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CareScore(tt.stats); got != tt.want {
				t.Errorf("CareScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetTier(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{100, TierPerfect},
		{85, TierPerfect},
		{84, TierHappy},
		{70, TierHappy},
		{69, TierNormal},
		{50, TierNormal},
		{49, TierAnxious},
		{30, TierAnxious},
		{29, TierNeedsCare},
		{0, TierNeedsCare},
	}
	for _, tt := range tests {
		if got := GetTier(tt.score); got != tt.want {
			t.Errorf("GetTier(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		mood  Mood
		emoji string
		label string
	}{
		{"content", uniform(80), MoodHappy, StatusEmojiHappy, "Happy"},
		{"thirsty", Stats{Health: 80, Satiety: 80, Happiness: 80, Cleanliness: 80, Energy: 80, Thirst: 10}, MoodThirsty, StatusEmojiThirsty, "Thirsty"},
		{"hungry beats dirty", Stats{Health: 80, Satiety: 10, Happiness: 80, Cleanliness: 35, Energy: 80, Thirst: 80}, MoodHungry, StatusEmojiHungry, "Hungry"},
		{"lowest need wins", Stats{Health: 80, Satiety: 25, Happiness: 80, Cleanliness: 80, Energy: 5, Thirst: 25}, MoodSleepy, StatusEmojiSleepy, "Sleepy"},
		{"dirty", Stats{Health: 80, Satiety: 80, Happiness: 80, Cleanliness: 20, Energy: 80, Thirst: 80}, MoodDirty, StatusEmojiDirty, "Dirty"},
		{"sad", Stats{Health: 80, Satiety: 80, Happiness: 40, Cleanliness: 80, Energy: 80, Thirst: 80}, MoodSad, StatusEmojiSad, "Sad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.Stats = tt.stats
			if got := GetMood(p); got != tt.mood {
				t.Errorf("GetMood() = %s, want %s", got, tt.mood)
			}
			if got := GetStatus(p); got != tt.emoji {
				t.Errorf("GetStatus() = %q, want %q", got, tt.emoji)
			}
			if got := GetStatusWithLabel(p); !strings.HasSuffix(got, tt.label) {
				t.Errorf("GetStatusWithLabel() = %q, want suffix %q", got, tt.label)
			}
		})
	}
}

func TestTips(t *testing.T) {
	t.Run("new pet", func(t *testing.T) {
		tips := Tips(New())
		if len(tips) != 2 {
			t.Fatalf("expected shop and newbie tips, got %v", tips)
		}
		if !strings.Contains(tips[0], "shop") || !strings.Contains(tips[1], "New hippo") {
			t.Errorf("unexpected tips %v", tips)
		}
	})

	t.Run("neglected pet", func(t *testing.T) {
		p := New()
		p.Stats = uniform(10)
		tips := Tips(p)
		for _, want := range []string{"water", "hungry", "bath", "sleep", "Play"} {
			found := false
			for _, tip := range tips {
				if strings.Contains(tip, want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing tip containing %q in %v", want, tips)
			}
		}
	})

	t.Run("rich well cared pet", func(t *testing.T) {
		p := New()
		p.Stats = uniform(95)
		p.Coins = 500
		p.Counters = Counters{Feed: 10}
		for _, id := range []string{"hat_1", "hat_2", "upper_1", "lower_1", "feet_1"} {
			p.Unlocked[id] = true
		}
		tips := Tips(p)
		if len(tips) != 2 {
			t.Fatalf("expected coins and praise tips, got %v", tips)
		}
		if !strings.Contains(tips[0], "coins") || !strings.Contains(tips[1], "Great care") {
			t.Errorf("unexpected tips %v", tips)
		}
	})
}

func TestTierLabel(t *testing.T) {
	for _, tier := range []Tier{TierPerfect, TierHappy, TierNormal, TierAnxious, TierNeedsCare} {
		if tier.Label() == "" {
			t.Errorf("tier %s has no label", tier)
		}
	}
}
