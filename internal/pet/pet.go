package pet

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"hippo/internal/shop"
)

// Onboarding validation errors
var (
	ErrInvalidName   = errors.New("pet: name must be 1-20 characters")
	ErrInvalidGender = errors.New("pet: gender must be male or female")
	ErrInvalidAge    = errors.New("pet: age must be child or parent")
)

// Gender of the pet, chosen during onboarding
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Age is a cosmetic tier, not a timer-driven value.
type Age = shop.Age

const (
	AgeChild  = shop.AgeChild
	AgeParent = shop.AgeParent
)

// Stats holds the six bounded gauges. Satiety and Thirst measure fullness:
// high means well fed and well hydrated.
type Stats struct {
	Health      float64 `json:"health"`
	Satiety     float64 `json:"satiety"`
	Happiness   float64 `json:"happiness"`
	Cleanliness float64 `json:"cleanliness"`
	Energy      float64 `json:"energy"`
	Thirst      float64 `json:"thirst"`
}

// Delta is a signed change applied to Stats.
type Delta Stats

// InitialStats are the stats of a freshly created pet.
var InitialStats = Stats{
	Health:      100,
	Satiety:     50,
	Happiness:   70,
	Cleanliness: 60,
	Energy:      80,
	Thirst:      30,
}

// Apply adds d to s and clamps every stat to [MinStat, MaxStat].
func (s Stats) Apply(d Delta) Stats {
	return Stats{
		Health:      s.Health + d.Health,
		Satiety:     s.Satiety + d.Satiety,
		Happiness:   s.Happiness + d.Happiness,
		Cleanliness: s.Cleanliness + d.Cleanliness,
		Energy:      s.Energy + d.Energy,
		Thirst:      s.Thirst + d.Thirst,
	}.Clamp()
}

// Clamp bounds every stat to [MinStat, MaxStat].
func (s Stats) Clamp() Stats {
	return Stats{
		Health:      clamp(s.Health),
		Satiety:     clamp(s.Satiety),
		Happiness:   clamp(s.Happiness),
		Cleanliness: clamp(s.Cleanliness),
		Energy:      clamp(s.Energy),
		Thirst:      clamp(s.Thirst),
	}
}

// Counters track how often each care action was performed.
type Counters struct {
	Feed  int `json:"feed"`
	Clean int `json:"clean"`
	Play  int `json:"play"`
	Sleep int `json:"sleep"`
	Water int `json:"water"`
	Games int `json:"games"`
}

// Total returns the number of care actions, games excluded.
func (c Counters) Total() int {
	return c.Feed + c.Clean + c.Play + c.Sleep + c.Water
}

// Pet represents the hippo's state
type Pet struct {
	ID       string                   `json:"id"`
	Name     string                   `json:"name"`
	Gender   Gender                   `json:"gender"`
	Age      Age                      `json:"age"`
	Stats    Stats                    `json:"stats"`
	Outfit   map[shop.Category]string `json:"outfit"`
	Coins    int                      `json:"coins"`
	Unlocked map[string]bool          `json:"unlocked"`
	Counters Counters                 `json:"counters"`

	CreatedAt   time.Time `json:"created_at"`
	LastFed     time.Time `json:"last_fed,omitempty"`
	LastCleaned time.Time `json:"last_cleaned,omitempty"`
	LastPlayed  time.Time `json:"last_played,omitempty"`
	LastSlept   time.Time `json:"last_slept,omitempty"`
	LastWatered time.Time `json:"last_watered,omitempty"`
}

// New returns the initial pet: default stats, starting coins and no name,
// which means onboarding has not happened yet.
func New() Pet {
	return Pet{
		Gender:   GenderMale,
		Age:      AgeChild,
		Stats:    InitialStats,
		Outfit:   make(map[shop.Category]string),
		Coins:    InitialCoins,
		Unlocked: make(map[string]bool),
	}
}

// Onboarded reports whether the pet has been named.
func (p Pet) Onboarded() bool {
	return p.Name != ""
}

// IsUnlocked reports whether the item was purchased.
func (p Pet) IsUnlocked(itemID string) bool {
	return p.Unlocked[itemID]
}

// UnlockedIDs returns the purchased item ids in sorted order.
func (p Pet) UnlockedIDs() []string {
	ids := make([]string, 0, len(p.Unlocked))
	for id, ok := range p.Unlocked {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy safe to hand out to other goroutines.
func (p Pet) Clone() Pet {
	c := p
	c.Outfit = make(map[shop.Category]string, len(p.Outfit))
	for k, v := range p.Outfit {
		c.Outfit[k] = v
	}
	c.Unlocked = make(map[string]bool, len(p.Unlocked))
	for k, v := range p.Unlocked {
		c.Unlocked[k] = v
	}
	return c
}

// Credit adds coins; non-positive amounts are ignored. The balance
// saturates at math.MaxInt.
func (p *Pet) Credit(amount int) bool {
	if amount <= 0 {
		return false
	}
	if amount > math.MaxInt-p.Coins {
		p.Coins = math.MaxInt
	} else {
		p.Coins += amount
	}
	return true
}

// NormalizeName trims the name and checks its length in characters.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
