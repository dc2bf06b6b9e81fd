package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"hippo/internal/pet"
	"hippo/internal/shop"
	"hippo/internal/storage"
)

// encode renders p as the persisted key/value set.
func encode(p pet.Pet) map[string]string {
	out := map[string]string{
		KeyName:       p.Name,
		KeyGender:     string(p.Gender),
		KeyAge:        string(p.Age),
		KeyCoins:      strconv.Itoa(p.Coins),
		KeyCreated:    createdMarker,
		KeyFeedCount:  strconv.Itoa(p.Counters.Feed),
		KeyCleanCount: strconv.Itoa(p.Counters.Clean),
		KeyPlayCount:  strconv.Itoa(p.Counters.Play),
		KeySleepCount: strconv.Itoa(p.Counters.Sleep),
		KeyWaterCount: strconv.Itoa(p.Counters.Water),
		KeyGameCount:  strconv.Itoa(p.Counters.Games),
		KeyID:         p.ID,
	}
	if !p.CreatedAt.IsZero() {
		out[KeyCreatedAt] = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	if data, err := json.Marshal(p.Stats); err == nil {
		out[KeyStats] = string(data)
	}
	outfit := p.Outfit
	if outfit == nil {
		outfit = map[shop.Category]string{}
	}
	if data, err := json.Marshal(outfit); err == nil {
		out[KeyOutfit] = string(data)
	}
	if data, err := json.Marshal(p.UnlockedIDs()); err == nil {
		out[KeyUnlocked] = string(data)
	}
	return out
}

// loader reads keys one at a time and remembers the raw values it saw.
type loader struct {
	ctx context.Context
	kv  storage.Store
	raw map[string]string
}

// get returns the value and whether it was present. Backend errors are
// logged and treated as absent.
func (l *loader) get(key string) (string, bool) {
	v, err := l.kv.Get(l.ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Error loading %s: %v. Using default.", key, err)
		}
		return "", false
	}
	l.raw[key] = v
	return v, true
}

func (l *loader) counter(key string) int {
	v, ok := l.get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Invalid %s %q. Using 0.", key, v)
		return 0
	}
	return n
}

// load rebuilds the pet from kv. Each field falls back to its default on
// its own; a missing name leaves the whole pet at defaults. The returned
// map holds the raw values read.
func load(ctx context.Context, kv storage.Store, catalog *shop.Catalog, now time.Time) (pet.Pet, map[string]string) {
	l := &loader{ctx: ctx, kv: kv, raw: make(map[string]string)}
	p := pet.New()

	rawName, ok := l.get(KeyName)
	if !ok {
		log.Printf("No saved hippo found. Onboarding required.")
		return p, l.raw
	}
	name, err := pet.NormalizeName(rawName)
	if err != nil {
		log.Printf("Invalid saved name %q. Onboarding required.", rawName)
		return p, l.raw
	}
	p.Name = name

	if v, ok := l.get(KeyGender); ok {
		if g := pet.Gender(v); g.Valid() {
			p.Gender = g
		} else {
			log.Printf("Invalid gender %q. Using %s.", v, p.Gender)
		}
	}
	if v, ok := l.get(KeyAge); ok {
		if a := pet.Age(v); a.Valid() {
			p.Age = a
		} else {
			log.Printf("Invalid age %q. Using %s.", v, p.Age)
		}
	}

	if v, ok := l.get(KeyStats); ok {
		stats := pet.InitialStats
		if err := json.Unmarshal([]byte(v), &stats); err != nil {
			log.Printf("Error parsing stats: %v. Using defaults.", err)
		} else {
			p.Stats = stats.Clamp()
		}
	}

	if v, ok := l.get(KeyCoins); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Invalid coins %q. Using %d.", v, pet.InitialCoins)
		} else {
			p.Coins = n
		}
	}

	if v, ok := l.get(KeyUnlocked); ok {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err != nil {
			log.Printf("Error parsing unlocked items: %v. Using none.", err)
		} else {
			for _, id := range ids {
				if _, known := catalog.Lookup(id); known {
					p.Unlocked[id] = true
				} else {
					log.Printf("Dropping unknown unlocked item %q.", id)
				}
			}
		}
	}

	if v, ok := l.get(KeyOutfit); ok {
		var outfit map[shop.Category]string
		if err := json.Unmarshal([]byte(v), &outfit); err != nil {
			log.Printf("Error parsing outfit: %v. Using none.", err)
		} else {
			for cat, id := range outfit {
				item, known := catalog.Lookup(id)
				if !known || item.Category != cat || !p.Unlocked[id] {
					log.Printf("Dropping outfit entry %s=%q.", cat, id)
					continue
				}
				p.Outfit[cat] = id
			}
		}
	}

	p.Counters = pet.Counters{
		Feed:  l.counter(KeyFeedCount),
		Clean: l.counter(KeyCleanCount),
		Play:  l.counter(KeyPlayCount),
		Sleep: l.counter(KeySleepCount),
		Water: l.counter(KeyWaterCount),
		Games: l.counter(KeyGameCount),
	}

	if v, ok := l.get(KeyID); ok && v != "" {
		p.ID = v
	} else {
		p.ID = uuid.NewString()
		log.Printf("Saved hippo has no id. Assigned %s.", p.ID)
	}
	if v, ok := l.get(KeyCreatedAt); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			p.CreatedAt = t
		} else {
			log.Printf("Invalid creation time %q.", v)
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}

	log.Printf("Loaded hippo %s. Coins: %d, unlocked items: %d", p.Name, p.Coins, len(p.Unlocked))
	return p, l.raw
}
