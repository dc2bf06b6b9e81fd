// Package store owns the hippo's state: it applies care actions, runs the
// passive decay tick and writes every change through to storage.
package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"hippo/internal/clock"
	"hippo/internal/minigame"
	"hippo/internal/pet"
	"hippo/internal/shop"
	"hippo/internal/storage"
)

// ErrAlreadyOnboarded is returned by CompleteOnboarding when a hippo exists.
// Reset it first.
var ErrAlreadyOnboarded = errors.New("store: hippo already created")

// Store is the single owner of the pet record. All methods are safe for
// concurrent use. Every mutation derives from the current record under the
// lock, so decay ticks and actions never overwrite each other.
type Store struct {
	mu  sync.Mutex
	pet pet.Pet

	clock    clock.Clock
	catalog  *shop.Catalog
	policy   minigame.Policy
	metrics  Metrics
	interval time.Duration

	persist *persister

	subsMu  sync.Mutex
	subs    map[int]chan pet.Pet
	nextSub int

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// Open loads the pet from kv and starts the decay scheduler and the
// persistence worker. Load problems never fail Open; each field falls back
// to its default. The caller keeps ownership of kv.
func Open(ctx context.Context, kv storage.Store, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, raw := load(ctx, kv, o.catalog, o.clock.Now())
	s := &Store{
		pet:      p,
		clock:    o.clock,
		catalog:  o.catalog,
		policy:   o.policy,
		metrics:  o.metrics,
		interval: o.decayInterval,
		persist:  newPersister(kv, o.metrics, raw),
		subs:     make(map[int]chan pet.Pet),
		stop:     make(chan struct{}),
	}
	s.persist.start()

	s.wg.Add(1)
	go s.runDecay()
	return s
}

func (s *Store) runDecay() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.stop:
			return
		}
	}
}

// modifyPet runs f on the live record. When f reports a change the new
// snapshot is published and queued for storage. Nothing happens before
// onboarding.
func (s *Store) modifyPet(f func(*pet.Pet) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pet.Onboarded() {
		return false
	}
	if !f(&s.pet) {
		return false
	}
	s.commitLocked()
	return true
}

// commitLocked publishes and persists the current record. Callers hold mu,
// which keeps queued snapshots in mutation order.
func (s *Store) commitLocked() {
	snap := s.pet.Clone()
	s.publish(snap)
	if snap.Onboarded() {
		s.persist.queueWrite(snap)
	}
}

// Tick applies one passive decay step.
func (s *Store) Tick() {
	var dehydrated bool
	ok := s.modifyPet(func(p *pet.Pet) bool {
		p.Stats, dehydrated = pet.Decay(p.Stats)
		if dehydrated {
			log.Printf("Pet is dehydrated. Health is now %.1f, Happiness is now %.1f", p.Stats.Health, p.Stats.Happiness)
		}
		return true
	})
	if ok {
		s.metrics.RecordDecayTick(dehydrated)
	}
}

func (s *Store) apply(a pet.Action) bool {
	ok := s.modifyPet(func(p *pet.Pet) bool {
		return p.ApplyAction(a, s.clock.Now())
	})
	s.metrics.RecordAction(string(a), ok)
	return ok
}

func (s *Store) Feed() bool  { return s.apply(pet.ActionFeed) }
func (s *Store) Clean() bool { return s.apply(pet.ActionClean) }

// Play is refused while energy is below pet.PlayEnergyThreshold.
func (s *Store) Play() bool      { return s.apply(pet.ActionPlay) }
func (s *Store) Sleep() bool     { return s.apply(pet.ActionSleep) }
func (s *Store) GiveWater() bool { return s.apply(pet.ActionWater) }

// Perform runs the named care action.
func (s *Store) Perform(a pet.Action) bool { return s.apply(a) }

// CanStartGame reports whether the pet has the energy the game costs.
func (s *Store) CanStartGame(id minigame.ID) bool {
	def, ok := minigame.Lookup(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet.Onboarded() && s.pet.Stats.Energy >= float64(def.EnergyCost)
}

// CompleteGame rewards a finished mini-game when the reward policy accepts
// the result. Unknown games and negative scores are rejected.
func (s *Store) CompleteGame(id minigame.ID, res minigame.Result) bool {
	def, known := minigame.Lookup(id)
	if !known || res.Score < 0 || !s.policy.Accepts(res) {
		s.metrics.RecordAction("game", false)
		return false
	}
	reward := def.RewardFor(res.Score)
	ok := s.modifyPet(func(p *pet.Pet) bool {
		p.Stats = p.Stats.Apply(pet.Delta{
			Happiness: reward.Happiness,
			Energy:    reward.Energy,
			Satiety:   reward.Satiety,
			Thirst:    reward.Thirst,
		})
		p.Credit(reward.Coins)
		p.Counters.Games++
		p.LastPlayed = s.clock.Now()
		log.Printf("Finished %s with score %d. Happiness is now %.1f, Energy is now %.1f, Coins: %d",
			id, res.Score, p.Stats.Happiness, p.Stats.Energy, p.Coins)
		return true
	})
	s.metrics.RecordAction("game", ok)
	return ok
}

// BuyItem debits the price, unlocks the item and wears it when its slot is
// empty. Unknown items, owned items and insufficient coins are rejected
// without any change.
func (s *Store) BuyItem(id string) bool {
	item, known := s.catalog.Lookup(id)
	if !known {
		s.metrics.RecordAction("buy", false)
		return false
	}
	ok := s.modifyPet(func(p *pet.Pet) bool {
		if p.Unlocked[id] || p.Coins < item.Price {
			return false
		}
		p.Coins -= item.Price
		p.Unlocked[id] = true
		if _, worn := p.Outfit[item.Category]; !worn {
			p.Outfit[item.Category] = id
		}
		log.Printf("Bought %s for %d coins. Coins left: %d", id, item.Price, p.Coins)
		return true
	})
	s.metrics.RecordAction("buy", ok)
	return ok
}

// EquipItem wears an unlocked item, replacing whatever was in its slot.
func (s *Store) EquipItem(id string) bool {
	item, known := s.catalog.Lookup(id)
	if !known {
		s.metrics.RecordAction("equip", false)
		return false
	}
	ok := s.modifyPet(func(p *pet.Pet) bool {
		if !p.Unlocked[id] {
			return false
		}
		p.Outfit[item.Category] = id
		log.Printf("Equipped %s in %s slot", id, item.Category)
		return true
	})
	s.metrics.RecordAction("equip", ok)
	return ok
}

// UnequipItem clears a slot. Clearing an empty slot does nothing.
func (s *Store) UnequipItem(cat shop.Category) {
	s.modifyPet(func(p *pet.Pet) bool {
		if _, worn := p.Outfit[cat]; !worn {
			return false
		}
		delete(p.Outfit, cat)
		log.Printf("Cleared %s slot", cat)
		return true
	})
}

// AddCoins credits a positive amount.
func (s *Store) AddCoins(n int) bool {
	return s.modifyPet(func(p *pet.Pet) bool {
		return p.Credit(n)
	})
}

// AvailableItems returns the whole catalog with ownership filled in. Age
// restrictions are not applied; see shop.FilterForAge.
func (s *Store) AvailableItems() []shop.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Listings(s.pet.IsUnlocked)
}

// Catalog returns the item table the store sells from.
func (s *Store) Catalog() *shop.Catalog {
	return s.catalog
}

// CompleteOnboarding creates the hippo with initial stats.
func (s *Store) CompleteOnboarding(name string, gender pet.Gender, age pet.Age) error {
	name, err := pet.NormalizeName(name)
	if err != nil {
		return err
	}
	if !gender.Valid() {
		return pet.ErrInvalidGender
	}
	if !age.Valid() {
		return pet.ErrInvalidAge
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pet.Onboarded() {
		return ErrAlreadyOnboarded
	}
	p := pet.New()
	p.ID = uuid.NewString()
	p.Name = name
	p.Gender = gender
	p.Age = age
	p.CreatedAt = s.clock.Now()
	s.pet = p
	s.commitLocked()
	log.Printf("Created new hippo: %s (%s, %s)", p.Name, p.Gender, p.Age)
	return nil
}

// Onboarded reports whether a hippo has been created.
func (s *Store) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet.Onboarded()
}

// Reset returns the pet to its initial state and removes every persisted
// key. The hippo must be onboarded again afterwards.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pet = pet.New()
	s.persist.queueWipe()
	s.publish(s.pet.Clone())
	log.Printf("Hippo reset")
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() pet.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet.Clone()
}

// Subscribe returns a channel that receives the latest snapshot after every
// change. Slow readers only see the newest value. cancel closes the
// channel.
func (s *Store) Subscribe() (<-chan pet.Pet, func()) {
	ch := make(chan pet.Pet, 1)
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

func (s *Store) publish(snap pet.Pet) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap.Clone():
			continue
		default:
		}
		// Replace the stale value.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap.Clone():
		default:
		}
	}
}

// Flush writes any pending change before returning.
func (s *Store) Flush(ctx context.Context) error {
	return s.persist.flush(ctx)
}

// Close stops the decay scheduler, writes pending changes and closes all
// subscriptions. It does not close the storage backend. Calling Close more
// than once is safe.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		s.closeErr = s.persist.close(ctx)

		s.subsMu.Lock()
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
		s.subsMu.Unlock()
	})
	return s.closeErr
}
