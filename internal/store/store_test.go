package store

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hippo/internal/clock"
	"hippo/internal/metrics/inmemory"
	"hippo/internal/minigame"
	"hippo/internal/pet"
	"hippo/internal/shop"
	"hippo/internal/storage/memory"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	store   *Store
	kv      *memory.Store
	clock   *clock.Fake
	metrics *inmemory.Recorder
}

func newHarness(t *testing.T, kv *memory.Store, opts ...Option) *harness {
	t.Helper()
	if kv == nil {
		kv = memory.New()
	}
	h := &harness{kv: kv, clock: clock.NewFake(testStart), metrics: inmemory.NewRecorder()}
	base := []Option{
		WithClock(h.clock),
		WithMetrics(h.metrics),
		WithDecayInterval(time.Hour),
	}
	h.store = Open(context.Background(), kv, append(base, opts...)...)
	t.Cleanup(func() { h.store.Close() })
	return h
}

func (h *harness) onboard(t *testing.T) {
	t.Helper()
	if err := h.store.CompleteOnboarding("Bubbles", pet.GenderFemale, pet.AgeChild); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}
}

func (h *harness) flush(t *testing.T) {
	t.Helper()
	if err := h.store.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMutationsRequireOnboarding(t *testing.T) {
	h := newHarness(t, nil)
	s := h.store

	if s.Onboarded() {
		t.Fatal("Expected fresh store to need onboarding")
	}
	if s.Feed() || s.Clean() || s.Play() || s.Sleep() || s.GiveWater() {
		t.Error("Expected care actions to be refused before onboarding")
	}
	if s.BuyItem("hat_1") {
		t.Error("Expected purchase to be refused before onboarding")
	}
	if s.AddCoins(10) {
		t.Error("Expected AddCoins to be refused before onboarding")
	}
	s.Tick()
	if got := s.Snapshot().Stats; got != pet.InitialStats {
		t.Errorf("Expected decay to be idle before onboarding, got %+v", got)
	}

	h.flush(t)
	if keys := h.kv.Keys(); len(keys) != 0 {
		t.Errorf("Expected nothing persisted before onboarding, got %v", keys)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	tests := []struct {
		name    string
		pet     string
		gender  pet.Gender
		age     pet.Age
		wantErr error
	}{
		{"valid", "  Bubbles ", pet.GenderFemale, pet.AgeParent, nil},
		{"empty name", "   ", pet.GenderMale, pet.AgeChild, pet.ErrInvalidName},
		{"long name", "abcdefghijklmnopqrstu", pet.GenderMale, pet.AgeChild, pet.ErrInvalidName},
		{"bad gender", "Bubbles", pet.Gender("other"), pet.AgeChild, pet.ErrInvalidGender},
		{"bad age", "Bubbles", pet.GenderMale, pet.Age("teen"), pet.ErrInvalidAge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			err := h.store.CompleteOnboarding(tt.pet, tt.gender, tt.age)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				if h.store.Onboarded() {
					t.Error("Expected failed onboarding to leave the store empty")
				}
				return
			}
			p := h.store.Snapshot()
			if p.Name != "Bubbles" {
				t.Errorf("Expected trimmed name, got %q", p.Name)
			}
			if p.Stats != pet.InitialStats || p.Coins != pet.InitialCoins {
				t.Errorf("Expected initial stats and coins, got %+v / %d", p.Stats, p.Coins)
			}
			if p.ID == "" {
				t.Error("Expected an id to be assigned")
			}
			if !p.CreatedAt.Equal(testStart) {
				t.Errorf("Expected CreatedAt %v, got %v", testStart, p.CreatedAt)
			}
		})
	}
}

func TestCompleteOnboardingTwice(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)
	err := h.store.CompleteOnboarding("Other", pet.GenderMale, pet.AgeParent)
	if !errors.Is(err, ErrAlreadyOnboarded) {
		t.Fatalf("Expected ErrAlreadyOnboarded, got %v", err)
	}
	if got := h.store.Snapshot().Name; got != "Bubbles" {
		t.Errorf("Expected name to stay Bubbles, got %q", got)
	}
}

func TestFeedFromInitialState(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)

	h.clock.Advance(time.Minute)
	if !h.store.Feed() {
		t.Fatal("Expected feed to succeed")
	}
	p := h.store.Snapshot()
	want := pet.Stats{Health: 100, Satiety: 80, Happiness: 80, Cleanliness: 60, Energy: 85, Thirst: 25}
	if p.Stats != want {
		t.Errorf("Expected %+v, got %+v", want, p.Stats)
	}
	if p.Coins != 105 {
		t.Errorf("Expected 105 coins, got %d", p.Coins)
	}
	if p.Counters.Feed != 1 {
		t.Errorf("Expected feed count 1, got %d", p.Counters.Feed)
	}
	if !p.LastFed.Equal(testStart.Add(time.Minute)) {
		t.Errorf("Expected LastFed from the clock, got %v", p.LastFed)
	}

	h.flush(t)
	if v, _ := h.kv.Get(context.Background(), KeyCoins); v != "105" {
		t.Errorf("Expected persisted coins 105, got %q", v)
	}
	if v, _ := h.kv.Get(context.Background(), KeyFeedCount); v != "1" {
		t.Errorf("Expected persisted feed count 1, got %q", v)
	}
}

func TestPlayNeedsEnergy(t *testing.T) {
	kv := memory.New()
	seed(t, kv, map[string]string{
		KeyName:  "Bubbles",
		KeyStats: `{"health":100,"satiety":50,"happiness":70,"cleanliness":60,"energy":19.9,"thirst":30}`,
	})
	h := newHarness(t, kv)

	before := h.store.Snapshot()
	if h.store.Play() {
		t.Fatal("Expected play to be refused below the energy threshold")
	}
	after := h.store.Snapshot()
	if after.Stats != before.Stats || after.Counters != before.Counters || after.Coins != before.Coins {
		t.Errorf("Expected refused play to change nothing")
	}
	if got := h.metrics.Snapshot().ActionRejected; got != 1 {
		t.Errorf("Expected one rejected action, got %d", got)
	}

	if !h.store.Sleep() {
		t.Fatal("Expected sleep to succeed")
	}
	if !h.store.Play() {
		t.Error("Expected play to succeed after sleeping")
	}
}

func TestTick(t *testing.T) {
	kv := memory.New()
	seed(t, kv, map[string]string{
		KeyName:  "Bubbles",
		KeyStats: `{"thirst":20.1}`,
	})
	h := newHarness(t, kv)

	h.store.Tick()
	got := h.store.Snapshot().Stats
	if !approx(got.Thirst, 19.85) {
		t.Errorf("Expected thirst 19.85, got %v", got.Thirst)
	}
	if !approx(got.Health, 100-0.1-0.3) {
		t.Errorf("Expected dehydration health penalty, got %v", got.Health)
	}
	if !approx(got.Happiness, 70-0.1-0.2) {
		t.Errorf("Expected dehydration happiness penalty, got %v", got.Happiness)
	}

	snap := h.metrics.Snapshot()
	if snap.DecayTicks != 1 || snap.DehydratedTicks != 1 {
		t.Errorf("Expected one dehydrated tick, got %+v", snap)
	}
}

func TestDecaySchedulerRuns(t *testing.T) {
	h := newHarness(t, nil, WithDecayInterval(5*time.Millisecond))
	h.onboard(t)

	ch, cancel := h.store.Subscribe()
	defer cancel()

	deadline := time.After(2 * time.Second)
wait:
	for {
		select {
		case p := <-ch:
			if p.Stats.Satiety < pet.InitialStats.Satiety {
				break wait
			}
		case <-deadline:
			t.Fatal("Expected the scheduler to decay the pet")
		}
	}
	if err := h.store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	ticks := h.metrics.Snapshot().DecayTicks
	time.Sleep(30 * time.Millisecond)
	if got := h.metrics.Snapshot().DecayTicks; got != ticks {
		t.Errorf("Expected no ticks after Close, got %d more", got-ticks)
	}
}

func TestShop(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)
	s := h.store

	if !s.BuyItem("hat_1") {
		t.Fatal("Expected to afford hat_1")
	}
	p := s.Snapshot()
	if p.Coins != 50 {
		t.Errorf("Expected 50 coins left, got %d", p.Coins)
	}
	if !p.Unlocked["hat_1"] || p.Outfit[shop.CategoryHead] != "hat_1" {
		t.Errorf("Expected hat_1 unlocked and worn, got %v / %v", p.Unlocked, p.Outfit)
	}

	if s.BuyItem("hat_1") {
		t.Error("Expected buying an owned item to fail")
	}
	if s.BuyItem("hat_2") {
		t.Error("Expected purchase without enough coins to fail")
	}
	if s.BuyItem("ghost") {
		t.Error("Expected unknown item to fail")
	}
	if got := s.Snapshot().Coins; got != 50 {
		t.Errorf("Expected failed purchases to keep 50 coins, got %d", got)
	}

	if !s.AddCoins(100) {
		t.Fatal("Expected AddCoins to succeed")
	}
	if s.AddCoins(0) || s.AddCoins(-5) {
		t.Error("Expected non-positive credits to be ignored")
	}
	if !s.BuyItem("hat_2") {
		t.Fatal("Expected to afford hat_2")
	}
	if got := s.Snapshot().Outfit[shop.CategoryHead]; got != "hat_1" {
		t.Errorf("Expected occupied slot to keep hat_1, got %q", got)
	}

	if s.EquipItem("hat_3") {
		t.Error("Expected equipping a locked item to fail")
	}
	if !s.EquipItem("hat_2") {
		t.Fatal("Expected equipping hat_2 to succeed")
	}
	if got := s.Snapshot().Outfit[shop.CategoryHead]; got != "hat_2" {
		t.Errorf("Expected hat_2 worn, got %q", got)
	}

	s.UnequipItem(shop.CategoryHead)
	s.UnequipItem(shop.CategoryFeet)
	if _, worn := s.Snapshot().Outfit[shop.CategoryHead]; worn {
		t.Error("Expected head slot to be empty")
	}

	listings := s.AvailableItems()
	if len(listings) != shop.Default().Len() {
		t.Fatalf("Expected %d listings, got %d", shop.Default().Len(), len(listings))
	}
	owned := 0
	for _, l := range listings {
		if l.Unlocked {
			owned++
		}
	}
	if owned != 2 {
		t.Errorf("Expected 2 owned listings, got %d", owned)
	}
}

func TestCompleteGame(t *testing.T) {
	tests := []struct {
		name   string
		policy minigame.Policy
		id     minigame.ID
		res    minigame.Result
		want   bool
	}{
		{"positive score", minigame.PolicyPositiveScore, minigame.Memory, minigame.Result{Score: 100, Finished: true}, true},
		{"aborted positive score", minigame.PolicyPositiveScore, minigame.Bubble, minigame.Result{Score: 40}, true},
		{"zero score", minigame.PolicyPositiveScore, minigame.Dice, minigame.Result{Finished: true}, false},
		{"negative score", minigame.PolicyPositiveScore, minigame.Dice, minigame.Result{Score: -3, Finished: true}, false},
		{"unknown game", minigame.PolicyPositiveScore, minigame.ID("chess"), minigame.Result{Score: 10}, false},
		{"finished only accepts finished", minigame.PolicyFinishedOnly, minigame.Memory, minigame.Result{Score: 100, Finished: true}, true},
		{"finished only rejects aborted", minigame.PolicyFinishedOnly, minigame.Memory, minigame.Result{Score: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil, WithRewardPolicy(tt.policy))
			h.onboard(t)
			before := h.store.Snapshot()

			if got := h.store.CompleteGame(tt.id, tt.res); got != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			after := h.store.Snapshot()
			if !tt.want {
				if after.Stats != before.Stats || after.Coins != before.Coins || after.Counters.Games != 0 {
					t.Error("Expected a rejected game to change nothing")
				}
				return
			}
			def, _ := minigame.Lookup(tt.id)
			reward := def.RewardFor(tt.res.Score)
			if after.Coins != before.Coins+reward.Coins {
				t.Errorf("Expected %d coins, got %d", before.Coins+reward.Coins, after.Coins)
			}
			if !approx(after.Stats.Energy, before.Stats.Energy+reward.Energy) {
				t.Errorf("Expected energy %v, got %v", before.Stats.Energy+reward.Energy, after.Stats.Energy)
			}
			if after.Counters.Games != 1 {
				t.Errorf("Expected game count 1, got %d", after.Counters.Games)
			}
		})
	}
}

func TestCoinsSaturateAtMaxInt(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)

	if !h.store.AddCoins(math.MaxInt) {
		t.Fatal("Expected AddCoins to accept a positive amount")
	}
	if got := h.store.Snapshot().Coins; got != math.MaxInt {
		t.Fatalf("Expected coins capped at MaxInt, got %d", got)
	}
	if !h.store.Feed() {
		t.Fatal("Expected feed to succeed")
	}
	if got := h.store.Snapshot().Coins; got != math.MaxInt {
		t.Errorf("Expected feed to keep coins at MaxInt, got %d", got)
	}

	games := newHarness(t, nil)
	games.onboard(t)
	for i := 0; i < 25; i++ {
		games.store.CompleteGame(minigame.Bubble, minigame.Result{Score: math.MaxInt, Finished: true})
		if c := games.store.Snapshot().Coins; c < 0 {
			t.Fatalf("Coins went negative after %d games: %d", i+1, c)
		}
	}
	if got := games.store.Snapshot().Coins; got != math.MaxInt {
		t.Errorf("Expected game rewards to cap at MaxInt, got %d", got)
	}
	if !games.store.BuyItem("hat_1") {
		t.Error("Expected a capped balance to still buy items")
	}
}

func TestCanStartGame(t *testing.T) {
	h := newHarness(t, nil)
	if h.store.CanStartGame(minigame.Bubble) {
		t.Error("Expected games to be locked before onboarding")
	}
	h.onboard(t)
	if !h.store.CanStartGame(minigame.Bubble) {
		t.Error("Expected enough energy for a game")
	}
	if h.store.CanStartGame(minigame.ID("chess")) {
		t.Error("Expected unknown game to be refused")
	}
	for h.store.Snapshot().Stats.Energy >= minigame.DefaultEnergyCost {
		h.store.CompleteGame(minigame.Dice, minigame.Result{Score: 1, Finished: true})
	}
	if h.store.CanStartGame(minigame.Dice) {
		t.Error("Expected tired pet to be refused")
	}
}

func TestResetRemovesEverything(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)
	h.store.Feed()
	h.store.BuyItem("feet_2")
	h.store.CompleteGame(minigame.Memory, minigame.Result{Score: 20, Finished: true})
	h.flush(t)
	if got := len(h.kv.Keys()); got != len(AllKeys) {
		t.Fatalf("Expected %d keys persisted, got %d: %v", len(AllKeys), got, h.kv.Keys())
	}

	h.store.Reset()
	h.flush(t)
	if keys := h.kv.Keys(); len(keys) != 0 {
		t.Errorf("Expected reset to remove every key, left %v", keys)
	}
	if h.store.Onboarded() {
		t.Error("Expected reset to require onboarding again")
	}
	p := h.store.Snapshot()
	if p.Coins != pet.InitialCoins || len(p.Unlocked) != 0 || p.Counters != (pet.Counters{}) {
		t.Errorf("Expected initial pet after reset, got %+v", p)
	}
	if h.store.Feed() {
		t.Error("Expected actions to be refused after reset")
	}
}

func TestResetThenOnboardBeforeFlush(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)
	h.store.BuyItem("hat_1")

	h.store.Reset()
	if err := h.store.CompleteOnboarding("Second", pet.GenderMale, pet.AgeParent); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}
	h.flush(t)

	reopened := newHarness(t, h.kv)
	p := reopened.store.Snapshot()
	if p.Name != "Second" || p.Age != pet.AgeParent {
		t.Errorf("Expected the new hippo, got %s (%s)", p.Name, p.Age)
	}
	if len(p.Unlocked) != 0 || p.Coins != pet.InitialCoins {
		t.Errorf("Expected the old purchases to be gone, got %v / %d", p.Unlocked, p.Coins)
	}
}

func TestReopenRestoresState(t *testing.T) {
	kv := memory.New()
	h := newHarness(t, kv)
	h.onboard(t)
	h.store.GiveWater()
	h.store.BuyItem("upper_1")
	h.store.Tick()
	want := h.store.Snapshot()
	if err := h.store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	got := newHarness(t, kv).store.Snapshot()
	if got.ID != want.ID || got.Name != want.Name || got.Gender != want.Gender {
		t.Errorf("Expected identity %s/%s/%s, got %s/%s/%s", want.ID, want.Name, want.Gender, got.ID, got.Name, got.Gender)
	}
	if got.Stats != want.Stats {
		t.Errorf("Expected stats %+v, got %+v", want.Stats, got.Stats)
	}
	if got.Coins != want.Coins || got.Counters != want.Counters {
		t.Errorf("Expected coins %d and counters %+v, got %d and %+v", want.Coins, want.Counters, got.Coins, got.Counters)
	}
	if !got.Unlocked["upper_1"] || got.Outfit[shop.CategoryUpper] != "upper_1" {
		t.Errorf("Expected upper_1 owned and worn, got %v / %v", got.Unlocked, got.Outfit)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("Expected CreatedAt %v, got %v", want.CreatedAt, got.CreatedAt)
	}
}

// countingKV counts writes and can be told to fail them.
type countingKV struct {
	*memory.Store
	sets atomic.Int64
	fail atomic.Bool
}

var errBackend = errors.New("backend unavailable")

func (c *countingKV) Set(ctx context.Context, key, value string) error {
	if c.fail.Load() {
		return errBackend
	}
	c.sets.Add(1)
	return c.Store.Set(ctx, key, value)
}

func (c *countingKV) Remove(ctx context.Context, key string) error {
	if c.fail.Load() {
		return errBackend
	}
	return c.Store.Remove(ctx, key)
}

func TestWritesOnlyChangedKeys(t *testing.T) {
	kv := &countingKV{Store: memory.New()}
	m := inmemory.NewRecorder()
	s := Open(context.Background(), kv, WithMetrics(m), WithDecayInterval(time.Hour))
	defer s.Close()

	if err := s.CompleteOnboarding("Bubbles", pet.GenderMale, pet.AgeChild); err != nil {
		t.Fatalf("onboarding failed: %v", err)
	}
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if got := kv.sets.Load(); got != int64(len(AllKeys)) {
		t.Fatalf("Expected %d initial writes, got %d", len(AllKeys), got)
	}

	kv.sets.Store(0)
	s.Feed()
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	// stats, coins and the feed counter
	if got := kv.sets.Load(); got != 3 {
		t.Errorf("Expected 3 writes after feeding, got %d", got)
	}
}

func TestPersistFailuresAreCountedNotFatal(t *testing.T) {
	kv := &countingKV{Store: memory.New()}
	m := inmemory.NewRecorder()
	s := Open(context.Background(), kv, WithMetrics(m), WithDecayInterval(time.Hour))
	defer s.Close()

	kv.fail.Store(true)
	if err := s.CompleteOnboarding("Bubbles", pet.GenderMale, pet.AgeChild); err != nil {
		t.Fatalf("Expected onboarding to succeed in memory, got %v", err)
	}
	// The worker may have drained first, in which case Flush has nothing
	// left to report.
	if err := s.Flush(context.Background()); err != nil && !errors.Is(err, errBackend) {
		t.Fatalf("Expected only backend errors, got %v", err)
	}
	if !s.Feed() {
		t.Error("Expected actions to keep working while storage fails")
	}
	if got := m.Snapshot().FailuresByOp["set"]; got == 0 {
		t.Error("Expected set failures to be counted")
	}

	// Keys that failed are retried with the next snapshot.
	kv.fail.Store(false)
	s.Clean()
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if got := len(kv.Keys()); got != len(AllKeys) {
		t.Errorf("Expected %d keys after recovery, got %d", len(AllKeys), got)
	}
}

func TestSubscribe(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)

	ch, cancel := h.store.Subscribe()
	h.store.Feed()
	h.store.Clean()

	select {
	case p := <-ch:
		if p.Counters.Clean != 1 {
			t.Errorf("Expected latest snapshot after clean, got %+v", p.Counters)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a snapshot")
	}

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("Expected channel to be closed after cancel")
	}
}

func TestSubscribersGetOwnSnapshots(t *testing.T) {
	h := newHarness(t, nil)
	h.onboard(t)
	h.store.AddCoins(100)

	first, cancelFirst := h.store.Subscribe()
	defer cancelFirst()
	second, cancelSecond := h.store.Subscribe()
	defer cancelSecond()

	if !h.store.BuyItem("hat_1") {
		t.Fatal("Expected purchase to succeed")
	}
	a := <-first
	b := <-second
	a.Outfit[shop.CategoryHead] = "hat_2"
	a.Unlocked["hat_3"] = true

	if b.Outfit[shop.CategoryHead] != "hat_1" || b.Unlocked["hat_3"] {
		t.Error("Expected subscribers not to share outfit or unlocked maps")
	}
	h.flush(t)
	if v, _ := h.kv.Get(context.Background(), KeyOutfit); v != `{"head":"hat_1"}` {
		t.Errorf("Expected stored outfit to be unaffected, got %q", v)
	}
}

func TestCloseClosesSubscriptions(t *testing.T) {
	h := newHarness(t, nil)
	ch, _ := h.store.Subscribe()
	if err := h.store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := h.store.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("Expected subscription to be closed")
	}
}

func TestConcurrentActionsAndTicks(t *testing.T) {
	h := newHarness(t, nil, WithDecayInterval(time.Millisecond))
	h.onboard(t)

	const workers, perWorker = 8, 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				h.store.Feed()
				h.store.GiveWater()
				h.store.Tick()
			}
		}()
	}
	wg.Wait()

	p := h.store.Snapshot()
	if p.Counters.Feed != workers*perWorker || p.Counters.Water != workers*perWorker {
		t.Errorf("Expected %d feeds and waters, got %+v", workers*perWorker, p.Counters)
	}
	wantCoins := pet.InitialCoins + workers*perWorker*(pet.Effects[pet.ActionFeed].Coins+pet.Effects[pet.ActionWater].Coins)
	if p.Coins != wantCoins {
		t.Errorf("Expected %d coins, got %d", wantCoins, p.Coins)
	}
	for _, v := range []float64{p.Stats.Health, p.Stats.Satiety, p.Stats.Happiness, p.Stats.Cleanliness, p.Stats.Energy, p.Stats.Thirst} {
		if v < pet.MinStat || v > pet.MaxStat {
			t.Errorf("Expected stats within bounds, got %+v", p.Stats)
			break
		}
	}
}

func seed(t *testing.T, kv *memory.Store, values map[string]string) {
	t.Helper()
	for k, v := range values {
		if err := kv.Set(context.Background(), k, v); err != nil {
			t.Fatalf("seed %s: %v", k, err)
		}
	}
}
