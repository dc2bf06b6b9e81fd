package store

import (
	"time"

	"hippo/internal/clock"
	"hippo/internal/minigame"
	"hippo/internal/shop"
)

// DefaultDecayInterval is the passive decay period.
const DefaultDecayInterval = 30 * time.Second

// Metrics receives store events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	RecordAction(action string, ok bool)
	RecordDecayTick(dehydrated bool)
	RecordPersistFailure(op string)
}

type nopMetrics struct{}

func (nopMetrics) RecordAction(string, bool)   {}
func (nopMetrics) RecordDecayTick(bool)        {}
func (nopMetrics) RecordPersistFailure(string) {}

type options struct {
	clock         clock.Clock
	decayInterval time.Duration
	metrics       Metrics
	policy        minigame.Policy
	catalog       *shop.Catalog
}

func defaultOptions() options {
	return options{
		clock:         clock.RealClock{},
		decayInterval: DefaultDecayInterval,
		metrics:       nopMetrics{},
		policy:        minigame.PolicyPositiveScore,
		catalog:       shop.Default(),
	}
}

// Option configures a Store.
type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithDecayInterval sets the decay period. Non-positive values are ignored.
func WithDecayInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.decayInterval = d
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithRewardPolicy decides which mini-game results are rewarded.
func WithRewardPolicy(p minigame.Policy) Option {
	return func(o *options) {
		if p != "" {
			o.policy = p
		}
	}
}

func WithCatalog(c *shop.Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}
