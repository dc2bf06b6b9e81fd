// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"hippo/internal/storage/core"
)

// Run exercises the core.Store contract against stores built by open.
// Each subtest gets a fresh store.
func Run(t *testing.T, open func(t *testing.T) core.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		if _, err := s.Get(ctx, "hippoName"); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		s := open(t)
		if err := s.Set(ctx, "hippoName", "Gloria"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "hippoName")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != "Gloria" {
			t.Fatalf("expected Gloria, got %q", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		s := open(t)
		_ = s.Set(ctx, "hippoCoins", "100")
		if err := s.Set(ctx, "hippoCoins", "105"); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		got, _ := s.Get(ctx, "hippoCoins")
		if got != "105" {
			t.Fatalf("expected 105, got %q", got)
		}
	})

	t.Run("json value survives", func(t *testing.T) {
		s := open(t)
		v := `{"health":99.9,"satiety":80,"note":"a \"quoted\" = value"}`
		if err := s.Set(ctx, "hippoStats", v); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "hippoStats")
		if err != nil || got != v {
			t.Fatalf("expected %q, got %q (%v)", v, got, err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := open(t)
		_ = s.Set(ctx, "hasCreatedHippo", "true")
		if err := s.Remove(ctx, "hasCreatedHippo"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if _, err := s.Get(ctx, "hasCreatedHippo"); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after remove, got %v", err)
		}
	})

	t.Run("remove missing key", func(t *testing.T) {
		s := open(t)
		if err := s.Remove(ctx, "neverSet"); err != nil {
			t.Fatalf("removing an absent key should succeed, got %v", err)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := open(t)
		_ = s.Set(ctx, "hippoFeedCount", "3")
		_ = s.Set(ctx, "hippoCleanCount", "4")
		_ = s.Remove(ctx, "hippoFeedCount")
		got, err := s.Get(ctx, "hippoCleanCount")
		if err != nil || got != "4" {
			t.Fatalf("expected 4, got %q (%v)", got, err)
		}
	})
}
