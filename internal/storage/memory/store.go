// Package memory provides an in-process storage backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"hippo/internal/storage/core"
)

// Store is a mutex guarded map. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

var _ core.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Driver() core.Driver { return core.DriverMemory }

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", core.ErrClosed
	}
	v, ok := s.data[key]
	if !ok {
		return "", core.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return core.ErrClosed
	}
	s.data[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return core.ErrClosed
	}
	delete(s.data, key)
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
