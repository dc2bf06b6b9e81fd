// Package file stores every key in a single TOML document on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"hippo/internal/storage/core"
)

// DefaultName is the file name used when only a directory is configured.
const DefaultName = "hippo.toml"

// Store keeps the document in memory and rewrites the file on every change.
type Store struct {
	mu     sync.Mutex
	path   string
	data   map[string]string
	closed bool
}

var _ core.Store = (*Store)(nil)

// Open reads path if it exists. A missing file is an empty store; the file
// and its directory are created on the first write.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: path required")
	}
	s := &Store{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Driver() core.Driver { return core.DriverFile }

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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
	prev, had := s.data[key]
	s.data[key] = value
	if err := s.writeLocked(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return core.ErrClosed
	}
	prev, had := s.data[key]
	if !had {
		return nil
	}
	delete(s.data, key)
	if err := s.writeLocked(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// writeLocked replaces the file atomically via a temp file in the same
// directory.
func (s *Store) writeLocked() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".hippo-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
