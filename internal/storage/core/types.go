// Package core defines the key/value contract shared by all storage
// backends.
package core

import (
	"context"
	"errors"
)

// Driver identifies a concrete storage backend implementation.
type Driver string

const (
	// DriverMemory keeps values in process memory (tests).
	DriverMemory Driver = "memory"
	// DriverFile stores all keys in one TOML file (default).
	DriverFile Driver = "file"
	// DriverSQLite stores keys in a local SQLite table.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres stores keys in a Postgres table through gorm.
	DriverPostgres Driver = "postgres"
	// DriverS3 stores one object per key in an S3 / MinIO bucket.
	DriverS3 Driver = "s3"
)

// Store is a string-keyed, string-valued persistent map.
type Store interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	Close() error
	Driver() Driver
}

// ErrNotFound is returned by Get for absent keys.
var ErrNotFound = errors.New("storage: key not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store closed")
