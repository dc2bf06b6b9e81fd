// Package storage re-exports the key/value contract and picks a backend.
package storage

import (
	"hippo/internal/storage/core"
)

type (
	// Driver identifies a storage backend.
	Driver = core.Driver
	// Store is the interface for key/value backends.
	Store = core.Store
)

const (
	DriverMemory   = core.DriverMemory
	DriverFile     = core.DriverFile
	DriverSQLite   = core.DriverSQLite
	DriverPostgres = core.DriverPostgres
	DriverS3       = core.DriverS3
)

var (
	// ErrNotFound is returned by Get for absent keys.
	ErrNotFound = core.ErrNotFound
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = core.ErrClosed
)

// Drivers lists every supported backend.
var Drivers = []Driver{DriverFile, DriverSQLite, DriverPostgres, DriverS3, DriverMemory}
