package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"hippo/internal/storage/file"
	"hippo/internal/storage/memory"
	"hippo/internal/storage/postgres"
	"hippo/internal/storage/s3"
	"hippo/internal/storage/sqlite"
)

// Config selects and configures a backend.
type Config struct {
	Driver Driver   `toml:"driver"`
	Path   string   `toml:"path"` // file or sqlite location; a directory gets the default file name
	DSN    string   `toml:"dsn"`  // postgres connection string
	S3     S3Config `toml:"s3"`
}

// S3Config configures the s3 driver.
type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	Prefix    string `toml:"prefix"`
	PathStyle bool   `toml:"path_style"`
}

// Open builds the backend described by cfg. An empty driver means file.
func Open(ctx context.Context, cfg Config) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFile
	}
	switch driver {
	case DriverFile:
		return file.Open(resolvePath(cfg.Path, file.DefaultName))
	case DriverSQLite:
		return sqlite.Open(resolvePath(cfg.Path, sqlite.DefaultName))
	case DriverPostgres:
		return postgres.Open(ctx, cfg.DSN)
	case DriverS3:
		return s3.New(ctx, s3.ConfigFromEnv(s3.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Prefix:    cfg.S3.Prefix,
			PathStyle: cfg.S3.PathStyle,
		}))
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}

// resolvePath treats paths without an extension as directories.
func resolvePath(p, name string) string {
	if p == "" {
		return name
	}
	if filepath.Ext(p) == "" {
		return filepath.Join(p, name)
	}
	return p
}
