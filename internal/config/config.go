// Package config loads the hippo configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hippo/internal/minigame"
	"hippo/internal/storage"
)

// Metrics backends
const (
	MetricsMemory     = "memory"
	MetricsPrometheus = "prometheus"
	MetricsOff        = "off"
)

const (
	DefaultDecayIntervalSeconds = 30
	FileName                    = "config.toml"
	LogFileName                 = "hippo.log"
)

type Config struct {
	Storage              storage.Config `toml:"storage"`
	DecayIntervalSeconds int            `toml:"decay_interval_seconds"`
	RewardPolicy         string         `toml:"reward_policy"`
	Metrics              string         `toml:"metrics"`
}

// Dir returns ~/.config/hippo.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hippo"), nil
}

// DefaultPath returns the config file location under Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

func Default() Config {
	cfg := Config{
		Storage:              storage.Config{Driver: storage.DriverFile},
		DecayIntervalSeconds: DefaultDecayIntervalSeconds,
		RewardPolicy:         string(minigame.PolicyPositiveScore),
		Metrics:              MetricsMemory,
	}
	if dir, err := Dir(); err == nil {
		cfg.Storage.Path = dir
	}
	return cfg
}

// Load reads path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from HIPPO_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strEnv("HIPPO_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = storage.Driver(strings.ToLower(v))
	}
	if v := strEnv("HIPPO_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := strEnv("HIPPO_STORAGE_DSN"); v != "" {
		c.Storage.DSN = v
	}
	if v := strEnv("HIPPO_S3_BUCKET"); v != "" {
		c.Storage.S3.Bucket = v
	}
	if v := strEnv("HIPPO_S3_REGION"); v != "" {
		c.Storage.S3.Region = v
	}
	if v := strEnv("HIPPO_S3_ENDPOINT"); v != "" {
		c.Storage.S3.Endpoint = v
	}
	if v := strEnv("HIPPO_S3_PREFIX"); v != "" {
		c.Storage.S3.Prefix = v
	}
	c.Storage.S3.PathStyle = boolEnv("HIPPO_S3_PATH_STYLE", c.Storage.S3.PathStyle)
	c.DecayIntervalSeconds = intEnv("HIPPO_DECAY_SECONDS", c.DecayIntervalSeconds)
	if v := strEnv("HIPPO_REWARD_POLICY"); v != "" {
		c.RewardPolicy = v
	}
	if v := strEnv("HIPPO_METRICS"); v != "" {
		c.Metrics = strings.ToLower(v)
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.DecayIntervalSeconds <= 0 {
		return fmt.Errorf("decay_interval_seconds must be positive, got %d", c.DecayIntervalSeconds)
	}
	if _, err := minigame.ParsePolicy(c.RewardPolicy); err != nil {
		return err
	}
	switch c.Metrics {
	case "", MetricsMemory, MetricsPrometheus, MetricsOff:
	default:
		return fmt.Errorf("unknown metrics backend %q", c.Metrics)
	}

	driver := c.Storage.Driver
	if driver == "" {
		driver = storage.DriverFile
	}
	known := false
	for _, d := range storage.Drivers {
		if d == driver {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown storage driver %q", driver)
	}
	if driver == storage.DriverPostgres && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required for the postgres driver")
	}
	if driver == storage.DriverS3 && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("storage.s3.bucket is required for the s3 driver")
	}
	return nil
}

// DecayInterval returns the decay tick period.
func (c Config) DecayInterval() time.Duration {
	return time.Duration(c.DecayIntervalSeconds) * time.Second
}

// Policy returns the parsed reward policy, falling back to the default.
func (c Config) Policy() minigame.Policy {
	p, err := minigame.ParsePolicy(c.RewardPolicy)
	if err != nil {
		return minigame.PolicyPositiveScore
	}
	return p
}

func strEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func intEnv(key string, fallback int) int {
	v := strEnv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := strEnv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
