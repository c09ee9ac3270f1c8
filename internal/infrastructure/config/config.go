package config

import (
	"time"

	"github.com/caarlos0/env"
)

// Config holds the runtime settings of the linking service, read from the
// environment. Durations come in as plain integers so the variables stay easy
// to set from compose files and task definitions.
type Config struct {
	Address string `env:"ADDRESS" envDefault:":8080"`

	// LinkLockTimeoutMs bounds how long a link attempt waits for a busy
	// bill before giving up with a lock_timeout outcome.
	LinkLockTimeoutMs int `env:"LINK_LOCK_TIMEOUT_MS" envDefault:"3000"`

	// ReconcileIntervalSec is the period of the background counter
	// reconciliation pass. Zero disables the worker.
	ReconcileIntervalSec int `env:"RECONCILE_INTERVAL_SECONDS" envDefault:"300"`

	// DashboardCacheTTLSec caps how stale a cached bill snapshot may get.
	DashboardCacheTTLSec int `env:"DASHBOARD_CACHE_TTL_SECONDS" envDefault:"15"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) LinkLockTimeout() time.Duration {
	return time.Duration(c.LinkLockTimeoutMs) * time.Millisecond
}

func (c Config) ReconcileInterval() time.Duration {
	return time.Duration(c.ReconcileIntervalSec) * time.Second
}

func (c Config) DashboardCacheTTL() time.Duration {
	return time.Duration(c.DashboardCacheTTLSec) * time.Second
}
