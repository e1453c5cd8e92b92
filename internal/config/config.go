package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"campaign-sync/internal/config/configs"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Store selects the entity repository: "postgres" or "memory". The
	// memory store is meant for local runs and demos; it is seeded in process
	// when PSQL_SEED is set.
	Store string `env:"STORE" envDefault:"postgres"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Breaker configs.Breaker  `envPrefix:"BREAKER_"`
	Reddit  configs.Reddit   `envPrefix:"REDDIT_"`
	Jobs    configs.Jobs     `envPrefix:"JOBS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return cfg, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	return cfg, nil
}
