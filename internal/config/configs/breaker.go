package configs

import "time"

// Breaker configures the per-platform circuit breakers. Threshold
// consecutive failed sync attempts open a circuit; after Cooldown a single
// probe attempt is let through.
type Breaker struct {
	Threshold uint32        `env:"THRESHOLD" envDefault:"5"`
	Cooldown  time.Duration `env:"COOLDOWN" envDefault:"1m"`
}
