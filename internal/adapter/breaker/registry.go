package breaker

import (
	"log/slog"
	"sync"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Registry owns one Breaker per platform. It is created by the composition
// root and passed to sync jobs; there is no package-level state.
type Registry struct {
	mu       sync.Mutex
	settings Settings
	logger   *slog.Logger
	breakers map[domain.Platform]*Breaker
}

var _ port.BreakerRegistry = (*Registry)(nil)

func NewRegistry(s Settings, logger *slog.Logger) *Registry {
	return &Registry{
		settings: s,
		logger:   logger,
		breakers: make(map[domain.Platform]*Breaker),
	}
}

// Get returns the shared breaker of platform, creating it on first use.
func (r *Registry) Get(platform domain.Platform) port.CircuitBreaker {
	return r.breaker(platform)
}

func (r *Registry) breaker(platform domain.Platform) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.breakers[platform]
	if !ok {
		b = New(platform, r.settings, r.logger)
		r.breakers[platform] = b
	}
	return b
}

// States returns the current state of every known breaker.
func (r *Registry) States() map[domain.Platform]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[domain.Platform]string, len(r.breakers))
	for p, b := range r.breakers {
		out[p] = b.State()
	}
	return out
}
