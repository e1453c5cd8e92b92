package port

import (
	"errors"

	"campaign-sync/internal/core/domain"
)

// ErrCircuitOpen is returned when a platform's breaker rejects an attempt.
var ErrCircuitOpen = errors.New("circuit breaker open")

// BreakerPermit is handed out for one admitted sync attempt. Exactly one of
// its methods must be called when the attempt ends.
type BreakerPermit interface {
	RecordSuccess()
	RecordFailure()
}

// CircuitBreaker gates sync attempts against a single platform.
type CircuitBreaker interface {
	// CanExecute admits an attempt or returns ErrCircuitOpen.
	CanExecute() (BreakerPermit, error)
	State() string
}

// BreakerRegistry hands out the shared breaker of a platform.
type BreakerRegistry interface {
	Get(platform domain.Platform) CircuitBreaker
}
