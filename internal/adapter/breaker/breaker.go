// Package breaker implements per-platform circuit breaking for sync
// attempts on top of sony/gobreaker's two-step breaker.
package breaker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"
)

// Settings configure a breaker. Threshold consecutive failed attempts open
// the circuit; after Cooldown one probe attempt is admitted.
type Settings struct {
	Threshold uint32
	Cooldown  time.Duration
}

// errAttemptFailed is reported to gobreaker for failed attempts. The sync
// engine's failures are data, so the breaker only needs a non-nil error.
var errAttemptFailed = errors.New("sync attempt failed")

// Breaker gates sync attempts against one platform. It is safe for
// concurrent use by jobs sharing the platform.
type Breaker struct {
	platform domain.Platform
	cb       *gobreaker.TwoStepCircuitBreaker[struct{}]
}

var _ port.CircuitBreaker = (*Breaker)(nil)

// New returns a closed breaker for platform.
func New(platform domain.Platform, s Settings, logger *slog.Logger) *Breaker {
	if s.Threshold == 0 {
		s.Threshold = 5
	}
	if s.Cooldown <= 0 {
		s.Cooldown = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	name := string(platform)
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewTwoStepCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1, // a single probe while half-open
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.Threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("platform", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
	return &Breaker{platform: platform, cb: cb}
}

// CanExecute admits one sync attempt. While the circuit is open, or while
// the half-open probe is in flight, it returns port.ErrCircuitOpen.
func (b *Breaker) CanExecute() (port.BreakerPermit, error) {
	done, err := b.cb.Allow()
	if err != nil {
		metrics.CircuitBreakerRejections.WithLabelValues(string(b.platform)).Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w", b.platform, port.ErrCircuitOpen)
		}
		return nil, err
	}
	return &permit{done: done}, nil
}

// State returns closed, half-open or open.
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Counts exposes the underlying counters for diagnostics.
func (b *Breaker) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

// permit reports the outcome of one admitted attempt. Only the first
// Record call counts.
type permit struct {
	once sync.Once
	done func(error)
}

func (p *permit) RecordSuccess() {
	p.once.Do(func() { p.done(nil) })
}

func (p *permit) RecordFailure() {
	p.once.Do(func() { p.done(errAttemptFailed) })
}

// RecordOutcome reports a sync result to the breaker. An attempt counts as a
// success if at least one entity synced and as a failure only when nothing
// synced and something failed, so one bad entity never trips the circuit.
// A pass that neither synced nor failed anything is no evidence of an outage
// and is recorded as a success.
func RecordOutcome(p port.BreakerPermit, result domain.SyncResult) {
	if result.Synced == 0 && result.Failed > 0 {
		p.RecordFailure()
		return
	}
	p.RecordSuccess()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
