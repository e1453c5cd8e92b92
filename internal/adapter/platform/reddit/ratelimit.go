package reddit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	HeaderRateRemaining = "X-Ratelimit-Remaining"
	HeaderRateReset     = "X-Ratelimit-Reset" // seconds until the window resets
	HeaderRetryAfter    = "Retry-After"       // seconds
)

// RateLimiter combines proactive throttling with the quota the platform
// reports in response headers.
type RateLimiter struct {
	mu        sync.Mutex
	remaining float64
	resetAt   time.Time
	bucket    *rate.Limiter
	now       func() time.Time
}

// NewRateLimiter allows rps requests per second with a burst of one.
// rps <= 0 disables proactive throttling.
func NewRateLimiter(rps float64) *RateLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &RateLimiter{
		remaining: -1,
		bucket:    rate.NewLimiter(limit, 1),
		now:       time.Now,
	}
}

// Wait blocks until a request may be sent. A wait that cannot finish
// before the context's deadline fails with context.DeadlineExceeded.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		// The limiter refuses up front when the token would arrive after
		// the deadline.
		return fmt.Errorf("rate limit wait: %w: %w", context.DeadlineExceeded, err)
	}

	r.mu.Lock()
	exhausted := r.remaining == 0
	wait := r.resetAt.Sub(r.now())
	r.mu.Unlock()

	if !exhausted || wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Observe records quota headers of a response. It returns the advisory
// delay before retrying, zero when the response carries none.
func (r *RateLimiter) Observe(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if v := resp.Header.Get(HeaderRateRemaining); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			r.remaining = f
		}
	}
	var reset time.Duration
	if v := resp.Header.Get(HeaderRateReset); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			reset = time.Duration(f * float64(time.Second))
			r.resetAt = now.Add(reset)
		}
	}

	retryAfter := parseRetryAfter(resp.Header.Get(HeaderRetryAfter), now)
	if resp.StatusCode == http.StatusTooManyRequests {
		if retryAfter == 0 {
			retryAfter = reset
		}
		r.remaining = 0
		if until := now.Add(retryAfter); until.After(r.resetAt) {
			r.resetAt = until
		}
	}
	return retryAfter
}

func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
