package port

import (
	"context"
	"errors"

	"campaign-sync/internal/core/domain"
)

var (
	// ErrAccountNotOwned is returned when the ad account or campaign set of a
	// job does not belong to the requesting user.
	ErrAccountNotOwned = errors.New("ad account does not belong to user")
	// ErrJobNotFound is returned for unknown job ids.
	ErrJobNotFound = errors.New("job not found")
	// ErrQueueFull is returned when the runner cannot accept more jobs.
	ErrQueueFull = errors.New("job queue full")
)

// SyncJobHandler runs one sync job to completion. Fatal preconditions are
// returned as errors; entity-level failures are part of the result.
type SyncJobHandler interface {
	Handle(ctx context.Context, jobID string, payload domain.SyncJobPayload) (*domain.SyncJobResult, error)
}

// JobRunner schedules sync jobs asynchronously. It is the primary port used
// by the HTTP layer.
type JobRunner interface {
	Enqueue(ctx context.Context, payload domain.SyncJobPayload) (string, error)
	State(jobID string) (domain.JobState, error)
}
