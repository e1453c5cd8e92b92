package port

import (
	"context"

	"campaign-sync/internal/core/domain"
)

// ProgressSink receives cumulative counts from the orchestrator as it walks
// a hierarchy. Implementations must not block for long.
type ProgressSink interface {
	Progress(counts domain.SyncCounts)
}

// ProgressSinkFunc adapts a function to ProgressSink.
type ProgressSinkFunc func(counts domain.SyncCounts)

func (f ProgressSinkFunc) Progress(counts domain.SyncCounts) { f(counts) }

// EventPublisher is the publishing side of the progress event channel.
// Publish must never block on subscriber presence. Done is the end-of-job
// signal and is sent exactly once per job.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ProgressEvent) error
	Done(ctx context.Context, jobID string) error
}

// EventSubscriber is the consuming side of the progress event channel. The
// returned channel is closed after the job's done signal or when ctx ends.
type EventSubscriber interface {
	Subscribe(ctx context.Context, jobID string) (<-chan domain.ProgressEvent, error)
}
