// Package jobs runs sync jobs on a bounded in-process worker pool that is
// supervised as a suture service.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thejerf/suture/v4"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Config sizes the worker pool.
type Config struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
	// Retention is how long finished job states stay queryable.
	Retention time.Duration
}

type job struct {
	id      string
	payload domain.SyncJobPayload
}

// Runner queues sync jobs and executes them with a fixed number of
// workers. Jobs are not retried; resubmission is up to the caller.
type Runner struct {
	cfg     Config
	handler port.SyncJobHandler
	logger  *slog.Logger
	queue   chan job
	now     func() time.Time

	mu     sync.RWMutex
	states map[string]*domain.JobState
}

var (
	_ port.JobRunner = (*Runner)(nil)
	_ suture.Service = (*Runner)(nil)
)

func NewRunner(cfg Config, handler port.SyncJobHandler, logger *slog.Logger) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Minute
	}
	if cfg.Retention <= 0 {
		cfg.Retention = time.Hour
	}
	return &Runner{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		queue:   make(chan job, cfg.QueueSize),
		now:     time.Now,
		states:  make(map[string]*domain.JobState),
	}
}

// Enqueue registers a job and hands it to the pool. It never blocks; a full
// queue is reported as port.ErrQueueFull.
func (r *Runner) Enqueue(_ context.Context, payload domain.SyncJobPayload) (string, error) {
	j := job{id: uuid.NewString(), payload: payload}

	r.mu.Lock()
	r.pruneLocked()
	r.states[j.id] = &domain.JobState{
		ID:         j.id,
		Payload:    payload,
		Status:     domain.JobQueued,
		EnqueuedAt: r.now(),
	}
	r.mu.Unlock()

	select {
	case r.queue <- j:
		r.logger.Info("sync job queued",
			slog.String("job_id", j.id),
			slog.String("set_id", payload.CampaignSetID.String()),
		)
		return j.id, nil
	default:
		r.mu.Lock()
		delete(r.states, j.id)
		r.mu.Unlock()
		return "", port.ErrQueueFull
	}
}

// State returns a snapshot of a job.
func (r *Runner) State(jobID string) (domain.JobState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.states[jobID]
	if !ok {
		return domain.JobState{}, fmt.Errorf("job %s: %w", jobID, port.ErrJobNotFound)
	}
	out := *st
	if st.Result != nil {
		res := *st.Result
		out.Result = &res
	}
	return out, nil
}

// Serve runs the workers until ctx is cancelled. Jobs already picked up
// finish with their own timeout.
func (r *Runner) Serve(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r.work(ctx, worker)
		}(i)
	}
	wg.Wait()
	return ctx.Err()
}

func (r *Runner) String() string {
	return "sync-job-runner"
}

func (r *Runner) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-r.queue:
			r.run(ctx, worker, j)
		}
	}
}

func (r *Runner) run(ctx context.Context, worker int, j job) {
	log := r.logger.With(slog.String("job_id", j.id), slog.Int("worker", worker))
	r.update(j.id, func(st *domain.JobState) { st.Status = domain.JobRunning })

	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.JobTimeout)
	defer cancel()

	res, err := r.handle(jobCtx, j)
	finished := r.now()
	r.update(j.id, func(st *domain.JobState) {
		st.FinishedAt = &finished
		if err != nil {
			st.Status = domain.JobFailed
			st.Error = err.Error()
			return
		}
		st.Status = domain.JobSucceeded
		st.Result = res
	})
	if err != nil {
		log.Warn("sync job failed", slog.Any("error", err))
		return
	}
	log.Debug("sync job finished")
}

// handle shields the pool from handler panics.
func (r *Runner) handle(ctx context.Context, j job) (res *domain.SyncJobResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sync job panicked: %v", p)
		}
	}()
	return r.handler.Handle(ctx, j.id, j.payload)
}

func (r *Runner) update(jobID string, fn func(*domain.JobState)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.states[jobID]; ok {
		fn(st)
	}
}

func (r *Runner) pruneLocked() {
	cutoff := r.now().Add(-r.cfg.Retention)
	for id, st := range r.states {
		if st.FinishedAt != nil && st.FinishedAt.Before(cutoff) {
			delete(r.states, id)
		}
	}
}
