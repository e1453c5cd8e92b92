package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/port/mocks"
)

func newTestRunner(t *testing.T, cfg Config, handler port.SyncJobHandler) *Runner {
	t.Helper()
	return NewRunner(cfg, handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(t *testing.T, r *Runner) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitForStatus(t *testing.T, r *Runner, jobID string, want domain.JobStatus) domain.JobState {
	t.Helper()
	var st domain.JobState
	require.Eventually(t, func() bool {
		var err error
		st, err = r.State(jobID)
		return err == nil && st.Status == want
	}, 2*time.Second, 5*time.Millisecond)
	return st
}

func TestRunner_RunsJob(t *testing.T) {
	handler := mocks.NewMockSyncJobHandler(t)
	payload := domain.SyncJobPayload{CampaignSetID: uuid.New(), Platform: domain.PlatformReddit}
	result := &domain.SyncJobResult{Success: true, SetID: payload.CampaignSetID, Synced: 3}
	handler.EXPECT().Handle(mock.Anything, mock.AnythingOfType("string"), payload).Return(result, nil).Once()

	r := newTestRunner(t, Config{Workers: 1}, handler)
	serve(t, r)

	id, err := r.Enqueue(context.Background(), payload)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	st := waitForStatus(t, r, id, domain.JobSucceeded)
	require.NotNil(t, st.Result)
	assert.Equal(t, 3, st.Result.Synced)
	assert.NotNil(t, st.FinishedAt)
	assert.Empty(t, st.Error)
	assert.Equal(t, payload, st.Payload)
}

func TestRunner_PassesJobID(t *testing.T) {
	handler := mocks.NewMockSyncJobHandler(t)
	seen := make(chan string, 1)
	handler.EXPECT().Handle(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, jobID string, _ domain.SyncJobPayload) (*domain.SyncJobResult, error) {
			seen <- jobID
			return &domain.SyncJobResult{Success: true}, nil
		}).Once()

	r := newTestRunner(t, Config{Workers: 2}, handler)
	serve(t, r)

	id, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)

	select {
	case got := <-seen:
		assert.Equal(t, id, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not handled")
	}
}

func TestRunner_RecordsFatalError(t *testing.T) {
	handler := mocks.NewMockSyncJobHandler(t)
	handler.EXPECT().Handle(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, port.ErrCredentialUnavailable).Once()

	r := newTestRunner(t, Config{Workers: 1}, handler)
	serve(t, r)

	id, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)

	st := waitForStatus(t, r, id, domain.JobFailed)
	assert.Equal(t, port.ErrCredentialUnavailable.Error(), st.Error)
	assert.Nil(t, st.Result)
}

func TestRunner_SurvivesHandlerPanic(t *testing.T) {
	handler := mocks.NewMockSyncJobHandler(t)
	handler.EXPECT().Handle(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, domain.SyncJobPayload) (*domain.SyncJobResult, error) {
			panic("boom")
		}).Once()
	handler.EXPECT().Handle(mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SyncJobResult{Success: true}, nil).Once()

	r := newTestRunner(t, Config{Workers: 1}, handler)
	serve(t, r)

	first, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)
	st := waitForStatus(t, r, first, domain.JobFailed)
	assert.Contains(t, st.Error, "panicked")

	second, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)
	waitForStatus(t, r, second, domain.JobSucceeded)
}

func TestRunner_QueueFull(t *testing.T) {
	handler := mocks.NewMockSyncJobHandler(t)
	r := newTestRunner(t, Config{Workers: 1, QueueSize: 1}, handler)

	id, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)

	_, err = r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.ErrorIs(t, err, port.ErrQueueFull)

	st, err := r.State(id)
	require.NoError(t, err)
	assert.Equal(t, domain.JobQueued, st.Status)
}

func TestRunner_UnknownJob(t *testing.T) {
	r := newTestRunner(t, Config{}, mocks.NewMockSyncJobHandler(t))

	_, err := r.State("missing")
	require.True(t, errors.Is(err, port.ErrJobNotFound))
}

func TestRunner_PrunesFinishedJobs(t *testing.T) {
	r := newTestRunner(t, Config{Retention: time.Minute}, mocks.NewMockSyncJobHandler(t))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	old := now.Add(-2 * time.Minute)
	r.states["old"] = &domain.JobState{ID: "old", Status: domain.JobSucceeded, FinishedAt: &old}
	r.states["running"] = &domain.JobState{ID: "running", Status: domain.JobRunning}

	_, err := r.Enqueue(context.Background(), domain.SyncJobPayload{})
	require.NoError(t, err)

	_, err = r.State("old")
	require.ErrorIs(t, err, port.ErrJobNotFound)
	_, err = r.State("running")
	require.NoError(t, err)
}

func TestRunner_ServeStopsOnCancel(t *testing.T) {
	r := newTestRunner(t, Config{Workers: 3}, mocks.NewMockSyncJobHandler(t))
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Serve(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}
