package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-sync/internal/core/domain"
)

func progressEvent(jobID string, synced int) domain.ProgressEvent {
	return domain.ProgressEvent{
		Type:          domain.EventProgress,
		JobID:         jobID,
		CampaignSetID: "set-1",
		Timestamp:     time.Now().UTC(),
		Data:          domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: synced, Total: 10}},
	}
}

func collect(t *testing.T, ch <-chan domain.ProgressEvent) []domain.ProgressEvent {
	t.Helper()
	var got []domain.ProgressEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatalf("subscription not closed, received %d events", len(got))
		}
	}
}

func TestBus_DeliversInOrderAndClosesOnDone(t *testing.T) {
	bus := NewBus(nil, 0, 0)
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	ch, err := bus.Subscribe(ctx, "job-1")
	require.NoError(t, err)

	go func() {
		for i := 1; i <= 3; i++ {
			_ = bus.Publish(ctx, progressEvent("job-1", i))
		}
		_ = bus.Publish(ctx, domain.ProgressEvent{
			Type:  domain.EventCompleted,
			JobID: "job-1",
			Data:  domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: 3, Total: 3}},
		})
		_ = bus.Done(ctx, "job-1")
	}()

	got := collect(t, ch)
	require.Len(t, got, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.EventProgress, got[i].Type)
		assert.Equal(t, i+1, got[i].Data.Synced)
	}
	assert.Equal(t, domain.EventCompleted, got[3].Type)
	assert.Equal(t, 3, got[3].Data.Synced)
}

func TestBus_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewBus(nil, 0, 0)
	t.Cleanup(func() { _ = bus.Close() })

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = bus.Publish(context.Background(), progressEvent("nobody", i))
		}
		_ = bus.Done(context.Background(), "nobody")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked without subscribers")
	}
}

func TestBus_TopicsAreIsolatedPerJob(t *testing.T) {
	bus := NewBus(nil, 0, 0)
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	ch, err := bus.Subscribe(ctx, "job-a")
	require.NoError(t, err)

	go func() {
		_ = bus.Publish(ctx, progressEvent("job-b", 7))
		_ = bus.Done(ctx, "job-b")
		_ = bus.Publish(ctx, progressEvent("job-a", 1))
		_ = bus.Done(ctx, "job-a")
	}()

	got := collect(t, ch)
	require.Len(t, got, 1)
	assert.Equal(t, "job-a", got[0].JobID)
}

func TestBus_LaggingSubscriberKeepsTerminalEvent(t *testing.T) {
	bus := NewBus(nil, 1, 0)
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	ch, err := bus.Subscribe(ctx, "job-slow")
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, bus.Publish(ctx, progressEvent("job-slow", i)))
	}
	go func() {
		_ = bus.Publish(ctx, domain.ProgressEvent{
			Type:  domain.EventError,
			JobID: "job-slow",
			Data:  domain.ProgressData{Error: "circuit breaker open"},
		})
		_ = bus.Done(ctx, "job-slow")
	}()

	got := collect(t, ch)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Data.Synced)
	assert.Equal(t, domain.EventError, got[1].Type)
	assert.Equal(t, "circuit breaker open", got[1].Data.Error)
}

func TestBus_SubscriptionEndsWithContext(t *testing.T) {
	bus := NewBus(nil, 0, 0)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(ctx, "job-x")
	require.NoError(t, err)
	cancel()

	assert.Empty(t, collect(t, ch))
}

func TestBus_LateSubscriberReceivesTerminalEvent(t *testing.T) {
	bus := NewBus(nil, 0, 0)
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, progressEvent("job-late", 1)))
	require.NoError(t, bus.Publish(ctx, domain.ProgressEvent{
		Type:  domain.EventCompleted,
		JobID: "job-late",
		Data:  domain.ProgressData{SyncCounts: &domain.SyncCounts{Synced: 1, Total: 1}},
	}))
	require.NoError(t, bus.Done(ctx, "job-late"))

	ch, err := bus.Subscribe(ctx, "job-late")
	require.NoError(t, err)

	got := collect(t, ch)
	require.Len(t, got, 1)
	assert.Equal(t, domain.EventCompleted, got[0].Type)
	assert.Equal(t, 1, got[0].Data.Synced)
}

func TestBus_TerminalEventsExpire(t *testing.T) {
	bus := NewBus(nil, 0, time.Minute)
	t.Cleanup(func() { _ = bus.Close() })
	ctx := context.Background()

	now := time.Now()
	bus.now = func() time.Time { return now }
	require.NoError(t, bus.Publish(ctx, domain.ProgressEvent{Type: domain.EventError, JobID: "old"}))

	now = now.Add(2 * time.Minute)
	require.NoError(t, bus.Publish(ctx, domain.ProgressEvent{Type: domain.EventError, JobID: "new"}))

	bus.mu.Lock()
	_, oldKept := bus.terminal["old"]
	_, newKept := bus.terminal["new"]
	bus.mu.Unlock()
	assert.False(t, oldKept)
	assert.True(t, newKept)
}
