// Package events is the in-process progress event channel. Sync jobs publish
// onto a per-job topic; live streams subscribe by job id.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

const (
	topicPrefix = "sync.progress."

	metadataKind = "kind"
	kindEvent    = "event"
	kindDone     = "done"
)

// DefaultSubscriberBuffer is the number of events a slow subscriber may lag
// behind before progress events are dropped for it.
const DefaultSubscriberBuffer = 64

// DefaultTerminalRetention is how long a job's terminal event is replayed
// to late subscribers.
const DefaultTerminalRetention = time.Hour

// Bus publishes progress events over a watermill GoChannel. Publishing waits
// for subscriber pumps to take a message, which keeps per-job ordering; the
// pumps hand off to buffered channels, and with no subscribers Publish
// returns immediately. The terminal event of every job is kept for a while
// so that a subscriber arriving after it still receives it.
type Bus struct {
	pubsub    *gochannel.GoChannel
	logger    *slog.Logger
	buffer    int
	retention time.Duration
	now       func() time.Time

	// mu orders terminal publishes against Subscribe.
	mu       sync.Mutex
	terminal map[string]terminalEvent
}

type terminalEvent struct {
	event domain.ProgressEvent
	at    time.Time
}

var (
	_ port.EventPublisher  = (*Bus)(nil)
	_ port.EventSubscriber = (*Bus)(nil)
)

// NewBus creates a bus. buffer <= 0 selects DefaultSubscriberBuffer and
// retention <= 0 DefaultTerminalRetention.
func NewBus(logger *slog.Logger, buffer int, retention time.Duration) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	if retention <= 0 {
		retention = DefaultTerminalRetention
	}
	ps := gochannel.NewGoChannel(gochannel.Config{
		BlockPublishUntilSubscriberAck: true,
	}, watermill.NewSlogLoggerWithLevelMapping(logger, map[slog.Level]slog.Level{
		slog.LevelInfo: slog.LevelDebug,
	}))
	return &Bus{
		pubsub:    ps,
		logger:    logger,
		buffer:    buffer,
		retention: retention,
		now:       time.Now,
		terminal:  make(map[string]terminalEvent),
	}
}

func topic(jobID string) string {
	return topicPrefix + jobID
}

// Publish sends one event on the job's topic.
func (b *Bus) Publish(ctx context.Context, event domain.ProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode progress event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metadataKind, kindEvent)
	msg.SetContext(ctx)
	if !event.Type.Terminal() {
		return b.pubsub.Publish(topic(event.JobID), msg)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	for id, t := range b.terminal {
		if now.Sub(t.at) > b.retention {
			delete(b.terminal, id)
		}
	}
	b.terminal[event.JobID] = terminalEvent{event: event, at: now}
	return b.pubsub.Publish(topic(event.JobID), msg)
}

// Done sends the end-of-job signal. Subscribers close their channels on it.
func (b *Bus) Done(ctx context.Context, jobID string) error {
	msg := message.NewMessage(watermill.NewUUID(), nil)
	msg.Metadata.Set(metadataKind, kindDone)
	msg.SetContext(ctx)
	return b.pubsub.Publish(topic(jobID), msg)
}

// Subscribe returns the job's events in publication order. The channel is
// closed after the done signal or when ctx is cancelled. Progress events
// are dropped while the subscriber's buffer is full; terminal events are
// always delivered unless ctx ends first. A job whose terminal event was
// already published yields just that event on a closed channel.
func (b *Bus) Subscribe(ctx context.Context, jobID string) (<-chan domain.ProgressEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.terminal[jobID]; ok {
		out := make(chan domain.ProgressEvent, 1)
		out <- t.event
		close(out)
		return out, nil
	}

	// Cancelling the subscription context unsubscribes from the GoChannel
	// once the pump is finished, so later publishes never wait on it.
	subCtx, cancel := context.WithCancel(ctx)
	msgs, err := b.pubsub.Subscribe(subCtx, topic(jobID))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe to job %s: %w", jobID, err)
	}
	out := make(chan domain.ProgressEvent, b.buffer)
	go func() {
		defer cancel()
		b.pump(subCtx, jobID, msgs, out)
	}()
	return out, nil
}

func (b *Bus) pump(ctx context.Context, jobID string, msgs <-chan *message.Message, out chan<- domain.ProgressEvent) {
	defer close(out)
	for msg := range msgs {
		if msg.Metadata.Get(metadataKind) == kindDone {
			msg.Ack()
			return
		}

		var ev domain.ProgressEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			b.logger.Warn("drop undecodable progress event", slog.String("job_id", jobID), slog.Any("error", err))
			msg.Ack()
			continue
		}

		if ev.Type.Terminal() {
			select {
			case out <- ev:
			case <-ctx.Done():
				msg.Ack()
				return
			}
		} else {
			select {
			case out <- ev:
			default:
				b.logger.Debug("subscriber lagging, progress event dropped", slog.String("job_id", jobID))
			}
		}
		msg.Ack()
	}
}

// Close stops the bus and closes all subscriptions.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
