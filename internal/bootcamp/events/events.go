// Package events publishes best-effort bootcamp lifecycle events. Downstream
// consumers (reporting dashboards, search indexers) subscribe to the topic;
// publishing failures never affect the originating use case.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"bootcamp-service/internal/bootcamp/models"
)

// Kafka publishes events to a Kafka topic using an async producer.
type Kafka struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafka connects to the brokers and ensures the topic exists. The caller
// owns Close.
func NewKafka(ctx context.Context, brokers []string, topic string, logger *slog.Logger) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	if _, err := admin.CreateTopic(ctx, 1, 1, nil, topic); err != nil {
		// Already-exists is fine; anything else is reported but not fatal,
		// brokers with auto-create still accept produces.
		logger.WarnContext(ctx, "ensure events topic", "topic", topic, "error", err)
	}

	return &Kafka{client: client, topic: topic, logger: logger}, nil
}

// Publish produces the event asynchronously. Delivery failures are logged,
// never returned: lifecycle events are telemetry.
func (k *Kafka) Publish(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(fmt.Sprintf("%d", event.BootcampID)),
		Value: payload,
	}
	// The produce is asynchronous and may still be queued when the caller's
	// context expires; delivery runs on its own lifetime.
	k.client.Produce(context.WithoutCancel(ctx), record, func(_ *kgo.Record, err error) {
		if err != nil {
			k.logger.Warn("lifecycle event delivery failed",
				"event_type", event.Type,
				"bootcamp_id", event.BootcampID,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes outstanding produces and releases the client.
func (k *Kafka) Close(ctx context.Context) error {
	if err := k.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush events: %w", err)
	}
	k.client.Close()
	return nil
}

// Memory collects events in-process; used in tests and when no brokers are
// configured.
type Memory struct {
	mu     sync.Mutex
	events []models.Event
}

// NewMemory constructs an empty in-memory publisher.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(ctx context.Context, event models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events returns a snapshot of everything published so far.
func (m *Memory) Events() []models.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Event, len(m.events))
	copy(out, m.events)
	return out
}
