package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/tracing"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const TopicReminderTriggered = "reminder.triggered"

// ReminderTriggeredEvent is emitted once per reminder handled by a fire.
type ReminderTriggeredEvent struct {
	ReminderID    string     `json:"reminder_id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	DueTime       time.Time  `json:"due_time"`
	FiredAt       time.Time  `json:"fired_at"`
	NextTime      *time.Time `json:"next_time,omitempty"`
	DeliveryError string     `json:"delivery_error,omitempty"`
}

type Publisher interface {
	PublishReminderTriggered(ctx context.Context, event ReminderTriggeredEvent) error
	io.Closer
}

// WatermillPublisher adapts any watermill publisher to Publisher.
type WatermillPublisher struct {
	publisher message.Publisher
}

func NewWatermillPublisher(publisher message.Publisher) *WatermillPublisher {
	return &WatermillPublisher{publisher: publisher}
}

func (p *WatermillPublisher) PublishReminderTriggered(ctx context.Context, event ReminderTriggeredEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", TopicReminderTriggered)
	msg.Metadata.Set("reminder_id", event.ReminderID)
	msg.Metadata.Set("user_id", event.UserID)
	tracing.InjectToMap(ctx, msg.Metadata)

	if err := p.publisher.Publish(TopicReminderTriggered, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish reminder triggered event",
			slog.String("event", "pubsub.publish.fail"),
			slog.String("reminder_id", event.ReminderID),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published reminder triggered event",
		slog.String("event", "pubsub.publish"),
		slog.String("reminder_id", event.ReminderID),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}
