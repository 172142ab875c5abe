package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/metrics"
)

// Trigger processes the reminders due at a fired time: deliver, then delete
// one-shot reminders or move repeating ones to their next occurrence.
type Trigger struct {
	repo       domain.DueSetRepository
	dispatcher notify.Dispatcher
	publisher  pubsub.Publisher
	metrics    *metrics.SchedulerMetrics
	now        func() time.Time
}

// NewTrigger accepts a nil publisher; events are then not emitted.
func NewTrigger(
	repo domain.DueSetRepository,
	dispatcher notify.Dispatcher,
	publisher pubsub.Publisher,
	m *metrics.SchedulerMetrics,
) *Trigger {
	return &Trigger{
		repo:       repo,
		dispatcher: dispatcher,
		publisher:  publisher,
		metrics:    m,
		now:        time.Now,
	}
}

// WithClock replaces time.Now.
func (t *Trigger) WithClock(now func() time.Time) *Trigger {
	t.now = now

	return t
}

// Handle never stops at a failing reminder; every failure is joined into
// the returned error.
func (t *Trigger) Handle(ctx context.Context, at time.Time) error {
	due, err := t.repo.RemindersDueAt(ctx, at)
	if err != nil {
		return fmt.Errorf("load reminders due at %s: %w", at.Format(time.RFC3339), err)
	}

	slog.InfoContext(ctx, "handling due reminders",
		slog.String("event", "trigger.start"),
		slog.Time("due_time", at),
		slog.Int("count", len(due)),
	)

	var errs []error

	for _, r := range due {
		if err := t.handleOne(ctx, r, at); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t *Trigger) handleOne(ctx context.Context, r domain.DueReminder, at time.Time) error {
	event := pubsub.ReminderTriggeredEvent{
		ReminderID: r.ID.String(),
		UserID:     r.UserID.String(),
		Title:      r.Title,
		DueTime:    at,
		FiredAt:    t.now().UTC(),
	}

	outcome := "delivered"

	if err := t.dispatcher.Send(ctx, r.Title, r.Text, r.TargetURLs); err != nil {
		outcome = "delivery_failed"
		event.DeliveryError = err.Error()

		slog.WarnContext(ctx, "reminder delivery failed",
			slog.String("event", "trigger.deliver.fail"),
			slog.String("reminder_id", r.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	var stateErr error

	if r.Repeat.IsRepeating() {
		next := domain.NextTime(r.OriginalTime, r.Repeat, latest(t.now(), at))
		event.NextTime = &next

		if err := t.repo.SetDueTime(ctx, r.ID, next); err != nil {
			stateErr = fmt.Errorf("reschedule reminder %s: %w", r.ID.String(), err)
		}
	} else if err := t.repo.Delete(ctx, r.ID); err != nil {
		stateErr = fmt.Errorf("delete reminder %s: %w", r.ID.String(), err)
	}

	if stateErr != nil {
		outcome = "state_failed"

		slog.ErrorContext(ctx, "failed to update fired reminder",
			slog.String("event", "trigger.state.fail"),
			slog.String("reminder_id", r.ID.String()),
			slog.String("error", stateErr.Error()),
		)
	}

	if t.metrics != nil {
		t.metrics.RecordReminder(ctx, outcome)
	}

	if t.publisher != nil {
		if err := t.publisher.PublishReminderTriggered(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish trigger event",
				slog.String("event", "trigger.publish.fail"),
				slog.String("reminder_id", r.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return stateErr
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}
