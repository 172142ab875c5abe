package app

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler is the part of the scheduling timer core that mutations drive.
type Scheduler interface {
	Submit(t time.Time)
	FindNextReminder(ctx context.Context) error
}

// rearm re-reads the soonest due time after rows were removed. Storage
// errors are logged; the periodic resync heals a missed re-arm.
func rearm(ctx context.Context, s Scheduler) {
	if err := s.FindNextReminder(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to re-arm scheduler",
			"error", err,
		)
	}
}
