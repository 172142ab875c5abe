package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Resync periodically re-runs FindNextReminder so a fire cycle lost to a
// storage outage heals without a restart.
type Resync struct {
	cron *cron.Cron
}

func NewResync(ctx context.Context, s *Scheduler, spec string) (*Resync, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := s.FindNextReminder(ctx); err != nil {
			slog.WarnContext(ctx, "periodic resync failed",
				slog.String("event", "scheduler.resync.fail"),
				slog.String("error", err.Error()),
			)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid resync schedule %q: %w", spec, err)
	}

	return &Resync{cron: c}, nil
}

func (r *Resync) Start() {
	r.cron.Start()
}

// Stop waits for a running resync job to complete.
func (r *Resync) Stop() {
	<-r.cron.Stop().Done()
}
