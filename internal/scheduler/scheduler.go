// Package scheduler keeps a single timer armed for the soonest due reminder
// and runs the trigger when it fires.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/metrics"
)

// FireFunc handles every reminder due at the fired time.
type FireFunc func(ctx context.Context, at time.Time) error

type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func WithMetrics(m *metrics.SchedulerMetrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// WithBaseContext sets the context fires run under. It is never cancelled by
// the scheduler itself.
func WithBaseContext(ctx context.Context) Option {
	return func(s *Scheduler) {
		s.baseCtx = ctx
	}
}

// Scheduler arms at most one timer at a time. The armed time is always the
// earliest candidate submitted since the last fire.
type Scheduler struct {
	repo    domain.DueSetRepository
	fire    FireFunc
	now     func() time.Time
	metrics *metrics.SchedulerMetrics
	baseCtx context.Context

	mu         sync.Mutex
	timer      *time.Timer
	armedAt    time.Time
	armed      bool
	generation uint64
	stopped    bool

	inflight sync.WaitGroup
}

func New(repo domain.DueSetRepository, fire FireFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		repo:    repo,
		fire:    fire,
		now:     time.Now,
		baseCtx: context.Background(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.baseCtx = logging.WithModule(s.baseCtx, logging.ModuleScheduler)

	return s
}

// FindNextReminder asks storage for the soonest due time and submits it.
// Nothing is armed when storage holds no reminder.
func (s *Scheduler) FindNextReminder(ctx context.Context) error {
	t, ok, err := s.repo.MinDueTime(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query next due time",
			slog.String("event", "scheduler.lookup.fail"),
			slog.String("error", err.Error()),
		)

		return err
	}

	if !ok {
		slog.DebugContext(ctx, "no reminders to schedule",
			slog.String("event", "scheduler.idle"),
		)

		return nil
	}

	s.Submit(t)

	return nil
}

// Submit arms the timer for t when nothing is armed or t is strictly earlier
// than the armed time. Later or equal candidates are ignored.
func (s *Scheduler) Submit(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if s.armed && !t.Before(s.armedAt) {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.generation++
	gen := s.generation

	delay := max(t.Sub(s.now()), 0)

	s.armedAt = t
	s.armed = true
	s.timer = time.AfterFunc(delay, func() { s.onFire(gen, t) })

	slog.DebugContext(s.baseCtx, "timer armed",
		slog.String("event", "scheduler.arm"),
		slog.Time("due_time", t),
		slog.Duration("delay", delay),
	)
}

// StopHandling cancels the armed timer and waits for a running fire to
// finish. Later submissions are ignored. Safe to call more than once.
func (s *Scheduler) StopHandling() {
	s.mu.Lock()

	if !s.stopped {
		s.stopped = true

		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}

		s.armed = false
		s.armedAt = time.Time{}

		slog.InfoContext(s.baseCtx, "scheduler stopped",
			slog.String("event", "scheduler.stop"),
		)
	}

	s.mu.Unlock()

	s.inflight.Wait()
}

// Armed reports the time the timer is armed for.
func (s *Scheduler) Armed() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.armedAt, s.armed
}

func (s *Scheduler) onFire(gen uint64, at time.Time) {
	s.mu.Lock()

	// A superseded timer may still run if Stop lost the race.
	if s.stopped || gen != s.generation {
		s.mu.Unlock()

		return
	}

	s.timer = nil
	s.armed = false
	s.armedAt = time.Time{}
	s.inflight.Add(1)

	s.mu.Unlock()

	defer s.inflight.Done()

	ctx := s.baseCtx

	if s.metrics != nil {
		s.metrics.RecordFire(ctx, s.now().Sub(at))
	}

	slog.InfoContext(ctx, "timer fired",
		slog.String("event", "scheduler.fire"),
		slog.Time("due_time", at),
	)

	if err := s.fire(ctx, at); err != nil {
		slog.ErrorContext(ctx, "trigger finished with errors",
			slog.String("event", "scheduler.fire.fail"),
			slog.Time("due_time", at),
			slog.String("error", err.Error()),
		)
	}

	if err := s.rearmAfter(ctx, at); err != nil {
		slog.ErrorContext(ctx, "failed to re-arm after fire",
			slog.String("event", "scheduler.rearm.fail"),
			slog.String("error", err.Error()),
		)
	}
}

// rearmAfter arms for the soonest due time strictly after the fired one.
// Reminders still due at or before it could not be deleted or rescheduled;
// they miss this cycle and fire again on the next FindNextReminder (resync).
func (s *Scheduler) rearmAfter(ctx context.Context, fired time.Time) error {
	if stale, ok, err := s.repo.MinDueTime(ctx); err == nil && ok && !stale.After(fired) {
		slog.WarnContext(ctx, "reminders left behind by fire",
			slog.String("event", "scheduler.rearm.stale"),
			slog.Time("due_time", stale),
			slog.Time("fired_time", fired),
		)
	}

	t, ok, err := s.repo.MinDueTimeAfter(ctx, fired)
	if err != nil {
		return err
	}

	if ok {
		s.Submit(t)
	}

	return nil
}
