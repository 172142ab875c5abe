package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SchedulerMetrics instruments the fire path of the reminder scheduler.
type SchedulerMetrics struct {
	fires      metric.Int64Counter
	dispatched metric.Int64Counter
	lag        metric.Float64Histogram
}

func NewSchedulerMetrics(mp metric.MeterProvider) (*SchedulerMetrics, error) {
	meter := mp.Meter("github.com/KasumiMercury/primind-remind-scheduler/scheduler")

	fires, err := meter.Int64Counter("scheduler.fire.count",
		metric.WithDescription("Number of timer fires"),
	)
	if err != nil {
		return nil, err
	}

	dispatched, err := meter.Int64Counter("scheduler.reminder.count",
		metric.WithDescription("Reminders handled by the trigger, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	lag, err := meter.Float64Histogram("scheduler.fire.lag",
		metric.WithDescription("Delay between the due time and the actual fire"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{fires: fires, dispatched: dispatched, lag: lag}, nil
}

func (m *SchedulerMetrics) RecordFire(ctx context.Context, lag time.Duration) {
	m.fires.Add(ctx, 1)
	m.lag.Record(ctx, lag.Seconds())
}

func (m *SchedulerMetrics) RecordReminder(ctx context.Context, outcome string) {
	m.dispatched.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
