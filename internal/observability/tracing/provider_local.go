//go:build !gcloud

package tracing

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewProvider records spans so ids reach the logs, without exporting them.
func NewProvider(_ context.Context, cfg Config, _ string) (*Provider, error) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(newResource(cfg)),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return &Provider{tp: tp}, nil
}
