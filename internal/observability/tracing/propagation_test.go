package tracing_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/tracing"
)

func TestPropagationRoundTripSuccess(t *testing.T) {
	tracing.SetupPropagator()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	ctx := tracing.ExtractFromHTTPRequest(context.Background(), req)
	sc := trace.SpanContextFromContext(ctx)

	assert.True(t, sc.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())

	carrier := map[string]string{}
	tracing.InjectToMap(ctx, carrier)

	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", carrier["traceparent"])
}
