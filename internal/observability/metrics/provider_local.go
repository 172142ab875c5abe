//go:build !gcloud

package metrics

import (
	"context"
)

// NewProvider keeps instruments live but exports nothing outside Cloud Run.
func NewProvider(_ context.Context, cfg Config, _ string) (*Provider, error) {
	return newNoopProvider(cfg), nil
}
