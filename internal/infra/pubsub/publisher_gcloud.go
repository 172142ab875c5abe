//go:build gcloud

package pubsub

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
)

type GCloudPublisherConfig struct {
	ProjectID string
}

func NewGCloudPublisher(cfg GCloudPublisherConfig) (*WatermillPublisher, error) {
	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		watermill.NewSlogLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return NewWatermillPublisher(publisher), nil
}
