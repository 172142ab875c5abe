//go:build gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/config"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/pubsub"
)

func initPublisher(_ context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(pubsub.GCloudPublisherConfig{
		ProjectID: cfg.PubSub.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return publisher, nil
}
