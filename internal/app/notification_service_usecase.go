package app

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type CreateNotificationServiceInput struct {
	UserID string
	Title  string
	URL    string
}

type UpdateNotificationServiceInput struct {
	UserID string
	ID     string
	Title  *string
	URL    *string
}

type DeleteNotificationServiceInput struct {
	UserID string
	ID     string
	// DeleteUsing also deletes every reminder, static reminder and template
	// that still links to the service.
	DeleteUsing bool
}

type TestNotificationServiceInput struct {
	URL string
}

type NotificationServiceOutput struct {
	ID        string
	UserID    string
	Title     string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NotificationServicesOutput struct {
	NotificationServices []NotificationServiceOutput
	Count                int32
}

func FromNotificationService(s *domain.NotificationService) NotificationServiceOutput {
	return NotificationServiceOutput{
		ID:        s.ID().String(),
		UserID:    s.UserID().String(),
		Title:     s.Title(),
		URL:       s.URL(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

type NotificationServiceUseCase interface {
	CreateNotificationService(ctx context.Context, input CreateNotificationServiceInput) (NotificationServiceOutput, error)
	GetNotificationService(ctx context.Context, input ResourceInput) (NotificationServiceOutput, error)
	ListNotificationServices(ctx context.Context, input ListInput) (NotificationServicesOutput, error)
	UpdateNotificationService(ctx context.Context, input UpdateNotificationServiceInput) (NotificationServiceOutput, error)
	DeleteNotificationService(ctx context.Context, input DeleteNotificationServiceInput) error
	// TestNotificationService sends a fixed message to an unsaved URL.
	TestNotificationService(ctx context.Context, input TestNotificationServiceInput) error
	AvailableSchemes(ctx context.Context) []string
}
