package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
)

const (
	testNotificationTitle = "Test notification"
	testNotificationBody  = "If you can read this, the notification service works."
)

type notificationServiceUseCaseImpl struct {
	repo       domain.NotificationServiceRepository
	dispatcher notify.Dispatcher
	scheduler  Scheduler
}

func NewNotificationServiceUseCase(
	repo domain.NotificationServiceRepository,
	dispatcher notify.Dispatcher,
	scheduler Scheduler,
) NotificationServiceUseCase {
	return &notificationServiceUseCaseImpl{
		repo:       repo,
		dispatcher: dispatcher,
		scheduler:  scheduler,
	}
}

// validateURL rejects targets no registered sender can deliver to.
func (uc *notificationServiceUseCaseImpl) validateURL(raw string) error {
	if err := domain.ValidateTargetURL(raw); err != nil {
		return NewValidationError("url", err.Error())
	}

	if scheme := notify.Scheme(raw); !slices.Contains(uc.dispatcher.Schemes(), scheme) {
		return NewValidationError("url", fmt.Sprintf("%s: %q", notify.ErrUnsupportedScheme.Error(), scheme))
	}

	return nil
}

func (uc *notificationServiceUseCaseImpl) CreateNotificationService(
	ctx context.Context,
	input CreateNotificationServiceInput,
) (NotificationServiceOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return NotificationServiceOutput{}, err
	}

	if err := uc.validateURL(input.URL); err != nil {
		return NotificationServiceOutput{}, err
	}

	service, err := domain.NewNotificationService(userID, input.Title, input.URL)
	if err != nil {
		return NotificationServiceOutput{}, contentError(err)
	}

	if err := uc.repo.Save(ctx, service); err != nil {
		slog.ErrorContext(ctx, "failed to save notification service",
			"error", err,
			"notification_service_id", service.ID().String(),
		)

		return NotificationServiceOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "notification service created",
		"notification_service_id", service.ID().String(),
		"scheme", notify.Scheme(input.URL),
	)

	return FromNotificationService(service), nil
}

func (uc *notificationServiceUseCaseImpl) find(ctx context.Context, rawUserID, rawID string) (*domain.NotificationService, error) {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.NotificationServiceIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	service, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, repoError(err, domain.ErrNotificationServiceNotFound)
	}

	return service, nil
}

func (uc *notificationServiceUseCaseImpl) GetNotificationService(
	ctx context.Context,
	input ResourceInput,
) (NotificationServiceOutput, error) {
	service, err := uc.find(ctx, input.UserID, input.ID)
	if err != nil {
		return NotificationServiceOutput{}, err
	}

	return FromNotificationService(service), nil
}

func (uc *notificationServiceUseCaseImpl) ListNotificationServices(
	ctx context.Context,
	input ListInput,
) (NotificationServicesOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return NotificationServicesOutput{}, err
	}

	sortBy, err := ParseSortBy(input.SortBy, false)
	if err != nil {
		return NotificationServicesOutput{}, err
	}

	services, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		return NotificationServicesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(services, sortBy, func(s *domain.NotificationService) sortKey {
		return sortKey{title: s.Title(), text: s.URL(), created: s.CreatedAt()}
	})

	outputs := make([]NotificationServiceOutput, 0, len(services))
	for _, s := range services {
		outputs = append(outputs, FromNotificationService(s))
	}

	return NotificationServicesOutput{
		NotificationServices: outputs,
		Count:                int32(len(outputs)), //nolint:gosec
	}, nil
}

func (uc *notificationServiceUseCaseImpl) UpdateNotificationService(
	ctx context.Context,
	input UpdateNotificationServiceInput,
) (NotificationServiceOutput, error) {
	service, err := uc.find(ctx, input.UserID, input.ID)
	if err != nil {
		return NotificationServiceOutput{}, err
	}

	title, url := service.Title(), service.URL()
	if input.Title != nil {
		title = *input.Title
	}

	if input.URL != nil {
		if err := uc.validateURL(*input.URL); err != nil {
			return NotificationServiceOutput{}, err
		}

		url = *input.URL
	}

	if err := service.Update(title, url); err != nil {
		return NotificationServiceOutput{}, contentError(err)
	}

	if err := uc.repo.Update(ctx, service); err != nil {
		slog.ErrorContext(ctx, "failed to update notification service",
			"error", err,
			"notification_service_id", input.ID,
		)

		return NotificationServiceOutput{}, repoError(err, domain.ErrNotificationServiceNotFound)
	}

	return FromNotificationService(service), nil
}

func (uc *notificationServiceUseCaseImpl) DeleteNotificationService(
	ctx context.Context,
	input DeleteNotificationServiceInput,
) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	id, err := domain.NotificationServiceIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, userID, id, input.DeleteUsing); err != nil {
		var inUse *domain.ServiceInUseError
		if errors.As(err, &inUse) {
			return &InUseError{Kind: inUse.Kind}
		}

		slog.ErrorContext(ctx, "failed to delete notification service",
			"error", err,
			"notification_service_id", input.ID,
		)

		return repoError(err, domain.ErrNotificationServiceNotFound)
	}

	if input.DeleteUsing {
		rearm(ctx, uc.scheduler)
	}

	slog.InfoContext(ctx, "notification service deleted",
		"notification_service_id", input.ID,
		"delete_using", input.DeleteUsing,
	)

	return nil
}

func (uc *notificationServiceUseCaseImpl) TestNotificationService(
	ctx context.Context,
	input TestNotificationServiceInput,
) error {
	if err := uc.validateURL(input.URL); err != nil {
		return err
	}

	if err := uc.dispatcher.Send(ctx, testNotificationTitle, testNotificationBody, []string{input.URL}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}

func (uc *notificationServiceUseCaseImpl) AvailableSchemes(_ context.Context) []string {
	return uc.dispatcher.Schemes()
}
