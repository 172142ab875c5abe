package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

func parseUserID(raw string) (domain.UserID, error) {
	userID, err := domain.UserIDFromString(raw)
	if err != nil {
		return domain.UserID{}, NewValidationError("user_id", err.Error())
	}

	return userID, nil
}

func parseColor(raw string) (domain.Color, error) {
	color, err := domain.NewColor(raw)
	if err != nil {
		return domain.Color{}, NewValidationError("color", err.Error())
	}

	return color, nil
}

func parseServiceIDs(raw []string) ([]domain.NotificationServiceID, error) {
	if len(raw) == 0 {
		return nil, NewValidationError("notification_services", domain.ErrNoServices.Error())
	}

	ids := make([]domain.NotificationServiceID, 0, len(raw))
	for i, r := range raw {
		id, err := domain.NotificationServiceIDFromString(r)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("notification_services[%d]", i), err.Error())
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// resolveServices loads the user's services for raw ids and fails when any of
// them is unknown or owned by someone else.
func resolveServices(
	ctx context.Context,
	repo domain.NotificationServiceRepository,
	userID domain.UserID,
	raw []string,
) ([]domain.NotificationServiceID, []*domain.NotificationService, error) {
	ids, err := parseServiceIDs(raw)
	if err != nil {
		return nil, nil, err
	}

	services, err := repo.FindByIDs(ctx, userID, ids)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load notification services",
			"error", err,
			"user_id", userID.String(),
		)

		return nil, nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	found := make(map[domain.NotificationServiceID]struct{}, len(services))
	for _, s := range services {
		found[s.ID()] = struct{}{}
	}

	for i, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, nil, NewValidationError(
				fmt.Sprintf("notification_services[%d]", i),
				domain.ErrNotificationServiceNotFound.Error(),
			)
		}
	}

	return ids, services, nil
}

func targetURLs(services []*domain.NotificationService) []string {
	urls := make([]string, 0, len(services))
	for _, s := range services {
		urls = append(urls, s.URL())
	}

	return urls
}

// contentError maps domain validation failures onto the input field they
// concern.
func contentError(err error) error {
	field := ""

	switch {
	case errors.Is(err, domain.ErrEmptyTitle), errors.Is(err, domain.ErrTitleTooLong):
		field = "title"
	case errors.Is(err, domain.ErrNoServices):
		field = "notification_services"
	case errors.Is(err, domain.ErrPastReminderTime):
		field = "time"
	case errors.Is(err, domain.ErrInvalidRepeat),
		errors.Is(err, domain.ErrInvalidRepeatQuantity),
		errors.Is(err, domain.ErrInvalidRepeatInterval),
		errors.Is(err, domain.ErrInvalidWeekdays):
		field = "repeat"
	case errors.Is(err, domain.ErrInvalidColor):
		field = "color"
	case errors.Is(err, domain.ErrInvalidURL):
		field = "url"
	case errors.Is(err, domain.ErrInvalidUsername):
		field = "username"
	case errors.Is(err, domain.ErrEmptyPassword):
		field = "password"
	default:
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return NewValidationError(field, err.Error())
}

// repoError wraps a repository failure, keeping not-found distinguishable.
func repoError(err, notFound error) error {
	if errors.Is(err, notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %v", ErrInternalError, err)
}
