package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
)

type staticReminderUseCaseImpl struct {
	repo       domain.StaticReminderRepository
	services   domain.NotificationServiceRepository
	dispatcher notify.Dispatcher
}

func NewStaticReminderUseCase(
	repo domain.StaticReminderRepository,
	services domain.NotificationServiceRepository,
	dispatcher notify.Dispatcher,
) StaticReminderUseCase {
	return &staticReminderUseCaseImpl{
		repo:       repo,
		services:   services,
		dispatcher: dispatcher,
	}
}

func (uc *staticReminderUseCaseImpl) CreateStaticReminder(ctx context.Context, input CreateContentInput) (ContentOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentOutput{}, err
	}

	color, err := parseColor(input.Color)
	if err != nil {
		return ContentOutput{}, err
	}

	ids, _, err := resolveServices(ctx, uc.services, userID, input.NotificationServices)
	if err != nil {
		return ContentOutput{}, err
	}

	reminder, err := domain.NewStaticReminder(userID, input.Title, input.Text, color, ids)
	if err != nil {
		return ContentOutput{}, contentError(err)
	}

	if err := uc.repo.Save(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to save static reminder",
			"error", err,
			"static_reminder_id", reminder.ID().String(),
		)

		return ContentOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return fromStaticReminder(reminder), nil
}

func (uc *staticReminderUseCaseImpl) find(ctx context.Context, input ResourceInput) (*domain.StaticReminder, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.StaticReminderIDFromString(input.ID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, repoError(err, domain.ErrStaticReminderNotFound)
	}

	return reminder, nil
}

func (uc *staticReminderUseCaseImpl) GetStaticReminder(ctx context.Context, input ResourceInput) (ContentOutput, error) {
	reminder, err := uc.find(ctx, input)
	if err != nil {
		return ContentOutput{}, err
	}

	return fromStaticReminder(reminder), nil
}

func (uc *staticReminderUseCaseImpl) ListStaticReminders(ctx context.Context, input ListInput) (ContentsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentsOutput{}, err
	}

	sortBy, err := ParseSortBy(input.SortBy, false)
	if err != nil {
		return ContentsOutput{}, err
	}

	reminders, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		return ContentsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(reminders, sortBy, contentSortKey[*domain.StaticReminder])

	return toContents(reminders, fromStaticReminder), nil
}

func (uc *staticReminderUseCaseImpl) SearchStaticReminders(ctx context.Context, input SearchInput) (ContentsOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ContentsOutput{}, err
	}

	if input.Query == "" {
		return ContentsOutput{}, NewValidationError("query", "query cannot be empty")
	}

	sortBy, err := ParseSortBy(input.SortBy, false)
	if err != nil {
		return ContentsOutput{}, err
	}

	reminders, err := uc.repo.Search(ctx, userID, input.Query)
	if err != nil {
		return ContentsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(reminders, sortBy, contentSortKey[*domain.StaticReminder])

	return toContents(reminders, fromStaticReminder), nil
}

func (uc *staticReminderUseCaseImpl) UpdateStaticReminder(ctx context.Context, input UpdateContentInput) (ContentOutput, error) {
	reminder, err := uc.find(ctx, ResourceInput{UserID: input.UserID, ID: input.ID})
	if err != nil {
		return ContentOutput{}, err
	}

	title, text, color, err := mergeContent(reminder, input)
	if err != nil {
		return ContentOutput{}, err
	}

	services := reminder.Services()
	if input.NotificationServices != nil {
		if services, _, err = resolveServices(ctx, uc.services, reminder.UserID(), input.NotificationServices); err != nil {
			return ContentOutput{}, err
		}
	}

	if err := reminder.Update(title, text, color, services); err != nil {
		return ContentOutput{}, contentError(err)
	}

	if err := uc.repo.Update(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to update static reminder",
			"error", err,
			"static_reminder_id", input.ID,
		)

		return ContentOutput{}, repoError(err, domain.ErrStaticReminderNotFound)
	}

	return fromStaticReminder(reminder), nil
}

func (uc *staticReminderUseCaseImpl) DeleteStaticReminder(ctx context.Context, input ResourceInput) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	id, err := domain.StaticReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		return repoError(err, domain.ErrStaticReminderNotFound)
	}

	return nil
}

func (uc *staticReminderUseCaseImpl) TriggerStaticReminder(ctx context.Context, input ResourceInput) error {
	reminder, err := uc.find(ctx, input)
	if err != nil {
		return err
	}

	services, err := uc.services.FindByIDs(ctx, reminder.UserID(), reminder.Services())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := uc.dispatcher.Send(ctx, reminder.Title(), reminder.Text(), targetURLs(services)); err != nil {
		slog.WarnContext(ctx, "static reminder delivery failed",
			"error", err,
			"static_reminder_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	slog.InfoContext(ctx, "static reminder triggered",
		"static_reminder_id", input.ID,
		"targets", len(services),
	)

	return nil
}
