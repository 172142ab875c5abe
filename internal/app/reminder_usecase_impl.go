package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
)

type reminderUseCaseImpl struct {
	repo       domain.ReminderRepository
	services   domain.NotificationServiceRepository
	dispatcher notify.Dispatcher
	scheduler  Scheduler
}

func NewReminderUseCase(
	repo domain.ReminderRepository,
	services domain.NotificationServiceRepository,
	dispatcher notify.Dispatcher,
	scheduler Scheduler,
) ReminderUseCase {
	return &reminderUseCaseImpl{
		repo:       repo,
		services:   services,
		dispatcher: dispatcher,
		scheduler:  scheduler,
	}
}

func buildRepeat(input RepeatInput) (domain.Repeat, error) {
	repeat, err := domain.NewRepeat(input.Quantity, input.Interval, input.Weekdays)
	if err != nil {
		return domain.Repeat{}, NewValidationError("repeat", err.Error())
	}

	return repeat, nil
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "creating reminder",
		"user_id", input.UserID,
		"time", input.Time,
	)

	userID, err := parseUserID(input.UserID)
	if err != nil {
		return ReminderOutput{}, err
	}

	if input.Time.IsZero() {
		return ReminderOutput{}, NewValidationError("time", "time is required")
	}

	repeat, err := buildRepeat(input.Repeat)
	if err != nil {
		return ReminderOutput{}, err
	}

	color, err := parseColor(input.Color)
	if err != nil {
		return ReminderOutput{}, err
	}

	ids, _, err := resolveServices(ctx, uc.services, userID, input.NotificationServices)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := domain.NewReminder(userID, input.Title, input.Text, input.Time, repeat, color, ids)
	if err != nil {
		return ReminderOutput{}, contentError(err)
	}

	if err := uc.repo.Save(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	uc.scheduler.Submit(reminder.Time())

	slog.InfoContext(ctx, "reminder created",
		"reminder_id", reminder.ID().String(),
		"time", reminder.Time(),
		"repeating", reminder.IsRepeating(),
	)

	return FromReminder(reminder), nil
}

func (uc *reminderUseCaseImpl) find(ctx context.Context, rawUserID, rawID string) (*domain.Reminder, error) {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return nil, err
	}

	id, err := domain.ReminderIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, repoError(err, domain.ErrReminderNotFound)
	}

	return reminder, nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error) {
	reminder, err := uc.find(ctx, input.UserID, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	return FromReminder(reminder), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context, input ListRemindersInput) (RemindersOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return RemindersOutput{}, err
	}

	sortBy, err := ParseSortBy(input.SortBy, true)
	if err != nil {
		return RemindersOutput{}, err
	}

	reminders, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(reminders, sortBy, reminderSortKey)

	return FromReminders(reminders), nil
}

func (uc *reminderUseCaseImpl) SearchReminders(ctx context.Context, input SearchRemindersInput) (RemindersOutput, error) {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return RemindersOutput{}, err
	}

	if input.Query == "" {
		return RemindersOutput{}, NewValidationError("query", "query cannot be empty")
	}

	sortBy, err := ParseSortBy(input.SortBy, true)
	if err != nil {
		return RemindersOutput{}, err
	}

	reminders, err := uc.repo.Search(ctx, userID, input.Query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to search reminders",
			"error", err,
			"user_id", input.UserID,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	sortItems(reminders, sortBy, reminderSortKey)

	return FromReminders(reminders), nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "updating reminder",
		"reminder_id", input.ID,
	)

	reminder, err := uc.find(ctx, input.UserID, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	title, text, color := reminder.Title(), reminder.Text(), reminder.Color()
	if input.Title != nil {
		title = *input.Title
	}

	if input.Text != nil {
		text = *input.Text
	}

	if input.Color != nil {
		if color, err = parseColor(*input.Color); err != nil {
			return ReminderOutput{}, err
		}
	}

	if err := reminder.UpdateContent(title, text, color); err != nil {
		return ReminderOutput{}, contentError(err)
	}

	if input.NotificationServices != nil {
		ids, _, err := resolveServices(ctx, uc.services, reminder.UserID(), input.NotificationServices)
		if err != nil {
			return ReminderOutput{}, err
		}

		if err := reminder.ReplaceServices(ids); err != nil {
			return ReminderOutput{}, contentError(err)
		}
	}

	if input.Time != nil || input.Repeat != nil {
		repeat := reminder.Repeat()
		if input.Repeat != nil {
			if repeat, err = buildRepeat(*input.Repeat); err != nil {
				return ReminderOutput{}, err
			}
		}

		var at time.Time
		if input.Time != nil {
			at = *input.Time
		}

		if err := reminder.Reschedule(at, repeat); err != nil {
			return ReminderOutput{}, contentError(err)
		}
	}

	if err := uc.repo.Update(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to update reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return ReminderOutput{}, repoError(err, domain.ErrReminderNotFound)
	}

	// A later time leaves the old timer armed; that fire finds nothing and
	// re-arms from storage.
	uc.scheduler.Submit(reminder.Time())

	slog.InfoContext(ctx, "reminder updated",
		"reminder_id", input.ID,
		"time", reminder.Time(),
	)

	return FromReminder(reminder), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		slog.WarnContext(ctx, "failed to delete reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return repoError(err, domain.ErrReminderNotFound)
	}

	rearm(ctx, uc.scheduler)

	slog.InfoContext(ctx, "reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) TestReminder(ctx context.Context, input TestReminderInput) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	if input.Title == "" {
		return NewValidationError("title", domain.ErrEmptyTitle.Error())
	}

	_, services, err := resolveServices(ctx, uc.services, userID, input.NotificationServices)
	if err != nil {
		return err
	}

	if err := uc.dispatcher.Send(ctx, input.Title, input.Text, targetURLs(services)); err != nil {
		slog.WarnContext(ctx, "test reminder delivery failed",
			"error", err,
			"user_id", input.UserID,
		)

		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}
