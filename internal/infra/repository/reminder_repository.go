package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

const withServices = "NotificationServices"

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	m := FromReminder(reminder)

	if err := r.db.WithContext(ctx).Omit(withServices + ".*").Create(m).Error; err != nil {
		slog.Error("failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, userID domain.UserID, id domain.ReminderID) (*domain.Reminder, error) {
	var m ReminderModel

	result := r.db.WithContext(ctx).
		Preload(withServices).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("reminder not found",
				"reminder_id", id.String(),
			)

			return nil, domain.ErrReminderNotFound
		}

		slog.Error("failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Reminder, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID.String()))
}

func (r *reminderRepositoryImpl) Search(ctx context.Context, userID domain.UserID, query string) ([]*domain.Reminder, error) {
	pattern := likePattern(query)

	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Where("title ILIKE ? OR text ILIKE ?", pattern, pattern),
	)
}

func (r *reminderRepositoryImpl) find(ctx context.Context, q *gorm.DB) ([]*domain.Reminder, error) {
	var models []ReminderModel

	if err := q.Preload(withServices).Order("time ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to list reminders",
			"error", err,
		)

		return nil, err
	}

	reminders := make([]*domain.Reminder, 0, len(models))
	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.Error("failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("updating reminder in database",
		"reminder_id", reminder.ID().String(),
	)

	m := FromReminder(reminder)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ReminderModel{}).
			Where("id = ? AND user_id = ?", m.ID, m.UserID).
			Select("*").
			Omit("id", "user_id", "created_at", withServices).
			Updates(m)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrReminderNotFound
		}

		return tx.Model(m).Omit(withServices + ".*").Association(withServices).Replace(m.NotificationServices)
	})
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, id domain.ReminderID) error {
	slog.Debug("deleting reminder from database",
		"reminder_id", id.String(),
	)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteReminder(tx, id.String(), "user_id = ?", userID.String())
	})
}

// deleteReminder removes the service links first; the join table keeps
// foreign keys to both sides.
func deleteReminder(tx *gorm.DB, id string, scope string, args ...any) error {
	var m ReminderModel

	if err := tx.Where("id = ?", id).Where(scope, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReminderNotFound
		}

		return err
	}

	if err := tx.Model(&m).Association(withServices).Clear(); err != nil {
		return err
	}

	return tx.Delete(&m).Error
}
