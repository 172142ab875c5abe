package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type staticReminderRepositoryImpl struct {
	db *gorm.DB
}

func NewStaticReminderRepository(db *gorm.DB) domain.StaticReminderRepository {
	return &staticReminderRepositoryImpl{
		db: db,
	}
}

func (r *staticReminderRepositoryImpl) Save(ctx context.Context, reminder *domain.StaticReminder) error {
	slog.Debug("saving static reminder to database",
		"static_reminder_id", reminder.ID().String(),
	)

	return r.db.WithContext(ctx).Omit(withServices + ".*").Create(FromStaticReminder(reminder)).Error
}

func (r *staticReminderRepositoryImpl) FindByID(
	ctx context.Context,
	userID domain.UserID,
	id domain.StaticReminderID,
) (*domain.StaticReminder, error) {
	var m StaticReminderModel

	result := r.db.WithContext(ctx).
		Preload(withServices).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStaticReminderNotFound
		}

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *staticReminderRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.StaticReminder, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID.String()))
}

func (r *staticReminderRepositoryImpl) Search(
	ctx context.Context,
	userID domain.UserID,
	query string,
) ([]*domain.StaticReminder, error) {
	pattern := likePattern(query)

	return r.find(r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Where("title ILIKE ? OR text ILIKE ?", pattern, pattern),
	)
}

func (r *staticReminderRepositoryImpl) find(q *gorm.DB) ([]*domain.StaticReminder, error) {
	var models []StaticReminderModel

	if err := q.Preload(withServices).Order("title ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	reminders := make([]*domain.StaticReminder, 0, len(models))
	for _, m := range models {
		e, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		reminders = append(reminders, e)
	}

	return reminders, nil
}

func (r *staticReminderRepositoryImpl) Update(ctx context.Context, reminder *domain.StaticReminder) error {
	m := FromStaticReminder(reminder)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&StaticReminderModel{}).
			Where("id = ? AND user_id = ?", m.ID, m.UserID).
			Select("title", "text", "color", "updated_at").
			Updates(m)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrStaticReminderNotFound
		}

		return tx.Model(m).Omit(withServices + ".*").Association(withServices).Replace(m.NotificationServices)
	})
}

func (r *staticReminderRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, id domain.StaticReminderID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m StaticReminderModel

		if err := tx.Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrStaticReminderNotFound
			}

			return err
		}

		if err := tx.Model(&m).Association(withServices).Clear(); err != nil {
			return err
		}

		return tx.Delete(&m).Error
	})
}
