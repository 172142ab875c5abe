package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type dueSetRepositoryImpl struct {
	db *gorm.DB
}

// NewDueSetRepository queries reminders across all users for the scheduler.
func NewDueSetRepository(db *gorm.DB) domain.DueSetRepository {
	return &dueSetRepositoryImpl{
		db: db,
	}
}

func (r *dueSetRepositoryImpl) MinDueTime(ctx context.Context) (time.Time, bool, error) {
	return r.minDueTime(r.db.WithContext(ctx).Model(&ReminderModel{}))
}

func (r *dueSetRepositoryImpl) MinDueTimeAfter(ctx context.Context, after time.Time) (time.Time, bool, error) {
	return r.minDueTime(r.db.WithContext(ctx).Model(&ReminderModel{}).Where("time > ?", after.Unix()))
}

func (r *dueSetRepositoryImpl) minDueTime(q *gorm.DB) (time.Time, bool, error) {
	var soonest sql.NullInt64

	if err := q.Select("MIN(time)").Scan(&soonest).Error; err != nil {
		return time.Time{}, false, err
	}

	if !soonest.Valid {
		return time.Time{}, false, nil
	}

	return fromUnix(soonest.Int64), true, nil
}

func (r *dueSetRepositoryImpl) RemindersDueAt(ctx context.Context, t time.Time) ([]domain.DueReminder, error) {
	var models []ReminderModel

	if err := r.db.WithContext(ctx).
		Preload(withServices).
		Where("time = ?", t.Unix()).
		Find(&models).Error; err != nil {
		return nil, err
	}

	due := make([]domain.DueReminder, 0, len(models))
	for _, m := range models {
		d, err := m.ToDue()
		if err != nil {
			slog.ErrorContext(ctx, "skipping unreadable reminder",
				"reminder_id", m.ID,
				"error", err,
			)

			continue
		}

		due = append(due, d)
	}

	return due, nil
}

func (r *dueSetRepositoryImpl) SetDueTime(ctx context.Context, id domain.ReminderID, t time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ?", id.String()).
		Updates(map[string]any{"time": t.Unix(), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *dueSetRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteReminder(tx, id.String(), "1 = 1")
	})
}
