package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type notificationServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationServiceRepository(db *gorm.DB) domain.NotificationServiceRepository {
	return &notificationServiceRepositoryImpl{
		db: db,
	}
}

func (r *notificationServiceRepositoryImpl) Save(ctx context.Context, service *domain.NotificationService) error {
	slog.Debug("saving notification service to database",
		"service_id", service.ID().String(),
	)

	return r.db.WithContext(ctx).Create(FromNotificationService(service)).Error
}

func (r *notificationServiceRepositoryImpl) FindByID(
	ctx context.Context,
	userID domain.UserID,
	id domain.NotificationServiceID,
) (*domain.NotificationService, error) {
	var m NotificationServiceModel

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationServiceNotFound
		}

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *notificationServiceRepositoryImpl) FindByIDs(
	ctx context.Context,
	userID domain.UserID,
	ids []domain.NotificationServiceID,
) ([]*domain.NotificationService, error) {
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	return r.find(r.db.WithContext(ctx).Where("user_id = ? AND id IN ?", userID.String(), raw))
}

func (r *notificationServiceRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.NotificationService, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID.String()))
}

func (r *notificationServiceRepositoryImpl) find(q *gorm.DB) ([]*domain.NotificationService, error) {
	var models []NotificationServiceModel

	if err := q.Order("title ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	services := make([]*domain.NotificationService, 0, len(models))
	for _, m := range models {
		s, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		services = append(services, s)
	}

	return services, nil
}

func (r *notificationServiceRepositoryImpl) Update(ctx context.Context, service *domain.NotificationService) error {
	result := r.db.WithContext(ctx).
		Model(&NotificationServiceModel{}).
		Where("id = ? AND user_id = ?", service.ID().String(), service.UserID().String()).
		Updates(map[string]any{
			"title":      service.Title(),
			"url":        service.URL(),
			"updated_at": service.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotificationServiceNotFound
	}

	return nil
}

func (r *notificationServiceRepositoryImpl) Delete(
	ctx context.Context,
	userID domain.UserID,
	id domain.NotificationServiceID,
	deleteUsing bool,
) error {
	slog.Debug("deleting notification service from database",
		"service_id", id.String(),
		"delete_using", deleteUsing,
	)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m NotificationServiceModel

		if err := tx.Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotificationServiceNotFound
			}

			return err
		}

		for _, link := range serviceLinks {
			var owners []string

			if err := tx.Table(link.joinTable).
				Where("notification_service_id = ?", m.ID).
				Pluck(link.ownerColumn, &owners).Error; err != nil {
				return err
			}

			if len(owners) == 0 {
				continue
			}

			if !deleteUsing {
				return &domain.ServiceInUseError{Kind: link.kind}
			}

			if err := tx.Exec("DELETE FROM "+link.joinTable+" WHERE "+link.ownerColumn+" IN ?", owners).Error; err != nil {
				return err
			}

			if err := tx.Exec("DELETE FROM "+link.ownerTable+" WHERE id IN ?", owners).Error; err != nil {
				return err
			}

			slog.Debug("deleted owners of notification service",
				"service_id", m.ID,
				"kind", link.kind,
				"count", len(owners),
			)
		}

		return tx.Delete(&m).Error
	})
}
