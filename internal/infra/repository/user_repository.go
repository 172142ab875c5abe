package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepositoryImpl{
		db: db,
	}
}

func (r *userRepositoryImpl) Save(ctx context.Context, user *domain.User) error {
	// Requires gorm.Config.TranslateError.
	err := r.db.WithContext(ctx).Create(FromUser(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}

	return err
}

func (r *userRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m UserModel

	result := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id domain.UserID) error {
	slog.Debug("deleting user and owned data",
		"user_id", id.String(),
	)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, link := range serviceLinks {
			if err := tx.Exec(
				"DELETE FROM "+link.joinTable+" WHERE "+link.ownerColumn+" IN (SELECT id FROM "+link.ownerTable+" WHERE user_id = ?)",
				id.String(),
			).Error; err != nil {
				return err
			}

			if err := tx.Exec("DELETE FROM "+link.ownerTable+" WHERE user_id = ?", id.String()).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id.String()).Delete(&NotificationServiceModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id.String()).Delete(&UserModel{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		return nil
	})
}
