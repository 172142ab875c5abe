package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type templateRepositoryImpl struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) domain.TemplateRepository {
	return &templateRepositoryImpl{
		db: db,
	}
}

func (r *templateRepositoryImpl) Save(ctx context.Context, template *domain.Template) error {
	slog.Debug("saving template to database",
		"template_id", template.ID().String(),
	)

	return r.db.WithContext(ctx).Omit(withServices + ".*").Create(FromTemplate(template)).Error
}

func (r *templateRepositoryImpl) FindByID(ctx context.Context, userID domain.UserID, id domain.TemplateID) (*domain.Template, error) {
	var m TemplateModel

	result := r.db.WithContext(ctx).
		Preload(withServices).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *templateRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Template, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID.String()))
}

func (r *templateRepositoryImpl) Search(ctx context.Context, userID domain.UserID, query string) ([]*domain.Template, error) {
	pattern := likePattern(query)

	return r.find(r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Where("title ILIKE ? OR text ILIKE ?", pattern, pattern),
	)
}

func (r *templateRepositoryImpl) find(q *gorm.DB) ([]*domain.Template, error) {
	var models []TemplateModel

	if err := q.Preload(withServices).Order("title ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	templates := make([]*domain.Template, 0, len(models))
	for _, m := range models {
		e, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		templates = append(templates, e)
	}

	return templates, nil
}

func (r *templateRepositoryImpl) Update(ctx context.Context, template *domain.Template) error {
	m := FromTemplate(template)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&TemplateModel{}).
			Where("id = ? AND user_id = ?", m.ID, m.UserID).
			Select("title", "text", "color", "updated_at").
			Updates(m)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return domain.ErrTemplateNotFound
		}

		return tx.Model(m).Omit(withServices + ".*").Association(withServices).Replace(m.NotificationServices)
	})
}

func (r *templateRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, id domain.TemplateID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m TemplateModel

		if err := tx.Where("id = ? AND user_id = ?", id.String(), userID.String()).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTemplateNotFound
			}

			return err
		}

		if err := tx.Model(&m).Association(withServices).Clear(); err != nil {
			return err
		}

		return tx.Delete(&m).Error
	})
}
