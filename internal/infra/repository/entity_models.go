package repository

import (
	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

func (m *UserModel) ToEntity() (*domain.User, error) {
	id, err := domain.UserIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteUser(id, m.Username, m.PasswordHash, m.CreatedAt), nil
}

func FromUser(e *domain.User) *UserModel {
	return &UserModel{
		ID:           e.ID().String(),
		Username:     e.Username(),
		PasswordHash: e.PasswordHash(),
		CreatedAt:    e.CreatedAt(),
	}
}

func (m *NotificationServiceModel) ToEntity() (*domain.NotificationService, error) {
	id, err := domain.NotificationServiceIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteNotificationService(id, userID, m.Title, m.URL, m.CreatedAt, m.UpdatedAt), nil
}

func FromNotificationService(e *domain.NotificationService) *NotificationServiceModel {
	return &NotificationServiceModel{
		ID:        e.ID().String(),
		UserID:    e.UserID().String(),
		Title:     e.Title(),
		URL:       e.URL(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func (m *StaticReminderModel) ToEntity() (*domain.StaticReminder, error) {
	id, err := domain.StaticReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	color, err := domain.NewColor(m.Color)
	if err != nil {
		return nil, err
	}

	services, err := serviceIDs(m.NotificationServices)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteStaticReminder(
		id, userID, m.Title, m.Text, color, services, m.CreatedAt, m.UpdatedAt,
	), nil
}

func FromStaticReminder(e *domain.StaticReminder) *StaticReminderModel {
	return &StaticReminderModel{
		ID:                   e.ID().String(),
		UserID:               e.UserID().String(),
		Title:                e.Title(),
		Text:                 e.Text(),
		Color:                e.Color().String(),
		NotificationServices: serviceRefs(e.Services()),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}
}

func (m *TemplateModel) ToEntity() (*domain.Template, error) {
	id, err := domain.TemplateIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	color, err := domain.NewColor(m.Color)
	if err != nil {
		return nil, err
	}

	services, err := serviceIDs(m.NotificationServices)
	if err != nil {
		return nil, err
	}

	return domain.ReconstituteTemplate(
		id, userID, m.Title, m.Text, color, services, m.CreatedAt, m.UpdatedAt,
	), nil
}

func FromTemplate(e *domain.Template) *TemplateModel {
	return &TemplateModel{
		ID:                   e.ID().String(),
		UserID:               e.UserID().String(),
		Title:                e.Title(),
		Text:                 e.Text(),
		Color:                e.Color().String(),
		NotificationServices: serviceRefs(e.Services()),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}
}
