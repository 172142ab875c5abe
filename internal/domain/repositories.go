package domain

import (
	"context"
)

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, userID UserID, id ReminderID) (*Reminder, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Reminder, error)
	// Search matches query case-insensitively against title and text.
	Search(ctx context.Context, userID UserID, query string) ([]*Reminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, userID UserID, id ReminderID) error
}

type NotificationServiceRepository interface {
	Save(ctx context.Context, service *NotificationService) error
	FindByID(ctx context.Context, userID UserID, id NotificationServiceID) (*NotificationService, error)
	FindByIDs(ctx context.Context, userID UserID, ids []NotificationServiceID) ([]*NotificationService, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*NotificationService, error)
	Update(ctx context.Context, service *NotificationService) error
	// Delete refuses with *ServiceInUseError while anything still links to the
	// service, unless deleteUsing removes those owners first.
	Delete(ctx context.Context, userID UserID, id NotificationServiceID, deleteUsing bool) error
}

type StaticReminderRepository interface {
	Save(ctx context.Context, reminder *StaticReminder) error
	FindByID(ctx context.Context, userID UserID, id StaticReminderID) (*StaticReminder, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*StaticReminder, error)
	Search(ctx context.Context, userID UserID, query string) ([]*StaticReminder, error)
	Update(ctx context.Context, reminder *StaticReminder) error
	Delete(ctx context.Context, userID UserID, id StaticReminderID) error
}

type TemplateRepository interface {
	Save(ctx context.Context, template *Template) error
	FindByID(ctx context.Context, userID UserID, id TemplateID) (*Template, error)
	FindByUserID(ctx context.Context, userID UserID) ([]*Template, error)
	Search(ctx context.Context, userID UserID, query string) ([]*Template, error)
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, userID UserID, id TemplateID) error
}

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Delete removes the user together with everything the user owns.
	Delete(ctx context.Context, id UserID) error
}
