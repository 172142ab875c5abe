package domain

import (
	"github.com/google/uuid"
)

// NotificationServiceID, StaticReminderID and TemplateID share the same shape as
// ReminderID but are distinct types so they cannot be mixed up at call sites.

type NotificationServiceID struct {
	value uuid.UUID
}

func NewNotificationServiceID() NotificationServiceID {
	return NotificationServiceID{value: uuid.New()}
}

func NotificationServiceIDFromString(s string) (NotificationServiceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NotificationServiceID{}, ErrInvalidNotificationServiceID
	}

	return NotificationServiceID{value: id}, nil
}

func (n NotificationServiceID) String() string {
	return n.value.String()
}

func (n NotificationServiceID) IsZero() bool {
	return n.value == uuid.Nil
}

type StaticReminderID struct {
	value uuid.UUID
}

func NewStaticReminderID() StaticReminderID {
	return StaticReminderID{value: uuid.New()}
}

func StaticReminderIDFromString(s string) (StaticReminderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return StaticReminderID{}, ErrInvalidStaticReminderID
	}

	return StaticReminderID{value: id}, nil
}

func (s StaticReminderID) String() string {
	return s.value.String()
}

type TemplateID struct {
	value uuid.UUID
}

func NewTemplateID() TemplateID {
	return TemplateID{value: uuid.New()}
}

func TemplateIDFromString(s string) (TemplateID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TemplateID{}, ErrInvalidTemplateID
	}

	return TemplateID{value: id}, nil
}

func (t TemplateID) String() string {
	return t.value.String()
}
