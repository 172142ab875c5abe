package domain

import (
	"errors"
	"fmt"
)

var (
	ErrReminderNotFound            = errors.New("reminder not found")
	ErrStaticReminderNotFound      = errors.New("static reminder not found")
	ErrTemplateNotFound            = errors.New("template not found")
	ErrNotificationServiceNotFound = errors.New("notification service not found")
	ErrUserNotFound                = errors.New("user not found")

	ErrPastReminderTime = errors.New("reminder time cannot be in the past")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title cannot exceed 255 characters")
	ErrNoServices       = errors.New("at least one notification service is required")

	ErrInvalidRepeat         = errors.New("invalid repeat: interval and weekdays are mutually exclusive and must be complete")
	ErrInvalidRepeatQuantity = errors.New("invalid repeat quantity")
	ErrInvalidRepeatInterval = errors.New("repeat interval must be between 1 and 10000")
	ErrInvalidWeekdays       = errors.New("weekdays must be a non-empty set of values between 0 and 6")
	ErrInvalidColor          = errors.New("color must be a hex code like #1a2b3c")

	ErrInvalidURL      = errors.New("notification service url must have a scheme")
	ErrInvalidUsername = errors.New("username must be 1-64 characters of letters, digits, '_', '.' or '-'")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrUsernameTaken   = errors.New("username already exists")

	ErrInvalidReminderID            = errors.New("invalid reminder ID")
	ErrInvalidStaticReminderID      = errors.New("invalid static reminder ID")
	ErrInvalidTemplateID            = errors.New("invalid template ID")
	ErrInvalidNotificationServiceID = errors.New("invalid notification service ID")
	ErrInvalidUserID                = errors.New("invalid user ID: must be valid UUIDv7")
)

// ServiceInUseError is returned when a notification service is still linked
// to a reminder, template or static reminder.
type ServiceInUseError struct {
	Kind string
}

func (e *ServiceInUseError) Error() string {
	return fmt.Sprintf("notification service is still used by a %s", e.Kind)
}
