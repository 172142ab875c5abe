package app

import "time"

// RepeatInput is either interval based (Quantity and Interval) or weekday
// based. An empty RepeatInput means no repetition.
type RepeatInput struct {
	Quantity *string
	Interval *int
	Weekdays []int
}

type CreateReminderInput struct {
	UserID               string
	Title                string
	Text                 string
	Time                 time.Time
	Repeat               RepeatInput
	Color                string
	NotificationServices []string
}

type GetReminderInput struct {
	UserID string
	ID     string
}

type ListRemindersInput struct {
	UserID string
	SortBy string
}

type SearchRemindersInput struct {
	UserID string
	Query  string
	SortBy string
}

// UpdateReminderInput is partial: nil fields keep their current value.
type UpdateReminderInput struct {
	UserID               string
	ID                   string
	Title                *string
	Text                 *string
	Time                 *time.Time
	Repeat               *RepeatInput
	Color                *string
	NotificationServices []string
}

type DeleteReminderInput struct {
	UserID string
	ID     string
}

// TestReminderInput describes a draft reminder sent immediately, without
// being stored.
type TestReminderInput struct {
	UserID               string
	Title                string
	Text                 string
	NotificationServices []string
}
