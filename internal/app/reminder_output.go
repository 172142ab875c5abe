package app

import (
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type ReminderOutput struct {
	ID                   string
	UserID               string
	Title                string
	Text                 string
	Time                 time.Time
	OriginalTime         *time.Time
	RepeatQuantity       string
	RepeatInterval       int
	Weekdays             []int
	Color                string
	NotificationServices []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
}

func FromReminder(reminder *domain.Reminder) ReminderOutput {
	repeat := reminder.Repeat()

	out := ReminderOutput{
		ID:                   reminder.ID().String(),
		UserID:               reminder.UserID().String(),
		Title:                reminder.Title(),
		Text:                 reminder.Text(),
		Time:                 reminder.Time(),
		RepeatQuantity:       string(repeat.Quantity()),
		RepeatInterval:       repeat.Interval(),
		Weekdays:             repeat.Weekdays(),
		Color:                reminder.Color().String(),
		NotificationServices: serviceIDStrings(reminder.Services()),
		CreatedAt:            reminder.CreatedAt(),
		UpdatedAt:            reminder.UpdatedAt(),
	}

	if original := reminder.OriginalTime(); !original.IsZero() {
		out.OriginalTime = &original
	}

	return out
}

func FromReminders(reminders []*domain.Reminder) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromReminder(r))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}

func serviceIDStrings(ids []domain.NotificationServiceID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func reminderSortKey(r *domain.Reminder) sortKey {
	return sortKey{
		time:    r.Time(),
		title:   r.Title(),
		text:    r.Text(),
		color:   r.Color().String(),
		created: r.CreatedAt(),
	}
}
