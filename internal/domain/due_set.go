package domain

import (
	"context"
	"time"
)

// DueReminder is the read model the trigger path needs: the reminder content,
// its repeat spec and the resolved delivery target URLs.
type DueReminder struct {
	ID           ReminderID
	UserID       UserID
	Title        string
	Text         string
	Repeat       Repeat
	OriginalTime time.Time
	TargetURLs   []string
}

// DueSetRepository is the storage boundary of the scheduling engine. Queries
// span every user.
type DueSetRepository interface {
	// MinDueTime reports the soonest due time; ok is false when no reminder exists.
	MinDueTime(ctx context.Context) (t time.Time, ok bool, err error)
	// MinDueTimeAfter is MinDueTime restricted to due times strictly after after.
	MinDueTimeAfter(ctx context.Context, after time.Time) (t time.Time, ok bool, err error)
	// RemindersDueAt returns the reminders whose due time equals t exactly.
	RemindersDueAt(ctx context.Context, t time.Time) ([]DueReminder, error)
	SetDueTime(ctx context.Context, id ReminderID, t time.Time) error
	Delete(ctx context.Context, id ReminderID) error
}
