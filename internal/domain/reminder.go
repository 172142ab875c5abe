package domain

import (
	"time"
)

// pastTolerance absorbs clock skew between the client and the server.
const pastTolerance = time.Minute

type Reminder struct {
	id           ReminderID
	userID       UserID
	title        string
	text         string
	time         time.Time
	originalTime time.Time
	repeat       Repeat
	color        Color
	services     []NotificationServiceID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReminder(
	userID UserID,
	title string,
	text string,
	at time.Time,
	repeat Repeat,
	color Color,
	services []NotificationServiceID,
) (*Reminder, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	services, err := validateServices(services)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	r := &Reminder{
		id:        NewReminderID(),
		userID:    userID,
		title:     title,
		text:      text,
		color:     color,
		services:  services,
		createdAt: now,
		updatedAt: now,
	}

	if err := r.schedule(at, repeat, now); err != nil {
		return nil, err
	}

	return r, nil
}

func ReconstituteReminder(
	id ReminderID,
	userID UserID,
	title string,
	text string,
	at time.Time,
	originalTime time.Time,
	repeat Repeat,
	color Color,
	services []NotificationServiceID,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:           id,
		userID:       userID,
		title:        title,
		text:         text,
		time:         at,
		originalTime: originalTime,
		repeat:       repeat,
		color:        color,
		services:     services,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// schedule sets time (and the anchor for repeating reminders) from a user
// supplied moment.
func (r *Reminder) schedule(at time.Time, repeat Repeat, now time.Time) error {
	at = RoundToSecond(at)

	if !repeat.IsRepeating() {
		if at.Before(now.Add(-pastTolerance)) {
			return ErrPastReminderTime
		}

		r.time = at
		r.originalTime = time.Time{}
		r.repeat = repeat

		return nil
	}

	r.originalTime = at
	r.repeat = repeat
	r.time = NextTime(at, repeat, now)

	return nil
}

// Reschedule changes the due moment and/or repeat spec. A zero at keeps the
// current anchor (or the current due time for one-shot reminders).
func (r *Reminder) Reschedule(at time.Time, repeat Repeat) error {
	if at.IsZero() {
		at = r.time
		if r.repeat.IsRepeating() && !r.originalTime.IsZero() {
			at = r.originalTime
		}
	}

	now := time.Now()
	if err := r.schedule(at, repeat, now); err != nil {
		return err
	}

	r.updatedAt = now

	return nil
}

func (r *Reminder) UpdateContent(title, text string, color Color) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	r.title = title
	r.text = text
	r.color = color
	r.updatedAt = time.Now()

	return nil
}

func (r *Reminder) ReplaceServices(services []NotificationServiceID) error {
	services, err := validateServices(services)
	if err != nil {
		return err
	}

	r.services = services
	r.updatedAt = time.Now()

	return nil
}

func (r *Reminder) IsRepeating() bool {
	return r.repeat.IsRepeating()
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) UserID() UserID {
	return r.userID
}

func (r *Reminder) Title() string {
	return r.title
}

func (r *Reminder) Text() string {
	return r.text
}

func (r *Reminder) Time() time.Time {
	return r.time
}

// OriginalTime is the zero time for one-shot reminders.
func (r *Reminder) OriginalTime() time.Time {
	return r.originalTime
}

func (r *Reminder) Repeat() Repeat {
	return r.repeat
}

func (r *Reminder) Color() Color {
	return r.color
}

func (r *Reminder) Services() []NotificationServiceID {
	return r.services
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}

// RoundToSecond drops sub-second precision, rounding half up.
func RoundToSecond(t time.Time) time.Time {
	return t.UTC().Round(time.Second)
}
