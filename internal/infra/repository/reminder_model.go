package repository

import (
	"database/sql"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

func (m *ReminderModel) repeat() (domain.Repeat, error) {
	var (
		quantity *string
		interval *int
		weekdays []int
	)

	if m.RepeatQuantity.Valid {
		quantity = &m.RepeatQuantity.String
	}

	if m.RepeatInterval.Valid {
		i := int(m.RepeatInterval.Int32)
		interval = &i
	}

	if m.Weekdays.Valid {
		days, err := domain.WeekdaysFromString(m.Weekdays.String)
		if err != nil {
			return domain.Repeat{}, err
		}

		weekdays = days
	}

	return domain.NewRepeat(quantity, interval, weekdays)
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	id, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	repeat, err := m.repeat()
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

	var original time.Time
	if m.OriginalTime.Valid {
		original = fromUnix(m.OriginalTime.Int64)
	}

	return domain.ReconstituteReminder(
		id,
		userID,
		m.Title,
		m.Text,
		fromUnix(m.Time),
		original,
		repeat,
		color,
		services,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

// ToDue builds the trigger read model; NotificationServices must be preloaded.
func (m *ReminderModel) ToDue() (domain.DueReminder, error) {
	id, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return domain.DueReminder{}, err
	}

	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return domain.DueReminder{}, err
	}

	repeat, err := m.repeat()
	if err != nil {
		return domain.DueReminder{}, err
	}

	due := domain.DueReminder{
		ID:         id,
		UserID:     userID,
		Title:      m.Title,
		Text:       m.Text,
		Repeat:     repeat,
		TargetURLs: serviceURLs(m.NotificationServices),
	}

	if m.OriginalTime.Valid {
		due.OriginalTime = fromUnix(m.OriginalTime.Int64)
	}

	return due, nil
}

func FromReminder(e *domain.Reminder) *ReminderModel {
	m := &ReminderModel{
		ID:                   e.ID().String(),
		UserID:               e.UserID().String(),
		Title:                e.Title(),
		Text:                 e.Text(),
		Time:                 e.Time().Unix(),
		Color:                e.Color().String(),
		NotificationServices: serviceRefs(e.Services()),
		CreatedAt:            e.CreatedAt(),
		UpdatedAt:            e.UpdatedAt(),
	}

	if !e.OriginalTime().IsZero() {
		m.OriginalTime = sql.NullInt64{Int64: e.OriginalTime().Unix(), Valid: true}
	}

	repeat := e.Repeat()

	switch repeat.Mode() {
	case domain.RepeatInterval:
		m.RepeatQuantity = sql.NullString{String: string(repeat.Quantity()), Valid: true}
		if interval := repeat.Interval(); interval >= 1 && interval <= domain.MaxRepeatInterval {
			m.RepeatInterval = sql.NullInt32{Int32: int32(interval), Valid: true}
		}
	case domain.RepeatWeekdays:
		m.Weekdays = sql.NullString{String: repeat.Weekdays().String(), Valid: true}
	case domain.RepeatNone:
	}

	return m
}
