package scheduler_test

import (
	"context"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type memDueSet struct {
	mu        sync.Mutex
	reminders map[domain.ReminderID]*memEntry
	minErr    error
	setErr    map[domain.ReminderID]error
}

type memEntry struct {
	due domain.DueReminder
	at  time.Time
}

func newMemDueSet() *memDueSet {
	return &memDueSet{
		reminders: make(map[domain.ReminderID]*memEntry),
		setErr:    make(map[domain.ReminderID]error),
	}
}

func (m *memDueSet) add(title string, at time.Time, repeat domain.Repeat, original time.Time) domain.ReminderID {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := domain.NewReminderID()
	m.reminders[id] = &memEntry{
		due: domain.DueReminder{
			ID:           id,
			UserID:       domain.NewUserID(),
			Title:        title,
			Repeat:       repeat,
			OriginalTime: original,
			TargetURLs:   []string{"json://hooks.example.com/" + title},
		},
		at: at,
	}

	return id
}

func (m *memDueSet) timeOf(id domain.ReminderID) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.reminders[id]
	if !ok {
		return time.Time{}, false
	}

	return e.at, true
}

func (m *memDueSet) MinDueTime(ctx context.Context) (time.Time, bool, error) {
	return m.MinDueTimeAfter(ctx, time.Time{})
}

func (m *memDueSet) MinDueTimeAfter(_ context.Context, after time.Time) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.minErr != nil {
		return time.Time{}, false, m.minErr
	}

	var (
		soonest time.Time
		found   bool
	)

	for _, e := range m.reminders {
		if !e.at.After(after) {
			continue
		}

		if !found || e.at.Before(soonest) {
			soonest, found = e.at, true
		}
	}

	return soonest, found, nil
}

func (m *memDueSet) RemindersDueAt(_ context.Context, t time.Time) ([]domain.DueReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var due []domain.DueReminder

	for _, e := range m.reminders {
		if e.at.Equal(t) {
			due = append(due, e.due)
		}
	}

	return due, nil
}

func (m *memDueSet) SetDueTime(_ context.Context, id domain.ReminderID, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.setErr[id]; err != nil {
		return err
	}

	e, ok := m.reminders[id]
	if !ok {
		return domain.ErrReminderNotFound
	}

	e.at = t

	return nil
}

func (m *memDueSet) Delete(_ context.Context, id domain.ReminderID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reminders[id]; !ok {
		return domain.ErrReminderNotFound
	}

	delete(m.reminders, id)

	return nil
}
