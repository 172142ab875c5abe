package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/scheduler"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTriggerHandleSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := notify.NewMockDispatcher(ctrl)

	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	anchor := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	daily, err := domain.NewIntervalRepeat(domain.RepeatDays, 1)
	require.NoError(t, err)

	repo := newMemDueSet()
	oneShot := repo.add("once", due, domain.NoRepeat(), time.Time{})
	repeating := repo.add("daily", due, daily, anchor)
	later := repo.add("later", due.Add(time.Hour), domain.NoRepeat(), time.Time{})

	dispatcher.EXPECT().Send(gomock.Any(), "once", "", []string{"json://hooks.example.com/once"}).Return(nil)
	dispatcher.EXPECT().Send(gomock.Any(), "daily", "", []string{"json://hooks.example.com/daily"}).Return(nil)

	trigger := scheduler.NewTrigger(repo, dispatcher, nil, nil).WithClock(fixedClock(due.Add(2 * time.Second)))

	require.NoError(t, trigger.Handle(context.Background(), due))

	_, ok := repo.timeOf(oneShot)
	assert.False(t, ok, "one-shot reminder must be deleted")

	next, ok := repo.timeOf(repeating)
	require.True(t, ok)
	assert.Equal(t, due.Add(24*time.Hour), next)

	untouched, ok := repo.timeOf(later)
	require.True(t, ok)
	assert.Equal(t, due.Add(time.Hour), untouched)
}

func TestTriggerHandleLateFireSkipsMissedOccurrencesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := notify.NewMockDispatcher(ctrl)

	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	hourly, err := domain.NewIntervalRepeat(domain.RepeatHours, 1)
	require.NoError(t, err)

	repo := newMemDueSet()
	id := repo.add("hourly", due, hourly, due)

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	trigger := scheduler.NewTrigger(repo, dispatcher, nil, nil).
		WithClock(fixedClock(due.Add(3*time.Hour + 10*time.Minute)))

	require.NoError(t, trigger.Handle(context.Background(), due))

	next, ok := repo.timeOf(id)
	require.True(t, ok)
	assert.Equal(t, due.Add(4*time.Hour), next)
}

func TestTriggerHandleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := notify.NewMockDispatcher(ctrl)
	publisher := pubsub.NewMockPublisher(ctrl)

	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	weekly, err := domain.NewWeekdayRepeat([]int{0})
	require.NoError(t, err)

	repo := newMemDueSet()
	broken := repo.add("broken", due, weekly, due)
	undeliverable := repo.add("undeliverable", due, domain.NoRepeat(), time.Time{})

	storeErr := errors.New("disk full")
	repo.setErr[broken] = storeErr

	dispatcher.EXPECT().Send(gomock.Any(), "broken", gomock.Any(), gomock.Any()).Return(nil)
	dispatcher.EXPECT().Send(gomock.Any(), "undeliverable", gomock.Any(), gomock.Any()).
		Return(errors.New("webhook responded with status 500"))

	publisher.EXPECT().PublishReminderTriggered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e pubsub.ReminderTriggeredEvent) error {
			if e.ReminderID == undeliverable.String() {
				assert.Contains(t, e.DeliveryError, "500")
				assert.Nil(t, e.NextTime)
			} else {
				assert.Empty(t, e.DeliveryError)
				require.NotNil(t, e.NextTime)
				assert.Equal(t, due.Add(7*24*time.Hour), *e.NextTime)
			}
			return errors.New("broker down")
		}).Times(2)

	trigger := scheduler.NewTrigger(repo, dispatcher, publisher, nil).WithClock(fixedClock(due))

	err = trigger.Handle(context.Background(), due)

	assert.ErrorIs(t, err, storeErr)

	_, ok := repo.timeOf(undeliverable)
	assert.False(t, ok, "delivery failure must not keep a one-shot reminder")
}
