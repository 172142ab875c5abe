package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
)

var testSchemes = []string{"json", "tgram"}

func TestNotificationServiceValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := notify.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Schemes().Return(testSchemes).AnyTimes()

	useCase := app.NewNotificationServiceUseCase(nil, dispatcher, nil)

	tests := []struct {
		name string
		url  string
	}{
		{name: "no scheme", url: "hooks.example.com"},
		{name: "empty target", url: "json://"},
		{name: "unsupported scheme", url: "gotify://host/token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := useCase.TestNotificationService(context.Background(), app.TestNotificationServiceInput{URL: tt.url})

			var validationErr *app.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "url", validationErr.Field)
		})
	}
}

func TestNotificationServiceTestSendSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := notify.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().Schemes().Return(testSchemes).AnyTimes()

	useCase := app.NewNotificationServiceUseCase(nil, dispatcher, nil)

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), []string{"json://h/ok"}).Return(nil)
	require.NoError(t, useCase.TestNotificationService(context.Background(), app.TestNotificationServiceInput{URL: "json://h/ok"}))

	dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), []string{"json://h/down"}).Return(errors.New("503"))
	err := useCase.TestNotificationService(context.Background(), app.TestNotificationServiceInput{URL: "json://h/down"})
	assert.ErrorIs(t, err, app.ErrDeliveryFailed)

	assert.Equal(t, testSchemes, useCase.AvailableSchemes(context.Background()))
}

func TestDeleteNotificationServiceInUseError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f, cleanup := setupFixture(t)
	defer cleanup()

	f.dispatcher.EXPECT().Schemes().Return(testSchemes).AnyTimes()
	useCase := app.NewNotificationServiceUseCase(f.services, f.dispatcher, f.scheduler)

	f.scheduler.EXPECT().Submit(gomock.Any())

	reminder, err := f.reminderUseCase().CreateReminder(context.Background(), app.CreateReminderInput{
		UserID:               f.userID,
		Title:                "uses the first service",
		Time:                 time.Now().Add(time.Hour),
		NotificationServices: f.serviceIDs[:1],
	})
	require.NoError(t, err)

	err = useCase.DeleteNotificationService(context.Background(), app.DeleteNotificationServiceInput{
		UserID: f.userID,
		ID:     f.serviceIDs[0],
	})

	var inUse *app.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "reminder", inUse.Kind)

	f.scheduler.EXPECT().FindNextReminder(gomock.Any()).Return(nil)

	require.NoError(t, useCase.DeleteNotificationService(context.Background(), app.DeleteNotificationServiceInput{
		UserID:      f.userID,
		ID:          f.serviceIDs[0],
		DeleteUsing: true,
	}))

	_, err = f.reminderUseCase().GetReminder(context.Background(), app.GetReminderInput{UserID: f.userID, ID: reminder.ID})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestUpdateNotificationServiceSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f, cleanup := setupFixture(t)
	defer cleanup()

	f.dispatcher.EXPECT().Schemes().Return(testSchemes).AnyTimes()
	useCase := app.NewNotificationServiceUseCase(f.services, f.dispatcher, f.scheduler)

	updated, err := useCase.UpdateNotificationService(context.Background(), app.UpdateNotificationServiceInput{
		UserID: f.userID,
		ID:     f.serviceIDs[1],
		URL:    strPtr("tgram://999:xyz/@channel"),
	})
	require.NoError(t, err)
	assert.Equal(t, "service", updated.Title)
	assert.Equal(t, "tgram://999:xyz/@channel", updated.URL)

	list, err := useCase.ListNotificationServices(context.Background(), app.ListInput{UserID: f.userID})
	require.NoError(t, err)
	assert.Equal(t, int32(2), list.Count)
}
