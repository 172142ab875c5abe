package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/testutil"
)

func seedUser(t *testing.T, testDB *testutil.TestDB, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(username, "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(testDB.DB).Save(context.Background(), user))

	return user
}

func seedService(t *testing.T, testDB *testutil.TestDB, userID domain.UserID, url string) *domain.NotificationService {
	t.Helper()

	service, err := domain.NewNotificationService(userID, "service", url)
	require.NoError(t, err)
	require.NoError(t, repository.NewNotificationServiceRepository(testDB.DB).Save(context.Background(), service))

	return service
}

func seedReminder(
	t *testing.T,
	testDB *testutil.TestDB,
	userID domain.UserID,
	title string,
	at time.Time,
	repeat domain.Repeat,
	services ...domain.NotificationServiceID,
) *domain.Reminder {
	t.Helper()

	reminder, err := domain.NewReminder(userID, title, "body of "+title, at, repeat, domain.Color{}, services)
	require.NoError(t, err)
	require.NoError(t, repository.NewReminderRepository(testDB.DB).Save(context.Background(), reminder))

	return reminder
}
