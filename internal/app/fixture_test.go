package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/notify"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/testutil"
)

type fixture struct {
	testDB     *testutil.TestDB
	dispatcher *notify.MockDispatcher
	scheduler  *app.MockScheduler
	users      domain.UserRepository
	services   domain.NotificationServiceRepository
	userID     string
	serviceIDs []string
}

// setupFixture starts a database with one user owning two notification
// services.
func setupFixture(t *testing.T) (*fixture, func()) {
	t.Helper()

	testDB := testutil.SetupTestDB(t)
	ctrl := gomock.NewController(t)

	f := &fixture{
		testDB:     testDB,
		dispatcher: notify.NewMockDispatcher(ctrl),
		scheduler:  app.NewMockScheduler(ctrl),
		users:      repository.NewUserRepository(testDB.DB),
		services:   repository.NewNotificationServiceRepository(testDB.DB),
	}

	user, err := domain.NewUser("alice", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, f.users.Save(context.Background(), user))

	f.userID = user.ID().String()

	for _, url := range []string{"json://hooks.example.com/a", "tgram://123:abc/42"} {
		service, err := domain.NewNotificationService(user.ID(), "service", url)
		require.NoError(t, err)
		require.NoError(t, f.services.Save(context.Background(), service))

		f.serviceIDs = append(f.serviceIDs, service.ID().String())
	}

	return f, func() {
		testDB.CleanTable(t)
		testDB.TeardownTestDB(t)
	}
}

func (f *fixture) reminderUseCase() app.ReminderUseCase {
	return app.NewReminderUseCase(
		repository.NewReminderRepository(f.testDB.DB),
		f.services,
		f.dispatcher,
		f.scheduler,
	)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// sameInstant matches a time.Time by instant, ignoring location.
type sameInstant time.Time

func (m sameInstant) Matches(x any) bool {
	t, ok := x.(time.Time)

	return ok && t.Equal(time.Time(m))
}

func (m sameInstant) String() string {
	return "is the instant " + time.Time(m).String()
}
