package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/testutil"
)

func TestReminderRepositorySaveSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	weekdays, err := domain.NewWeekdayRepeat([]int{0, 2, 4})
	require.NoError(t, err)

	monthly, err := domain.NewIntervalRepeat(domain.RepeatMonths, 1)
	require.NoError(t, err)

	widest, err := domain.NewIntervalRepeat(domain.RepeatMinutes, domain.MaxRepeatInterval)
	require.NoError(t, err)

	tests := []struct {
		name   string
		repeat domain.Repeat
	}{
		{name: "one-shot", repeat: domain.NoRepeat()},
		{name: "weekday repeat", repeat: weekdays},
		{name: "interval repeat", repeat: monthly},
		{name: "largest interval", repeat: widest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.CleanTable(t)

			user := seedUser(t, testDB, "alice")
			s1 := seedService(t, testDB, user.ID(), "json://hooks.example.com/1")
			s2 := seedService(t, testDB, user.ID(), "tgram://123:abc/42")

			reminder := seedReminder(t, testDB, user.ID(), tt.name, time.Now().Add(time.Hour), tt.repeat, s1.ID(), s2.ID())

			found, err := repo.FindByID(ctx, user.ID(), reminder.ID())

			require.NoError(t, err)
			assert.Equal(t, reminder.Time(), found.Time())
			assert.Equal(t, reminder.OriginalTime(), found.OriginalTime())
			assert.Equal(t, tt.repeat, found.Repeat())
			assert.ElementsMatch(t, reminder.Services(), found.Services())
		})
	}
}

func TestReminderRepositoryFindByIDError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)

	owner := seedUser(t, testDB, "owner")
	other := seedUser(t, testDB, "other")
	service := seedService(t, testDB, owner.ID(), "json://h/1")
	reminder := seedReminder(t, testDB, owner.ID(), "mine", time.Now().Add(time.Hour), domain.NoRepeat(), service.ID())

	_, err := repo.FindByID(context.Background(), other.ID(), reminder.ID())
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)

	_, err = repo.FindByID(context.Background(), owner.ID(), domain.NewReminderID())
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)
}

func TestReminderRepositoryUpdateSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	user := seedUser(t, testDB, "alice")
	s1 := seedService(t, testDB, user.ID(), "json://h/1")
	s2 := seedService(t, testDB, user.ID(), "json://h/2")

	daily, err := domain.NewIntervalRepeat(domain.RepeatDays, 1)
	require.NoError(t, err)

	reminder := seedReminder(t, testDB, user.ID(), "before", time.Now().Add(time.Hour), daily, s1.ID())

	require.NoError(t, reminder.UpdateContent("after", "new text", domain.Color{}))
	require.NoError(t, reminder.ReplaceServices([]domain.NotificationServiceID{s2.ID()}))
	require.NoError(t, reminder.Reschedule(time.Now().Add(2*time.Hour), domain.NoRepeat()))

	require.NoError(t, repo.Update(ctx, reminder))

	found, err := repo.FindByID(ctx, user.ID(), reminder.ID())
	require.NoError(t, err)

	assert.Equal(t, "after", found.Title())
	assert.Equal(t, "new text", found.Text())
	assert.False(t, found.IsRepeating())
	assert.True(t, found.OriginalTime().IsZero())
	assert.Equal(t, reminder.Time(), found.Time())
	assert.Equal(t, []domain.NotificationServiceID{s2.ID()}, found.Services())
}

func TestReminderRepositorySearchSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)

	user := seedUser(t, testDB, "alice")
	service := seedService(t, testDB, user.ID(), "json://h/1")

	seedReminder(t, testDB, user.ID(), "Water plants", time.Now().Add(time.Hour), domain.NoRepeat(), service.ID())
	seedReminder(t, testDB, user.ID(), "Pay rent", time.Now().Add(2*time.Hour), domain.NoRepeat(), service.ID())
	seedReminder(t, testDB, user.ID(), "100% done", time.Now().Add(3*time.Hour), domain.NoRepeat(), service.ID())

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "case insensitive title", query: "water", expected: []string{"Water plants"}},
		{name: "matches text", query: "body of pay", expected: []string{"Pay rent"}},
		{name: "percent is literal", query: "100%", expected: []string{"100% done"}},
		{name: "no match", query: "zzz", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.Search(context.Background(), user.ID(), tt.query)
			require.NoError(t, err)

			titles := make([]string, 0, len(found))
			for _, r := range found {
				titles = append(titles, r.Title())
			}

			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestReminderRepositoryDeleteSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewReminderRepository(testDB.DB)
	ctx := context.Background()

	user := seedUser(t, testDB, "alice")
	service := seedService(t, testDB, user.ID(), "json://h/1")
	reminder := seedReminder(t, testDB, user.ID(), "bye", time.Now().Add(time.Hour), domain.NoRepeat(), service.ID())

	require.NoError(t, repo.Delete(ctx, user.ID(), reminder.ID()))

	_, err := repo.FindByID(ctx, user.ID(), reminder.ID())
	assert.ErrorIs(t, err, domain.ErrReminderNotFound)

	var links int64
	require.NoError(t, testDB.DB.Table("reminder_services").Count(&links).Error)
	assert.Zero(t, links)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID(), reminder.ID()), domain.ErrReminderNotFound)
}
