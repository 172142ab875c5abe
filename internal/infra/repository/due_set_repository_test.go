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

func TestDueSetRepositorySuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewDueSetRepository(testDB.DB)
	ctx := context.Background()

	_, ok, err := repo.MinDueTime(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	alice := seedUser(t, testDB, "alice")
	bob := seedUser(t, testDB, "bob")
	aliceHook := seedService(t, testDB, alice.ID(), "json://h/alice")
	bobBot := seedService(t, testDB, bob.ID(), "tgram://1:x/2")
	bobHook := seedService(t, testDB, bob.ID(), "json://h/bob")

	at := time.Now().Add(time.Hour)
	first := seedReminder(t, testDB, alice.ID(), "first", at, domain.NoRepeat(), aliceHook.ID())
	second := seedReminder(t, testDB, bob.ID(), "second", at, domain.NoRepeat(), bobBot.ID(), bobHook.ID())
	seedReminder(t, testDB, bob.ID(), "later", at.Add(time.Minute), domain.NoRepeat(), bobHook.ID())

	soonest, ok, err := repo.MinDueTime(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.Time(), soonest)

	after, ok, err := repo.MinDueTimeAfter(ctx, soonest)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.Time().Add(time.Minute), after)

	_, ok, err = repo.MinDueTimeAfter(ctx, after)
	require.NoError(t, err)
	assert.False(t, ok)

	due, err := repo.RemindersDueAt(ctx, soonest)
	require.NoError(t, err)
	require.Len(t, due, 2)

	byTitle := map[string]domain.DueReminder{}
	for _, d := range due {
		byTitle[d.Title] = d
	}

	assert.Equal(t, []string{"json://h/alice"}, byTitle["first"].TargetURLs)
	assert.ElementsMatch(t, []string{"tgram://1:x/2", "json://h/bob"}, byTitle["second"].TargetURLs)
	assert.Equal(t, "body of second", byTitle["second"].Text)

	require.NoError(t, repo.Delete(ctx, first.ID()))
	require.NoError(t, repo.SetDueTime(ctx, second.ID(), at.Add(2*time.Hour)))

	soonest, ok, err = repo.MinDueTime(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.Time().Add(time.Minute), soonest)
}

func TestDueSetRepositoryError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewDueSetRepository(testDB.DB)
	ctx := context.Background()

	missing := domain.NewReminderID()

	assert.ErrorIs(t, repo.SetDueTime(ctx, missing, time.Now()), domain.ErrReminderNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing), domain.ErrReminderNotFound)
}
