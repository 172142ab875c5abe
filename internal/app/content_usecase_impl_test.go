package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/repository"
)

func TestStaticReminderTriggerSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f, cleanup := setupFixture(t)
	defer cleanup()

	useCase := app.NewStaticReminderUseCase(
		repository.NewStaticReminderRepository(f.testDB.DB),
		f.services,
		f.dispatcher,
	)
	ctx := context.Background()

	created, err := useCase.CreateStaticReminder(ctx, app.CreateContentInput{
		UserID:               f.userID,
		Title:                "Dinner is ready",
		Text:                 "come downstairs",
		NotificationServices: f.serviceIDs,
	})
	require.NoError(t, err)

	f.dispatcher.EXPECT().
		Send(gomock.Any(), "Dinner is ready", "come downstairs", gomock.InAnyOrder([]string{"json://hooks.example.com/a", "tgram://123:abc/42"})).
		Return(nil)

	require.NoError(t, useCase.TriggerStaticReminder(ctx, app.ResourceInput{UserID: f.userID, ID: created.ID}))

	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bot blocked"))

	err = useCase.TriggerStaticReminder(ctx, app.ResourceInput{UserID: f.userID, ID: created.ID})
	assert.ErrorIs(t, err, app.ErrDeliveryFailed)
}

func TestStaticReminderUpdateSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f, cleanup := setupFixture(t)
	defer cleanup()

	useCase := app.NewStaticReminderUseCase(
		repository.NewStaticReminderRepository(f.testDB.DB),
		f.services,
		f.dispatcher,
	)
	ctx := context.Background()

	created, err := useCase.CreateStaticReminder(ctx, app.CreateContentInput{
		UserID:               f.userID,
		Title:                "Break",
		NotificationServices: f.serviceIDs,
	})
	require.NoError(t, err)

	updated, err := useCase.UpdateStaticReminder(ctx, app.UpdateContentInput{
		UserID: f.userID,
		ID:     created.ID,
		Color:  strPtr("#00ff00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Break", updated.Title)
	assert.Equal(t, "#00ff00", updated.Color)

	found, err := useCase.SearchStaticReminders(ctx, app.SearchInput{UserID: f.userID, Query: "brea"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), found.Count)

	require.NoError(t, useCase.DeleteStaticReminder(ctx, app.ResourceInput{UserID: f.userID, ID: created.ID}))

	_, err = useCase.GetStaticReminder(ctx, app.ResourceInput{UserID: f.userID, ID: created.ID})
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestTemplateSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	f, cleanup := setupFixture(t)
	defer cleanup()

	useCase := app.NewTemplateUseCase(repository.NewTemplateRepository(f.testDB.DB), f.services)
	ctx := context.Background()

	for _, title := range []string{"Standup", "Retro", "Planning"} {
		_, err := useCase.CreateTemplate(ctx, app.CreateContentInput{
			UserID:               f.userID,
			Title:                title,
			Text:                 "meeting",
			NotificationServices: f.serviceIDs[:1],
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		sortBy   string
		expected []string
	}{
		{name: "default is title", sortBy: "", expected: []string{"Planning", "Retro", "Standup"}},
		{name: "title reversed", sortBy: "title_reversed", expected: []string{"Standup", "Retro", "Planning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := useCase.ListTemplates(ctx, app.ListInput{UserID: f.userID, SortBy: tt.sortBy})
			require.NoError(t, err)

			titles := make([]string, 0, len(list.Items))
			for _, item := range list.Items {
				titles = append(titles, item.Title)
			}

			assert.Equal(t, tt.expected, titles)
		})
	}

	_, err := useCase.ListTemplates(ctx, app.ListInput{UserID: f.userID, SortBy: "time"})
	assert.True(t, app.IsValidationError(err))

	found, err := useCase.SearchTemplates(ctx, app.SearchInput{UserID: f.userID, Query: "RET"})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Retro", found.Items[0].Title)
}
