package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

func TestNewUserSuccess(t *testing.T) {
	user, err := domain.NewUser("alice_01", "hash")

	require.NoError(t, err)
	assert.Equal(t, "alice_01", user.Username())
	assert.Equal(t, "hash", user.PasswordHash())
	assert.False(t, user.ID().IsZero())
}

func TestNewUserError(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		hash        string
		expectedErr error
	}{
		{name: "empty username", username: "", hash: "hash", expectedErr: domain.ErrInvalidUsername},
		{name: "space in username", username: "al ice", hash: "hash", expectedErr: domain.ErrInvalidUsername},
		{name: "username too long", username: strings.Repeat("a", 65), hash: "hash", expectedErr: domain.ErrInvalidUsername},
		{name: "empty hash", username: "alice", hash: "", expectedErr: domain.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewUser(tt.username, tt.hash)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUserIDFromStringSuccess(t *testing.T) {
	id := domain.NewUserID()

	parsed, err := domain.UserIDFromString(id.String())

	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))
}

func TestUserIDFromStringError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a uuid", input: "user-1"},
		{name: "uuid v4", input: uuid.NewString()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.UserIDFromString(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidUserID)
		})
	}
}

func TestNewNotificationServiceError(t *testing.T) {
	_, err := domain.NewNotificationService(domain.NewUserID(), "phone", "not a url")

	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestValidateTargetURLSuccess(t *testing.T) {
	for _, raw := range []string{
		"tgram://123456:ABC-def/42",
		"json://hooks.example.com/reminders",
		"mailto://me:pw@smtp.example.com?to=a@x.com",
	} {
		assert.NoError(t, domain.ValidateTargetURL(raw), raw)
	}
}
