package domain

import (
	"regexp"
	"time"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,64}$`)

type User struct {
	id           UserID
	username     string
	passwordHash string
	createdAt    time.Time
}

// NewUser expects an already hashed password; hashing lives in the app layer.
func NewUser(username, passwordHash string) (*User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	return &User{
		id:           NewUserID(),
		username:     username,
		passwordHash: passwordHash,
		createdAt:    time.Now(),
	}, nil
}

func ReconstituteUser(id UserID, username, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() UserID           { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
