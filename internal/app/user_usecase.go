package app

import (
	"context"
	"time"
)

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type DeleteUserInput struct {
	UserID string
}

type UserOutput struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

type TokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (UserOutput, error)
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	// Authenticate verifies a bearer token and returns the user id it was
	// issued for.
	Authenticate(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, input DeleteUserInput) error
}
