package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/domain"
)

type AuthConfig struct {
	Secret     []byte
	TTL        time.Duration
	BcryptCost int
}

type userUseCaseImpl struct {
	repo      domain.UserRepository
	scheduler Scheduler
	auth      AuthConfig
	now       func() time.Time
}

func NewUserUseCase(repo domain.UserRepository, scheduler Scheduler, auth AuthConfig) UserUseCase {
	if auth.BcryptCost == 0 {
		auth.BcryptCost = bcrypt.DefaultCost
	}

	return &userUseCaseImpl{
		repo:      repo,
		scheduler: scheduler,
		auth:      auth,
		now:       time.Now,
	}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, input RegisterInput) (UserOutput, error) {
	if input.Password == "" {
		return UserOutput{}, NewValidationError("password", domain.ErrEmptyPassword.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.auth.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return UserOutput{}, NewValidationError("password", err.Error())
		}

		return UserOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	user, err := domain.NewUser(input.Username, string(hash))
	if err != nil {
		return UserOutput{}, contentError(err)
	}

	if err := uc.repo.Save(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return UserOutput{}, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}

		slog.ErrorContext(ctx, "failed to save user",
			"error", err,
		)

		return UserOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "user registered",
		"user_id", user.ID().String(),
	)

	return UserOutput{
		ID:        user.ID().String(),
		Username:  user.Username(),
		CreatedAt: user.CreatedAt(),
	}, nil
}

func (uc *userUseCaseImpl) Login(ctx context.Context, input LoginInput) (TokenOutput, error) {
	user, err := uc.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return TokenOutput{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}

		return TokenOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(input.Password)); err != nil {
		return TokenOutput{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	now := uc.now()
	expiresAt := now.Add(uc.auth.TTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(uc.auth.Secret)
	if err != nil {
		return TokenOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "user logged in",
		"user_id", user.ID().String(),
	)

	return TokenOutput{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *userUseCaseImpl) Authenticate(_ context.Context, raw string) (string, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return uc.auth.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	userID, err := domain.UserIDFromString(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	return userID.String(), nil
}

func (uc *userUseCaseImpl) DeleteUser(ctx context.Context, input DeleteUserInput) error {
	userID, err := parseUserID(input.UserID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "failed to delete user",
			"error", err,
			"user_id", input.UserID,
		)

		return repoError(err, domain.ErrUserNotFound)
	}

	rearm(ctx, uc.scheduler)

	slog.InfoContext(ctx, "user deleted",
		"user_id", input.UserID,
	)

	return nil
}
