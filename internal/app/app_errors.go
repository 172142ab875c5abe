package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal error")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInUse         = errors.New("resource in use")
	// ErrDeliveryFailed is returned by on-demand sends (test, trigger).
	ErrDeliveryFailed = errors.New("notification delivery failed")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// InUseError reports which kind of resource still references a notification
// service.
type InUseError struct {
	Kind string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("resource in use: still referenced by a %s", e.Kind)
}

func (e *InUseError) Unwrap() error {
	return ErrInUse
}
