package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	var inUseErr *app.InUseError
	if errors.As(err, &inUseErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "in_use",
			Message: inUseErr.Error(),
			Kind:    inUseErr.Kind,
		})

		return
	}

	switch {
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
		})
	case errors.Is(err, app.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "invalid credentials",
		})
	case errors.Is(err, app.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "already_exists",
			Message: "resource already exists",
		})
	case errors.Is(err, app.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "delivery_failed",
			Message: err.Error(),
		})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "an internal error occurred",
		})
	}
}
