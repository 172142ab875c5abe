package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/observability/logging"
)

const userIDKey = "user_id"

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthMiddleware requires a bearer token and stores the authenticated user id
// on the gin context.
func AuthMiddleware(users app.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "missing bearer token",
			})

			return
		}

		userID, err := users.Authenticate(c.Request.Context(), raw)
		if err != nil {
			slog.InfoContext(c.Request.Context(), "rejected bearer token",
				"error", err,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "invalid token",
			})

			return
		}

		c.Set(userIDKey, userID)

		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// withModule tags the request context so log records carry the module.
func withModule(module logging.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithModule(c.Request.Context(), module))
		c.Next()
	}
}

type AuthHandler struct {
	useCase app.UserUseCase
}

func NewAuthHandler(useCase app.UserUseCase) *AuthHandler {
	return &AuthHandler{
		useCase: useCase,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusCreated, UserResponse{
		ID:        output.ID,
		Username:  output.Username,
		CreatedAt: output.CreatedAt,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)

		return
	}

	output, err := h.useCase.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.useCase.DeleteUser(c.Request.Context(), app.DeleteUserInput{UserID: currentUserID(c)}); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	group := router.Group("/auth", withModule(logging.ModuleAuth))
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
		group.DELETE("/account", auth, h.DeleteAccount)
	}
}
