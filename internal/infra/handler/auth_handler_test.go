package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-remind-scheduler/internal/app"
	"github.com/KasumiMercury/primind-remind-scheduler/internal/infra/handler"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, subject string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	return signed
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := app.NewUserUseCase(nil, nil, app.AuthConfig{Secret: testSecret, TTL: time.Hour})

	router := gin.New()
	router.GET("/whoami", handler.AuthMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	return router
}

func TestAuthMiddlewareSuccess(t *testing.T) {
	router := setupAuthRouter()
	userID := uuid.Must(uuid.NewV7()).String()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID, time.Now().Add(time.Hour)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID, body["user_id"])
}

func TestAuthMiddlewareError(t *testing.T) {
	router := setupAuthRouter()
	userID := uuid.Must(uuid.NewV7()).String()

	tests := []struct {
		name          string
		authorization string
	}{
		{
			name:          "missing header",
			authorization: "",
		},
		{
			name:          "not a bearer token",
			authorization: "Basic dXNlcjpwYXNz",
		},
		{
			name:          "malformed token",
			authorization: "Bearer not-a-jwt",
		},
		{
			name:          "wrong secret",
			authorization: "Bearer " + signToken(t, []byte("other-secret"), userID, time.Now().Add(time.Hour)),
		},
		{
			name:          "expired token",
			authorization: "Bearer " + signToken(t, testSecret, userID, time.Now().Add(-time.Minute)),
		},
		{
			name:          "subject is not a user id",
			authorization: "Bearer " + signToken(t, testSecret, "alice", time.Now().Add(time.Hour)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var response handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "unauthorized", response.Error)
		})
	}
}

type fixedArmed struct {
	at    time.Time
	armed bool
}

func (f fixedArmed) Armed() (time.Time, bool) {
	return f.at, f.armed
}

func TestSchedulerStatusSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		reporter fixedArmed
		wantNext bool
	}{
		{
			name:     "armed",
			reporter: fixedArmed{at: at, armed: true},
			wantNext: true,
		},
		{
			name:     "idle",
			reporter: fixedArmed{},
			wantNext: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler.NewSchedulerHandler(tt.reporter).RegisterRoutes(router.Group("/api/v1"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/scheduler", nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var response handler.SchedulerStatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.reporter.armed, response.Armed)

			if tt.wantNext {
				require.NotNil(t, response.NextTime)
				assert.True(t, at.Equal(*response.NextTime))
			} else {
				assert.Nil(t, response.NextTime)
			}
		})
	}
}
