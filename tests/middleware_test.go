package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const middlewareTestSecret = "middleware-test-secret"

func setupAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint("user_id"),
			"username": c.GetString("username"),
			"is_staff": c.GetBool("is_staff"),
		})
	})
	return router
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(middlewareTestSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", middlewareTestSecret)

	fullClaims := jwt.MapClaims{
		"user_id":  float64(7),
		"username": "celine",
		"is_staff": true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "valid token passes through",
			authHeader:     "Bearer " + signToken(t, fullClaims),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Authorization header is required",
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid authorization header format",
		},
		{
			name: "signed token missing user_id claim",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"username": "celine",
				"is_staff": false,
				"exp":      time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token claims",
		},
		{
			name: "signed token with wrong claim type",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id":  "7",
				"username": "celine",
				"is_staff": false,
				"exp":      time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid token claims",
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"user_id":  float64(7),
				"username": "celine",
				"is_staff": false,
				"exp":      time.Now().Add(-time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthTestRouter()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Contains(t, w.Body.String(), tt.expectedMsg)
			}
		})
	}
}
