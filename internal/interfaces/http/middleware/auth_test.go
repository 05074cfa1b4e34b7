// internal/interfaces/http/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-api"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-32-chars!",
			SessionTokenExpiry: time.Hour,
		},
	}
}

func newProtectedRouter(cfg *config.Config, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/")
	group.Use(AuthMiddleware(cfg))
	if adminOnly {
		group.Use(AdminMiddleware())
	}
	group.GET("/protected", func(c *gin.Context) {
		sessionID, _ := GetSessionIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "email": email})
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	token, err := auth.NewJWTManager(cfg).GenerateSessionToken("session-1", "user@example.com", false)
	require.NoError(t, err)

	w := requestWithToken(newProtectedRouter(cfg, false), token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "session-1")
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := requestWithToken(newProtectedRouter(testConfig(), false), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newProtectedRouter(testConfig(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := requestWithToken(newProtectedRouter(testConfig(), false), "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddleware(t *testing.T) {
	cfg := testConfig()
	manager := auth.NewJWTManager(cfg)
	router := newProtectedRouter(cfg, true)

	adminToken, err := manager.GenerateSessionToken("session-1", "admin@fashionstore.com", true)
	require.NoError(t, err)
	w := requestWithToken(router, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	userToken, err := manager.GenerateSessionToken("session-2", "user@example.com", false)
	require.NoError(t, err)
	w = requestWithToken(router, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
