// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-api"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-32-chars!",
			SessionTokenExpiry: time.Hour,
		},
	}
}

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.GenerateSessionToken("session-123", "admin@fashionstore.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionID)
	assert.Equal(t, "admin@fashionstore.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "session:session-123", claims.Subject)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.GenerateSessionToken("session-123", "user@example.com", false)
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.Secret = "another-secret-key-of-32-chars!!"
	other := NewJWTManager(otherCfg)

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.SessionTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateSessionToken("session-123", "user@example.com", false)
	require.NoError(t, err)

	_, err = manager.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	_, err := manager.ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing prefix", "abc.def.ghi", ""},
		{"empty header", "", ""},
		{"prefix only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTokenFromHeader(tt.header))
		})
	}
}
