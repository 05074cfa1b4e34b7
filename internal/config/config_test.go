// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Server: ServerConfig{Port: "8080"},
		Redis:  RedisConfig{Host: "localhost", Port: "6379"},
		JWT: JWTConfig{
			Secret:             "test-secret-key-that-is-32-chars!",
			SessionTokenExpiry: time.Hour,
		},
		Security: SecurityConfig{
			AdminEmails: []string{"admin@fashionstore.com"},
		},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionTokenExpiry)
	assert.Contains(t, cfg.Security.AdminEmails, "admin@fashionstore.com")
	assert.Contains(t, cfg.Security.AdminEmails, "manager@fashionstore.com")
	assert.Contains(t, cfg.Security.AdminEmails, "supervisor@fashionstore.com")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "short JWT secret",
			mutate:  func(c *Config) { c.JWT.Secret = "short" },
			wantErr: "JWT_SECRET",
		},
		{
			name:    "missing redis host",
			mutate:  func(c *Config) { c.Redis.Host = "" },
			wantErr: "REDIS_HOST",
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "APP_PORT",
		},
		{
			name:    "empty admin allow-list",
			mutate:  func(c *Config) { c.Security.AdminEmails = nil },
			wantErr: "ADMIN_EMAILS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
