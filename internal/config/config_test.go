package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://bookstore-dev@localhost:5432/books?sslmode=disable")
}

func TestNewServerConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int32(100), cfg.RateLimitRPS)
	assert.Equal(t, int64(1048576), cfg.MaxRequestBodySize)
	assert.Equal(t, int32(4), cfg.DBMaxConnections)
}

func TestNewServerConfig_MissingDatabaseURL(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv removes the variable for the test
	t.Setenv("DATABASE_URL", "placeholder")
	os.Unsetenv("DATABASE_URL")

	_, err := NewServerConfig()
	assert.Error(t, err)
}

func TestNewServerConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port too low", "PORT", "0"},
		{"port too high", "PORT", "70000"},
		{"unknown environment", "ENVIRONMENT", "production"},
		{"body size too small", "MAX_REQUEST_BODY_SIZE", "100"},
		{"max connections zero", "DB_MAX_CONNECTIONS", "0"},
		{"min connections above max", "DB_MIN_CONNECTIONS", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := NewServerConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := NewClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "info", cfg.LogLevel)
}
