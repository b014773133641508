package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-at-least-32-chars!!")

	LoadConfig()
	require.NotNil(t, Cfg)

	assert.Equal(t, "8080", Cfg.Port)
	assert.Equal(t, "./foresight.db", Cfg.DatabasePath)
	assert.Equal(t, "info", Cfg.LogLevel)
	assert.Equal(t, 60*time.Minute, Cfg.AccessTokenExpiry)
	assert.Equal(t, 168*time.Hour, Cfg.RefreshTokenExpiry)
	assert.Equal(t, 6, Cfg.RecurrenceHorizon)
	assert.Equal(t, int64(5*1024*1024), Cfg.MaxImportSizeBytes)
	assert.Equal(t, "http://localhost:3000", Cfg.FrontendBaseURL)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-at-least-32-chars!!")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECURRENCE_HORIZON", "12")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("MAX_IMPORT_SIZE_BYTES", "1048576")

	LoadConfig()
	require.NotNil(t, Cfg)

	assert.Equal(t, "9090", Cfg.Port)
	assert.Equal(t, "debug", Cfg.LogLevel)
	assert.Equal(t, 12, Cfg.RecurrenceHorizon)
	assert.Equal(t, 15*time.Minute, Cfg.AccessTokenExpiry)
	assert.Equal(t, int64(1048576), Cfg.MaxImportSizeBytes)
}

func TestLoadConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-value-at-least-32-chars!!")
	t.Setenv("RECURRENCE_HORIZON", "lots")
	t.Setenv("MAX_IMPORT_SIZE_BYTES", "big")

	LoadConfig()
	require.NotNil(t, Cfg)

	assert.Equal(t, 6, Cfg.RecurrenceHorizon)
	assert.Equal(t, int64(5*1024*1024), Cfg.MaxImportSizeBytes)
}
