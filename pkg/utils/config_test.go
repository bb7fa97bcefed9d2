package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks variables a developer shell may export so defaults and
// file values are what the test sees.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	clearEnv(t, "PORT", "DB_HOST", "RATE_LIMIT_RPS", "CORS_ALLOWED_ORIGINS", "PUBLIC_BASE_URL")

	config, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "localhost", config.Database.Host)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, 15*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, config.Server.CORSAllowedOrigins)
	assert.False(t, config.RateLimit.Enabled())
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	clearEnv(t, "PORT", "DB_NAME", "PUBLIC_BASE_URL", "CORS_ALLOWED_ORIGINS")

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=7070\nDB_NAME=directory\nPUBLIC_BASE_URL=https://api.example.com/\nCORS_ALLOWED_ORIGINS=https://a.example.com, https://b.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "directory", config.Database.Name)
	assert.Equal(t, "https://api.example.com", config.App.PublicBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, config.Server.CORSAllowedOrigins)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\n"), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("DB_MAX_CONNS", "25")

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.True(t, config.RateLimit.Enabled())
	assert.Equal(t, 5.0, config.RateLimit.RequestsPerSecond)
	assert.Equal(t, int32(25), config.Database.MaxConns)
}
