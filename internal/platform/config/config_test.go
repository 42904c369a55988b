package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mental-detox", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DefaultDatasetPath, cfg.Dataset.Path)
	assert.Equal(t, DefaultBackendURL, cfg.Client.BaseURL)
	assert.Equal(t, DefaultClientTimeout, cfg.Client.Timeout)
	assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, DefaultFavoritesMaxEntries, cfg.Favorites.MaxEntries)
	assert.Empty(t, cfg.Favorites.Path)
	assert.Equal(t, DefaultTimerDuration, cfg.Timer.Duration)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "trace")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_BackendURL(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain", "http://detox.internal:5000", "http://detox.internal:5000"},
		{"trailing slash trimmed", "http://detox.internal:5000/", "http://detox.internal:5000"},
		{"several trailing slashes", "https://api.example.com//", "https://api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BACKEND_URL", tt.value)

			cfg, err := Load("")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.Client.BaseURL)
		})
	}
}

func TestLoad_BackendURLPrefixDoesNotLeak(t *testing.T) {
	t.Setenv("BACKEND_URL_EXTRA", "http://ignored")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, cfg.Client.BaseURL)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 30*time.Second, cfg.Client.CircuitBreaker.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Timer.Duration)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "mental-detox", cfg.App.Name)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "mental-detox", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultDatasetPath, d["dataset.path"])
	assert.Equal(t, DefaultBackendURL, d["client.base_url"])
	assert.Equal(t, "10s", d["client.timeout"])
	assert.Equal(t, "15m0s", d["timer.duration"])
}
