//go:build integration

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/platform/config"
)

// loadFromRepoRoot loads profile with the shipped configs/ directory.
func loadFromRepoRoot(t *testing.T, profile string) *config.Config {
	t.Helper()
	t.Chdir("../..")

	cfg, err := config.Load(profile)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	return cfg
}

func TestConfig_ShippedProfilesValidate(t *testing.T) {
	for _, profile := range []string{"local", "test", "prod"} {
		t.Run(profile, func(t *testing.T) {
			cfg := loadFromRepoRoot(t, profile)

			assert.Equal(t, profile, cfg.App.Environment)
			assert.Equal(t, "data/mental_detox_dataset.csv", cfg.Dataset.Path)
			assert.Equal(t, 15*time.Minute, cfg.Timer.Duration)
			assert.Equal(t, 200, cfg.Favorites.MaxEntries)
			assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts)
		})
	}
}

func TestConfig_BaseDefaults(t *testing.T) {
	cfg := loadFromRepoRoot(t, "local")

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "http://localhost:5000", cfg.Client.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "pretty", cfg.Log.Format)
}

func TestConfig_ProdOverrides(t *testing.T) {
	cfg := loadFromRepoRoot(t, "prod")

	assert.True(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Equal(t, []string{"https://mentaldetox.example"}, cfg.Server.CORSOrigins)
}

func TestConfig_BackendURLEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://dataset.internal:8080/")

	cfg := loadFromRepoRoot(t, "test")

	assert.Equal(t, "http://dataset.internal:8080", cfg.Client.BaseURL)
}

func TestConfig_AppPrefixedEnv(t *testing.T) {
	t.Setenv("APP_DATASET_PATH", "/srv/detox.csv")

	cfg := loadFromRepoRoot(t, "test")

	assert.Equal(t, "/srv/detox.csv", cfg.Dataset.Path)
}

// TestConfig_ClientFromLoadedConfig builds a working client from the
// loaded settings against a live service.
func TestConfig_ClientFromLoadedConfig(t *testing.T) {
	url := startService(t, sampleDataset).URL
	t.Setenv("BACKEND_URL", url)

	cfg := loadFromRepoRoot(t, "test")

	client, err := clients.New(clients.ConfigFrom(&cfg.Client, "dataset-service", quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, url+"/issues", client.URL("issues"))
	assert.Equal(t, clients.StateClosed, client.CircuitState())
}
