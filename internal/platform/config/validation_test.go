package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "mental-detox",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  1048576,
			CORSOrigins:     []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Dataset: DatasetConfig{
			Path: "data/mental_detox_dataset.csv",
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 10 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     1,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Favorites: FavoritesConfig{
			MaxEntries: 200,
		},
		Timer: TimerConfig{
			Duration: 15 * time.Minute,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name is required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "staging"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment must be one of: local, dev, qa, prod, test")
	})

	for _, env := range []string{"local", "dev", "qa", "prod", "test"} {
		t.Run("environment "+env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_ServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"minimum valid port", 1, false},
		{"default port", DefaultServerPort, false},
		{"maximum valid port", 65535, false},
		{"zero port", 0, true},
		{"port too high", 65536, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "server.port")
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("read timeout below minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 500 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.read_timeout must be a duration of at least 1s, got 500ms")
	})

	t.Run("no cors origins", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.CORSOrigins = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.cors_origins is required")
	})
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		t.Run("level "+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level

			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "verbose"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level must be one of")
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("file enabled without path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File = LogFileConfig{Enabled: true}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when enabled is true")
	})

	t.Run("file max size too large", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File = LogFileConfig{Enabled: true, Path: "/tmp/client.log", MaxSizeMB: 2048}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.max_size must be at most 1024")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("enabled without endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "mental-detox"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint")
	})

	t.Run("sampling rate above one", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.SamplingRate = 1.5

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_rate must be at most 1")
	})

	t.Run("disabled needs nothing", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry = TelemetryConfig{}

		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Validate_DatasetConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Dataset.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.path is required")
}

func TestConfig_Validate_ClientConfig(t *testing.T) {
	t.Run("base url must be a url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.BaseURL = "localhost"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.base_url must be a valid URL, got \"localhost\"")
	})

	t.Run("timeout below minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.Timeout = 10 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.timeout must be a duration of at least 100ms, got 10ms")
	})

	t.Run("zero attempts", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.Retry.MaxAttempts = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.retry.max_attempts is required")
	})

	t.Run("circuit breaker needs failures", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.CircuitBreaker.MaxFailures = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.circuit_breaker.max_failures")
	})
}

func TestConfig_Validate_FavoritesAndTimer(t *testing.T) {
	t.Run("empty favorites path is allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Favorites.Path = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero max entries", func(t *testing.T) {
		cfg := validConfig()
		cfg.Favorites.MaxEntries = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "favorites.max_entries")
	})

	t.Run("sub-second timer", func(t *testing.T) {
		cfg := validConfig()
		cfg.Timer.Duration = 100 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timer.duration must be a duration of at least 1s, got 100ms")
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = 0
	cfg.Dataset.Path = ""

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "app.name")
	assert.Contains(t, msg, "server.port")
	assert.Contains(t, msg, "dataset.path")
}

func TestConfig_Validate_EmptyCORSOriginsList(t *testing.T) {
	cfg := validConfig()
	cfg.Server.CORSOrigins = []string{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.cors_origins must have at least 1 entries")
}

func TestConfig_Validate_DurationAboveMinimumPasses(t *testing.T) {
	cfg := validConfig()
	cfg.Client.CircuitBreaker.Timeout = time.Second
	cfg.Client.Retry.InitialInterval = 10 * time.Millisecond

	assert.NoError(t, cfg.Validate())
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Config.server.port", "server.port"},
		{"Config.client.retry.max_attempts", "client.retry.max_attempts"},
		{"Config.timer.duration", "timer.duration"},
		{"port", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.input))
		})
	}
}
