//go:build integration

package integration

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/mental-detox/internal/adapters/http"
	"github.com/jsamuelsen/mental-detox/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mental-detox/internal/adapters/storage/csvstore"
	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/platform/config"
	"github.com/jsamuelsen/mental-detox/internal/ports"
)

// sampleDataset is the dataset shipped with the repository.
const sampleDataset = "../../data/mental_detox_dataset.csv"

// sampleIssues is what /issues returns for sampleDataset.
var sampleIssues = []string{"Anxiety", "Burnout", "Loneliness", "Low Motivation", "Sleep", "Stress"}

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startService serves the dataset at path over a real listener. A path
// that does not exist leaves the service in the not-loaded state.
func startService(t *testing.T, path string) *httptest.Server {
	t.Helper()

	logger := quietLogger()

	store := csvstore.New(csvstore.Config{Path: path, Logger: logger})
	_ = store.Load(context.Background())

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(store))

	svc := app.NewDatasetService(app.DatasetServiceConfig{Source: store, Logger: logger})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewRouterConfig(
		"mental-detox-integration",
		logger,
		handlers.NewDatasetHandler(svc),
		handlers.NewProbeHandler(registry, handlers.NewBuildInfo("test", "none", "now"), nil),
	))

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return srv
}

// testClientConfig returns a client config with short intervals.
func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: acl.DatasetServiceName,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 2,
		},
		Logger: quietLogger(),
	}
}

// newAdapter connects a dataset adapter to baseURL with one attempt per call.
func newAdapter(t *testing.T, baseURL string) *acl.DatasetAdapter {
	t.Helper()

	cfg := testClientConfig(baseURL)
	cfg.Retry.MaxAttempts = 1

	client, err := clients.New(cfg)
	require.NoError(t, err)

	return acl.NewDatasetAdapter(client)
}

// newBrowse builds a client session against baseURL without favorites.
func newBrowse(t *testing.T, baseURL string) *app.BrowseService {
	t.Helper()

	return app.NewBrowseService(app.BrowseServiceConfig{
		Client: newAdapter(t, baseURL),
		Logger: quietLogger(),
	})
}
