package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/app"
)

// fakeBackend serves the dataset routes with one known issue.
func fakeBackend(t *testing.T, loaded bool) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		if !loaded {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "dataset_loaded": false, "issues_count": 0})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "dataset_loaded": true, "issues_count": 2})
	})
	mux.HandleFunc("/issues", func(w http.ResponseWriter, _ *http.Request) {
		if !loaded {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"issues": []string{}, "error": "dataset not loaded"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"issues": []string{"anxiety", "Work Stress"}})
	})
	mux.HandleFunc("/get_data", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("issue") != "anxiety" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "NOT_FOUND", "message": "no data"}})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"issue":       "anxiety",
			"quote":       "This too shall pass.",
			"reference":   "Persian adage",
			"video_title": nil,
			"video_link":  nil,
			"tip":         "Breathe slowly.",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func execute(t *testing.T, backend string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args,
		"--backend", backend,
		"--profile", "test",
		"--favorites", filepath.Join(t.TempDir(), "favorites.json"),
	))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestIssuesCommand(t *testing.T) {
	t.Run("prints one issue per line", func(t *testing.T) {
		out, err := execute(t, fakeBackend(t, true).URL, "issues")

		require.NoError(t, err)
		assert.Equal(t, "anxiety\nWork Stress\n", out)
	})

	t.Run("backend without data fails with neutral message", func(t *testing.T) {
		_, err := execute(t, fakeBackend(t, false).URL, "issues")

		require.Error(t, err)
		assert.Equal(t, app.MsgIssuesUnavailable, err.Error())
	})
}

func TestShowCommand(t *testing.T) {
	backend := fakeBackend(t, true).URL

	t.Run("renders the card", func(t *testing.T) {
		out, err := execute(t, backend, "show", "anxiety", "--width", "0")

		require.NoError(t, err)
		assert.Contains(t, out, "This too shall pass.")
		assert.Contains(t, out, "Persian adage")
		assert.Contains(t, out, app.MsgNoVideo)
		assert.Contains(t, out, "Breathe slowly.")
	})

	t.Run("unknown issue fails with neutral message", func(t *testing.T) {
		out, err := execute(t, backend, "show", "Grief")

		require.Error(t, err)
		assert.Equal(t, app.MsgNoData, err.Error())
		assert.Empty(t, out)
	})
}

func TestHealthCommand(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		out, err := execute(t, fakeBackend(t, true).URL, "health")

		require.NoError(t, err)
		assert.Contains(t, out, "healthy")
		assert.Contains(t, out, "dataset-service")
	})

	t.Run("not loaded", func(t *testing.T) {
		out, err := execute(t, fakeBackend(t, false).URL, "health")

		require.Error(t, err)
		assert.Contains(t, out, "unhealthy")
	})
}

func TestInvalidBackendURL(t *testing.T) {
	_, err := execute(t, "not a url", "issues")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestResolveFavoritesPath(t *testing.T) {
	assert.Equal(t, "/flag.json", resolveFavoritesPath("/flag.json", "/config.json"))
	assert.Equal(t, "/config.json", resolveFavoritesPath("", "/config.json"))
	assert.Equal(t, "favorites.json", filepath.Base(resolveFavoritesPath("", "")))
}
