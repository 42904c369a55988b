package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/dto"
	"github.com/jsamuelsen/mental-detox/internal/adapters/storage/csvstore"
	"github.com/jsamuelsen/mental-detox/internal/app"
)

const testDatasetPath = "/data/dataset.csv"

const testDataset = `issue,quote,reference,video_title,video_link,tip
anxiety,This too shall pass.,Persian adage,Box breathing,https://youtu.be/abc123,Breathe in for four counts.
Stress,Slow down.,,,,
`

// newDatasetRouter serves the dataset routes over content; an empty content
// leaves the store unloaded.
func newDatasetRouter(t *testing.T, content string) *gin.Engine {
	t.Helper()

	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, testDatasetPath, []byte(content), 0o644))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := csvstore.New(csvstore.Config{Path: testDatasetPath, Fs: fs, Logger: logger})
	_ = store.Load(context.Background())

	svc := app.NewDatasetService(app.DatasetServiceConfig{Source: store, Logger: logger})

	router := gin.New()
	NewDatasetHandler(svc).RegisterDatasetRoutes(router)

	return router
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestDatasetHandler_Health(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		w := serve(newDatasetRouter(t, testDataset), "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","dataset_loaded":true,"issues_count":2}`, w.Body.String())
	})

	t.Run("not loaded", func(t *testing.T) {
		w := serve(newDatasetRouter(t, ""), "/health")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"error","dataset_loaded":false,"issues_count":0}`, w.Body.String())
	})
}

func TestDatasetHandler_ListIssues(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		w := serve(newDatasetRouter(t, testDataset), "/issues")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"issues":["anxiety","Stress"]}`, w.Body.String())
	})

	t.Run("not loaded", func(t *testing.T) {
		w := serve(newDatasetRouter(t, ""), "/issues")

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.IssuesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Issues)
		assert.NotNil(t, resp.Issues)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("loaded without usable rows", func(t *testing.T) {
		router := newDatasetRouter(t, "issue,quote,reference,video_title,video_link,tip\n,,,,,\n")

		w := serve(router, "/issues")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"issues":[],"error":"dataset is not loaded or has no issues"}`, w.Body.String())

		health := serve(router, "/health")

		assert.Equal(t, http.StatusOK, health.Code)
		assert.JSONEq(t, `{"status":"ok","dataset_loaded":true,"issues_count":0}`, health.Body.String())
	})
}

func TestDatasetHandler_GetData(t *testing.T) {
	router := newDatasetRouter(t, testDataset)

	t.Run("case-insensitive match", func(t *testing.T) {
		w := serve(router, "/get_data?issue=ANXIETY")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"issue": "anxiety",
			"quote": "This too shall pass.",
			"reference": "Persian adage",
			"video_title": "Box breathing",
			"video_link": "https://youtu.be/abc123",
			"tip": "Breathe in for four counts."
		}`, w.Body.String())
	})

	t.Run("absent fields are null", func(t *testing.T) {
		w := serve(router, "/get_data?issue=stress")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"issue": "Stress",
			"quote": "Slow down.",
			"reference": null,
			"video_title": null,
			"video_link": null,
			"tip": null
		}`, w.Body.String())
	})

	errorCases := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{"missing issue", "/get_data", http.StatusBadRequest, dto.ErrorCodeValidation},
		{"empty issue", "/get_data?issue=", http.StatusBadRequest, dto.ErrorCodeValidation},
		{"whitespace issue", "/get_data?issue=%20%20", http.StatusNotFound, dto.ErrorCodeNotFound},
		{"unknown issue", "/get_data?issue=Grief", http.StatusNotFound, dto.ErrorCodeNotFound},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	t.Run("not loaded answers not found", func(t *testing.T) {
		w := serve(newDatasetRouter(t, ""), "/get_data?issue=Anxiety")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
