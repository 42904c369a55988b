package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mental-detox/internal/adapters/http/dto"
	"github.com/jsamuelsen/mental-detox/internal/app"
	"github.com/jsamuelsen/mental-detox/internal/platform/logging"
)

// issuesUnavailableMessage is returned in the issues body when the dataset is
// not loaded or has no usable rows.
const issuesUnavailableMessage = "dataset is not loaded or has no issues"

// DatasetHandler serves the public dataset endpoints.
type DatasetHandler struct {
	service *app.DatasetService
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(service *app.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Health handles GET /health.
// Returns 200 with status "ok" when the dataset is loaded, 500 with status "error" otherwise.
func (h *DatasetHandler) Health(c *gin.Context) {
	health := h.service.HealthCheck(c.Request.Context())

	resp := dto.HealthResponse{
		Status:        dto.HealthStatusOK,
		DatasetLoaded: health.Loaded,
		IssuesCount:   health.CategoryCount,
	}

	status := http.StatusOK
	if !health.Loaded {
		resp.Status = dto.HealthStatusError
		status = http.StatusInternalServerError
	}

	c.JSON(status, resp)
}

// ListIssues handles GET /issues.
func (h *DatasetHandler) ListIssues(c *gin.Context) {
	issues, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("listing issues failed", slog.Any("error", err))

		c.JSON(http.StatusInternalServerError, dto.IssuesResponse{
			Issues: []string{},
			Error:  issuesUnavailableMessage,
		})

		return
	}

	c.JSON(http.StatusOK, dto.IssuesResponse{Issues: issues})
}

// GetData handles GET /get_data?issue=<label>.
// The match is case-insensitive; one matching row is chosen at random.
func (h *DatasetHandler) GetData(c *gin.Context) {
	var q dto.IssueQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, dto.ToDomainError(err))
		return
	}

	rec, err := h.service.SampleByCategory(c.Request.Context(), q.Issue)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordResponse(rec))
}

// RegisterDatasetRoutes registers the dataset routes at the root of the engine.
func (h *DatasetHandler) RegisterDatasetRoutes(rg gin.IRoutes) {
	rg.GET("/health", h.Health)
	rg.GET("/issues", h.ListIssues)
	rg.GET("/get_data", h.GetData)
}
