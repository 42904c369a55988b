package dto

import (
	"github.com/samber/lo"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// Health status values reported by GET /health.
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)

// IssueQuery is the query string accepted by GET /get_data. A whitespace-only
// issue is accepted here and simply matches nothing.
type IssueQuery struct {
	Issue string `form:"issue" json:"issue" validate:"required"`
}

// RecordResponse is one dataset row. Absent fields serialize as null.
type RecordResponse struct {
	Issue      *string `json:"issue"`
	Quote      *string `json:"quote"`
	Reference  *string `json:"reference"`
	VideoTitle *string `json:"video_title"`
	VideoLink  *string `json:"video_link"`
	Tip        *string `json:"tip"`
}

// NewRecordResponse converts a domain record.
func NewRecordResponse(r *domain.Record) *RecordResponse {
	return &RecordResponse{
		Issue:      lo.EmptyableToPtr(r.Issue),
		Quote:      lo.EmptyableToPtr(r.Quote),
		Reference:  lo.EmptyableToPtr(r.Reference),
		VideoTitle: lo.EmptyableToPtr(r.VideoTitle),
		VideoLink:  lo.EmptyableToPtr(r.VideoLink),
		Tip:        lo.EmptyableToPtr(r.Tip),
	}
}

// IssuesResponse lists the available categories.
// Error is set only when the list could not be produced.
type IssuesResponse struct {
	Issues []string `json:"issues"`
	Error  string   `json:"error,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	IssuesCount   int    `json:"issues_count"`
}
