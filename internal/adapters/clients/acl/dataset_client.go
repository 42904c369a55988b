package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/jsamuelsen/mental-detox/internal/adapters/clients"
	"github.com/jsamuelsen/mental-detox/internal/domain"
)

// DatasetServiceName identifies the dataset service in errors and health checks.
const DatasetServiceName = "dataset-service"

// Paths served by the dataset service.
const (
	pathHealth  = "/health"
	pathIssues  = "/issues"
	pathGetData = "/get_data"
)

// issuesResponse is the /issues body. Error is set on a 500.
type issuesResponse struct {
	Issues []string `json:"issues"`
	Error  string   `json:"error,omitempty"`
}

// recordResponse is the /get_data body; absent fields are null.
type recordResponse struct {
	Issue      *string `json:"issue"`
	Quote      *string `json:"quote"`
	Reference  *string `json:"reference"`
	VideoTitle *string `json:"video_title"`
	VideoLink  *string `json:"video_link"`
	Tip        *string `json:"tip"`
}

type healthResponse struct {
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	IssuesCount   int    `json:"issues_count"`
}

// DatasetAdapter is the client-side view of the dataset service. It
// implements ports.DatasetClient and ports.HealthChecker.
type DatasetAdapter struct {
	BaseAdapter
}

// NewDatasetAdapter wraps client.
func NewDatasetAdapter(client *clients.Client) *DatasetAdapter {
	return &DatasetAdapter{
		BaseAdapter: NewBaseAdapter(client, DatasetServiceName),
	}
}

// ListIssues returns the service's category list, blanks removed.
func (a *DatasetAdapter) ListIssues(ctx context.Context) ([]string, error) {
	body, err := a.Get(ctx, pathIssues, "list issues", "issues", "")
	if err != nil {
		return nil, err
	}

	resp, err := DecodeResponse[issuesResponse](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if resp.Error != "" {
		return nil, domain.NewUnavailableError(a.ServiceName(), resp.Error)
	}

	return lo.Compact(lo.Map(resp.Issues, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})), nil
}

// Sample fetches one random record for issue.
func (a *DatasetAdapter) Sample(ctx context.Context, issue string) (*domain.Record, error) {
	issue = strings.TrimSpace(issue)
	if err := ValidateRequired(issue, "issue"); err != nil {
		return nil, err
	}

	path := pathGetData + "?" + url.Values{"issue": {issue}}.Encode()

	body, err := a.Get(ctx, path, "get data", "data", issue)
	if err != nil {
		return nil, err
	}

	resp, err := DecodeResponse[recordResponse](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return translateRecord(issue)(resp)
}

// translateRecord builds the domain record. A missing issue label falls
// back to the one requested.
func translateRecord(requested string) Translator[recordResponse, domain.Record] {
	return func(ext *recordResponse) (*domain.Record, error) {
		rec := &domain.Record{
			Issue:      strings.TrimSpace(lo.FromPtr(ext.Issue)),
			Quote:      strings.TrimSpace(lo.FromPtr(ext.Quote)),
			Reference:  strings.TrimSpace(lo.FromPtr(ext.Reference)),
			VideoTitle: strings.TrimSpace(lo.FromPtr(ext.VideoTitle)),
			VideoLink:  strings.TrimSpace(lo.FromPtr(ext.VideoLink)),
			Tip:        strings.TrimSpace(lo.FromPtr(ext.Tip)),
		}

		if rec.Issue == "" {
			rec.Issue = requested
		}

		return rec, nil
	}
}

// Name implements ports.HealthChecker.
func (a *DatasetAdapter) Name() string {
	return a.ServiceName()
}

// Check implements ports.HealthChecker. The service is healthy when /health
// answers 200 with status "ok".
func (a *DatasetAdapter) Check(ctx context.Context) error {
	resp, err := a.Client().Get(ctx, pathHealth)
	if err != nil {
		return MapHTTPError(nil, err, a.ServiceName(), "health check", "", "")
	}
	defer func() { _ = resp.Body.Close() }()

	var health healthResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&health); err != nil {
		return domain.NewUnavailableError(a.ServiceName(),
			fmt.Sprintf("health check returned status %d: %v", resp.StatusCode, err))
	}

	if resp.StatusCode != http.StatusOK || health.Status != "ok" {
		return domain.NewUnavailableError(a.ServiceName(),
			fmt.Sprintf("status %q, dataset loaded: %t", health.Status, health.DatasetLoaded))
	}

	return nil
}
