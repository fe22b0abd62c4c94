// Package apiclient is a thin HTTP client for the campaign API. It
// implements the same planner contract as the in-process usecase, so a
// dashboard frontend (or the wizard) can run against either without
// knowing which backend it got.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// Client talks to a remote campaign API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ port.PlannerService = (*Client)(nil)

// New creates a client for the API at baseURL (e.g. "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Campaigns lists campaigns with metrics from GET /api/campaigns.
func (c *Client) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.CampaignWithMetrics, error) {
	params := url.Values{}
	if f.Platform != nil {
		params.Set("platform", string(*f.Platform))
	}
	if f.CampaignType != nil {
		params.Set("campaign_type", string(*f.CampaignType))
	}
	if f.Status != nil {
		params.Set("status", string(*f.Status))
	}
	if f.Days > 0 {
		params.Set("days", strconv.Itoa(f.Days))
	}

	var out []domain.CampaignWithMetrics
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", params, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratePlan calls POST /api/plans/generate. A 400 response is surfaced
// as a *domain.ValidationError.
func (c *Client) GeneratePlan(ctx context.Context, input domain.PlanInput) (domain.GeneratedPlan, error) {
	var out domain.GeneratedPlan
	if err := c.do(ctx, http.MethodPost, "/api/plans/generate", nil, input, http.StatusOK, &out); err != nil {
		return domain.GeneratedPlan{}, err
	}
	return out, nil
}

// ExecutePlan calls POST /api/campaigns/execute.
func (c *Client) ExecutePlan(ctx context.Context, plan domain.GeneratedPlan) (*port.ExecutionResult, error) {
	var out port.ExecutionResult
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/execute", nil, plan, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CampaignMetrics returns daily records from GET /api/metrics?campaign_id=.
func (c *Client) CampaignMetrics(ctx context.Context, campaignID int64, days int) ([]domain.MetricRecord, error) {
	params := url.Values{}
	params.Set("campaign_id", strconv.FormatInt(campaignID, 10))
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}

	var out []domain.MetricRecord
	if err := c.do(ctx, http.MethodGet, "/api/metrics", params, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MetricsOverview returns per-campaign aggregates from GET /api/metrics.
func (c *Client) MetricsOverview(ctx context.Context, days int) ([]port.CampaignMetricsSummary, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}

	var out []port.CampaignMetricsSummary
	if err := c.do(ctx, http.MethodGet, "/api/metrics", params, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type apiError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// do performs one request and decodes the response into out when the
// status matches wantStatus. Error statuses are decoded into the API's
// error shape; 400s become validation errors, 404s ErrCampaignNotFound.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, wantStatus int, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil || apiErr.Message == "" {
			return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return domain.NewValidationError(apiErr.Field, apiErr.Message)
		case http.StatusNotFound:
			return domain.ErrCampaignNotFound
		default:
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Message)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
