package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coretas/internal/adapter/memory"
	"coretas/internal/adapter/platform"
	"coretas/internal/adapter/usecase"
	"coretas/internal/config/configs"
	"coretas/internal/core/domain"
	"coretas/internal/core/port"
	"coretas/internal/telemetry"
)

func newTestHandler(t *testing.T) (*Handler, *memory.CampaignRepository) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	repo := memory.NewCampaignRepository()
	cfg := configs.Platforms{MockMode: true}
	planner := usecase.NewPlanner(repo, []port.PlatformAdapter{
		platform.NewGoogle(cfg, logger),
		platform.NewMeta(cfg, logger),
		platform.NewAmazon(cfg, logger),
	}, logger)
	return NewHandler(planner, telemetry.New(), "http://localhost:5173", logger), repo
}

func doJSON(t *testing.T, h *Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func executePlan(t *testing.T, h *Handler, budget float64) port.ExecutionResult {
	t.Helper()
	gen := doJSON(t, h, http.MethodPost, "/api/plans/generate", domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       budget,
		ProductCategories: "Shoes",
	})
	require.Equal(t, http.StatusOK, gen.Code)
	plan := decode[domain.GeneratedPlan](t, gen)

	exec := doJSON(t, h, http.MethodPost, "/api/campaigns/execute", plan)
	require.Equal(t, http.StatusCreated, exec.Code)
	return decode[port.ExecutionResult](t, exec)
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGeneratePlan(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/plans/generate", domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       100,
		ProductCategories: "Shoes, Bags",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	plan := decode[domain.GeneratedPlan](t, rec)
	assert.Equal(t, "Sales", plan.Objective)
	assert.Equal(t, []string{"Shoes", "Bags"}, plan.ProductCategories)
	assert.NotEmpty(t, plan.CreativePack.Headlines)
	assert.NotEmpty(t, plan.TargetingHints.Keywords)
}

func TestGeneratePlanValidationError(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/plans/generate", domain.PlanInput{
		Objective:         "Sales",
		DailyBudget:       0.5,
		ProductCategories: "Shoes",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorResponse](t, rec)
	assert.Equal(t, "dailyBudget", body.Field)
	assert.NotEmpty(t, body.Message)
}

func TestGeneratePlanMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/plans/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorResponse](t, rec)
	assert.Equal(t, "invalid JSON", body.Message)
}

func TestExecutePlan(t *testing.T) {
	h, _ := newTestHandler(t)

	result := executePlan(t, h, 100)
	require.Len(t, result.Campaigns, 3)
	assert.Contains(t, result.Message, "Successfully created 3 campaign(s)")

	budgets := map[domain.Platform]string{}
	for _, c := range result.Campaigns {
		budgets[c.Platform] = c.DailyBudget
		assert.Equal(t, domain.StatusCreated, c.Status)
	}
	assert.Equal(t, "40.00", budgets[domain.PlatformGoogle])
	assert.Equal(t, "40.00", budgets[domain.PlatformMeta])
	assert.Equal(t, "20.00", budgets[domain.PlatformAmazon])
}

func TestExecutePlanInvalid(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/campaigns/execute", domain.GeneratedPlan{DailyBudget: 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorResponse](t, rec)
	assert.Equal(t, "daily_budget", body.Field)
}

func TestListCampaigns(t *testing.T) {
	h, _ := newTestHandler(t)
	executePlan(t, h, 90)

	rec := doJSON(t, h, http.MethodGet, "/api/campaigns", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]domain.CampaignWithMetrics](t, rec)
	assert.Len(t, all, 3)

	rec = doJSON(t, h, http.MethodGet, "/api/campaigns?platform=meta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decode[[]domain.CampaignWithMetrics](t, rec)
	require.Len(t, filtered, 1)
	assert.Equal(t, domain.PlatformMeta, filtered[0].Platform)
}

func TestListCampaignsInvalidPlatform(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/campaigns?platform=tiktok", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errorResponse](t, rec)
	assert.Equal(t, "platform", body.Field)
	assert.Equal(t, "invalid platform: tiktok. Must be one of: google, meta, amazon", body.Message)
}

func TestListCampaignsInvalidDays(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, raw := range []string{"0", "91", "abc"} {
		rec := doJSON(t, h, http.MethodGet, "/api/campaigns?days="+raw, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "days=%s", raw)
	}
}

func TestCampaignMetrics(t *testing.T) {
	h, _ := newTestHandler(t)
	result := executePlan(t, h, 60)
	id := result.Campaigns[0].ID

	rec := doJSON(t, h, http.MethodGet, "/api/metrics?campaign_id="+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	records := decode[[]domain.MetricRecord](t, rec)
	assert.Len(t, records, 7)

	rec = doJSON(t, h, http.MethodGet, "/api/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summaries := decode[[]port.CampaignMetricsSummary](t, rec)
	assert.Len(t, summaries, 3)
}

func TestCampaignMetricsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/metrics?campaign_id=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrometheusEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	executePlan(t, h, 30)

	rec := doJSON(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "coretas_plans_generated_total 1")
	assert.Contains(t, body, `coretas_campaigns_created_total{platform="google"} 1`)
}

