package port

import (
	"context"

	"coretas/internal/core/domain"
)

// ExecutionResult is returned by ExecutePlan: a human-readable summary plus
// the campaigns that were actually created.
type ExecutionResult struct {
	Message   string            `json:"message"`
	Campaigns []domain.Campaign `json:"campaigns"`
}

// CampaignMetricsSummary is one campaign's aggregated metrics, used by the
// metrics overview listing.
type CampaignMetricsSummary struct {
	CampaignID   int64  `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	domain.MetricSnapshot
}

// PlannerService is the primary port into the application: everything the
// dashboard needs. It is implemented in-process by the planner usecase and
// remotely by the HTTP API client; the two are interchangeable.
type PlannerService interface {
	// Campaigns lists campaigns with their metrics snapshots.
	Campaigns(ctx context.Context, f CampaignFilter) ([]domain.CampaignWithMetrics, error)

	// GeneratePlan turns wizard input into a platform-agnostic plan. It
	// returns a *domain.ValidationError for malformed input.
	GeneratePlan(ctx context.Context, input domain.PlanInput) (domain.GeneratedPlan, error)

	// ExecutePlan materialises a plan into one campaign per platform.
	// Platforms fail independently; the result reports what was created.
	ExecutePlan(ctx context.Context, plan domain.GeneratedPlan) (*ExecutionResult, error)

	// CampaignMetrics returns daily metric records for one campaign over
	// the last days days.
	CampaignMetrics(ctx context.Context, campaignID int64, days int) ([]domain.MetricRecord, error)

	// MetricsOverview returns aggregated metrics per campaign over the
	// last days days.
	MetricsOverview(ctx context.Context, days int) ([]CampaignMetricsSummary, error)
}
