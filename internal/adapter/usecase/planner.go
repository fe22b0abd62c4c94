package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// ErrAllPlatformsFailed is returned by ExecutePlan when no platform managed
// to create a campaign.
var ErrAllPlatformsFailed = errors.New("failed to create any campaigns: all platforms failed")

// mockMetricDays is how many days of generated metrics a freshly created
// campaign is backfilled with.
const mockMetricDays = 7

// Planner implements port.PlannerService in-process: plan generation,
// plan execution across the registered platform adapters, and campaign
// reads via the repository.
type Planner struct {
	repo      port.CampaignRepository
	platforms []port.PlatformAdapter
	logger    *slog.Logger
}

var _ port.PlannerService = (*Planner)(nil)

// NewPlanner creates a planner. The platform adapters are invoked in the
// given order on every plan execution.
func NewPlanner(repo port.CampaignRepository, platforms []port.PlatformAdapter, logger *slog.Logger) *Planner {
	return &Planner{repo: repo, platforms: platforms, logger: logger}
}

// Campaigns lists campaigns with their metrics snapshots.
func (p *Planner) Campaigns(ctx context.Context, f port.CampaignFilter) ([]domain.CampaignWithMetrics, error) {
	return p.repo.List(ctx, f)
}

// GeneratePlan validates the input and produces a platform-agnostic plan.
func (p *Planner) GeneratePlan(_ context.Context, input domain.PlanInput) (domain.GeneratedPlan, error) {
	return GeneratePlan(input)
}

// ExecutePlan materialises the plan into one campaign per platform. The
// platform adapters run strictly in sequence and fail independently: a
// failure on one network does not stop the others. The whole execution is
// keyed by a generated execution id for log correlation. ExecutePlan fails
// only when the plan itself is invalid or every platform failed.
func (p *Planner) ExecutePlan(ctx context.Context, plan domain.GeneratedPlan) (*port.ExecutionResult, error) {
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	executionID := uuid.NewString()
	log := p.logger.With(slog.String("execution_id", executionID))

	var (
		created  []domain.Campaign
		execErrs []string
	)
	for _, adapter := range p.platforms {
		campaign, err := p.executeOn(ctx, adapter, plan)
		if err != nil {
			perr := &domain.PlatformError{Platform: adapter.Platform(), Err: err}
			log.ErrorContext(ctx, "platform execution failed",
				slog.String("platform", string(adapter.Platform())),
				slog.Any("error", err),
			)
			execErrs = append(execErrs, perr.Error())
			continue
		}
		log.InfoContext(ctx, "campaign created",
			slog.String("platform", string(campaign.Platform)),
			slog.Int64("campaign_id", campaign.ID),
		)
		created = append(created, campaign)
	}

	if len(created) == 0 {
		return nil, ErrAllPlatformsFailed
	}

	message := fmt.Sprintf("Successfully created %d campaign(s)", len(created))
	if len(execErrs) > 0 {
		message += fmt.Sprintf(". %d platform(s) failed: %s", len(execErrs), strings.Join(execErrs, ", "))
	}
	return &port.ExecutionResult{Message: message, Campaigns: created}, nil
}

// executeOn runs one platform adapter and persists its result. The created
// campaign is backfilled with a week of generated metrics so the dashboard
// has something to show; a metrics write failure is logged but does not
// fail the platform.
func (p *Planner) executeOn(ctx context.Context, adapter port.PlatformAdapter, plan domain.GeneratedPlan) (domain.Campaign, error) {
	result, err := adapter.CreateCampaign(ctx, plan)
	if err != nil {
		return domain.Campaign{}, err
	}

	campaign, err := p.repo.Create(ctx, domain.Campaign{
		Name:               result.Name,
		Platform:           adapter.Platform(),
		Type:               adapter.CampaignType(),
		Status:             domain.StatusCreated,
		Objective:          plan.Objective,
		DailyBudget:        fmt.Sprintf("%.2f", result.DailyBudget),
		ProductCategories:  plan.ProductCategories,
		PlatformCampaignID: result.PlatformCampaignID,
	})
	if err != nil {
		return domain.Campaign{}, err
	}

	records := mockMetricRecords(campaign.ID, mockMetricDays, time.Now().UTC())
	if err := p.repo.SaveMetrics(ctx, records); err != nil {
		p.logger.WarnContext(ctx, "failed to backfill mock metrics",
			slog.Int64("campaign_id", campaign.ID),
			slog.Any("error", err),
		)
	}
	return campaign, nil
}

// CampaignMetrics returns daily records for one campaign over the window.
func (p *Planner) CampaignMetrics(ctx context.Context, campaignID int64, days int) ([]domain.MetricRecord, error) {
	if days <= 0 {
		days = mockMetricDays
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)
	return p.repo.MetricsByCampaign(ctx, campaignID, from, to)
}

// MetricsOverview returns aggregated metrics per campaign over the window.
func (p *Planner) MetricsOverview(ctx context.Context, days int) ([]port.CampaignMetricsSummary, error) {
	campaigns, err := p.repo.List(ctx, port.CampaignFilter{Days: days})
	if err != nil {
		return nil, err
	}
	summaries := make([]port.CampaignMetricsSummary, 0, len(campaigns))
	for _, c := range campaigns {
		summaries = append(summaries, port.CampaignMetricsSummary{
			CampaignID:     c.ID,
			CampaignName:   c.Name,
			MetricSnapshot: c.MetricSnapshot,
		})
	}
	return summaries, nil
}

// validatePlan guards execution against plans that never passed generation:
// the budget floor and the non-empty creative pack are the invariants the
// generator guarantees.
func validatePlan(plan domain.GeneratedPlan) error {
	if plan.DailyBudget < 1 {
		return domain.NewValidationError("daily_budget", "daily budget must be at least 1")
	}
	if len(plan.CreativePack.Headlines) == 0 {
		return domain.NewValidationError("creative_pack", "at least one headline is required")
	}
	if len(plan.CreativePack.Descriptions) == 0 {
		return domain.NewValidationError("creative_pack", "at least one description is required")
	}
	return nil
}
