package platform

import (
	"context"
	"fmt"
	"log/slog"

	"coretas/internal/config/configs"
	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// Meta creates Advantage+ Shopping (catalog sales) campaigns on Meta Ads.
type Meta struct {
	cfg    configs.Platforms
	logger *slog.Logger
}

func NewMeta(cfg configs.Platforms, logger *slog.Logger) *Meta {
	return &Meta{cfg: cfg, logger: logger}
}

func (m *Meta) Platform() domain.Platform         { return domain.PlatformMeta }
func (m *Meta) CampaignType() domain.CampaignType { return domain.TypeShopping }

type metaAdSet struct {
	Name               string   `json:"name"`
	BillingEvent       string   `json:"billing_event"`
	OptimizationGoal   string   `json:"optimization_goal"`
	BidStrategy        string   `json:"bid_strategy"`
	DailyBudgetCents   int64    `json:"daily_budget"`
	Countries          []string `json:"countries"`
	PublisherPlatforms []string `json:"publisher_platforms"`
}

type metaCreative struct {
	ImageURL     string `json:"image_url,omitempty"`
	Message      string `json:"message"`
	Headline     string `json:"headline"`
	CallToAction string `json:"call_to_action"`
}

type metaPayload struct {
	Name      string       `json:"name"`
	Objective string       `json:"objective"`
	Status    string       `json:"status"`
	AdSet     metaAdSet    `json:"ad_set"`
	Creative  metaCreative `json:"creative"`
}

// CreateCampaign maps the plan onto an Advantage+ Shopping campaign named
// "Advantage+ Shopping - {firstCategory}" with 40% of the daily budget.
func (m *Meta) CreateCampaign(ctx context.Context, plan domain.GeneratedPlan) (port.PlatformCampaign, error) {
	budget := plan.DailyBudget * metaBudgetShare
	first := plan.FirstCategory()

	message := ""
	if len(plan.CreativePack.PrimaryTexts) > 0 {
		message = plan.CreativePack.PrimaryTexts[0]
	} else if len(plan.CreativePack.Descriptions) > 0 {
		message = plan.CreativePack.Descriptions[0]
	}
	imageURL := ""
	if len(plan.CreativePack.ImageURLs) > 0 {
		imageURL = plan.CreativePack.ImageURLs[0]
	}
	headline := ""
	if len(plan.CreativePack.Headlines) > 0 {
		headline = plan.CreativePack.Headlines[0]
	}

	payload := metaPayload{
		Name:      fmt.Sprintf("Advantage+ Shopping - %s", first),
		Objective: "CATALOG_SALES",
		Status:    "PAUSED",
		AdSet: metaAdSet{
			Name:               fmt.Sprintf("Ad Set - %s", first),
			BillingEvent:       "IMPRESSIONS",
			OptimizationGoal:   "OFFSITE_CONVERSIONS",
			BidStrategy:        "LOWEST_COST_WITHOUT_CAP",
			DailyBudgetCents:   int64(budget * 100),
			Countries:          plan.Geo,
			PublisherPlatforms: []string{"facebook", "instagram"},
		},
		Creative: metaCreative{
			ImageURL:     imageURL,
			Message:      message,
			Headline:     headline,
			CallToAction: "SHOP_NOW",
		},
	}

	if !m.cfg.MetaMock() {
		m.logger.Warn("meta ads api integration not implemented, falling back to mock mode")
	}

	m.logger.InfoContext(ctx, "mock meta ads campaign request",
		slog.String("name", payload.Name),
		slog.Float64("daily_budget", budget),
		slog.String("objective", payload.Objective),
		slog.Any("countries", payload.AdSet.Countries),
	)

	return port.PlatformCampaign{
		Name:               payload.Name,
		DailyBudget:        budget,
		PlatformCampaignID: mockCampaignID("meta"),
	}, nil
}
