package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coretas/internal/config/configs"
	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// Google creates Performance Max campaigns on Google Ads.
type Google struct {
	cfg    configs.Platforms
	logger *slog.Logger
}

func NewGoogle(cfg configs.Platforms, logger *slog.Logger) *Google {
	return &Google{cfg: cfg, logger: logger}
}

func (g *Google) Platform() domain.Platform         { return domain.PlatformGoogle }
func (g *Google) CampaignType() domain.CampaignType { return domain.TypePMax }

type googleAssetGroup struct {
	Name         string   `json:"name"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	LogoURL      string   `json:"logo_url,omitempty"`
	FinalURLs    []string `json:"final_urls"`
}

type googlePayload struct {
	Name            string           `json:"name"`
	ChannelType     string           `json:"advertising_channel_type"`
	Status          string           `json:"status"`
	BudgetMicros    int64            `json:"budget_amount_micros"`
	BiddingStrategy string           `json:"bidding_strategy"`
	StartDate       string           `json:"start_date"`
	AssetGroup      googleAssetGroup `json:"asset_group"`
	GeoTargets      []string         `json:"geo_targets"`
	LanguageTargets []string         `json:"language_targets"`
	AudienceTargets []string         `json:"audience_targets"`
	Keywords        []string         `json:"keywords"`
}

// CreateCampaign maps the plan onto a Performance Max campaign named
// "PMax - {firstCategory} - {YYYY-MM-DD}" with 40% of the daily budget.
// Campaigns start paused; activation is a manual step.
func (g *Google) CreateCampaign(ctx context.Context, plan domain.GeneratedPlan) (port.PlatformCampaign, error) {
	budget := plan.DailyBudget * googleBudgetShare
	first := plan.FirstCategory()
	today := time.Now().UTC().Format("2006-01-02")

	bidding := "MAXIMIZE_CONVERSIONS"
	if plan.BiddingStrategy == "maximize_conversion_value" {
		bidding = "MAXIMIZE_CONVERSION_VALUE"
	}

	payload := googlePayload{
		Name:            fmt.Sprintf("PMax - %s - %s", first, today),
		ChannelType:     "PERFORMANCE_MAX",
		Status:          "PAUSED",
		BudgetMicros:    int64(budget * 1_000_000),
		BiddingStrategy: bidding,
		StartDate:       today,
		AssetGroup: googleAssetGroup{
			Name:         fmt.Sprintf("Asset Group - %s", first),
			Headlines:    capList(plan.CreativePack.Headlines, 15),
			Descriptions: capList(plan.CreativePack.Descriptions, 4),
			ImageURLs:    capList(plan.CreativePack.ImageURLs, 20),
			LogoURL:      plan.CreativePack.LogoURL,
			FinalURLs:    []string{"https://example.com/products"},
		},
		GeoTargets:      plan.Geo,
		LanguageTargets: plan.Lang,
		AudienceTargets: capList(plan.TargetingHints.Audiences, 10),
		Keywords:        capList(plan.TargetingHints.Keywords, 10),
	}

	if !g.cfg.GoogleMock() {
		// Real Google Ads API integration is not wired yet.
		g.logger.Warn("google ads api integration not implemented, falling back to mock mode")
	}

	g.logger.InfoContext(ctx, "mock google ads campaign request",
		slog.String("name", payload.Name),
		slog.Float64("daily_budget", budget),
		slog.String("bidding_strategy", plan.BiddingStrategy),
		slog.Int("headlines", len(payload.AssetGroup.Headlines)),
		slog.Int("descriptions", len(payload.AssetGroup.Descriptions)),
	)

	return port.PlatformCampaign{
		Name:               payload.Name,
		DailyBudget:        budget,
		PlatformCampaignID: mockCampaignID("google"),
	}, nil
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
