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

// Amazon creates Sponsored Brands campaigns on Amazon Ads.
type Amazon struct {
	cfg    configs.Platforms
	logger *slog.Logger
}

func NewAmazon(cfg configs.Platforms, logger *slog.Logger) *Amazon {
	return &Amazon{cfg: cfg, logger: logger}
}

func (a *Amazon) Platform() domain.Platform         { return domain.PlatformAmazon }
func (a *Amazon) CampaignType() domain.CampaignType { return domain.TypeSponsoredBrands }

type amazonKeyword struct {
	KeywordText string `json:"keywordText"`
	MatchType   string `json:"matchType"`
}

type amazonPayload struct {
	Name            string          `json:"name"`
	CampaignType    string          `json:"campaignType"`
	TargetingType   string          `json:"targetingType"`
	State           string          `json:"state"`
	DailyBudget     float64         `json:"dailyBudget"`
	CurrencyCode    string          `json:"currencyCode"`
	StartDate       string          `json:"startDate"`
	BiddingStrategy string          `json:"biddingStrategy"`
	BrandName       string          `json:"brandName"`
	Headline        string          `json:"headline"`
	DefaultBid      float64         `json:"defaultBid"`
	Keywords        []amazonKeyword `json:"keywords"`
}

// CreateCampaign maps the plan onto a Sponsored Brands campaign named
// "SB - {firstCategory}" with 20% of the daily budget. The default keyword
// bid is a tenth of the allocated budget.
func (a *Amazon) CreateCampaign(ctx context.Context, plan domain.GeneratedPlan) (port.PlatformCampaign, error) {
	budget := plan.DailyBudget * amazonBudgetShare
	first := plan.FirstCategory()

	keywords := make([]amazonKeyword, 0, 10)
	for _, kw := range capList(plan.TargetingHints.Keywords, 10) {
		keywords = append(keywords, amazonKeyword{KeywordText: kw, MatchType: "broad"})
	}

	headline := ""
	if len(plan.CreativePack.Headlines) > 0 {
		headline = plan.CreativePack.Headlines[0]
	}

	payload := amazonPayload{
		Name:            fmt.Sprintf("SB - %s", first),
		CampaignType:    "SPONSORED_BRANDS",
		TargetingType:   "MANUAL",
		State:           "draft",
		DailyBudget:     budget,
		CurrencyCode:    "USD",
		StartDate:       time.Now().UTC().Format("2006-01-02"),
		BiddingStrategy: "dynamicDownOnly",
		BrandName:       first,
		Headline:        headline,
		DefaultBid:      budget / 10,
		Keywords:        keywords,
	}

	if !a.cfg.AmazonMock() {
		a.logger.Warn("amazon ads api integration not implemented, falling back to mock mode")
	}

	a.logger.InfoContext(ctx, "mock amazon ads campaign request",
		slog.String("name", payload.Name),
		slog.Float64("daily_budget", budget),
		slog.String("campaign_type", payload.CampaignType),
		slog.Int("keywords", len(payload.Keywords)),
	)

	return port.PlatformCampaign{
		Name:               payload.Name,
		DailyBudget:        budget,
		PlatformCampaignID: mockCampaignID("amazon"),
	}, nil
}
