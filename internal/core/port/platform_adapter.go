package port

import (
	"context"

	"coretas/internal/core/domain"
)

// PlatformCampaign is what a platform adapter reports back after creating a
// campaign on its network: the final name, the allocated share of the daily
// budget and the external campaign id.
type PlatformCampaign struct {
	Name               string
	DailyBudget        float64
	PlatformCampaignID string
}

// PlatformAdapter creates a campaign on one ad network from a generated
// plan. Each adapter owns its platform's budget share, naming scheme and
// campaign type.
type PlatformAdapter interface {
	Platform() domain.Platform
	CampaignType() domain.CampaignType
	CreateCampaign(ctx context.Context, plan domain.GeneratedPlan) (PlatformCampaign, error)
}
