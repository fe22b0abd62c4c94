package port

import (
	"context"
	"time"

	"coretas/internal/core/domain"
)

// CampaignFilter narrows a repository listing. Nil fields mean "no filter".
// Days is the metrics aggregation window in days; implementations default it
// to 7 when zero.
type CampaignFilter struct {
	Platform     *domain.Platform
	CampaignType *domain.CampaignType
	Status       *domain.CampaignStatus
	Days         int
}

// CampaignRepository is the outbound port for campaign persistence. A
// remote-backed and an in-memory implementation both satisfy it; callers
// must not depend on which one they got.
type CampaignRepository interface {
	// List returns campaigns matching the filter, newest first, each
	// annotated with a metrics snapshot aggregated over the filter window.
	List(ctx context.Context, f CampaignFilter) ([]domain.CampaignWithMetrics, error)
	// Create stores the campaign under a fresh unique id and returns the
	// stored record. Duplicate names are permitted.
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// SaveMetrics appends daily metric records.
	SaveMetrics(ctx context.Context, records []domain.MetricRecord) error
	// MetricsByCampaign returns daily records for one campaign within the
	// date range, newest first. ErrCampaignNotFound when the id is unknown.
	MetricsByCampaign(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.MetricRecord, error)
}
