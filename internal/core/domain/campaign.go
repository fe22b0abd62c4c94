package domain

import (
	"strings"
	"time"
)

// Platform identifies one of the supported ad networks.
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
	PlatformAmazon Platform = "amazon"
)

// ParsePlatform normalises a platform label. Matching is case-insensitive;
// the stored form is always lowercase. The boolean reports whether the
// input named a known platform.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformGoogle:
		return PlatformGoogle, true
	case PlatformMeta:
		return PlatformMeta, true
	case PlatformAmazon:
		return PlatformAmazon, true
	}
	return "", false
}

// CampaignType is the per-platform campaign flavour. The set is extensible;
// these three cover the platforms this service creates campaigns on.
type CampaignType string

const (
	TypePMax            CampaignType = "pmax"             // Google Performance Max
	TypeShopping        CampaignType = "shopping"         // Meta Advantage+ Shopping
	TypeSponsoredBrands CampaignType = "sponsored_brands" // Amazon Sponsored Brands
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusCreated CampaignStatus = "created"
	StatusPending CampaignStatus = "pending"
	StatusActive  CampaignStatus = "active"
	StatusFailed  CampaignStatus = "failed"
)

// Campaign is a persisted, platform-specific advertising unit. The id is
// assigned by the repository at creation time and is unique for the life of
// the store. Campaigns are never mutated in place after creation.
// DailyBudget is kept as a string to preserve exact currency formatting.
type Campaign struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Platform           Platform       `json:"platform"`
	Type               CampaignType   `json:"type"`
	Status             CampaignStatus `json:"status"`
	Objective          string         `json:"objective"`
	DailyBudget        string         `json:"dailyBudget"`
	ProductCategories  []string       `json:"productCategories"`
	PlatformCampaignID string         `json:"-"` // external id minted by the platform adapter
	CreatedAt          *time.Time     `json:"createdAt,omitempty"`
}

// MetricSnapshot is a derived, read-only performance summary attached to a
// campaign at read time. CTR is a percentage; ROAS is conversion value per
// unit of spend. Both are 0 when their denominator is 0.
type MetricSnapshot struct {
	TotalSpend           float64 `json:"totalSpend"`
	TotalImpressions     int64   `json:"totalImpressions"`
	TotalClicks          int64   `json:"totalClicks"`
	TotalConversions     int64   `json:"totalConversions"`
	TotalConversionValue float64 `json:"totalConversionValue"`
	CTR                  float64 `json:"ctr"`
	ROAS                 float64 `json:"roas"`
}

// NewMetricSnapshot computes the derived CTR and ROAS fields from raw sums.
func NewMetricSnapshot(spend float64, impressions, clicks, conversions int64, conversionValue float64) MetricSnapshot {
	var ctr, roas float64
	if impressions > 0 {
		ctr = float64(clicks) / float64(impressions) * 100
	}
	if spend > 0 {
		roas = conversionValue / spend
	}
	return MetricSnapshot{
		TotalSpend:           round2(spend),
		TotalImpressions:     impressions,
		TotalClicks:          clicks,
		TotalConversions:     conversions,
		TotalConversionValue: round2(conversionValue),
		CTR:                  round2(ctr),
		ROAS:                 round2(roas),
	}
}

// CampaignWithMetrics is the read model returned by repositories: the
// campaign plus its metrics snapshot, flattened on the wire.
type CampaignWithMetrics struct {
	Campaign
	MetricSnapshot
}

// MetricRecord is one day of performance data for a campaign.
type MetricRecord struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	Date            time.Time `json:"date"`
	Spend           float64   `json:"spend"`
	Impressions     int64     `json:"impressions"`
	Clicks          int64     `json:"clicks"`
	Conversions     int64     `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	Currency        string    `json:"currency"`
}
