package usecase

import (
	"math"
	"math/rand"
	"time"

	"coretas/internal/core/domain"
)

// mockMetricRecords generates plausible daily performance data for a new
// campaign, one record per day counting back from now: 500-5000 impressions,
// a 1-6% CTR, spend of 0.5-2.0 per click and a 0-10% conversion rate.
func mockMetricRecords(campaignID int64, days int, now time.Time) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, days)
	day := now.Truncate(24 * time.Hour)
	for i := 0; i < days; i++ {
		impressions := int64(rand.Intn(4500) + 500)
		ctr := rand.Float64()*0.05 + 0.01
		clicks := int64(float64(impressions) * ctr)
		spend := roundCents(float64(clicks) * (rand.Float64()*1.5 + 0.5))
		conversions := int64(float64(clicks) * rand.Float64() * 0.1)
		conversionValue := 0.0
		if conversions > 0 {
			conversionValue = roundCents(float64(conversions) * (rand.Float64()*50 + 20))
		}
		records = append(records, domain.MetricRecord{
			CampaignID:      campaignID,
			Date:            day.AddDate(0, 0, -i),
			Spend:           spend,
			Impressions:     impressions,
			Clicks:          clicks,
			Conversions:     conversions,
			ConversionValue: conversionValue,
			Currency:        "USD",
		})
	}
	return records
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
