package memory

import (
	"context"
	"math"
	"math/rand"
	"time"

	"coretas/internal/core/domain"
)

// Seed populates the repository with the three demo campaigns the dashboard
// ships with, each backfilled with a week of randomized daily metrics.
func Seed(ctx context.Context, repo *CampaignRepository) error {
	demo := []domain.Campaign{
		{
			Name:              "Spring Sale 2024 - PMax",
			Platform:          domain.PlatformGoogle,
			Type:              domain.TypePMax,
			Status:            domain.StatusCreated,
			Objective:         "Sales",
			DailyBudget:       "50.00",
			ProductCategories: []string{"Shoes", "Apparel"},
		},
		{
			Name:              "Retargeting - Catalog Sales",
			Platform:          domain.PlatformMeta,
			Type:              domain.TypeShopping,
			Status:            domain.StatusCreated,
			Objective:         "Sales",
			DailyBudget:       "30.00",
			ProductCategories: []string{"Shoes"},
		},
		{
			Name:              "Brand Awareness - SB",
			Platform:          domain.PlatformAmazon,
			Type:              domain.TypeSponsoredBrands,
			Status:            domain.StatusCreated,
			Objective:         "Awareness",
			DailyBudget:       "20.00",
			ProductCategories: []string{"Accessories"},
		},
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, c := range demo {
		created, err := repo.Create(ctx, c)
		if err != nil {
			return err
		}
		if err := repo.SaveMetrics(ctx, seedMetrics(r, created.ID, today)); err != nil {
			return err
		}
	}
	return nil
}

func seedMetrics(r *rand.Rand, campaignID int64, today time.Time) []domain.MetricRecord {
	records := make([]domain.MetricRecord, 0, 7)
	for i := 0; i < 7; i++ {
		impressions := int64(r.Intn(4500) + 500)
		ctr := r.Float64()*0.05 + 0.01
		clicks := int64(float64(impressions) * ctr)
		spend := math.Round(float64(clicks)*(r.Float64()*1.5+0.5)*100) / 100
		conversions := int64(float64(clicks) * r.Float64() * 0.1)
		conversionValue := 0.0
		if conversions > 0 {
			conversionValue = math.Round(float64(conversions)*(r.Float64()*50+20)*100) / 100
		}
		records = append(records, domain.MetricRecord{
			CampaignID:      campaignID,
			Date:            today.AddDate(0, 0, -i),
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
