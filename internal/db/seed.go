package db

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts the demo campaigns and a week of randomized metrics into the
// database. It is idempotent per campaign name and safe to run on startup.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	demo := []struct {
		name         string
		platform     string
		campaignType string
		objective    string
		dailyBudget  string
		categories   []string
	}{
		{"Spring Sale 2024 - PMax", "google", "pmax", "Sales", "50.00", []string{"Shoes", "Apparel"}},
		{"Retargeting - Catalog Sales", "meta", "shopping", "Sales", "30.00", []string{"Shoes"}},
		{"Brand Awareness - SB", "amazon", "sponsored_brands", "Awareness", "20.00", []string{"Accessories"}},
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, c := range demo {
		categories, err := json.Marshal(c.categories)
		if err != nil {
			return err
		}

		var id int64
		err = pool.QueryRow(ctx, `
            INSERT INTO campaigns
                (name, platform, campaign_type, status, objective, daily_budget, product_categories, created_at, updated_at)
            SELECT $1, $2, $3, 'created', $4, $5::numeric, $6, now(), now()
            WHERE NOT EXISTS (SELECT 1 FROM campaigns WHERE name = $1)
            RETURNING id`,
			c.name, c.platform, c.campaignType, c.objective, c.dailyBudget, categories).Scan(&id)
		if err != nil {
			// No row returned means the campaign already exists; skip it.
			continue
		}

		for i := 0; i < 7; i++ {
			impressions := r.Intn(4500) + 500
			ctr := r.Float64()*0.05 + 0.01
			clicks := int(float64(impressions) * ctr)
			spend := math.Round(float64(clicks)*(r.Float64()*1.5+0.5)*100) / 100
			conversions := int(float64(clicks) * r.Float64() * 0.1)
			conversionValue := math.Round(float64(conversions)*(r.Float64()*50+20)*100) / 100

			_, err = pool.Exec(ctx, `
                INSERT INTO campaign_metrics
                    (campaign_id, date, spend, impressions, clicks, conversions, conversion_value, currency, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, 'USD', now())`,
				id, today.AddDate(0, 0, -i), spend, impressions, clicks, conversions, conversionValue)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
