package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Metrics snapshots are aggregated in SQL at read time.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// List returns campaigns matching the filter, newest first, with metrics
// summed over the last f.Days days (default 7).
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.CampaignWithMetrics, error) {
	days := f.Days
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	query := `
        SELECT
            c.id,
            c.name,
            c.platform,
            c.campaign_type,
            c.status,
            c.objective,
            c.daily_budget::text,
            c.product_categories,
            COALESCE(c.platform_campaign_id, ''),
            c.created_at,
            COALESCE(sum(m.spend), 0)::float8,
            COALESCE(sum(m.impressions), 0)::bigint,
            COALESCE(sum(m.clicks), 0)::bigint,
            COALESCE(sum(m.conversions), 0)::bigint,
            COALESCE(sum(m.conversion_value), 0)::float8
        FROM campaigns c
        LEFT JOIN campaign_metrics m
            ON m.campaign_id = c.id AND m.date >= $1
        WHERE ($2::text IS NULL OR c.platform = $2)
          AND ($3::text IS NULL OR c.campaign_type = $3)
          AND ($4::text IS NULL OR c.status = $4)
        GROUP BY c.id
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, cutoff, textOrNil((*string)(f.Platform)), textOrNil((*string)(f.CampaignType)), textOrNil((*string)(f.Status)))
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignWithMetrics, error) {
		var (
			c             domain.Campaign
			categoriesRaw []byte
			createdAt     time.Time
			spend         float64
			impressions   int64
			clicks        int64
			conversions   int64
			convValue     float64
		)
		err := row.Scan(
			&c.ID,
			&c.Name,
			&c.Platform,
			&c.Type,
			&c.Status,
			&c.Objective,
			&c.DailyBudget,
			&categoriesRaw,
			&c.PlatformCampaignID,
			&createdAt,
			&spend,
			&impressions,
			&clicks,
			&conversions,
			&convValue,
		)
		if err != nil {
			return domain.CampaignWithMetrics{}, err
		}
		if err := json.Unmarshal(categoriesRaw, &c.ProductCategories); err != nil {
			return domain.CampaignWithMetrics{}, fmt.Errorf("decode product categories: %w", err)
		}
		c.CreatedAt = &createdAt
		return domain.CampaignWithMetrics{
			Campaign:       c,
			MetricSnapshot: domain.NewMetricSnapshot(spend, impressions, clicks, conversions, convValue),
		}, nil
	})
}

// Create inserts the campaign and returns the stored record with its
// assigned id and creation timestamp.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	categories, err := json.Marshal(c.ProductCategories)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("encode product categories: %w", err)
	}

	var createdAt time.Time
	err = r.pool.QueryRow(ctx, `
        INSERT INTO campaigns
            (name, platform, campaign_type, status, objective, daily_budget, product_categories, platform_campaign_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, NULLIF($8, ''), now(), now())
        RETURNING id, created_at`,
		c.Name, c.Platform, c.Type, c.Status, c.Objective, c.DailyBudget, categories, c.PlatformCampaignID,
	).Scan(&c.ID, &createdAt)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("insert campaign: %w", err)
	}
	c.CreatedAt = &createdAt
	return c, nil
}

// SaveMetrics inserts daily metric records in one batch.
func (r *CampaignRepository) SaveMetrics(ctx context.Context, records []domain.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, m := range records {
		batch.Queue(`
            INSERT INTO campaign_metrics
                (campaign_id, date, spend, impressions, clicks, conversions, conversion_value, currency, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
			m.CampaignID, m.Date, m.Spend, m.Impressions, m.Clicks, m.Conversions, m.ConversionValue, m.Currency)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert metrics: %w", err)
	}
	return nil
}

// MetricsByCampaign returns daily records for one campaign within the date
// range, newest first.
func (r *CampaignRepository) MetricsByCampaign(ctx context.Context, campaignID int64, from, to time.Time) ([]domain.MetricRecord, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, campaignID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check campaign: %w", err)
	}
	if !exists {
		return nil, domain.ErrCampaignNotFound
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, date, spend::float8, impressions, clicks,
               COALESCE(conversions, 0), COALESCE(conversion_value, 0)::float8, currency
        FROM campaign_metrics
        WHERE campaign_id = $1 AND date >= $2 AND date <= $3
        ORDER BY date DESC`, campaignID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricRecord, error) {
		var m domain.MetricRecord
		err := row.Scan(&m.ID, &m.CampaignID, &m.Date, &m.Spend, &m.Impressions, &m.Clicks, &m.Conversions, &m.ConversionValue, &m.Currency)
		return m, err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return records, err
}

// textOrNil turns an optional filter value into a nullable query argument.
func textOrNil(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
