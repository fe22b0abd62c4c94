// Package memory is the in-memory campaign backend. It mirrors the postgres
// repository's contract so the two are interchangeable, and exists so the
// service can run without a database (demo mode, tests). State lives in an
// explicit store guarded by a mutex, not in package globals.
package memory

import (
	"context"
	"sync"
	"time"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository over process memory.
type CampaignRepository struct {
	mu           sync.RWMutex
	campaigns    []domain.Campaign
	metrics      map[int64][]domain.MetricRecord
	nextID       int64
	nextMetricID int64
	now          func() time.Time
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns an empty in-memory repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{
		metrics:      make(map[int64][]domain.MetricRecord),
		nextID:       1,
		nextMetricID: 1,
		now:          time.Now,
	}
}

// List returns campaigns matching the filter, newest first, each annotated
// with metrics summed over the filter's day window (default 7 days).
func (r *CampaignRepository) List(_ context.Context, f port.CampaignFilter) ([]domain.CampaignWithMetrics, error) {
	days := f.Days
	if days <= 0 {
		days = 7
	}
	cutoff := r.now().UTC().AddDate(0, 0, -days)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CampaignWithMetrics, 0, len(r.campaigns))
	for i := len(r.campaigns) - 1; i >= 0; i-- {
		c := r.campaigns[i]
		if f.Platform != nil && c.Platform != *f.Platform {
			continue
		}
		if f.CampaignType != nil && c.Type != *f.CampaignType {
			continue
		}
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		out = append(out, domain.CampaignWithMetrics{
			Campaign:       c,
			MetricSnapshot: r.snapshotLocked(c.ID, cutoff),
		})
	}
	return out, nil
}

func (r *CampaignRepository) snapshotLocked(campaignID int64, cutoff time.Time) domain.MetricSnapshot {
	var (
		spend, conversionValue float64
		impressions, clicks    int64
		conversions            int64
	)
	for _, m := range r.metrics[campaignID] {
		if m.Date.Before(cutoff) {
			continue
		}
		spend += m.Spend
		impressions += m.Impressions
		clicks += m.Clicks
		conversions += m.Conversions
		conversionValue += m.ConversionValue
	}
	return domain.NewMetricSnapshot(spend, impressions, clicks, conversions, conversionValue)
}

// Create stores the campaign under the next id and stamps its creation
// time. Ids are monotonically increasing for the life of the store.
func (r *CampaignRepository) Create(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	created := r.now().UTC()
	c.CreatedAt = &created
	c.ProductCategories = append([]string(nil), c.ProductCategories...)
	r.campaigns = append(r.campaigns, c)
	return c, nil
}

// SaveMetrics appends daily metric records.
func (r *CampaignRepository) SaveMetrics(_ context.Context, records []domain.MetricRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range records {
		m.ID = r.nextMetricID
		r.nextMetricID++
		r.metrics[m.CampaignID] = append(r.metrics[m.CampaignID], m)
	}
	return nil
}

// MetricsByCampaign returns daily records within the range, newest first.
func (r *CampaignRepository) MetricsByCampaign(_ context.Context, campaignID int64, from, to time.Time) ([]domain.MetricRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for _, c := range r.campaigns {
		if c.ID == campaignID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrCampaignNotFound
	}

	records := r.metrics[campaignID]
	out := make([]domain.MetricRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		m := records[i]
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
