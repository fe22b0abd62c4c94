// Package query implements the dashboard's list engine: filter predicate
// composition, page-window selection and metric aggregation. Everything here
// is a pure function over an already-loaded campaign slice, so the same code
// serves both the in-memory and the remote backend.
package query

import (
	"strings"

	"coretas/internal/core/domain"
)

// Options controls one evaluation of the campaign list. Platform and
// CampaignType accept "all" (or empty) to disable that filter. Page is
// 1-based; PageSize must be positive.
type Options struct {
	Search       string
	Platform     string
	CampaignType string
	Page         int
	PageSize     int
}

// Result is the exact window of rows to render plus pagination metadata.
// Page is the clamped page that was actually selected; callers render it
// instead of the requested page so a filter change never lands on an empty
// page while matches exist.
type Result struct {
	Rows       []domain.CampaignWithMetrics
	TotalPages int
	Page       int
}

// Campaigns applies the search, platform and type filters and selects the
// requested page window. The requested page is clamped into
// [1, totalPages] (1 when nothing matches) before slicing.
func Campaigns(all []domain.CampaignWithMetrics, opts Options) Result {
	if opts.PageSize <= 0 {
		opts.PageSize = 5
	}

	filtered := make([]domain.CampaignWithMetrics, 0, len(all))
	for _, c := range all {
		if matches(c, opts) {
			filtered = append(filtered, c)
		}
	}

	totalPages := (len(filtered) + opts.PageSize - 1) / opts.PageSize

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * opts.PageSize
	end := start + opts.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Rows:       filtered[start:end],
		TotalPages: totalPages,
		Page:       page,
	}
}

func matches(c domain.CampaignWithMetrics, opts Options) bool {
	if s := strings.ToLower(strings.TrimSpace(opts.Search)); s != "" {
		name := strings.ToLower(c.Name)
		platform := strings.ToLower(string(c.Platform))
		if !strings.Contains(name, s) && !strings.Contains(platform, s) {
			return false
		}
	}
	if p := opts.Platform; p != "" && !strings.EqualFold(p, "all") {
		if !strings.EqualFold(p, string(c.Platform)) {
			return false
		}
	}
	if t := opts.CampaignType; t != "" && !strings.EqualFold(t, "all") {
		if !strings.EqualFold(t, string(c.Type)) {
			return false
		}
	}
	return true
}

// PageItem is one slot in the elided page strip: either a page number or an
// ellipsis marker.
type PageItem struct {
	Number   int
	Ellipsis bool
}

// PageNumbers builds the elided page strip of width 5: first page, an
// ellipsis when the window is detached from it, the window
// [currentPage-1, currentPage+1] clipped to the interior, an ellipsis when
// detached from the end, and the last page. With five or fewer pages every
// page is shown.
func PageNumbers(currentPage, totalPages int) []PageItem {
	const maxVisible = 5

	if totalPages <= 0 {
		return nil
	}
	if totalPages <= maxVisible {
		items := make([]PageItem, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			items = append(items, PageItem{Number: i})
		}
		return items
	}

	items := []PageItem{{Number: 1}}
	if currentPage > 3 {
		items = append(items, PageItem{Ellipsis: true})
	}

	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i})
	}

	if currentPage < totalPages-2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	return append(items, PageItem{Number: totalPages})
}

// Totals is the dashboard's summary tile data.
type Totals struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalConversions int64   `json:"totalConversions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalImpressions int64   `json:"totalImpressions"`
}

// Aggregate sums the per-campaign performance fields. An empty input yields
// all zeros.
func Aggregate(campaigns []domain.CampaignWithMetrics) Totals {
	var t Totals
	for _, c := range campaigns {
		t.TotalSpend += c.TotalSpend
		t.TotalConversions += c.TotalConversions
		t.TotalClicks += c.TotalClicks
		t.TotalImpressions += c.TotalImpressions
	}
	return t
}
