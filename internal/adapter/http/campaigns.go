package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"coretas/internal/core/domain"
	"coretas/internal/core/port"
)

// handleListCampaigns returns all campaigns with aggregated metrics. It
// accepts optional `platform`, `campaign_type` and `status` filters plus a
// `days` aggregation window (1-90, default 7). Unknown filter values are
// a 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f port.CampaignFilter

	if raw := q.Get("platform"); raw != "" {
		p, ok := domain.ParsePlatform(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid platform: "+raw+". Must be one of: google, meta, amazon", "platform")
			return
		}
		f.Platform = &p
	}
	if raw := q.Get("campaign_type"); raw != "" {
		t := domain.CampaignType(strings.ToLower(raw))
		f.CampaignType = &t
	}
	if raw := q.Get("status"); raw != "" {
		s := domain.CampaignStatus(strings.ToLower(raw))
		f.Status = &s
	}

	days, ok := parseDays(q.Get("days"))
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be an integer between 1 and 90", "days")
		return
	}
	f.Days = days

	campaigns, err := h.svc.Campaigns(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// parseDays parses the days query parameter, defaulting to 7 and rejecting
// values outside [1, 90].
func parseDays(raw string) (int, bool) {
	if raw == "" {
		return 7, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > 90 {
		return 0, false
	}
	return days, true
}
