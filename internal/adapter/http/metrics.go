package httpadapter

import (
	"net/http"
	"strconv"
)

// handleCampaignMetrics returns performance data. With `campaign_id` set it
// returns that campaign's daily records; without it, aggregated metrics per
// campaign. `days` bounds the window (1-90, default 7).
func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days, ok := parseDays(q.Get("days"))
	if !ok {
		writeError(w, http.StatusBadRequest, "days must be an integer between 1 and 90", "days")
		return
	}

	if raw := q.Get("campaign_id"); raw != "" {
		campaignID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid campaign_id", "campaign_id")
			return
		}
		records, err := h.svc.CampaignMetrics(r.Context(), campaignID, days)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
		return
	}

	summaries, err := h.svc.MetricsOverview(r.Context(), days)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
