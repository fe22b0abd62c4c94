package httpadapter

import (
	"encoding/json"
	"net/http"

	"coretas/internal/core/domain"
)

// handleGeneratePlan turns wizard input into a platform-agnostic media
// plan. Malformed JSON or invalid input produce a 400 with the offending
// field; the generated plan is returned as-is, never persisted.
func (h *Handler) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var input domain.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "")
		return
	}

	plan, err := h.svc.GeneratePlan(r.Context(), input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.tel.PlansGeneratedTotal.Inc()
	writeJSON(w, http.StatusOK, plan)
}

// handleExecutePlan materialises a generated plan into one campaign per
// platform and responds 201 with the created campaigns. Validation failures
// are a 400; an execution where every platform failed is a 500.
func (h *Handler) handleExecutePlan(w http.ResponseWriter, r *http.Request) {
	var plan domain.GeneratedPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "")
		return
	}

	result, err := h.svc.ExecutePlan(r.Context(), plan)
	if err != nil {
		h.tel.PlanExecutionsTotal.WithLabelValues("failed").Inc()
		h.respondError(w, r, err)
		return
	}

	h.tel.PlanExecutionsTotal.WithLabelValues("success").Inc()
	for _, c := range result.Campaigns {
		h.tel.CampaignsCreatedTotal.WithLabelValues(string(c.Platform)).Inc()
	}
	writeJSON(w, http.StatusCreated, result)
}
