package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"coretas/internal/adapter/usecase"
	"coretas/internal/core/domain"
)

// errorResponse is the error body shape: a message plus the offending field
// for validation failures, so the client can surface it inline.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	writeJSON(w, status, errorResponse{Message: message, Field: field})
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 400s with the field attached, unknown campaigns 404, everything
// else a generic 500 without leaking internals.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message, verr.Field)
	case errors.Is(err, domain.ErrCampaignNotFound):
		writeError(w, http.StatusNotFound, "campaign not found", "")
	case errors.Is(err, usecase.ErrAllPlatformsFailed):
		h.logger.ErrorContext(r.Context(), "plan execution failed on all platforms")
		writeError(w, http.StatusInternalServerError, "failed to create any campaigns: all platforms failed", "")
	default:
		h.logger.ErrorContext(r.Context(), "internal error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error", "")
	}
}
