package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"coretas/internal/core/port"
	"coretas/internal/telemetry"
)

// Handler is the inbound HTTP adapter: it holds the planner service, the
// telemetry collectors and a structured logger, and registers all routes on
// a chi.Router.
type Handler struct {
	svc    port.PlannerService
	tel    *telemetry.Metrics
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. frontendURL is
// the dashboard origin allowed by CORS.
func NewHandler(svc port.PlannerService, tel *telemetry.Metrics, frontendURL string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, tel: tel, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(tel.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{frontendURL},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", tel.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/plans/generate", h.handleGeneratePlan)
		r.Post("/campaigns/execute", h.handleExecutePlan)
		r.Get("/metrics", h.handleCampaignMetrics)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
