// Package telemetry exposes Prometheus metrics for the API: request
// counters and latency, plus planner-level counters for generated plans and
// created campaigns.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service, registered on a
// private registry.
type Metrics struct {
	APIRequestsTotal          *prometheus.CounterVec
	APIRequestDurationSeconds *prometheus.HistogramVec

	PlansGeneratedTotal   prometheus.Counter
	PlanExecutionsTotal   *prometheus.CounterVec
	CampaignsCreatedTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coretas_api_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"route", "method", "status"},
		),
		APIRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coretas_api_request_duration_seconds",
				Help:    "API request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		PlansGeneratedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "coretas_plans_generated_total",
				Help: "Total number of media plans generated",
			},
		),
		PlanExecutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coretas_plan_executions_total",
				Help: "Total number of plan executions by outcome",
			},
			[]string{"outcome"},
		),
		CampaignsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coretas_campaigns_created_total",
				Help: "Total number of campaigns created by platform",
			},
			[]string{"platform"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.APIRequestsTotal,
		m.APIRequestDurationSeconds,
		m.PlansGeneratedTotal,
		m.PlanExecutionsTotal,
		m.CampaignsCreatedTotal,
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records per-request counters and latency, labeled by the chi
// route pattern rather than the raw path.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		m.APIRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		m.APIRequestDurationSeconds.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
