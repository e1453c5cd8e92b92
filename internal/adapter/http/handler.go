package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-sync/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it enqueues sync jobs, reports their state and relays live progress
// over websockets. Routes are registered on a chi.Router.
type Handler struct {
	jobs     port.JobRunner
	events   port.EventSubscriber
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(jobs port.JobRunner, events port.EventSubscriber, logger *slog.Logger) *Handler {
	h := &Handler{
		jobs:     jobs,
		events:   events,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaign-sets/{setID}/sync", h.handleSync)
		r.Get("/jobs/{jobID}", h.handleJobState)
		r.Get("/jobs/{jobID}/stream", h.handleJobStream)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
