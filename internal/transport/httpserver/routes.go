package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gym-membership-go/internal/config"
	"gym-membership-go/internal/transport/httpserver/handler"
	"gym-membership-go/internal/transport/httpserver/middleware"
)

// NewRouter wires the member API. registry may be nil when metrics are off.
func NewRouter(cfg config.Config, handlers *handler.Handlers, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	if cfg.MetricsEnabled && registry != nil {
		metrics := middleware.NewMetrics(registry)
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Get("/", handlers.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/members", handlers.ListMembers)
		r.Post("/members", handlers.CreateMember)
		r.Put("/members/{id}", handlers.UpdateMember)
		r.Delete("/members/{id}", handlers.DeleteMember)
	})

	return r
}
