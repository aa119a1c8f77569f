// Package api is the HTTP surface of the review analysis service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route. Rate limiting applies to /api/v1 only.
func NewRouter(h *Handler, cfg MiddlewareConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(observe)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsHandler(cfg.CORSAllowedOrigins))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/analyze", h.AnalyzeReview)
			r.Get("/health", h.ReviewsHealth)
		})
		r.Route("/recommendations", func(r chi.Router) {
			r.Post("/", h.Recommendations)
			r.Get("/health", serviceHealth("recommendations"))
		})
	})

	return r
}
