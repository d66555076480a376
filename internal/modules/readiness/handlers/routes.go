package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all analysis routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analysis", func(r chi.Router) {
		r.Post("/analyze", h.HandleAnalyze)
		r.Post("/report", h.HandleReport)

		// Static enumerations
		r.Get("/industries", h.HandleGetIndustries)
		r.Get("/readiness-levels", h.HandleGetReadinessLevels)
		r.Get("/problem-types", h.HandleGetProblemTypes)
		r.Get("/enumerations", h.HandleGetEnumerations)

		r.Get("/health", h.HandleHealth)
	})
}
