package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all quantum routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/quantum", func(r chi.Router) {
		r.Post("/simulate", h.HandleSimulate)
		r.Get("/qubits", h.HandleEstimateQubits)
	})
}
