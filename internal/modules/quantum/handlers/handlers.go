// Package handlers provides HTTP handlers for qubit estimation and circuit simulation.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	readinesshandlers "github.com/aristath/quantum-readiness/internal/modules/readiness/handlers"
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
)

// Handler handles quantum HTTP requests
type Handler struct {
	simulator quantum.Simulator
	log       zerolog.Logger
}

// NewHandler creates a new quantum handler
func NewHandler(
	simulator quantum.Simulator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		simulator: simulator,
		log:       log.With().Str("handler", "quantum").Logger(),
	}
}

// SimulateRequest represents a request to run the readiness circuit
type SimulateRequest struct {
	Scale            string `json:"scale"`
	SuitabilityScore int    `json:"suitability_score"`
}

// HandleSimulate handles POST /api/quantum/simulate
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, readinesshandlers.MaxBodyBytes)).Decode(&req); err != nil {
		h.log.Debug().Err(err).Msg("Failed to decode request body")
		h.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.SuitabilityScore < 0 || req.SuitabilityScore > 100 {
		h.writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	scale := queryValue(req.Scale, scoring.DefaultScale)

	result, err := h.simulator.Run(r.Context(), quantum.SimulationRequest{
		Scale:            scale,
		SuitabilityScore: req.SuitabilityScore,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Simulation failed")
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"backend":   result.Backend,
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// HandleEstimateQubits handles GET /api/quantum/qubits?problem_type=&scale=
func (h *Handler) HandleEstimateQubits(w http.ResponseWriter, r *http.Request) {
	problemType := queryValue(r.URL.Query().Get("problem_type"), scoring.DefaultProblemType)
	scale := queryValue(r.URL.Query().Get("scale"), scoring.DefaultScale)

	estimate := quantum.EstimateQubits(problemType, scale)

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"problem_type":            problemType,
			"scale":                   scale,
			"problem_size":            quantum.ProblemSize(scale),
			"estimate":                estimate,
			"error_correction_factor": quantum.ErrorCorrectionFactor,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// queryValue trims and lower-cases a categorical value, falling back to def when empty
func queryValue(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
