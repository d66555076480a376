// Package handlers provides HTTP handlers for scoring API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/internal/modules/readiness"
	readinesshandlers "github.com/aristath/quantum-readiness/internal/modules/readiness/handlers"
)

// Handlers provides HTTP handlers for scoring module
type Handlers struct {
	analyzer *readiness.Analyzer
	log      zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(analyzer *readiness.Analyzer, log zerolog.Logger) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		log:      log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// HandleScore handles POST /api/scoring/score
// Scores a workload without running the simulation or building the report sections
func (h *Handlers) HandleScore(w http.ResponseWriter, r *http.Request) {
	raw, err := readiness.DecodeObject(http.MaxBytesReader(w, r.Body, readinesshandlers.MaxBodyBytes))
	if err != nil {
		h.log.Debug().Err(err).Msg("Failed to decode score request")
		h.writeError(w, readinesshandlers.ErrInvalidInput, http.StatusBadRequest)
		return
	}

	input, err := readiness.Normalize(raw)
	if err != nil {
		var validationErr *readiness.ValidationError
		if errors.As(err, &validationErr) {
			h.writeError(w, readinesshandlers.ErrInvalidInput, http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to normalize score request")
		h.writeError(w, readinesshandlers.ErrInternalError, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, h.analyzer.Score(input))
}

// HandleGetCurrentWeights handles GET /api/scoring/weights/current
func (h *Handlers) HandleGetCurrentWeights(w http.ResponseWriter, r *http.Request) {
	weights := h.analyzer.Weights()

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"weights":     weights,
			"sum":         weights.Sum(),
			"rounding":    "truncate",
			"description": "Weighted composite of the five category scores, truncated toward zero",
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// writeJSON writes a JSON response with status code
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
