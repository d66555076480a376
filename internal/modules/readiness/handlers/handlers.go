// Package handlers provides HTTP handlers for readiness analysis.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/internal/modules/readiness"
	"github.com/aristath/quantum-readiness/internal/modules/readiness/render"
)

// MaxBodyBytes bounds the size of an analysis request body
const MaxBodyBytes = 1 << 20

// Error messages returned to clients
const (
	ErrInvalidInput  = "Invalid input"
	ErrInternalError = "Internal server error"
)

// Handler handles readiness analysis HTTP requests
type Handler struct {
	analyzer *readiness.Analyzer
	log      zerolog.Logger
}

// NewHandler creates a new readiness handler
func NewHandler(analyzer *readiness.Analyzer, log zerolog.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		log:      log.With().Str("handler", "readiness").Logger(),
	}
}

// HandleAnalyze handles POST /analyze and POST /api/analysis/analyze.
// Responds with msgpack when the client accepts application/msgpack, JSON otherwise.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	report, ok := h.analyze(w, r)
	if !ok {
		return
	}

	format := render.FormatJSON
	if acceptsMsgpack(r) {
		format = render.FormatMsgpack
	}
	h.writeReport(w, report, format)
}

// HandleReport handles POST /api/analysis/report?format=markdown|html|yaml|json
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.log.Debug().Err(err).Msg("Unsupported report format")
		h.writeError(w, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	report, ok := h.analyze(w, r)
	if !ok {
		return
	}
	h.writeReport(w, report, format)
}

// HandleGetIndustries handles GET /api/analysis/industries
func (h *Handler) HandleGetIndustries(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"industries": readiness.Industries(),
	})
}

// HandleGetReadinessLevels handles GET /api/analysis/readiness-levels
func (h *Handler) HandleGetReadinessLevels(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"levels": readiness.ReadinessLevels(),
	})
}

// HandleGetProblemTypes handles GET /api/analysis/problem-types
func (h *Handler) HandleGetProblemTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"problem_types": readiness.ProblemTypes(),
	})
}

// HandleGetEnumerations handles GET /api/analysis/enumerations
func (h *Handler) HandleGetEnumerations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, readiness.AllEnumerations())
}

// HandleHealth handles GET /api/analysis/health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "quantum-analyzer",
		"backend": h.analyzer.Backend(),
	})
}

// analyze decodes the body and runs the analyzer, writing the error response on failure
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) (*readiness.AnalysisReport, bool) {
	raw, err := readiness.DecodeObject(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		h.log.Debug().Err(err).Msg("Failed to decode analysis request")
		h.writeError(w, http.StatusBadRequest, ErrInvalidInput)
		return nil, false
	}

	report, err := h.analyzer.Analyze(r.Context(), raw)
	if err != nil {
		var validationErr *readiness.ValidationError
		if errors.As(err, &validationErr) {
			h.log.Debug().Str("field", validationErr.Field).Str("reason", validationErr.Reason).Msg("Invalid analysis input")
			h.writeError(w, http.StatusBadRequest, ErrInvalidInput)
			return nil, false
		}
		h.log.Error().Err(err).Msg("Readiness analysis failed")
		h.writeError(w, http.StatusInternalServerError, ErrInternalError)
		return nil, false
	}

	h.log.Info().
		Str("analysis_id", report.Metadata.AnalysisID).
		Int("suitability_score", report.SuitabilityScore).
		Str("risk_level", report.RiskLevel).
		Msg("Readiness report generated")

	return report, true
}

func acceptsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == "application/msgpack" || mediaType == "application/x-msgpack" {
			return true
		}
	}
	return false
}

// writeReport renders into a buffer first so encoding failures still produce a clean 500
func (h *Handler) writeReport(w http.ResponseWriter, report *readiness.AnalysisReport, format render.Format) {
	var buf bytes.Buffer
	if err := render.Render(&buf, report, format); err != nil {
		h.log.Error().Err(err).Str("format", string(format)).Msg("Failed to render report")
		h.writeError(w, http.StatusInternalServerError, ErrInternalError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.log.Error().Err(err).Msg("Failed to write report response")
	}
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
