package readiness

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/scoring"
)

// Input field names
const (
	FieldProblemType             = "problem_type"
	FieldScale                   = "scale"
	FieldAnnualComputeCost       = "annual_compute_cost"
	FieldTimeSensitivity         = "time_sensitivity"
	FieldHasQuantumTeam          = "has_quantum_team"
	FieldHasResearchPartnerships = "has_research_partnerships"
	FieldHasAdvancedHPC          = "has_advanced_hpc"
	FieldBusinessCriticality     = "business_criticality"
	FieldInvestmentHorizon       = "investment_horizon"
)

// ValidationError reports a field that could not be coerced
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Normalize turns a loosely typed request body into an AnalysisInput.
// Missing or null fields take their defaults and unknown keys are ignored.
func Normalize(raw map[string]interface{}) (AnalysisInput, error) {
	cost, err := parseCost(raw[FieldAnnualComputeCost])
	if err != nil {
		return AnalysisInput{}, err
	}

	return AnalysisInput{
		ProblemType:             stringField(raw, FieldProblemType, scoring.DefaultProblemType),
		Scale:                   stringField(raw, FieldScale, scoring.DefaultScale),
		AnnualComputeCost:       cost,
		TimeSensitivity:         stringField(raw, FieldTimeSensitivity, scoring.DefaultTimeSensitivity),
		HasQuantumTeam:          boolField(raw, FieldHasQuantumTeam),
		HasResearchPartnerships: boolField(raw, FieldHasResearchPartnerships),
		HasAdvancedHPC:          boolField(raw, FieldHasAdvancedHPC),
		BusinessCriticality:     stringField(raw, FieldBusinessCriticality, scoring.DefaultBusinessCriticality),
		InvestmentHorizon:       stringField(raw, FieldInvestmentHorizon, scoring.DefaultInvestmentHorizon),
	}, nil
}

func stringField(raw map[string]interface{}, field, fallback string) string {
	v, ok := raw[field]
	if !ok || v == nil {
		return fallback
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	default:
		s = fmt.Sprint(t)
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func boolField(raw map[string]interface{}, field string) bool {
	v, ok := raw[field]
	if !ok || v == nil {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case string:
		return parseBoolString(t)
	default:
		return true
	}
}

func parseBoolString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	switch s {
	case "", "no", "n", "off":
		return false
	default:
		// yes, y, on and any other non-empty text
		return true
	}
}

func parseCost(v interface{}) (decimal.Decimal, error) {
	var (
		cost decimal.Decimal
		err  error
	)

	switch t := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, &ValidationError{Field: FieldAnnualComputeCost, Reason: "must be a finite number"}
		}
		cost = decimal.NewFromFloat(t)
	case float32:
		return parseCost(float64(t))
	case int:
		cost = decimal.NewFromInt(int64(t))
	case int64:
		cost = decimal.NewFromInt(t)
	case json.Number:
		cost, err = decimal.NewFromString(t.String())
	case string:
		cost, err = decimal.NewFromString(strings.TrimSpace(t))
	default:
		return decimal.Zero, &ValidationError{Field: FieldAnnualComputeCost, Reason: fmt.Sprintf("unsupported type %T", v)}
	}

	if err != nil {
		return decimal.Zero, &ValidationError{Field: FieldAnnualComputeCost, Reason: "not a number"}
	}
	if cost.IsNegative() {
		return decimal.Zero, &ValidationError{Field: FieldAnnualComputeCost, Reason: "must not be negative"}
	}
	return cost, nil
}

// DecodeObject reads a single JSON object. Numbers are kept as json.Number.
func DecodeObject(body io.Reader) (map[string]interface{}, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	if raw == nil {
		return nil, errors.New("input must be a JSON object")
	}
	if dec.More() {
		return nil, errors.New("input must contain a single JSON object")
	}
	return raw, nil
}
