// Package scoring provides readiness scoring constants and the composite suitability score.
package scoring

import (
	"fmt"
	"math"

	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// WeightSet defines the relative importance of each category.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	Technical      float64 `json:"technical"`
	Scale          float64 `json:"scale"`
	Economic       float64 `json:"economic"`
	Urgency        float64 `json:"urgency"`
	Organizational float64 `json:"organizational"`
}

// DefaultWeights returns the fixed suitability weight vector
func DefaultWeights() WeightSet {
	return WeightSet{
		Technical:      0.35,
		Scale:          0.20,
		Economic:       0.20,
		Urgency:        0.15,
		Organizational: 0.10,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Technical + w.Scale + w.Economic + w.Urgency + w.Organizational
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for name, v := range w.asMap() {
		if v < 0 {
			return fmt.Errorf("negative weight for %s: %f", name, v)
		}
	}
	return nil
}

func (w WeightSet) asMap() map[string]float64 {
	return map[string]float64{
		domain.CategoryTechnical:      w.Technical,
		domain.CategoryScale:          w.Scale,
		domain.CategoryEconomic:       w.Economic,
		domain.CategoryUrgency:        w.Urgency,
		domain.CategoryOrganizational: w.Organizational,
	}
}

// Weighted returns the un-truncated weighted sum of a breakdown.
// Each product is converted explicitly so the compiler cannot fuse it into an FMA;
// the result must match plain IEEE multiply-then-add evaluation.
func (w WeightSet) Weighted(b domain.Breakdown) float64 {
	return float64(b.Technical*w.Technical) +
		float64(b.Scale*w.Scale) +
		float64(b.Economic*w.Economic) +
		float64(b.Urgency*w.Urgency) +
		float64(b.Organizational*w.Organizational)
}

// Suitability truncates the weighted sum toward zero and clamps it to [0, 100].
// Truncation, not rounding: 77.5 yields 77.
func (w WeightSet) Suitability(b domain.Breakdown) int {
	score := int(w.Weighted(b))
	if score < int(MinScore) {
		return int(MinScore)
	}
	if score > int(MaxScore) {
		return int(MaxScore)
	}
	return score
}

// Clamp bounds a category score to [0, 100]
func Clamp(score float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, score))
}
