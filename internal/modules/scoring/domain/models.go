// Package domain holds the value objects produced by the readiness scorers.
package domain

// Category names used in score breakdowns and recommendations
const (
	CategoryTechnical      = "technical"
	CategoryScale          = "scale"
	CategoryEconomic       = "economic"
	CategoryUrgency        = "urgency"
	CategoryOrganizational = "organizational"
)

// CategoryScore is a single 0-100 category score with its recommendation
type CategoryScore struct {
	Category       string  `json:"category" yaml:"category"`
	Score          float64 `json:"score" yaml:"score"`
	Recommendation string  `json:"recommendation" yaml:"recommendation"`
}

// Breakdown carries the five category scores feeding the composite
type Breakdown struct {
	Technical      float64 `json:"technical" yaml:"technical"`
	Scale          float64 `json:"scale" yaml:"scale"`
	Economic       float64 `json:"economic" yaml:"economic"`
	Urgency        float64 `json:"urgency" yaml:"urgency"`
	Organizational float64 `json:"organizational" yaml:"organizational"`
}

// Values returns the scores in canonical category order.
func (b Breakdown) Values() []float64 {
	return []float64{b.Technical, b.Scale, b.Economic, b.Urgency, b.Organizational}
}

// ScoreResult is the outcome of scoring a workload without the derived report sections
type ScoreResult struct {
	Breakdown        Breakdown       `json:"breakdown" yaml:"breakdown"`
	CategoryScores   []CategoryScore `json:"category_scores" yaml:"category_scores"`
	SuitabilityScore int             `json:"suitability_score" yaml:"suitability_score"`
}
