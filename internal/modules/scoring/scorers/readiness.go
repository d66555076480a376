package scorers

import (
	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// ReadinessScorer orchestrates the five category scorers and the composite
type ReadinessScorer struct {
	technical      *TechnicalScorer
	scale          *ScaleScorer
	economic       *EconomicScorer
	urgency        *UrgencyScorer
	organizational *OrganizationalScorer
	weights        scoring.WeightSet
}

// ScoreInput contains the normalized fields the category scorers read
type ScoreInput struct {
	AnnualComputeCost       decimal.Decimal
	ProblemType             string
	Scale                   string
	TimeSensitivity         string
	HasQuantumTeam          bool
	HasResearchPartnerships bool
	HasAdvancedHPC          bool
}

// NewReadinessScorer creates a scorer using the default weight vector
func NewReadinessScorer() *ReadinessScorer {
	return &ReadinessScorer{
		technical:      NewTechnicalScorer(),
		scale:          NewScaleScorer(),
		economic:       NewEconomicScorer(),
		urgency:        NewUrgencyScorer(),
		organizational: NewOrganizationalScorer(),
		weights:        scoring.DefaultWeights(),
	}
}

// Weights returns the weight vector used for the composite
func (rs *ReadinessScorer) Weights() scoring.WeightSet {
	return rs.weights
}

// Score runs every category scorer and combines them into the suitability score
func (rs *ReadinessScorer) Score(input ScoreInput) domain.ScoreResult {
	technical := rs.technical.Calculate(input.ProblemType)
	scale := rs.scale.Calculate(input.Scale)
	economic := rs.economic.Calculate(input.AnnualComputeCost)
	urgency := rs.urgency.Calculate(input.TimeSensitivity)
	organizational := rs.organizational.Calculate(
		input.HasQuantumTeam,
		input.HasResearchPartnerships,
		input.HasAdvancedHPC,
	)

	breakdown := domain.Breakdown{
		Technical:      technical.Score,
		Scale:          scale.Score,
		Economic:       economic.Score,
		Urgency:        urgency.Score,
		Organizational: organizational.Score,
	}

	return domain.ScoreResult{
		Breakdown:        breakdown,
		CategoryScores:   []domain.CategoryScore{technical, scale, economic, urgency, organizational},
		SuitabilityScore: rs.weights.Suitability(breakdown),
	}
}
