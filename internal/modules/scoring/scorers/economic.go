package scorers

import (
	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

var (
	costTierLow  = decimal.NewFromInt(scoring.CostTierLow)
	costTierMid  = decimal.NewFromInt(scoring.CostTierMid)
	costTierHigh = decimal.NewFromInt(scoring.CostTierHigh)
)

// EconomicScorer rates annual compute spend as a step function
type EconomicScorer struct{}

// NewEconomicScorer creates a new economic scorer
func NewEconomicScorer() *EconomicScorer {
	return &EconomicScorer{}
}

// Calculate maps annual compute cost onto its tier:
// <100k → 10, <1M → 40, <10M → 70, otherwise 90
func (es *EconomicScorer) Calculate(annualComputeCost decimal.Decimal) domain.CategoryScore {
	var score float64
	switch {
	case annualComputeCost.LessThan(costTierLow):
		score = scoring.EconomicLow
	case annualComputeCost.LessThan(costTierMid):
		score = scoring.EconomicMid
	case annualComputeCost.LessThan(costTierHigh):
		score = scoring.EconomicHigh
	default:
		score = scoring.EconomicMax
	}

	return domain.CategoryScore{
		Category:       domain.CategoryEconomic,
		Score:          score,
		Recommendation: pickRecommendation(economicRecommendations, score),
	}
}
