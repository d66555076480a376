// Package scorers provides the category scorers behind the readiness assessment.
package scorers

import (
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// TechnicalScorer rates how well a problem type maps onto known quantum algorithms
type TechnicalScorer struct{}

// NewTechnicalScorer creates a new technical scorer
func NewTechnicalScorer() *TechnicalScorer {
	return &TechnicalScorer{}
}

// Calculate looks the problem type up; unknown types score DefaultTechnicalScore
func (ts *TechnicalScorer) Calculate(problemType string) domain.CategoryScore {
	score, ok := scoring.TechnicalScores[problemType]
	if !ok {
		score = scoring.DefaultTechnicalScore
	}
	score = scoring.Clamp(score)

	return domain.CategoryScore{
		Category:       domain.CategoryTechnical,
		Score:          score,
		Recommendation: pickRecommendation(technicalRecommendations, score),
	}
}
