package scorers

import (
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// ScaleScorer rates the size of the workload
type ScaleScorer struct{}

// NewScaleScorer creates a new scale scorer
func NewScaleScorer() *ScaleScorer {
	return &ScaleScorer{}
}

// Calculate looks the scale up; unknown scales score DefaultScaleScore
func (ss *ScaleScorer) Calculate(scale string) domain.CategoryScore {
	score, ok := scoring.ScaleScores[scale]
	if !ok {
		score = scoring.DefaultScaleScore
	}
	score = scoring.Clamp(score)

	return domain.CategoryScore{
		Category:       domain.CategoryScale,
		Score:          score,
		Recommendation: pickRecommendation(scaleRecommendations, score),
	}
}
