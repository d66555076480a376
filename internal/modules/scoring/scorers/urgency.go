package scorers

import (
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// UrgencyScorer rates latency tolerance. Queued cloud quantum access favours batch work.
type UrgencyScorer struct{}

// NewUrgencyScorer creates a new urgency scorer
func NewUrgencyScorer() *UrgencyScorer {
	return &UrgencyScorer{}
}

// Calculate looks the time sensitivity up; unknown values score DefaultUrgencyScore
func (us *UrgencyScorer) Calculate(timeSensitivity string) domain.CategoryScore {
	score, ok := scoring.UrgencyScores[timeSensitivity]
	if !ok {
		score = scoring.DefaultUrgencyScore
	}
	score = scoring.Clamp(score)

	return domain.CategoryScore{
		Category:       domain.CategoryUrgency,
		Score:          score,
		Recommendation: pickRecommendation(urgencyRecommendations, score),
	}
}
