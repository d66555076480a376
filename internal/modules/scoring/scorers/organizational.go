package scorers

import (
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// OrganizationalScorer rates in-house capability to run quantum work
type OrganizationalScorer struct{}

// NewOrganizationalScorer creates a new organizational scorer
func NewOrganizationalScorer() *OrganizationalScorer {
	return &OrganizationalScorer{}
}

// Calculate starts from a base of 20 and adds a bonus per capability, capped at 100
func (oss *OrganizationalScorer) Calculate(hasQuantumTeam, hasResearchPartnerships, hasAdvancedHPC bool) domain.CategoryScore {
	score := scoring.OrganizationalBase
	if hasQuantumTeam {
		score += scoring.QuantumTeamBonus
	}
	if hasResearchPartnerships {
		score += scoring.ResearchPartnershipsBonus
	}
	if hasAdvancedHPC {
		score += scoring.AdvancedHPCBonus
	}
	score = scoring.Clamp(score)

	return domain.CategoryScore{
		Category:       domain.CategoryOrganizational,
		Score:          score,
		Recommendation: pickRecommendation(organizationalRecommendations, score),
	}
}
