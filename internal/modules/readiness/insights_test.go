package readiness

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevel(t *testing.T) {
	testCases := []struct {
		score    int
		expected string
	}{
		{0, "High Risk"},
		{29, "High Risk"},
		{30, "Experimental"},
		{59, "Experimental"},
		{60, "Hybrid Exploration"},
		{79, "Hybrid Exploration"},
		{80, "Strategic Opportunity"},
		{100, "Strategic Opportunity"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RiskLevel(tc.score), "score %d", tc.score)
	}
}

func TestHardwareFeasibility(t *testing.T) {
	assert.Equal(t, "Quantum computing not applicable.", HardwareFeasibility(0))
	assert.Equal(t, "Feasible for experimental cloud quantum platforms.", HardwareFeasibility(7000))
	assert.Equal(t, "Feasible for experimental cloud quantum platforms.", HardwareFeasibility(999_999))
	assert.Equal(t, "Requires significant hardware scaling beyond NISQ systems.", HardwareFeasibility(1_000_000))
	assert.Equal(t, "Requires significant hardware scaling beyond NISQ systems.", HardwareFeasibility(5_000_000))
	assert.Equal(t, "Not feasible with current hardware maturity.", HardwareFeasibility(100_000_000))
}

func TestROIConfidence(t *testing.T) {
	testCases := []struct {
		name         string
		score        int
		cost         int64
		optimistic   int
		conservative int
	}{
		{"strategic", 85, 500_000, 3, 6},
		{"moderate", 60, 500_000, 5, 9},
		{"experimental", 40, 500_000, 8, 12},
		{"strategic high spend", 90, 20_000_000, 2, 5},
		{"moderate high spend", 70, 10_000_001, 4, 8},
		{"experimental high spend", 45, 50_000_000, 7, 11},
		{"exactly at spend limit", 90, 10_000_000, 3, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			band := ROIConfidence(tc.score, decimal.NewFromInt(tc.cost))
			require.NotNil(t, band.OptimisticROIYears)
			require.NotNil(t, band.ConservativeROIYears)
			assert.Equal(t, tc.optimistic, *band.OptimisticROIYears)
			assert.Equal(t, tc.conservative, *band.ConservativeROIYears)
		})
	}
}

func TestROIConfidence_NilIffBelowForty(t *testing.T) {
	for score := 0; score <= 100; score++ {
		for _, cost := range []int64{0, 5_000_000, 50_000_000} {
			band := ROIConfidence(score, decimal.NewFromInt(cost))
			if score < 40 {
				assert.Nil(t, band.OptimisticROIYears, "score %d", score)
				assert.Nil(t, band.ConservativeROIYears, "score %d", score)
				continue
			}
			require.NotNil(t, band.OptimisticROIYears, "score %d", score)
			require.NotNil(t, band.ConservativeROIYears, "score %d", score)
			assert.Less(t, *band.OptimisticROIYears, *band.ConservativeROIYears, "score %d", score)
		}
	}
}

func TestExecutiveSummaryFor(t *testing.T) {
	summary := ExecutiveSummaryFor(77, "mission critical", "2-5 years")
	assert.Equal(t, "Moderate Quantum Opportunity", summary.Headline)
	assert.Equal(t, "Suitability score of 77 indicates alignment with quantum initiatives.", summary.KeyMessage)
	assert.Equal(t, "Business criticality: mission critical. Investment horizon: 2-5 years.", summary.InvestmentSignal)
	assert.Equal(t, "Structured pilot recommended.", summary.RecommendedAction)
	assert.Equal(t, "Quantum hardware maturity remains evolving.", summary.RiskStatement)

	assert.Equal(t, "High Strategic Quantum Potential", ExecutiveSummaryFor(80, "", "").Headline)
	low := ExecutiveSummaryFor(59, "", "")
	assert.Equal(t, "Limited Near-Term Quantum Value", low.Headline)
	assert.Equal(t, "Continue classical optimization.", low.RecommendedAction)
}

func TestClassicalAlternative(t *testing.T) {
	assert.Equal(t, "Adopt Post-Quantum Cryptography standards.", ClassicalAlternative("cryptography"))
	assert.Equal(t, "Leverage GPU acceleration and classical heuristics.", ClassicalAlternative("optimization"))
	assert.Equal(t, "Continue classical HPC improvements.", ClassicalAlternative("search"))
	assert.Equal(t, "Continue classical HPC improvements.", ClassicalAlternative("unknown"))
}

func TestTechnicalAnalysisFor(t *testing.T) {
	analysis := TechnicalAnalysisFor("molecular_simulation", "massive", 75)
	assert.Equal(t, "Molecular_simulation", analysis.ProblemType)
	assert.Equal(t, "Massive", analysis.Scale)
	assert.Equal(t, "Strong quantum potential.", analysis.Assessment)

	assert.Equal(t, "Moderate feasibility.", TechnicalAnalysisFor("search", "small", 50).Assessment)
	assert.Equal(t, "Limited quantum viability.", TechnicalAnalysisFor("search", "small", 49).Assessment)
	assert.Equal(t, "", TechnicalAnalysisFor("", "", 0).ProblemType)
}

func TestEconomicAnalysisFor(t *testing.T) {
	analysis := EconomicAnalysisFor(decimal.NewFromInt(2_000_000), 77)
	assert.Equal(t, 2000000.0, analysis.AnnualComputeBudget)
	assert.Equal(t, "High investment case.", analysis.InvestmentGuidance)

	assert.Equal(t, "Pilot projects recommended.", EconomicAnalysisFor(decimal.Zero, 50).InvestmentGuidance)
	assert.Equal(t, "Continue classical optimization.", EconomicAnalysisFor(decimal.Zero, 20).InvestmentGuidance)
}

func TestMigrationRoadmap(t *testing.T) {
	roadmap := MigrationRoadmap()
	require.Len(t, roadmap, 4)
	assert.Equal(t, RoadmapPhase{Phase: "Phase 1", Action: "Cloud exploration", Timeline: "0-6 months"}, roadmap[0])
	assert.Equal(t, RoadmapPhase{Phase: "Phase 4", Action: "Strategic decision", Timeline: "18 months"}, roadmap[3])

	// Callers get their own copy
	roadmap[0].Action = "changed"
	assert.Equal(t, "Cloud exploration", MigrationRoadmap()[0].Action)
}

func TestRiskAssessment(t *testing.T) {
	risks := RiskAssessment(69, 45)
	require.Len(t, risks, 4)
	assert.Equal(t, RiskItem{Risk: "Hardware Maturity", Level: "Medium"}, risks[0])
	assert.Equal(t, RiskItem{Risk: "Algorithm Uncertainty", Level: "Medium-High"}, risks[1])
	assert.Equal(t, RiskItem{Risk: "Talent Gap", Level: "High"}, risks[2])
	assert.Equal(t, RiskItem{Risk: "Vendor Lock-in", Level: "Medium"}, risks[3])

	risks = RiskAssessment(70, 50)
	assert.Equal(t, "Medium", risks[1].Level)
	assert.Equal(t, "Medium", risks[2].Level)
}
