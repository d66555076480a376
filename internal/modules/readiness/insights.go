package readiness

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/scoring"
)

// scoreBand maps a lower score bound to a label. Tables are ordered highest first.
type scoreBand struct {
	min   int
	label string
}

func pickBand(bands []scoreBand, score int) string {
	for _, b := range bands {
		if score >= b.min {
			return b.label
		}
	}
	return bands[len(bands)-1].label
}

var riskLevels = []scoreBand{
	{80, "Strategic Opportunity"},
	{60, "Hybrid Exploration"},
	{30, "Experimental"},
	{0, "High Risk"},
}

// RiskLevel classifies a suitability score
func RiskLevel(score int) string {
	return pickBand(riskLevels, score)
}

// Physical qubit thresholds for hardware feasibility
const (
	nisqCloudLimit     = 1_000_000
	hardwareScaleLimit = 100_000_000
)

// HardwareFeasibility describes whether the physical qubit count is reachable
func HardwareFeasibility(physicalQubits int) string {
	switch {
	case physicalQubits == 0:
		return "Quantum computing not applicable."
	case physicalQubits < nisqCloudLimit:
		return "Feasible for experimental cloud quantum platforms."
	case physicalQubits < hardwareScaleLimit:
		return "Requires significant hardware scaling beyond NISQ systems."
	default:
		return "Not feasible with current hardware maturity."
	}
}

type roiBand struct {
	min          int
	optimistic   int
	conservative int
}

var roiBands = []roiBand{
	{80, 3, 6},
	{60, 5, 9},
	{40, 8, 12},
}

// roiHighSpend is the budget above which payback shortens by a year
var roiHighSpend = decimal.NewFromInt(scoring.HighSpendLimit)

// ROIConfidence returns the payback window in years. Scores below 40 get no estimate.
func ROIConfidence(score int, cost decimal.Decimal) ConfidenceBand {
	for _, b := range roiBands {
		if score < b.min {
			continue
		}
		optimistic, conservative := b.optimistic, b.conservative
		if cost.GreaterThan(roiHighSpend) {
			optimistic = max(optimistic-1, 1)
			conservative = max(conservative-1, 2)
		}
		return ConfidenceBand{
			OptimisticROIYears:   &optimistic,
			ConservativeROIYears: &conservative,
		}
	}
	return ConfidenceBand{}
}

var headlines = []scoreBand{
	{80, "High Strategic Quantum Potential"},
	{60, "Moderate Quantum Opportunity"},
	{0, "Limited Near-Term Quantum Value"},
}

var recommendedActions = []scoreBand{
	{60, "Structured pilot recommended."},
	{0, "Continue classical optimization."},
}

// ExecutiveSummaryFor builds the executive summary
func ExecutiveSummaryFor(score int, criticality, horizon string) ExecutiveSummary {
	return ExecutiveSummary{
		Headline:          pickBand(headlines, score),
		KeyMessage:        fmt.Sprintf("Suitability score of %d indicates alignment with quantum initiatives.", score),
		InvestmentSignal:  fmt.Sprintf("Business criticality: %s. Investment horizon: %s.", criticality, horizon),
		RecommendedAction: pickBand(recommendedActions, score),
		RiskStatement:     "Quantum hardware maturity remains evolving.",
	}
}

var classicalAlternatives = map[string]string{
	"cryptography": "Adopt Post-Quantum Cryptography standards.",
	"optimization": "Leverage GPU acceleration and classical heuristics.",
}

// ClassicalAlternative suggests the classical path for a problem type
func ClassicalAlternative(problemType string) string {
	if alt, ok := classicalAlternatives[problemType]; ok {
		return alt
	}
	return "Continue classical HPC improvements."
}

var technicalAssessments = []scoreBand{
	{75, "Strong quantum potential."},
	{50, "Moderate feasibility."},
	{0, "Limited quantum viability."},
}

// TechnicalAnalysisFor builds the technical analysis section
func TechnicalAnalysisFor(problemType, scale string, score int) TechnicalAnalysis {
	return TechnicalAnalysis{
		ProblemType: capitalize(problemType),
		Scale:       capitalize(scale),
		Assessment:  pickBand(technicalAssessments, score),
	}
}

var investmentGuidance = []scoreBand{
	{75, "High investment case."},
	{50, "Pilot projects recommended."},
	{0, "Continue classical optimization."},
}

// EconomicAnalysisFor builds the economic analysis section
func EconomicAnalysisFor(cost decimal.Decimal, score int) EconomicAnalysis {
	return EconomicAnalysis{
		AnnualComputeBudget: cost.InexactFloat64(),
		InvestmentGuidance:  pickBand(investmentGuidance, score),
	}
}

var migrationRoadmap = []RoadmapPhase{
	{Phase: "Phase 1", Action: "Cloud exploration", Timeline: "0-6 months"},
	{Phase: "Phase 2", Action: "Hybrid architecture", Timeline: "6-12 months"},
	{Phase: "Phase 3", Action: "Proof of Concept", Timeline: "12-18 months"},
	{Phase: "Phase 4", Action: "Strategic decision", Timeline: "18 months"},
}

// MigrationRoadmap returns the fixed four-phase roadmap
func MigrationRoadmap() []RoadmapPhase {
	roadmap := make([]RoadmapPhase, len(migrationRoadmap))
	copy(roadmap, migrationRoadmap)
	return roadmap
}

// Risk assessment thresholds
const (
	algorithmUncertaintyThreshold = 70
	talentGapThreshold            = 50.0
)

// RiskAssessment lists the programme risks for a score and organizational readiness
func RiskAssessment(score int, organizational float64) []RiskItem {
	algorithm := "Medium"
	if score < algorithmUncertaintyThreshold {
		algorithm = "Medium-High"
	}
	talent := "Medium"
	if organizational < talentGapThreshold {
		talent = "High"
	}

	return []RiskItem{
		{Risk: "Hardware Maturity", Level: "Medium"},
		{Risk: "Algorithm Uncertainty", Level: algorithm},
		{Risk: "Talent Gap", Level: talent},
		{Risk: "Vendor Lock-in", Level: "Medium"},
	}
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	rest := []rune(s[size:])
	for i := range rest {
		rest[i] = unicode.ToLower(rest[i])
	}
	return string(unicode.ToUpper(r)) + string(rest)
}
