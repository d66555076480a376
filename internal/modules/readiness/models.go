package readiness

import (
	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

// AnalysisInput is the normalized description of a workload
type AnalysisInput struct {
	ProblemType             string          `json:"problem_type" yaml:"problem_type"`
	Scale                   string          `json:"scale" yaml:"scale"`
	AnnualComputeCost       decimal.Decimal `json:"annual_compute_cost" yaml:"annual_compute_cost"`
	TimeSensitivity         string          `json:"time_sensitivity" yaml:"time_sensitivity"`
	HasQuantumTeam          bool            `json:"has_quantum_team" yaml:"has_quantum_team"`
	HasResearchPartnerships bool            `json:"has_research_partnerships" yaml:"has_research_partnerships"`
	HasAdvancedHPC          bool            `json:"has_advanced_hpc" yaml:"has_advanced_hpc"`
	BusinessCriticality     string          `json:"business_criticality" yaml:"business_criticality"`
	InvestmentHorizon       string          `json:"investment_horizon" yaml:"investment_horizon"`
}

// ConfidenceBand is the ROI payback window in years. Both bounds are nil
// when the suitability score is too low to justify an estimate.
type ConfidenceBand struct {
	OptimisticROIYears   *int `json:"optimistic_roi_years" yaml:"optimistic_roi_years"`
	ConservativeROIYears *int `json:"conservative_roi_years" yaml:"conservative_roi_years"`
}

// ExecutiveSummary is the headline section of a report
type ExecutiveSummary struct {
	Headline          string `json:"headline" yaml:"headline"`
	KeyMessage        string `json:"key_message" yaml:"key_message"`
	InvestmentSignal  string `json:"investment_signal" yaml:"investment_signal"`
	RecommendedAction string `json:"recommended_action" yaml:"recommended_action"`
	RiskStatement     string `json:"risk_statement" yaml:"risk_statement"`
}

// TechnicalAnalysis describes the workload and its quantum fit
type TechnicalAnalysis struct {
	ProblemType string `json:"problem_type" yaml:"problem_type"`
	Scale       string `json:"scale" yaml:"scale"`
	Assessment  string `json:"assessment" yaml:"assessment"`
}

// EconomicAnalysis echoes the compute budget with investment guidance
type EconomicAnalysis struct {
	AnnualComputeBudget float64 `json:"annual_compute_budget" yaml:"annual_compute_budget"`
	InvestmentGuidance  string  `json:"investment_guidance" yaml:"investment_guidance"`
}

// RoadmapPhase is one step of the migration roadmap
type RoadmapPhase struct {
	Phase    string `json:"phase" yaml:"phase"`
	Action   string `json:"action" yaml:"action"`
	Timeline string `json:"timeline" yaml:"timeline"`
}

// RiskItem is one entry of the risk assessment
type RiskItem struct {
	Risk  string `json:"risk" yaml:"risk"`
	Level string `json:"level" yaml:"level"`
}

// ReportMetadata identifies a generated report
type ReportMetadata struct {
	AnalysisID        string `json:"analysis_id" yaml:"analysis_id"`
	GeneratedAt       string `json:"generated_at" yaml:"generated_at"`
	SimulationBackend string `json:"simulation_backend" yaml:"simulation_backend"`
}

// AnalysisReport is the full readiness report for one workload
type AnalysisReport struct {
	SuitabilityScore     int                      `json:"suitability_score" yaml:"suitability_score"`
	RiskLevel            string                   `json:"risk_level" yaml:"risk_level"`
	Breakdown            domain.Breakdown         `json:"breakdown" yaml:"breakdown"`
	CategoryScores       []domain.CategoryScore   `json:"category_scores" yaml:"category_scores"`
	QubitEstimate        quantum.QubitEstimate    `json:"qubit_estimate" yaml:"qubit_estimate"`
	HardwareFeasibility  string                   `json:"hardware_feasibility" yaml:"hardware_feasibility"`
	ConfidenceBand       ConfidenceBand           `json:"confidence_band" yaml:"confidence_band"`
	ExecutiveSummary     ExecutiveSummary         `json:"executive_summary" yaml:"executive_summary"`
	ClassicalAlternative string                   `json:"classical_alternative" yaml:"classical_alternative"`
	TechnicalAnalysis    TechnicalAnalysis        `json:"technical_analysis" yaml:"technical_analysis"`
	EconomicAnalysis     EconomicAnalysis         `json:"economic_analysis" yaml:"economic_analysis"`
	MigrationRoadmap     []RoadmapPhase           `json:"migration_roadmap" yaml:"migration_roadmap"`
	RiskAssessment       []RiskItem               `json:"risk_assessment" yaml:"risk_assessment"`
	QuantumSimulation    quantum.SimulationResult `json:"quantum_simulation" yaml:"quantum_simulation"`
	Metadata             ReportMetadata           `json:"metadata" yaml:"metadata"`
}

// ScoreSummary is the scoring-only view of a workload, without simulation or report sections
type ScoreSummary struct {
	SuitabilityScore int                    `json:"suitability_score" yaml:"suitability_score"`
	RiskLevel        string                 `json:"risk_level" yaml:"risk_level"`
	Breakdown        domain.Breakdown       `json:"breakdown" yaml:"breakdown"`
	CategoryScores   []domain.CategoryScore `json:"category_scores" yaml:"category_scores"`
}
