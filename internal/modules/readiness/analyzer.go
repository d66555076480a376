// Package readiness assembles quantum readiness reports from workload descriptions.
package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/scoring"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/scorers"
)

// Analyzer runs the readiness pipeline: score, estimate, simulate, then derive the report sections
type Analyzer struct {
	scorer    *scorers.ReadinessScorer
	simulator quantum.Simulator
	log       zerolog.Logger
	now       func() time.Time
}

// NewAnalyzer creates an analyzer backed by the given simulator
func NewAnalyzer(sim quantum.Simulator, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		scorer:    scorers.NewReadinessScorer(),
		simulator: sim,
		log:       log.With().Str("module", "readiness").Logger(),
		now:       time.Now,
	}
}

// Backend returns the name of the configured simulator
func (a *Analyzer) Backend() string {
	return a.simulator.Name()
}

// Weights returns the composite weight vector the analyzer scores with
func (a *Analyzer) Weights() scoring.WeightSet {
	return a.scorer.Weights()
}

// Analyze normalizes a raw request body and produces a report
func (a *Analyzer) Analyze(ctx context.Context, raw map[string]interface{}) (*AnalysisReport, error) {
	input, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeInput(ctx, input)
}

// AnalyzeInput produces the full report for a normalized input
func (a *Analyzer) AnalyzeInput(ctx context.Context, input AnalysisInput) (*AnalysisReport, error) {
	if unknown := unknownFields(input); len(unknown) > 0 {
		a.log.Debug().Strs("fields", unknown).Msg("Unrecognized values scored with defaults")
	}

	scores := a.scorer.Score(ScoreInput(input))
	score := scores.SuitabilityScore

	estimate := quantum.EstimateQubits(input.ProblemType, input.Scale)

	simulation, err := a.simulator.Run(ctx, quantum.SimulationRequest{
		Scale:            input.Scale,
		SuitabilityScore: score,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run quantum simulation: %w", err)
	}

	report := &AnalysisReport{
		SuitabilityScore:     score,
		RiskLevel:            RiskLevel(score),
		Breakdown:            scores.Breakdown,
		CategoryScores:       scores.CategoryScores,
		QubitEstimate:        estimate,
		HardwareFeasibility:  HardwareFeasibility(estimate.PhysicalQubits),
		ConfidenceBand:       ROIConfidence(score, input.AnnualComputeCost),
		ExecutiveSummary:     ExecutiveSummaryFor(score, input.BusinessCriticality, input.InvestmentHorizon),
		ClassicalAlternative: ClassicalAlternative(input.ProblemType),
		TechnicalAnalysis:    TechnicalAnalysisFor(input.ProblemType, input.Scale, score),
		EconomicAnalysis:     EconomicAnalysisFor(input.AnnualComputeCost, score),
		MigrationRoadmap:     MigrationRoadmap(),
		RiskAssessment:       RiskAssessment(score, scores.Breakdown.Organizational),
		QuantumSimulation:    *simulation,
		Metadata: ReportMetadata{
			AnalysisID:        uuid.New().String(),
			GeneratedAt:       a.now().UTC().Format(time.RFC3339),
			SimulationBackend: simulation.Backend,
		},
	}

	a.log.Debug().
		Str("analysis_id", report.Metadata.AnalysisID).
		Str("problem_type", input.ProblemType).
		Str("scale", input.Scale).
		Int("suitability_score", score).
		Str("risk_level", report.RiskLevel).
		Str("backend", simulation.Backend).
		Msg("Readiness analysis complete")

	return report, nil
}

// ScoreInput converts a normalized input into the scorer's input
func ScoreInput(input AnalysisInput) scorers.ScoreInput {
	return scorers.ScoreInput{
		AnnualComputeCost:       input.AnnualComputeCost,
		ProblemType:             input.ProblemType,
		Scale:                   input.Scale,
		TimeSensitivity:         input.TimeSensitivity,
		HasQuantumTeam:          input.HasQuantumTeam,
		HasResearchPartnerships: input.HasResearchPartnerships,
		HasAdvancedHPC:          input.HasAdvancedHPC,
	}
}

// Score runs only the category and composite scorers
func (a *Analyzer) Score(input AnalysisInput) ScoreSummary {
	result := a.scorer.Score(ScoreInput(input))
	return ScoreSummary{
		SuitabilityScore: result.SuitabilityScore,
		RiskLevel:        RiskLevel(result.SuitabilityScore),
		Breakdown:        result.Breakdown,
		CategoryScores:   result.CategoryScores,
	}
}
