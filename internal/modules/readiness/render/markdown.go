package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aristath/quantum-readiness/internal/modules/readiness"
)

// Markdown renders the report as a GitHub-flavoured Markdown document
func Markdown(report *readiness.AnalysisReport) string {
	var b strings.Builder

	b.WriteString("# Quantum Readiness Report\n\n")
	fmt.Fprintf(&b, "**Suitability score:** %d / 100 (%s)\n\n", report.SuitabilityScore, report.RiskLevel)

	summary := report.ExecutiveSummary
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", summary.Headline)
	fmt.Fprintf(&b, "%s\n\n", summary.KeyMessage)
	fmt.Fprintf(&b, "- %s\n", summary.InvestmentSignal)
	fmt.Fprintf(&b, "- Recommended action: %s\n", summary.RecommendedAction)
	fmt.Fprintf(&b, "- %s\n\n", summary.RiskStatement)

	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Category | Score | Recommendation |\n|---|---|---|\n")
	for _, cs := range report.CategoryScores {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(cs.Category), formatFloat(cs.Score), cell(cs.Recommendation))
	}
	b.WriteString("\n")

	estimate := report.QubitEstimate
	b.WriteString("## Qubit Estimate\n\n")
	b.WriteString("| Algorithm | Logical qubits | Physical qubits |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d | %d |\n\n", cell(estimate.AlgorithmUsed), estimate.LogicalQubits, estimate.PhysicalQubits)
	fmt.Fprintf(&b, "%s\n\n", report.HardwareFeasibility)

	b.WriteString("## Return on Investment\n\n")
	band := report.ConfidenceBand
	if band.OptimisticROIYears == nil || band.ConservativeROIYears == nil {
		b.WriteString("No ROI estimate at this suitability level.\n\n")
	} else {
		fmt.Fprintf(&b, "- Optimistic payback: %d years\n", *band.OptimisticROIYears)
		fmt.Fprintf(&b, "- Conservative payback: %d years\n\n", *band.ConservativeROIYears)
	}

	technical := report.TechnicalAnalysis
	b.WriteString("## Technical Analysis\n\n")
	fmt.Fprintf(&b, "- Problem type: %s\n", technical.ProblemType)
	fmt.Fprintf(&b, "- Scale: %s\n", technical.Scale)
	fmt.Fprintf(&b, "- Assessment: %s\n\n", technical.Assessment)

	economic := report.EconomicAnalysis
	b.WriteString("## Economic Analysis\n\n")
	fmt.Fprintf(&b, "- Annual compute budget: %s\n", decimal.NewFromFloat(economic.AnnualComputeBudget).StringFixed(2))
	fmt.Fprintf(&b, "- Guidance: %s\n\n", economic.InvestmentGuidance)

	b.WriteString("## Classical Alternative\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.ClassicalAlternative)

	b.WriteString("## Migration Roadmap\n\n")
	b.WriteString("| Phase | Action | Timeline |\n|---|---|---|\n")
	for _, p := range report.MigrationRoadmap {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(p.Phase), cell(p.Action), cell(p.Timeline))
	}
	b.WriteString("\n")

	b.WriteString("## Risk Assessment\n\n")
	b.WriteString("| Risk | Level |\n|---|---|\n")
	for _, r := range report.RiskAssessment {
		fmt.Fprintf(&b, "| %s | %s |\n", cell(r.Risk), cell(r.Level))
	}
	b.WriteString("\n")

	writeSimulation(&b, report)

	meta := report.Metadata
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "Analysis `%s` generated at %s using the %s simulator.\n", meta.AnalysisID, meta.GeneratedAt, meta.SimulationBackend)

	return b.String()
}

func writeSimulation(b *strings.Builder, report *readiness.AnalysisReport) {
	sim := report.QuantumSimulation
	b.WriteString("## Quantum Simulation\n\n")
	fmt.Fprintf(b, "- Qubits used: %d\n", sim.QubitsUsed)
	fmt.Fprintf(b, "- Measured state: `%s`\n", sim.MeasuredState)
	fmt.Fprintf(b, "- Probability: %s\n", formatFloat(sim.Probability))
	if sim.Status != "" {
		fmt.Fprintf(b, "- Status: %s\n", sim.Status)
	}
	b.WriteString("\n")

	if len(sim.MeasurementDistribution) == 0 {
		return
	}

	states := make([]string, 0, len(sim.MeasurementDistribution))
	for state := range sim.MeasurementDistribution {
		states = append(states, state)
	}
	sort.Strings(states)

	b.WriteString("| State | Count |\n|---|---|\n")
	for _, state := range states {
		fmt.Fprintf(b, "| `%s` | %d |\n", state, sim.MeasurementDistribution[state])
	}
	b.WriteString("\n")
}

// cell escapes text for a Markdown table cell
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
