package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/readiness"
	"github.com/aristath/quantum-readiness/internal/modules/scoring/domain"
)

func intPtr(v int) *int { return &v }

func testReport() *readiness.AnalysisReport {
	return &readiness.AnalysisReport{
		SuitabilityScore: 77,
		RiskLevel:        "Hybrid Exploration",
		Breakdown:        domain.Breakdown{Technical: 90, Scale: 70, Economic: 70, Urgency: 70, Organizational: 75},
		CategoryScores: []domain.CategoryScore{
			{Category: "technical", Score: 90, Recommendation: "Strong algorithmic fit"},
			{Category: "scale", Score: 70, Recommendation: "Large | enough"},
		},
		QubitEstimate:       quantum.QubitEstimate{AlgorithmUsed: "Shor", LogicalQubits: 5000, PhysicalQubits: 5_000_000},
		HardwareFeasibility: "Requires significant hardware scaling beyond NISQ systems.",
		ConfidenceBand: readiness.ConfidenceBand{
			OptimisticROIYears:   intPtr(5),
			ConservativeROIYears: intPtr(9),
		},
		ExecutiveSummary:     readiness.ExecutiveSummaryFor(77, "low impact", "<2 years"),
		ClassicalAlternative: "Adopt Post-Quantum Cryptography standards.",
		TechnicalAnalysis:    readiness.TechnicalAnalysisFor("cryptography", "large", 77),
		EconomicAnalysis:     readiness.EconomicAnalysis{AnnualComputeBudget: 2000000, InvestmentGuidance: "High investment case."},
		MigrationRoadmap:     readiness.MigrationRoadmap(),
		RiskAssessment:       readiness.RiskAssessment(77, 75),
		QuantumSimulation: quantum.SimulationResult{
			Status:                  quantum.StatusSuccess,
			QubitsUsed:              2,
			MeasuredState:           "11",
			Probability:             0.612,
			MeasurementDistribution: map[string]int{"11": 627, "00": 397},
			Backend:                 quantum.BackendStatevector,
		},
		Metadata: readiness.ReportMetadata{
			AnalysisID:        "2f1c7a0e-5b7e-4d55-9c55-7d6f1c1e9a10",
			GeneratedAt:       "2025-03-01T11:00:00Z",
			SimulationBackend: quantum.BackendStatevector,
		},
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		name     string
		expected Format
	}{
		{"", FormatJSON},
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"md", FormatMarkdown},
		{" markdown ", FormatMarkdown},
		{"html", FormatHTML},
		{"msgpack", FormatMsgpack},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseFormat(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Equal(t, "application/msgpack", FormatMsgpack.ContentType())
	assert.Equal(t, "text/html; charset=utf-8", FormatHTML.ContentType())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 77.0, decoded["suitability_score"])
	assert.Equal(t, "Hybrid Exploration", decoded["risk_level"])

	sim := decoded["quantum_simulation"].(map[string]interface{})
	assert.Equal(t, "success", sim["status"])
	assert.NotContains(t, sim, "Backend")
}

func TestRender_JSONNullBand(t *testing.T) {
	report := testReport()
	report.ConfidenceBand = readiness.ConfidenceBand{}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, FormatJSON))
	assert.Contains(t, buf.String(), `"optimistic_roi_years": null`)
	assert.Contains(t, buf.String(), `"conservative_roi_years": null`)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), FormatYAML))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 77, decoded["suitability_score"])

	estimate := decoded["qubit_estimate"].(map[string]interface{})
	assert.Equal(t, "Shor", estimate["algorithm_used"])
	assert.Equal(t, 5000000, estimate["physical_qubits"])
}

func TestRender_Msgpack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), FormatMsgpack))

	var decoded map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "suitability_score")
	assert.Contains(t, decoded, "quantum_simulation")
	assert.Equal(t, "Hybrid Exploration", decoded["risk_level"])
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testReport())

	assert.True(t, strings.HasPrefix(md, "# Quantum Readiness Report\n"))
	assert.Contains(t, md, "**Suitability score:** 77 / 100 (Hybrid Exploration)")
	assert.Contains(t, md, "## Executive Summary")
	assert.Contains(t, md, "**Moderate Quantum Opportunity**")
	assert.Contains(t, md, "| technical | 90 | Strong algorithmic fit |")
	assert.Contains(t, md, `Large \| enough`)
	assert.Contains(t, md, "| Shor | 5000 | 5000000 |")
	assert.Contains(t, md, "- Optimistic payback: 5 years")
	assert.Contains(t, md, "- Annual compute budget: 2000000.00")
	assert.Contains(t, md, "| Phase 1 | Cloud exploration | 0-6 months |")
	assert.Contains(t, md, "| Talent Gap | Medium |")
	assert.Contains(t, md, "- Measured state: `11`")
	assert.Contains(t, md, "- Status: success")

	// Histogram rows are sorted by state
	assert.Less(t, strings.Index(md, "| `00` | 397 |"), strings.Index(md, "| `11` | 627 |"))
}

func TestMarkdown_MockAndNoROI(t *testing.T) {
	report := testReport()
	report.ConfidenceBand = readiness.ConfidenceBand{}
	report.QuantumSimulation = quantum.SimulationResult{QubitsUsed: 3, MeasuredState: "010", Probability: 0.42}

	md := Markdown(report)
	assert.Contains(t, md, "No ROI estimate at this suitability level.")
	assert.NotContains(t, md, "- Status:")
	assert.NotContains(t, md, "| State | Count |")
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testReport(), FormatHTML))
	page := buf.String()

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.True(t, strings.HasSuffix(page, "</body></html>"))
	assert.Contains(t, page, "<h1>Quantum Readiness Report</h1>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<td>Shor</td>")
	assert.Contains(t, page, "&lt;2 years")
}

func TestRender_HTMLDropsRawMarkup(t *testing.T) {
	report := testReport()
	report.ExecutiveSummary.InvestmentSignal = "<script>alert(1)</script>"

	page, err := HTML(report)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, testReport(), Format("pdf")))
}
