package scoring

// Readiness scoring constants - category tables, thresholds and defaults

// =============================================================================
// Technical (problem type) scores
// =============================================================================

// TechnicalScores maps a problem type onto its algorithmic fit for quantum hardware
var TechnicalScores = map[string]float64{
	"molecular_simulation": 95,
	"cryptography":         90,
	"optimization":         85,
	"search":               75,
	"machine_learning":     40,
	"web_backend":          5,
}

const DefaultTechnicalScore = 5.0

// =============================================================================
// Scale scores
// =============================================================================

// ScaleScores maps a workload scale onto its score
var ScaleScores = map[string]float64{
	"massive": 90,
	"large":   70,
	"medium":  40,
	"small":   10,
}

const DefaultScaleScore = 10.0

// =============================================================================
// Economic (annual compute cost) steps
// =============================================================================

const (
	CostTierLow    = 100_000    // below: 10
	CostTierMid    = 1_000_000  // below: 40
	CostTierHigh   = 10_000_000 // below: 70, otherwise 90
	EconomicLow    = 10.0
	EconomicMid    = 40.0
	EconomicHigh   = 70.0
	EconomicMax    = 90.0
	HighSpendLimit = CostTierHigh // ROI bands tighten above this spend
)

// =============================================================================
// Urgency (time sensitivity) scores
// =============================================================================

// UrgencyScores maps a latency requirement onto its score; batch tolerance scores highest
var UrgencyScores = map[string]float64{
	"batch":     85,
	"hours":     70,
	"minutes":   40,
	"real_time": 10,
}

const DefaultUrgencyScore = 85.0

// =============================================================================
// Organizational readiness
// =============================================================================

const (
	OrganizationalBase        = 20.0
	QuantumTeamBonus          = 30.0
	ResearchPartnershipsBonus = 25.0
	AdvancedHPCBonus          = 25.0
	MaxScore                  = 100.0
	MinScore                  = 0.0
)

// =============================================================================
// Input defaults
// =============================================================================

const (
	DefaultProblemType         = "web_backend"
	DefaultScale               = "small"
	DefaultTimeSensitivity     = "batch"
	DefaultBusinessCriticality = "low impact"
	DefaultInvestmentHorizon   = "<2 years"
)
