package readiness

import "slices"

// Enumerations describes the values the analyzer understands
type Enumerations struct {
	Industries         []string `json:"industries" yaml:"industries"`
	ReadinessLevels    []string `json:"readiness_levels" yaml:"readiness_levels"`
	ProblemTypes       []string `json:"problem_types" yaml:"problem_types"`
	Scales             []string `json:"scales" yaml:"scales"`
	TimeSensitivities  []string `json:"time_sensitivities" yaml:"time_sensitivities"`
	InvestmentHorizons []string `json:"investment_horizons" yaml:"investment_horizons"`
}

var industries = []string{
	"finance",
	"healthcare",
	"retail",
	"manufacturing",
	"technology",
	"energy",
	"telecommunications",
	"other",
}

var readinessLevels = []string{
	"not_ready",
	"beginner",
	"intermediate",
	"advanced",
	"expert",
}

var problemTypes = []string{
	"molecular_simulation",
	"cryptography",
	"optimization",
	"search",
	"machine_learning",
	"web_backend",
}

var scales = []string{"small", "medium", "large", "massive"}

var timeSensitivities = []string{"batch", "hours", "minutes", "real_time"}

var investmentHorizons = []string{"<2 years", "2-5 years", ">5 years"}

// Industries returns the supported industries
func Industries() []string { return clone(industries) }

// ReadinessLevels returns the readiness levels
func ReadinessLevels() []string { return clone(readinessLevels) }

// ProblemTypes returns the problem types with a dedicated technical score
func ProblemTypes() []string { return clone(problemTypes) }

// AllEnumerations returns every static enumeration
func AllEnumerations() Enumerations {
	return Enumerations{
		Industries:         Industries(),
		ReadinessLevels:    ReadinessLevels(),
		ProblemTypes:       ProblemTypes(),
		Scales:             clone(scales),
		TimeSensitivities:  clone(timeSensitivities),
		InvestmentHorizons: clone(investmentHorizons),
	}
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// unknownFields lists the categorical fields whose value has no dedicated score
func unknownFields(input AnalysisInput) []string {
	var unknown []string
	if !slices.Contains(problemTypes, input.ProblemType) {
		unknown = append(unknown, FieldProblemType)
	}
	if !slices.Contains(scales, input.Scale) {
		unknown = append(unknown, FieldScale)
	}
	if !slices.Contains(timeSensitivities, input.TimeSensitivity) {
		unknown = append(unknown, FieldTimeSensitivity)
	}
	return unknown
}
