package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateQubits(t *testing.T) {
	testCases := []struct {
		name        string
		problemType string
		scale       string
		algorithm   string
		logical     int
	}{
		{"optimization small", "optimization", "small", "QAOA", 100},
		{"optimization massive", "optimization", "massive", "QAOA", 100000},
		{"search small", "search", "small", "Grover", 7},
		{"search medium", "search", "medium", "Grover", 10},
		{"search large", "search", "large", "Grover", 14},
		{"search massive", "search", "massive", "Grover", 17},
		{"cryptography large", "cryptography", "large", "Shor", 5000},
		{"cryptography small", "cryptography", "small", "Shor", 50},
		{"molecular medium", "molecular_simulation", "medium", "VQE", 50},
		{"molecular massive", "molecular_simulation", "massive", "VQE", 5000},
		{"machine learning small", "machine_learning", "small", "Variational Quantum Circuit", 1},
		{"machine learning large", "machine_learning", "large", "Variational Quantum Circuit", 100},
		{"web backend", "web_backend", "large", "Not Applicable", 0},
		{"unknown problem type", "weather", "small", "Not Applicable", 0},
		{"unknown scale treated as medium", "optimization", "enormous", "QAOA", 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			estimate := EstimateQubits(tc.problemType, tc.scale)
			assert.Equal(t, tc.algorithm, estimate.AlgorithmUsed)
			assert.Equal(t, tc.logical, estimate.LogicalQubits)
			assert.Equal(t, tc.logical*ErrorCorrectionFactor, estimate.PhysicalQubits)
		})
	}
}

func TestEstimateQubits_ShorLarge(t *testing.T) {
	estimate := EstimateQubits("cryptography", "large")
	assert.Equal(t, 5000, estimate.LogicalQubits)
	assert.Equal(t, 5000000, estimate.PhysicalQubits)
}

func TestSimulationQubits(t *testing.T) {
	assert.Equal(t, 2, SimulationQubits("small"))
	assert.Equal(t, 3, SimulationQubits("medium"))
	assert.Equal(t, 4, SimulationQubits("large"))
	assert.Equal(t, 5, SimulationQubits("massive"))
	assert.Equal(t, 2, SimulationQubits(""))
	assert.Equal(t, 2, SimulationQubits("galactic"))
}

func TestProblemSize(t *testing.T) {
	assert.Equal(t, 100, ProblemSize("small"))
	assert.Equal(t, 100000, ProblemSize("massive"))
	assert.Equal(t, 1000, ProblemSize("unknown"))
}
