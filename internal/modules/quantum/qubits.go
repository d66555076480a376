// Package quantum provides qubit resource estimation and the toy circuit simulators
// used to illustrate a readiness report.
package quantum

import "math"

// ErrorCorrectionFactor is the number of physical qubits per logical qubit
const ErrorCorrectionFactor = 1000

// problemSizes maps a workload scale onto a nominal problem size
var problemSizes = map[string]int{
	"small":   100,
	"medium":  1000,
	"large":   10000,
	"massive": 100000,
}

const defaultProblemSize = 1000

// ProblemSize returns the nominal problem size for a scale; unknown scales are treated as medium
func ProblemSize(scale string) int {
	if size, ok := problemSizes[scale]; ok {
		return size
	}
	return defaultProblemSize
}

// EstimateQubits estimates the logical and physical qubits needed for a problem type at a scale:
//   - optimization: size (QAOA)
//   - search: ⌈log2(size)⌉ (Grover)
//   - cryptography: ⌊size/2⌋ (Shor)
//   - molecular_simulation: ⌊size·0.05⌋ (VQE)
//   - machine_learning: ⌊size·0.01⌋ (Variational Quantum Circuit)
//   - anything else: 0 (Not Applicable)
func EstimateQubits(problemType, scale string) QubitEstimate {
	size := ProblemSize(scale)

	logical := 0
	algorithm := "Not Applicable"

	switch problemType {
	case "optimization":
		logical = size
		algorithm = "QAOA"
	case "search":
		logical = int(math.Ceil(math.Log2(float64(size))))
		algorithm = "Grover"
	case "cryptography":
		logical = size / 2
		algorithm = "Shor"
	case "molecular_simulation":
		// Integer form of size*0.05; sizes are multiples of 100
		logical = size * 5 / 100
		algorithm = "VQE"
	case "machine_learning":
		logical = size / 100
		algorithm = "Variational Quantum Circuit"
	}

	return QubitEstimate{
		AlgorithmUsed:  algorithm,
		LogicalQubits:  logical,
		PhysicalQubits: logical * ErrorCorrectionFactor,
	}
}
