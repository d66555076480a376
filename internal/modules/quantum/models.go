package quantum

// QubitEstimate is the algorithm-level resource estimate for a workload
type QubitEstimate struct {
	AlgorithmUsed  string `json:"algorithm_used" yaml:"algorithm_used"`
	LogicalQubits  int    `json:"logical_qubits" yaml:"logical_qubits"`
	PhysicalQubits int    `json:"physical_qubits" yaml:"physical_qubits"`
}

// SimulationRequest describes the toy circuit to run for a workload
type SimulationRequest struct {
	Scale            string
	SuitabilityScore int
}

// SimulationResult is the outcome of a toy circuit run.
// The mock backend leaves Status and MeasurementDistribution empty, so callers
// must treat both as optional.
type SimulationResult struct {
	Status                  string         `json:"status,omitempty" yaml:"status,omitempty"`
	QubitsUsed              int            `json:"qubits_used" yaml:"qubits_used"`
	MeasuredState           string         `json:"measured_state" yaml:"measured_state"`
	Probability             float64        `json:"probability" yaml:"probability"`
	MeasurementDistribution map[string]int `json:"measurement_distribution,omitempty" yaml:"measurement_distribution,omitempty"`

	// Backend names the simulator that produced the result
	Backend string `json:"-" yaml:"-"`
}

// Backend names
const (
	BackendAuto        = "auto"
	BackendStatevector = "statevector"
	BackendMock        = "mock"
)

// StatusSuccess marks a completed statevector run
const StatusSuccess = "success"

// DefaultShots is the number of measurement samples drawn per run
const DefaultShots = 1024

// simulationQubits sizes the toy circuit by workload scale
var simulationQubits = map[string]int{
	"small":   2,
	"medium":  3,
	"large":   4,
	"massive": 5,
}

const defaultSimulationQubits = 2

// SimulationQubits returns the circuit width for a scale; unknown scales use 2 qubits.
// This table is independent of the qubit estimator.
func SimulationQubits(scale string) int {
	if n, ok := simulationQubits[scale]; ok {
		return n
	}
	return defaultSimulationQubits
}
