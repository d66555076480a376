package quantum

import (
	"context"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	mockMinProbability = 0.1
	mockMaxProbability = 0.9
)

// MockSimulator returns a random outcome of the right width without simulating a
// circuit. Output is non-deterministic unless seeded. Unknown scales use the same
// 2-qubit width as the statevector backend, not a wider mock-only default.
type MockSimulator struct {
	mu  sync.Mutex
	src rand.Source
	rng *rand.Rand
}

// NewMockSimulator creates a mock simulator; seed 0 seeds from the runtime generator
func NewMockSimulator(seed uint64) *MockSimulator {
	src := newSource(seed)
	return &MockSimulator{
		src: src,
		rng: rand.New(src),
	}
}

// Name returns the backend name
func (m *MockSimulator) Name() string {
	return BackendMock
}

// Run picks a uniformly random bit-string and a probability in [0.1, 0.9]
func (m *MockSimulator) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := SimulationQubits(req.Scale)

	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.rng.IntN(1 << n)
	probability := distuv.Uniform{Min: mockMinProbability, Max: mockMaxProbability, Src: m.src}.Rand()

	return &SimulationResult{
		QubitsUsed:    n,
		MeasuredState: bitString(state, n),
		Probability:   round3(probability),
		Backend:       BackendMock,
	}, nil
}
