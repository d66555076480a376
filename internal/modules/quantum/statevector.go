package quantum

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// rotationJitter bounds the random offset added to each RY rotation
	rotationJitter = 0.2

	// normTolerance is the allowed drift of the total probability from 1
	normTolerance = 1e-9
)

// stateVector holds 2^n complex amplitudes. Qubit q is bit q of the basis index.
type stateVector struct {
	qubits int
	amps   []complex128
}

func newStateVector(qubits int) *stateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &stateVector{qubits: qubits, amps: amps}
}

// h applies a Hadamard gate to qubit q
func (s *stateVector) h(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := s.amps[i], s.amps[j]
		s.amps[i] = (a + b) * complex(math.Sqrt2/2, 0)
		s.amps[j] = (a - b) * complex(math.Sqrt2/2, 0)
	}
}

// ry rotates qubit q about the Y axis by theta
func (s *stateVector) ry(q int, theta float64) {
	bit := 1 << q
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a, b := s.amps[i], s.amps[j]
		s.amps[i] = c*a - sn*b
		s.amps[j] = sn*a + c*b
	}
}

// cx flips target where control is set
func (s *stateVector) cx(control, target int) {
	cbit, tbit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// probabilities applies the Born rule to every amplitude
func (s *stateVector) probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, amp := range s.amps {
		probs[i] = bornRule(amp)
	}
	return probs
}

// bornRule calculates probability using Born rule: P = |ψ|²
func bornRule(amplitude complex128) float64 {
	return cmplx.Abs(amplitude) * cmplx.Abs(amplitude)
}

// bitString renders a basis index with qubit 0 as the rightmost character
func bitString(index, qubits int) string {
	return fmt.Sprintf("%0*b", qubits, index)
}

// Options configures the simulators
type Options struct {
	Shots     int
	MaxQubits int
	Seed      uint64 // 0 seeds from the runtime generator
}

// StatevectorSimulator runs the readiness circuit on an exact state vector and
// samples measurements from it
type StatevectorSimulator struct {
	mu        sync.Mutex
	src       rand.Source
	shots     int
	maxQubits int
}

// NewStatevectorSimulator creates a statevector simulator
func NewStatevectorSimulator(opts Options) *StatevectorSimulator {
	shots := opts.Shots
	if shots <= 0 {
		shots = DefaultShots
	}
	return &StatevectorSimulator{
		src:       newSource(opts.Seed),
		shots:     shots,
		maxQubits: opts.MaxQubits,
	}
}

// Name returns the backend name
func (s *StatevectorSimulator) Name() string {
	return BackendStatevector
}

// Probe prepares a Bell pair and checks the simulator produces the expected
// normalised, entangled distribution. Called once at start-up.
func (s *StatevectorSimulator) Probe() error {
	if s.maxQubits < 2 {
		return fmt.Errorf("%w: qubit limit %d is below the 2 qubits needed", ErrCapabilityUnavailable, s.maxQubits)
	}

	state := newStateVector(2)
	state.h(0)
	state.cx(0, 1)
	probs := state.probabilities()

	if math.Abs(floats.Sum(probs)-1) > normTolerance {
		return fmt.Errorf("%w: probe state is not normalised", ErrCapabilityUnavailable)
	}
	// |00> and |11> only
	if math.Abs(probs[0]-0.5) > normTolerance || math.Abs(probs[3]-0.5) > normTolerance {
		return fmt.Errorf("%w: probe state is not a Bell pair", ErrCapabilityUnavailable)
	}
	return nil
}

// Run builds the circuit for the request: Hadamard on every qubit, an RY rotation
// of score/100·π plus jitter, then a CX chain. It samples the configured number of shots.
func (s *StatevectorSimulator) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := SimulationQubits(req.Scale)
	if n > s.maxQubits {
		return nil, fmt.Errorf("%w: %d qubits exceeds limit of %d", ErrCapabilityUnavailable, n, s.maxQubits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := newStateVector(n)
	for q := 0; q < n; q++ {
		state.h(q)
	}

	baseAngle := float64(req.SuitabilityScore) / 100 * math.Pi
	jitter := distuv.Uniform{Min: -rotationJitter, Max: rotationJitter, Src: s.src}
	for q := 0; q < n; q++ {
		state.ry(q, baseAngle+jitter.Rand())
	}

	for q := 0; q < n-1; q++ {
		state.cx(q, q+1)
	}

	probs := state.probabilities()
	if math.Abs(floats.Sum(probs)-1) > normTolerance {
		return nil, fmt.Errorf("%w: state vector lost normalisation", ErrCapabilityUnavailable)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := s.sample(probs, n)
	measured, count := mostFrequent(counts)

	return &SimulationResult{
		Status:                  StatusSuccess,
		QubitsUsed:              n,
		MeasuredState:           measured,
		Probability:             round3(float64(count) / float64(s.shots)),
		MeasurementDistribution: counts,
		Backend:                 BackendStatevector,
	}, nil
}

// sample draws shots from the Born-rule distribution
func (s *StatevectorSimulator) sample(probs []float64, qubits int) map[string]int {
	dist := distuv.NewCategorical(probs, s.src)
	counts := make(map[string]int)
	for i := 0; i < s.shots; i++ {
		counts[bitString(int(dist.Rand()), qubits)]++
	}
	return counts
}

// mostFrequent returns the outcome with the highest count; ties go to the
// lexicographically smallest bit-string
func mostFrequent(counts map[string]int) (string, int) {
	states := make([]string, 0, len(counts))
	for state := range counts {
		states = append(states, state)
	}
	sort.Strings(states)

	best, bestCount := "", -1
	for _, state := range states {
		if counts[state] > bestCount {
			best, bestCount = state, counts[state]
		}
	}
	return best, bestCount
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
