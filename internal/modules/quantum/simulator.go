package quantum

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/pkg/logger"
)

// ErrCapabilityUnavailable is returned when the statevector backend cannot serve a run
var ErrCapabilityUnavailable = errors.New("quantum simulation capability unavailable")

// Simulator runs the toy readiness circuit
type Simulator interface {
	Name() string
	Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error)
}

// SelectSimulator picks the simulation backend once at start-up:
//   - mock: always the mock
//   - statevector: the statevector backend; start-up fails if its probe fails
//   - auto: statevector when the probe passes, otherwise the mock
//
// Statevector backends are wrapped so run-time failures fall back to the mock.
func SelectSimulator(backend string, opts Options, log zerolog.Logger) (Simulator, error) {
	log = logger.Component(log, "simulator")
	mock := NewMockSimulator(opts.Seed)

	switch backend {
	case BackendMock:
		log.Info().Msg("Using mock quantum simulation")
		return mock, nil

	case BackendStatevector:
		sv := NewStatevectorSimulator(opts)
		if err := sv.Probe(); err != nil {
			return nil, fmt.Errorf("statevector backend unavailable: %w", err)
		}
		log.Info().Int("shots", sv.shots).Int("max_qubits", sv.maxQubits).Msg("Using statevector quantum simulation")
		return NewFallbackSimulator(sv, mock, log), nil

	case BackendAuto, "":
		sv := NewStatevectorSimulator(opts)
		if err := sv.Probe(); err != nil {
			log.Warn().Err(err).Msg("Statevector backend unavailable, using mock quantum simulation")
			return mock, nil
		}
		log.Info().Int("shots", sv.shots).Int("max_qubits", sv.maxQubits).Msg("Using statevector quantum simulation")
		return NewFallbackSimulator(sv, mock, log), nil

	default:
		return nil, fmt.Errorf("unknown simulation backend %q", backend)
	}
}

// FallbackSimulator runs the primary backend and substitutes the fallback's
// result when the primary fails. Only context cancellation is returned to callers.
type FallbackSimulator struct {
	primary  Simulator
	fallback Simulator
	log      zerolog.Logger
}

// NewFallbackSimulator wraps primary with fallback
func NewFallbackSimulator(primary, fallback Simulator, log zerolog.Logger) *FallbackSimulator {
	return &FallbackSimulator{
		primary:  primary,
		fallback: fallback,
		log:      log,
	}
}

// Name returns the primary backend name
func (f *FallbackSimulator) Name() string {
	return f.primary.Name()
}

// Run delegates to the primary backend, falling back on error
func (f *FallbackSimulator) Run(ctx context.Context, req SimulationRequest) (*SimulationResult, error) {
	result, err := f.primary.Run(ctx, req)
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	f.log.Warn().
		Err(err).
		Str("primary", f.primary.Name()).
		Str("fallback", f.fallback.Name()).
		Str("scale", req.Scale).
		Msg("Simulation failed, using fallback")

	return f.fallback.Run(ctx, req)
}

// newSource returns a PCG source; seed 0 draws a seed from the runtime generator
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
