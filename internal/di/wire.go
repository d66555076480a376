package di

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/quantum-readiness/internal/config"
	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/readiness"
)

// Wire initializes all dependencies and returns a fully configured container
// Order of operations:
// 1. Select the simulation backend (probing the statevector backend once)
// 2. Build the analyzer around it
func Wire(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	simulator, err := quantum.SelectSimulator(cfg.SimulationBackend, cfg.SimulationOptions(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize simulator: %w", err)
	}

	container := &Container{
		Simulator: simulator,
		Analyzer:  readiness.NewAnalyzer(simulator, log),
	}

	log.Info().
		Str("simulation_backend", simulator.Name()).
		Msg("Dependencies wired")

	return container, nil
}
