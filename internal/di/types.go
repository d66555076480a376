// Package di provides dependency injection type definitions and wiring.
//
// The Container holds every long-lived service. It is built once at start-up
// and passed to the server and CLI.
package di

import (
	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/readiness"
)

// Container holds all application dependencies
type Container struct {
	// Simulator is the backend selected at start-up
	Simulator quantum.Simulator

	// Analyzer runs the readiness pipeline
	Analyzer *readiness.Analyzer
}
