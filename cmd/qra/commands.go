package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
	"github.com/aristath/quantum-readiness/internal/modules/readiness"
	"github.com/aristath/quantum-readiness/internal/modules/readiness/render"
	"github.com/aristath/quantum-readiness/pkg/logger"
)

// =============================================================================
// ANALYZE COMMAND
// =============================================================================

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a workload described as a JSON object",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "Path to the workload JSON, or - for stdin",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Output format (json, yaml, markdown, html)",
			},
			&cli.StringFlag{
				Name:    "backend",
				Value:   quantum.BackendAuto,
				Usage:   "Simulation backend (auto, statevector, mock)",
				EnvVars: []string{"SIMULATION_BACKEND"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "Simulation seed; 0 seeds randomly",
				EnvVars: []string{"SIMULATION_SEED"},
			},
			&cli.IntFlag{
				Name:    "shots",
				Value:   quantum.DefaultShots,
				Usage:   "Measurement samples per statevector run",
				EnvVars: []string{"SIMULATION_SHOTS"},
			},
			&cli.IntFlag{
				Name:    "max-qubits",
				Value:   10,
				Usage:   "Widest circuit the statevector backend will simulate",
				EnvVars: []string{"SIMULATION_MAX_QUBITS"},
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	log := cliLogger(c)

	format, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	if format == render.FormatMsgpack {
		return fmt.Errorf("format %q is only available over HTTP", format)
	}

	raw, err := readInput(c)
	if err != nil {
		return err
	}

	sim, err := quantum.SelectSimulator(c.String("backend"), quantum.Options{
		Shots:     c.Int("shots"),
		MaxQubits: c.Int("max-qubits"),
		Seed:      c.Uint64("seed"),
	}, log)
	if err != nil {
		return err
	}

	analyzer := readiness.NewAnalyzer(sim, log)
	report, err := analyzer.Analyze(context.Background(), raw)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return render.Render(c.App.Writer, report, format)
}

func readInput(c *cli.Context) (map[string]interface{}, error) {
	path := c.String("input")

	var in io.Reader = c.App.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if in == nil {
		in = os.Stdin
	}

	return readiness.DecodeObject(in)
}

// =============================================================================
// ENUMS COMMAND
// =============================================================================

func enumsCommand() *cli.Command {
	return &cli.Command{
		Name:  "enums",
		Usage: "Print the supported industries, readiness levels and workload values",
		Action: func(c *cli.Context) error {
			return render.YAML(c.App.Writer, readiness.AllEnumerations())
		},
	}
}

func cliLogger(c *cli.Context) zerolog.Logger {
	return logger.New(logger.Config{
		Level:  c.String("log-level"),
		Pretty: true,
		Output: c.App.ErrWriter,
	})
}
