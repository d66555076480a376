// Quantum Readiness Analyzer CLI
//
// Usage:
//
//	qra analyze --input workload.json --format markdown
//	echo '{"problem_type":"search"}' | qra analyze --format yaml
//	qra enums
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "qra",
		Usage:   "Quantum Readiness Analyzer - score workloads for quantum computing investment",
		Version: version,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			analyzeCommand(),
			enumsCommand(),
		},
	}
}
