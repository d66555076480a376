// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
)

// Config holds application configuration
type Config struct {
	Port                int
	LogLevel            string // Log level: debug, info, warn, error
	LogPretty           bool
	DevMode             bool
	SimulationBackend   string // auto, statevector or mock
	SimulationShots     int
	SimulationMaxQubits int
	SimulationSeed      uint64 // 0 seeds randomly
	CORSAllowedOrigins  []string
	Version             string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnvAsInt("PORT", 9800), // Frontend posts to :9800
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPretty:           getEnvAsBool("LOG_PRETTY", true),
		DevMode:             getEnvAsBool("DEV_MODE", false),
		SimulationBackend:   strings.ToLower(getEnv("SIMULATION_BACKEND", quantum.BackendAuto)),
		SimulationShots:     getEnvAsInt("SIMULATION_SHOTS", quantum.DefaultShots),
		SimulationMaxQubits: getEnvAsInt("SIMULATION_MAX_QUBITS", 10),
		SimulationSeed:      getEnvAsUint64("SIMULATION_SEED", 0),
		CORSAllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Version:             getEnv("VERSION", "dev"),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	switch c.SimulationBackend {
	case quantum.BackendAuto, quantum.BackendStatevector, quantum.BackendMock:
	default:
		return fmt.Errorf("SIMULATION_BACKEND must be one of auto, statevector, mock, got %q", c.SimulationBackend)
	}

	if c.SimulationShots <= 0 {
		return fmt.Errorf("SIMULATION_SHOTS must be positive, got %d", c.SimulationShots)
	}

	return nil
}

// SimulationOptions returns the simulator options derived from the configuration
func (c *Config) SimulationOptions() quantum.Options {
	return quantum.Options{
		Shots:     c.SimulationShots,
		MaxQubits: c.SimulationMaxQubits,
		Seed:      c.SimulationSeed,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
