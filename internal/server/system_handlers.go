package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers serves process and host status
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	backend     string
	version     string
}

// NewSystemHandlers creates system handlers
func NewSystemHandlers(log zerolog.Logger, backend, version string) *SystemHandlers {
	return &SystemHandlers{
		log:         log.With().Str("service", "system").Logger(),
		startupTime: time.Now(),
		backend:     backend,
		version:     version,
	}
}

// SystemStatusResponse is the body of GET /api/system/status
type SystemStatusResponse struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	SimulationBackend string  `json:"simulation_backend"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	Goroutines        int     `json:"goroutines"`
	GoVersion         string  `json:"go_version"`
	Timestamp         string  `json:"timestamp"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPercent, memPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:            "healthy",
		Version:           h.version,
		SimulationBackend: h.backend,
		UptimeSeconds:     time.Since(h.startupTime).Seconds(),
		CPUPercent:        cpuPercent,
		MemoryPercent:     memPercent,
		Goroutines:        runtime.NumGoroutine(),
		GoVersion:         runtime.Version(),
		Timestamp:         time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// getSystemStats calculates CPU and RAM usage percentages
// Uses a short interval (100ms) so the request is not blocked for long
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	// Get memory statistics (instant, no blocking)
	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
