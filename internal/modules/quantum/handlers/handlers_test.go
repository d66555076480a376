package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/quantum-readiness/internal/modules/quantum"
)

func setupTestSimulator() quantum.Simulator {
	return quantum.NewStatevectorSimulator(quantum.Options{Shots: 512, MaxQubits: 10, Seed: 21})
}

type brokenSimulator struct{}

func (brokenSimulator) Name() string { return "broken" }

func (brokenSimulator) Run(ctx context.Context, req quantum.SimulationRequest) (*quantum.SimulationResult, error) {
	return nil, errors.New("no backend")
}

func TestHandleSimulate(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	requestBody := map[string]interface{}{
		"scale":             "medium",
		"suitability_score": 65,
	}
	bodyBytes, _ := json.Marshal(requestBody)

	req := httptest.NewRequest("POST", "/api/quantum/simulate", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	handler.HandleSimulate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	assert.Contains(t, response, "data")
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "success", data["status"])
	assert.Equal(t, 3.0, data["qubits_used"])
	assert.Len(t, data["measured_state"], 3)
	assert.Contains(t, data, "measurement_distribution")

	metadata := response["metadata"].(map[string]interface{})
	assert.Equal(t, "statevector", metadata["backend"])
}

func TestHandleSimulate_DefaultScale(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(quantum.NewMockSimulator(4), logger)

	req := httptest.NewRequest("POST", "/api/quantum/simulate", strings.NewReader(`{"suitability_score": 10}`))
	w := httptest.NewRecorder()

	handler.HandleSimulate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["qubits_used"])
	assert.NotContains(t, data, "status")
}

func TestHandleSimulate_InvalidInput(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	for _, body := range []string{`{`, `{"suitability_score": 101}`, `{"suitability_score": -1}`, `{"scale": 5}`} {
		req := httptest.NewRequest("POST", "/api/quantum/simulate", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.HandleSimulate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"Invalid input"}`, w.Body.String())
	}
}

func TestHandleSimulate_BackendError(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(brokenSimulator{}, logger)

	req := httptest.NewRequest("POST", "/api/quantum/simulate", strings.NewReader(`{"scale":"small"}`))
	w := httptest.NewRecorder()

	handler.HandleSimulate(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestHandleEstimateQubits(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	req := httptest.NewRequest("GET", "/api/quantum/qubits?problem_type=Cryptography&scale=large", nil)
	w := httptest.NewRecorder()

	handler.HandleEstimateQubits(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "cryptography", data["problem_type"])
	assert.Equal(t, 10000.0, data["problem_size"])
	assert.Equal(t, 1000.0, data["error_correction_factor"])

	estimate := data["estimate"].(map[string]interface{})
	assert.Equal(t, "Shor", estimate["algorithm_used"])
	assert.Equal(t, 5000.0, estimate["logical_qubits"])
	assert.Equal(t, 5000000.0, estimate["physical_qubits"])
}

func TestHandleEstimateQubits_NoParams(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	req := httptest.NewRequest("GET", "/api/quantum/qubits", nil)
	w := httptest.NewRecorder()

	handler.HandleEstimateQubits(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "web_backend", data["problem_type"])
	assert.Equal(t, "small", data["scale"])
	assert.Equal(t, 100.0, data["problem_size"])

	estimate := data["estimate"].(map[string]interface{})
	assert.Equal(t, "Not Applicable", estimate["algorithm_used"])
	assert.Equal(t, 0.0, estimate["physical_qubits"])
}

func TestHandleEstimateQubits_MissingScaleDefaultsToSmall(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	req := httptest.NewRequest("GET", "/api/quantum/qubits?problem_type=optimization", nil)
	w := httptest.NewRecorder()

	handler.HandleEstimateQubits(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "small", data["scale"])
	assert.Equal(t, 100.0, data["problem_size"])

	estimate := data["estimate"].(map[string]interface{})
	assert.Equal(t, "QAOA", estimate["algorithm_used"])
	assert.Equal(t, 100.0, estimate["logical_qubits"])
	assert.Equal(t, 100000.0, estimate["physical_qubits"])
}

func TestHandleSimulate_OversizedBody(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(setupTestSimulator(), logger)

	body := `{"scale":"` + strings.Repeat("x", 2<<20) + `","suitability_score":50}`
	req := httptest.NewRequest("POST", "/api/quantum/simulate", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleSimulate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid input"}`, w.Body.String())
}
