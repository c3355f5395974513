package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type endpointDoc struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Description string            `json:"description"`
	Body        map[string]string `json:"body,omitempty"`
}

var apiDocs = []endpointDoc{
	{Method: "GET", Path: "/health", Description: "Health check endpoint"},
	{Method: "GET", Path: "/metrics", Description: "Prometheus metrics"},
	{Method: "GET", Path: "/api/device-financing-cases", Description: "Get all financing cases"},
	{Method: "GET", Path: "/api/device-financing-cases/{id}", Description: "Get specific case by ID"},
	{Method: "GET", Path: "/api/cases/device-type/{type}", Description: "Get cases filtered by device type (Smartphone, Tablet, Laptop, Smartwatch)"},
	{Method: "GET", Path: "/api/cases/credit-score/{min}/{max}", Description: "Get cases within credit score range (300-850)"},
	{Method: "POST", Path: "/api/analyze-case", Description: "Analyze a case with the financing agent",
		Body: map[string]string{"caseId": "number", "case": "Case (instead of caseId)", "agentConfig": "AgentConfig (optional)", "explain": "bool (optional)"}},
	{Method: "POST", Path: "/api/train-agent", Description: "Train a fresh agent and evaluate it",
		Body: map[string]string{"agentConfig": "AgentConfig (optional)", "trainingCaseIds": "number[] (optional)", "testCaseIds": "number[] (optional)"}},
	{Method: "POST", Path: "/api/agent/batch", Description: "Replay cases on the shared agent",
		Body: map[string]string{"mode": "train | evaluate", "caseIds": "number[] (optional)", "cases": "Case[] (optional)"}},
	{Method: "GET", Path: "/api/agent/metrics", Description: "Export the shared agent's performance metrics"},
	{Method: "POST", Path: "/api/agent/metrics", Description: "Import performance metrics into the shared agent"},
	{Method: "GET", Path: "/api/agent/state", Description: "Export config, metrics and training history"},
	{Method: "POST", Path: "/api/agent/configure", Description: "Replace the shared agent's weights",
		Body: map[string]string{"weights": "Weights", "decisionThreshold": "number"}},
	{Method: "POST", Path: "/api/quote", Description: "Price a financing offer",
		Body: map[string]string{"price": "number", "interestRate": "annual fraction", "months": "number", "downPayment": "number"}},
	{Method: "GET", Path: "/api/export-training-data", Description: "Export all cases as training data"},
}

type HealthHandler struct {
	logger *zap.Logger
}

func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
	})
}

func (h *HealthHandler) Docs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"title":     "Device Financing Agent API",
		"version":   "1.0.0",
		"endpoints": apiDocs,
	})
}

func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusNotFound, map[string]interface{}{
		"success":            false,
		"error":              "Endpoint not found",
		"availableEndpoints": "/api/docs",
	})
}
