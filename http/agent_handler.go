package http

import (
	"net/http"

	"go.uber.org/zap"

	"financing-agent/domain"
	"financing-agent/service"
)

type trainRequest struct {
	AgentConfig     *domain.AgentConfig `json:"agentConfig"`
	TrainingCaseIDs []int               `json:"trainingCaseIds"`
	TestCaseIDs     []int               `json:"testCaseIds"`
}

type batchRequest struct {
	Mode    string        `json:"mode"`
	CaseIDs []int         `json:"caseIds"`
	Cases   []domain.Case `json:"cases"`
}

type configureRequest struct {
	Weights           domain.Weights `json:"weights"`
	DecisionThreshold float64        `json:"decisionThreshold"`
}

type AgentHandler struct {
	agent        *service.AgentService
	catalog      *service.CatalogService
	metrics      *Metrics
	logger       *zap.Logger
	trainingSize int
}

func NewAgentHandler(
	agent *service.AgentService,
	catalog *service.CatalogService,
	metrics *Metrics,
	logger *zap.Logger,
	trainingSize int,
) *AgentHandler {
	return &AgentHandler{
		agent:        agent,
		catalog:      catalog,
		metrics:      metrics,
		logger:       logger,
		trainingSize: trainingSize,
	}
}

// TrainAgent trains and evaluates a fresh agent. Without explicit ids the
// catalog is split into the first trainingSize cases and the rest.
func (h *AgentHandler) TrainAgent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req trainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	trainCases, testCases := h.catalog.SplitCases(h.trainingSize)
	if req.TrainingCaseIDs != nil {
		trainCases = h.catalog.CasesByIDs(req.TrainingCaseIDs)
	}
	if req.TestCaseIDs != nil {
		testCases = h.catalog.CasesByIDs(req.TestCaseIDs)
	}

	cfg := domain.AgentConfig{Name: "TrainedAPIAgent", ModelType: domain.ModelHybrid, DecisionThreshold: 0.75}
	if req.AgentConfig != nil {
		cfg = *req.AgentConfig
	}
	agent := service.NewAgentService(cfg, h.logger)

	session, trainFailures := agent.Train(trainCases)
	metrics, testFailures := agent.Evaluate(testCases)
	h.metrics.ObserveBatch(service.BatchModeTrain)
	h.metrics.ObserveBatch(service.BatchModeEvaluate)

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":         true,
		"agentConfig":     agent.Config(),
		"trainingSetSize": len(trainCases),
		"testSetSize":     len(testCases),
		"training":        session,
		"metrics":         metrics,
		"trainingHistory": agent.TrainingHistory(),
		"failures":        append(trainFailures, testFailures...),
	})
}

// RunBatch replays cases on the shared agent.
func (h *AgentHandler) RunBatch(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	cases := req.Cases
	if len(req.CaseIDs) > 0 {
		cases = append(cases, h.catalog.CasesByIDs(req.CaseIDs)...)
	}
	if req.Cases == nil && req.CaseIDs == nil {
		cases = h.catalog.Cases()
	}

	result, err := h.agent.RunBatch(cases, req.Mode)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	h.metrics.ObserveBatch(req.Mode)

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

func (h *AgentHandler) ExportMetrics(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.agent.ExportMetrics())
}

func (h *AgentHandler) ImportMetrics(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var metrics domain.PerformanceMetrics
	if err := decodeJSON(r, &metrics); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	h.agent.ImportMetrics(metrics)

	writeJSON(w, h.logger, http.StatusOK, h.agent.ExportMetrics())
}

func (h *AgentHandler) ExportState(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, h.agent.ExportState())
}

func (h *AgentHandler) Configure(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req configureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Weights.IsZero() {
		writeError(w, h.logger, http.StatusBadRequest, "weights are required")
		return
	}
	h.agent.Configure(req.Weights, req.DecisionThreshold)

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":     true,
		"agentConfig": h.agent.Config(),
	})
}
