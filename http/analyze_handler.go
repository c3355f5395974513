package http

import (
	"net/http"

	"go.uber.org/zap"

	"financing-agent/domain"
	"financing-agent/service"
)

type analyzeRequest struct {
	CaseID      int                 `json:"caseId"`
	Case        *domain.Case        `json:"case"`
	AgentConfig *domain.AgentConfig `json:"agentConfig"`
	Explain     bool                `json:"explain"`
}

type analyzeResponse struct {
	Success        bool               `json:"success"`
	CaseID         int                `json:"caseId"`
	CaseTitle      string             `json:"caseTitle"`
	AgentConfig    domain.AgentConfig `json:"agentConfig"`
	Recommendation domain.Decision    `json:"recommendation"`
	CreditCategory string             `json:"creditCategory"`
	DeviceCategory string             `json:"deviceCategory"`
	Summary        string             `json:"summary,omitempty"`
}

// AnalyzeHandler scores one case. Requests without an agentConfig use the
// shared agent and count towards its metrics; requests with one get a fresh
// agent built from that config.
type AnalyzeHandler struct {
	agent   *service.AgentService
	catalog *service.CatalogService
	advisor *service.AdvisorService
	metrics *Metrics
	logger  *zap.Logger
}

func NewAnalyzeHandler(
	agent *service.AgentService,
	catalog *service.CatalogService,
	advisor *service.AdvisorService,
	metrics *Metrics,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		agent:   agent,
		catalog: catalog,
		advisor: advisor,
		metrics: metrics,
		logger:  logger,
	}
}

func (h *AnalyzeHandler) AnalyzeCase(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Debug("error decoding request body", zap.Error(err))
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	var c domain.Case
	switch {
	case req.Case != nil:
		c = *req.Case
	case req.CaseID != 0:
		found, err := h.catalog.Case(req.CaseID)
		if err != nil {
			writeError(w, h.logger, statusFor(err), err.Error())
			return
		}
		c = found
	default:
		writeError(w, h.logger, http.StatusBadRequest, "caseId or case is required")
		return
	}

	agent := h.agent
	if req.AgentConfig != nil {
		cfg := h.agent.Config()
		cfg.AgentID = ""
		agent = service.NewAgentService(cfg, h.logger)
		agent.UpdateConfig(*req.AgentConfig)
	}

	decision, err := agent.ScoreCase(c)
	if err != nil {
		h.logger.Info("rejected case", zap.Int("caseId", c.ID), zap.Error(err))
		writeError(w, h.logger, statusFor(err), err.Error())
		return
	}
	h.metrics.ObserveDecision(decision)

	resp := analyzeResponse{
		Success:        true,
		CaseID:         c.ID,
		CaseTitle:      c.Title,
		AgentConfig:    agent.Config(),
		Recommendation: decision,
		CreditCategory: service.CategorizeCreditScore(c.Customer.CreditScore),
		DeviceCategory: service.CategorizeDevice(c.Device.BasePrice),
	}
	if req.Explain && h.advisor != nil {
		resp.Summary = h.advisor.Summarize(r.Context(), c, decision)
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}
