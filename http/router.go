package http

import (
	"net/http"

	"go.uber.org/zap"

	"financing-agent/service"
)

type Dependencies struct {
	Agent        *service.AgentService
	Catalog      *service.CatalogService
	Quotes       *service.QuoteService
	Advisor      *service.AdvisorService
	Metrics      *Metrics
	Limiter      *RateLimiter
	Logger       *zap.Logger
	TrainingSize int
}

// NewRouter wires every handler. Routes under /api are rate limited when a
// limiter is given.
func NewRouter(d Dependencies) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	health := NewHealthHandler(logger)
	cases := NewCaseHandler(d.Catalog, logger)
	analyze := NewAnalyzeHandler(d.Agent, d.Catalog, d.Advisor, d.Metrics, logger)
	agent := NewAgentHandler(d.Agent, d.Catalog, d.Metrics, logger, d.TrainingSize)
	quotes := NewQuoteHandler(d.Quotes, logger)

	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc, limited bool) {
		var handler http.Handler = h
		if limited && d.Limiter != nil {
			handler = RateLimitMiddleware(d.Limiter, logger, handler)
		}
		mux.Handle(pattern, InstrumentMiddleware(d.Metrics, pattern, handler))
	}

	route("/health", health.Health, false)
	route("/api/docs", health.Docs, false)
	mux.Handle("/metrics", d.Metrics.Handler())

	route("/api/device-financing-cases", cases.ListCases, true)
	route("/api/device-financing-cases/{id}", cases.GetCase, true)
	route("/api/cases/device-type/{type}", cases.CasesByDeviceType, true)
	route("/api/cases/credit-score/{min}/{max}", cases.CasesByCreditScore, true)
	route("/api/export-training-data", cases.ExportTrainingData, true)

	route("/api/analyze-case", analyze.AnalyzeCase, true)
	route("/api/train-agent", agent.TrainAgent, true)
	route("/api/agent/batch", agent.RunBatch, true)
	route("/api/agent/state", agent.ExportState, true)
	route("/api/agent/configure", agent.Configure, true)
	route("/api/quote", quotes.CalculateQuote, true)

	mux.Handle("/api/agent/metrics", InstrumentMiddleware(d.Metrics, "/api/agent/metrics",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				agent.ImportMetrics(w, r)
				return
			}
			agent.ExportMetrics(w, r)
		})))

	route("/", health.NotFound, false)

	return mux
}
