package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"financing-agent/domain"
)

// Metrics holds the prometheus collectors of the API. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	requests   *prometheus.CounterVec
	decisions  *prometheus.CounterVec
	confidence prometheus.Histogram
	batches    *prometheus.CounterVec
	handler    http.Handler
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "financing_agent_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "financing_agent_decisions_total",
			Help: "Decisions served by outcome.",
		}, []string{"outcome"}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "financing_agent_decision_confidence",
			Help:    "Confidence of served decisions.",
			Buckets: []float64{0, 60, 70, 80, 90, 95},
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "financing_agent_batch_runs_total",
			Help: "Batch runs by mode.",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.requests, m.decisions, m.confidence, m.batches)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

func (m *Metrics) ObserveDecision(d domain.Decision) {
	if m == nil {
		return
	}
	outcome := "recommended"
	if !d.Qualified() {
		outcome = "no_qualifying_option"
	}
	m.decisions.WithLabelValues(outcome).Inc()
	m.confidence.Observe(d.Confidence)
}

func (m *Metrics) ObserveBatch(mode string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(mode).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// InstrumentMiddleware counts requests per route pattern and status code.
func InstrumentMiddleware(m *Metrics, route string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}
