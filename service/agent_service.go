package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"financing-agent/domain"
)

// BatchResult is what RunBatch returns. Training is set for the train mode
// and Metrics for the evaluate mode.
type BatchResult struct {
	Mode     string                     `json:"mode"`
	Training *domain.TrainingSession    `json:"training,omitempty"`
	Metrics  *domain.PerformanceMetrics `json:"metrics,omitempty"`
	Failures []domain.BatchFailure      `json:"failures"`
}

// AgentService owns one agent's configuration, its performance metrics and
// its training history. Scoring is pure; only the bookkeeping is guarded by
// the mutex, so one instance can be shared between HTTP requests.
//
// "Training" is a batch replay with measurement: no parameter is adjusted
// between cases.
type AgentService struct {
	mu      sync.Mutex
	config  domain.AgentConfig
	metrics domain.PerformanceMetrics
	history []domain.TrainingSession

	logger *zap.Logger
	now    func() time.Time
}

// NewAgentService creates an agent. Missing id, name, model type or weights
// are filled with defaults.
func NewAgentService(config domain.AgentConfig, logger *zap.Logger) *AgentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgentService{
		config: normalizeConfig(config),
		metrics: domain.PerformanceMetrics{
			DecisionsLog: []domain.DecisionLog{},
		},
		history: []domain.TrainingSession{},
		logger:  logger,
		now:     time.Now,
	}
}

func normalizeConfig(config domain.AgentConfig) domain.AgentConfig {
	if config.AgentID == "" {
		config.AgentID = "agent-" + uuid.NewString()
	}
	if config.Name == "" {
		config.Name = "FinancingAgent"
	}
	if config.ModelType == "" {
		config.ModelType = domain.ModelRuleBased
	}
	if config.Weights.IsZero() {
		config.Weights = domain.DefaultWeights()
	}
	return config
}

// ScoreCase analyses one case and records the outcome in the aggregate
// metrics. A customer that qualifies for nothing is not an error: the
// returned decision recommends domain.NoQualifyingOption and, since no
// option was scored, is not recorded.
func (s *AgentService) ScoreCase(c domain.Case) (domain.Decision, error) {
	decision, err := s.decide(c, s.Config().Weights)
	if err != nil {
		return domain.Decision{}, err
	}
	if !decision.Qualified() {
		return decision, nil
	}

	s.mu.Lock()
	s.recordDecision(decision, c.OptimalChoice)
	s.mu.Unlock()

	return decision, nil
}

func (s *AgentService) decide(c domain.Case, weights domain.Weights) (domain.Decision, error) {
	if err := ValidateCase(c); err != nil {
		return domain.Decision{}, errors.Wrapf(err, "case %d", c.ID)
	}

	s.logger.Debug("analyzing case",
		zap.Int("caseId", c.ID),
		zap.String("title", c.Title),
	)

	qualifying := FilterQualifyingOptions(c.Options, c.Customer.CreditScore)
	if len(qualifying) == 0 {
		return NoQualificationDecision(c), nil
	}

	scored := NewScoringEngine(weights).ScoreAll(qualifying, c.Customer, c.Device)
	return BuildDecision(RankOptions(scored), c), nil
}

// recordDecision must be called with s.mu held.
func (s *AgentService) recordDecision(decision domain.Decision, optimal string) {
	s.metrics.TotalDecisions++
	if optimal != "" && decision.RecommendedOptionID == optimal {
		s.metrics.CorrectDecisions++
	}
	s.metrics.Accuracy = percentage(s.metrics.CorrectDecisions, s.metrics.TotalDecisions)
}

// Train replays cases and measures accuracy without touching the aggregate
// metrics. The session summary is appended to the training history. Cases
// that fail validation count as incorrect.
func (s *AgentService) Train(cases []domain.Case) (domain.TrainingSession, []domain.BatchFailure) {
	weights := s.Config().Weights
	start := s.now()
	s.logger.Info("training started", zap.String("agent", s.Config().Name), zap.Int("cases", len(cases)))

	failures := []domain.BatchFailure{}
	correct := 0

	for i, c := range cases {
		decision, err := s.decide(c, weights)
		if err != nil {
			failures = append(failures, s.batchFailure(i, c, err))
		} else if isCorrect(decision, c.OptimalChoice) {
			correct++
		}

		if (i+1)%TrainingLogEvery == 0 || i == len(cases)-1 {
			s.logger.Info("training progress",
				zap.String("progress", fmt.Sprintf("%d/%d", i+1, len(cases))),
				zap.Float64("accuracy", percentage(correct, i+1)),
			)
		}
	}

	end := s.now()
	elapsed := end.Sub(start)
	session := domain.TrainingSession{
		Timestamp:      end,
		CasesCount:     len(cases),
		Correct:        correct,
		Accuracy:       percentage(correct, len(cases)),
		TrainingTimeMs: elapsed.Milliseconds(),
	}

	s.mu.Lock()
	s.history = append(s.history, session)
	s.mu.Unlock()

	s.logger.Info("training complete",
		zap.Float64("accuracy", session.Accuracy),
		zap.Duration("duration", elapsed),
		zap.String("correct", fmt.Sprintf("%d/%d", correct, len(cases))),
	)

	return session, failures
}

// Evaluate scores every case, appends one log entry per scored case and then
// replaces the aggregate totals with the figures of this batch alone. The
// total is always len(cases): a case that fails validation is reported in
// the returned failures and counts as an incorrect decision with zero
// confidence.
func (s *AgentService) Evaluate(cases []domain.Case) (domain.PerformanceMetrics, []domain.BatchFailure) {
	weights := s.Config().Weights
	s.logger.Info("evaluation started", zap.String("agent", s.Config().Name), zap.Int("cases", len(cases)))

	failures := []domain.BatchFailure{}
	entries := make([]domain.DecisionLog, 0, len(cases))
	correct := 0
	totalConfidence := 0.0

	for i, c := range cases {
		decision, err := s.decide(c, weights)
		if err != nil {
			failures = append(failures, s.batchFailure(i, c, err))
			continue
		}

		wasCorrect := isCorrect(decision, c.OptimalChoice)
		if wasCorrect {
			correct++
		}
		totalConfidence += decision.Confidence

		entries = append(entries, domain.DecisionLog{
			CaseID:        c.ID,
			Timestamp:     s.now(),
			Decision:      decision,
			ActualOptimal: c.OptimalChoice,
			WasCorrect:    wasCorrect,
		})
	}

	n := len(cases)

	s.mu.Lock()
	s.metrics.DecisionsLog = append(s.metrics.DecisionsLog, entries...)
	s.metrics.TotalDecisions = n
	s.metrics.CorrectDecisions = correct
	s.metrics.Accuracy = percentage(correct, n)
	s.metrics.AverageConfidence = 0
	if n > 0 {
		s.metrics.AverageConfidence = totalConfidence / float64(n)
	}
	snapshot := copyMetrics(s.metrics)
	s.mu.Unlock()

	s.logger.Info("evaluation results",
		zap.Float64("accuracy", snapshot.Accuracy),
		zap.String("correct", fmt.Sprintf("%d/%d", correct, n)),
		zap.Float64("averageConfidence", snapshot.AverageConfidence),
		zap.Int("failed", len(failures)),
	)

	return snapshot, failures
}

// RunBatch dispatches to Train or Evaluate.
func (s *AgentService) RunBatch(cases []domain.Case, mode string) (BatchResult, error) {
	switch mode {
	case BatchModeTrain:
		session, failures := s.Train(cases)
		return BatchResult{Mode: mode, Training: &session, Failures: failures}, nil
	case BatchModeEvaluate:
		metrics, failures := s.Evaluate(cases)
		return BatchResult{Mode: mode, Metrics: &metrics, Failures: failures}, nil
	default:
		return BatchResult{}, errors.Errorf("unknown batch mode %q", mode)
	}
}

func (s *AgentService) batchFailure(index int, c domain.Case, err error) domain.BatchFailure {
	s.logger.Warn("skipping invalid case",
		zap.Int("index", index),
		zap.Int("caseId", c.ID),
		zap.Error(err),
	)
	return domain.BatchFailure{Index: index, CaseID: c.ID, Error: err.Error()}
}

// ExportMetrics returns a snapshot that later calls do not modify.
func (s *AgentService) ExportMetrics() domain.PerformanceMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMetrics(s.metrics)
}

// ImportMetrics replaces the aggregate metrics with a previously exported
// snapshot.
func (s *AgentService) ImportMetrics(metrics domain.PerformanceMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = copyMetrics(metrics)
}

func (s *AgentService) TrainingHistory() []domain.TrainingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.TrainingSession{}, s.history...)
}

func (s *AgentService) Config() domain.AgentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Configure replaces the active weights. decisionThreshold is stored but not
// used to gate recommendations.
func (s *AgentService) Configure(weights domain.Weights, decisionThreshold float64) {
	s.mu.Lock()
	s.config.Weights = weights
	s.config.DecisionThreshold = decisionThreshold
	config := s.config
	s.mu.Unlock()

	s.logger.Info("agent configuration updated", zap.Any("config", config))
}

// UpdateConfig merges the non-zero fields of update into the configuration.
func (s *AgentService) UpdateConfig(update domain.AgentConfig) {
	s.mu.Lock()
	if update.AgentID != "" {
		s.config.AgentID = update.AgentID
	}
	if update.Name != "" {
		s.config.Name = update.Name
	}
	if update.ModelType != "" {
		s.config.ModelType = update.ModelType
	}
	if update.DecisionThreshold != 0 {
		s.config.DecisionThreshold = update.DecisionThreshold
	}
	if update.LearningRate != 0 {
		s.config.LearningRate = update.LearningRate
	}
	if !update.Weights.IsZero() {
		s.config.Weights = update.Weights
	}
	config := s.config
	s.mu.Unlock()

	s.logger.Info("agent configuration updated", zap.Any("config", config))
}

func (s *AgentService) ExportState() domain.AgentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.AgentState{
		Config:             s.config,
		PerformanceMetrics: copyMetrics(s.metrics),
		TrainingHistory:    append([]domain.TrainingSession{}, s.history...),
	}
}

func isCorrect(decision domain.Decision, optimal string) bool {
	return optimal != "" && decision.RecommendedOptionID == optimal
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func copyMetrics(m domain.PerformanceMetrics) domain.PerformanceMetrics {
	m.DecisionsLog = append([]domain.DecisionLog{}, m.DecisionsLog...)
	return m
}
