package domain

// Weights configures the scoring engine.
//
// CreditScoreWeight and TermLengthWeight are part of the configuration
// shape but are currently inert: the scoring formula does not read them.
type Weights struct {
	TotalCost          float64 `json:"totalCostWeight" yaml:"totalCostWeight"`
	MonthlyPayment     float64 `json:"monthlyPaymentWeight" yaml:"monthlyPaymentWeight"`
	CustomerPreference float64 `json:"customerPreferenceWeight" yaml:"customerPreferenceWeight"`
	CreditScore        float64 `json:"creditScoreWeight" yaml:"creditScoreWeight"`
	TermLength         float64 `json:"termLengthWeight" yaml:"termLengthWeight"`
}

func DefaultWeights() Weights {
	return Weights{
		TotalCost:          0.25,
		MonthlyPayment:     0.30,
		CustomerPreference: 0.20,
		CreditScore:        0.15,
		TermLength:         0.10,
	}
}

// IsZero reports whether no weight was set at all.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

const (
	ModelRuleBased = "rule-based"
	ModelMLBased   = "ml-based"
	ModelHybrid    = "hybrid"
)

type AgentConfig struct {
	AgentID   string `json:"agentId" yaml:"agentId"`
	Name      string `json:"name" yaml:"name"`
	ModelType string `json:"modelType" yaml:"modelType"`
	// DecisionThreshold is accepted and stored but not enforced when scoring.
	DecisionThreshold float64 `json:"decisionThreshold" yaml:"decisionThreshold"`
	LearningRate      float64 `json:"learningRate,omitempty" yaml:"learningRate,omitempty"`
	Weights           Weights `json:"weights" yaml:"weights"`
}

// AgentState is a full export of an agent.
type AgentState struct {
	Config             AgentConfig        `json:"config"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	TrainingHistory    []TrainingSession  `json:"trainingHistory"`
}
