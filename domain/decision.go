package domain

import "time"

// NoQualifyingOption is the recommendation id reported when the customer
// meets none of the offers' credit requirements.
const NoQualifyingOption = "NONE"

// Decision is the outcome of scoring one case.
type Decision struct {
	RecommendedOptionID string   `json:"recommendedOptionId"`
	Confidence          float64  `json:"confidence"`
	Reasoning           []string `json:"reasoning"`
	Alternatives        []string `json:"alternatives"`
	RiskFactors         []string `json:"riskFactors"`
	CustomerFitScore    float64  `json:"customerFitScore"`
}

// Qualified reports whether the decision recommends an actual offer.
func (d Decision) Qualified() bool {
	return d.RecommendedOptionID != NoQualifyingOption
}

type DecisionLog struct {
	CaseID        int       `json:"caseId"`
	Timestamp     time.Time `json:"timestamp"`
	Decision      Decision  `json:"decision"`
	ActualOptimal string    `json:"actualOptimal,omitempty"`
	WasCorrect    bool      `json:"wasCorrect"`
}

type PerformanceMetrics struct {
	TotalDecisions    int           `json:"totalDecisions"`
	CorrectDecisions  int           `json:"correctDecisions"`
	Accuracy          float64       `json:"accuracy"`
	AverageConfidence float64       `json:"averageConfidence"`
	DecisionsLog      []DecisionLog `json:"decisionsLog"`
}

// TrainingSession summarises one replay of a batch of cases. No parameters
// are adjusted during a session.
type TrainingSession struct {
	Timestamp      time.Time `json:"timestamp"`
	CasesCount     int       `json:"casesCount"`
	Correct        int       `json:"correct"`
	Accuracy       float64   `json:"accuracy"`
	TrainingTimeMs int64     `json:"trainingTime"` // milliseconds
}

// BatchFailure identifies a case that could not be scored during a batch.
type BatchFailure struct {
	Index  int    `json:"index"`
	CaseID int    `json:"caseId"`
	Error  string `json:"error"`
}
