package service

const (
	MinCreditScore = 300
	MaxCreditScore = 850

	// Payment-to-income ladder for the affordability factor.
	AffordabilityExcellentRatio = 0.10
	AffordabilityGoodRatio      = 0.15
	AffordabilityFairRatio      = 0.20

	AffordabilityExcellentScore = 100.0
	AffordabilityGoodScore      = 80.0
	AffordabilityFairScore      = 60.0
	AffordabilityPoorScore      = 40.0

	NoPreferenceTermScore = 70.0
	TermMismatchPenalty   = 5.0 // per month away from the preferred term
	InterestRateWeight    = 0.15
	NoPenaltyBonus        = 20.0

	MinConfidence = 60.0
	MaxConfidence = 95.0

	PaymentRiskRatio   = 0.15
	LowCreditRiskScore = 650
	MaxAlternatives    = 2
	TrainingLogEvery   = 5
	TotalCostTolerance = 0.01
)

const (
	BatchModeTrain    = "train"
	BatchModeEvaluate = "evaluate"
)
