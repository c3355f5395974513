package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financing-agent/domain"
)

func TestRankOptions_StableOnTies(t *testing.T) {
	scored := []ScoredOption{
		{Option: domain.FinancingOption{ID: "A"}, Score: 80},
		{Option: domain.FinancingOption{ID: "B"}, Score: 90},
		{Option: domain.FinancingOption{ID: "C"}, Score: 80},
		{Option: domain.FinancingOption{ID: "D"}, Score: 90},
	}

	ranked := RankOptions(scored)

	ids := make([]string, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.Option.ID)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, ids)
	// The input is left untouched.
	assert.Equal(t, "A", scored[0].Option.ID)
}

func TestConfidence_Clamped(t *testing.T) {
	assert.Equal(t, MinConfidence, Confidence(-115))
	assert.Equal(t, MinConfidence, Confidence(60))
	assert.Equal(t, 72.5, Confidence(72.5))
	assert.Equal(t, MaxConfidence, Confidence(110))
}

func TestBuildDecision_CatalogCaseOne(t *testing.T) {
	c := catalogCase(t, 1)
	scored := NewScoringEngine(domain.DefaultWeights()).ScoreAll(c.Options, c.Customer, c.Device)

	decision := BuildDecision(RankOptions(scored), c)

	assert.Equal(t, "OPT-1B", decision.RecommendedOptionID)
	assert.Equal(t, 95.0, decision.Confidence)
	assert.InDelta(t, 110, decision.CustomerFitScore, 1e-9)
	assert.Equal(t, []string{"OPT-1A", "OPT-1C"}, decision.Alternatives)
	assert.Empty(t, decision.RiskFactors)
	assert.Equal(t, []string{
		"Selected 0% APR 24-month financing (OPT-1B)",
		"Total cost: $1199.00",
		"Monthly payment: $49.96 (0.8% of monthly income)",
		"0% APR - No interest charges",
		"No early payoff penalty - Flexible repayment",
		"Matches customer's preferred 24-month term",
	}, decision.Reasoning)
}

func TestBuildDecision_RiskFactors(t *testing.T) {
	c := domain.Case{
		Customer: domain.Customer{CreditScore: 600, MonthlyIncome: 1000, ExistingDeviceLoans: 2},
	}
	ranked := []ScoredOption{{
		Option: domain.FinancingOption{ID: "X", Label: "Long plan", Months: 36, InterestRate: 0.129, MonthlyPayment: 250, TotalCost: 9000, EarlyPayoffPenalty: true},
		Score:  42,
	}}

	decision := BuildDecision(ranked, c)

	assert.Equal(t, []string{
		"Monthly payment is 25.0% of income (>15% threshold)",
		"Customer has 2 existing device loan(s)",
		"Below-average credit score may limit future financing options",
	}, decision.RiskFactors)
	assert.Contains(t, decision.Reasoning, "Interest rate: 12.9% APR")
	assert.NotContains(t, decision.Reasoning, "No early payoff penalty - Flexible repayment")
	assert.Equal(t, MinConfidence, decision.Confidence)
	assert.Empty(t, decision.Alternatives)
	assert.GreaterOrEqual(t, len(decision.Reasoning), 3)
}

func TestBuildDecision_AtMostTwoAlternatives(t *testing.T) {
	ranked := []ScoredOption{
		{Option: domain.FinancingOption{ID: "A"}, Score: 4},
		{Option: domain.FinancingOption{ID: "B"}, Score: 3},
		{Option: domain.FinancingOption{ID: "C"}, Score: 2},
		{Option: domain.FinancingOption{ID: "D"}, Score: 1},
	}
	c := domain.Case{Customer: domain.Customer{CreditScore: 700, MonthlyIncome: 1000}}

	decision := BuildDecision(ranked, c)

	assert.Equal(t, []string{"B", "C"}, decision.Alternatives)
}

func TestNoQualificationDecision(t *testing.T) {
	c := domain.Case{
		Customer: domain.Customer{CreditScore: 400, MonthlyIncome: 2000},
		Options: []domain.FinancingOption{
			{ID: "A", CreditScoreRequired: 720},
			{ID: "B", CreditScoreRequired: 700},
		},
	}

	decision := NoQualificationDecision(c)

	require.False(t, decision.Qualified())
	assert.Equal(t, domain.NoQualifyingOption, decision.RecommendedOptionID)
	assert.Equal(t, 0.0, decision.Confidence)
	assert.Equal(t, 0.0, decision.CustomerFitScore)
	assert.Empty(t, decision.Alternatives)
	assert.Equal(t, []string{"Credit score below all option thresholds"}, decision.RiskFactors)
	assert.Equal(t, []string{
		"Customer credit score (400) does not qualify for any available options",
		"Minimum required: 700",
		"Recommendation: Consider secured financing or co-signer options",
	}, decision.Reasoning)
}

func TestFilterQualifyingOptions(t *testing.T) {
	options := []domain.FinancingOption{
		{ID: "A", CreditScoreRequired: 720},
		{ID: "B", CreditScoreRequired: 650},
		{ID: "C", CreditScoreRequired: 660},
	}

	got := FilterQualifyingOptions(options, 650)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ID)

	assert.Empty(t, FilterQualifyingOptions(options, 600))
	assert.Len(t, FilterQualifyingOptions(options, 850), 3)
	assert.Equal(t, 650, MinimumCreditRequired(options))
}
