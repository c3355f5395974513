package service

import (
	"fmt"
	"math"
	"sort"

	"financing-agent/domain"
)

// RankOptions sorts by score descending. Equal scores keep input order.
func RankOptions(scored []ScoredOption) []ScoredOption {
	ranked := append([]ScoredOption(nil), scored...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BuildDecision explains the top-ranked option. ranked must be non-empty and
// already sorted by RankOptions.
func BuildDecision(ranked []ScoredOption, c domain.Case) domain.Decision {
	top := ranked[0]
	opt := top.Option
	customer := c.Customer
	ratio := PaymentToIncomeRatio(opt, customer)

	reasoning := []string{
		fmt.Sprintf("Selected %s (%s)", opt.Label, opt.ID),
		fmt.Sprintf("Total cost: $%.2f", opt.TotalCost),
		fmt.Sprintf("Monthly payment: $%.2f (%.1f%% of monthly income)", opt.MonthlyPayment, ratio*100),
	}
	if opt.InterestRate == 0 {
		reasoning = append(reasoning, "0% APR - No interest charges")
	} else {
		reasoning = append(reasoning, fmt.Sprintf("Interest rate: %.1f%% APR", opt.InterestRate*100))
	}
	if !opt.EarlyPayoffPenalty {
		reasoning = append(reasoning, "No early payoff penalty - Flexible repayment")
	}
	if customer.HasPreferredTerm() && customer.PreferredTermMonths == opt.Months {
		reasoning = append(reasoning, fmt.Sprintf("Matches customer's preferred %d-month term", opt.Months))
	}

	riskFactors := []string{}
	if ratio > PaymentRiskRatio {
		riskFactors = append(riskFactors, fmt.Sprintf("Monthly payment is %.1f%% of income (>15%% threshold)", ratio*100))
	}
	if customer.ExistingDeviceLoans > 0 {
		riskFactors = append(riskFactors, fmt.Sprintf("Customer has %d existing device loan(s)", customer.ExistingDeviceLoans))
	}
	if customer.CreditScore < LowCreditRiskScore {
		riskFactors = append(riskFactors, "Below-average credit score may limit future financing options")
	}

	alternatives := []string{}
	for i := 1; i < len(ranked) && i <= MaxAlternatives; i++ {
		alternatives = append(alternatives, ranked[i].Option.ID)
	}

	return domain.Decision{
		RecommendedOptionID: opt.ID,
		Confidence:          Confidence(top.Score),
		Reasoning:           reasoning,
		Alternatives:        alternatives,
		RiskFactors:         riskFactors,
		CustomerFitScore:    top.Score,
	}
}

// Confidence clamps a fitness score into [MinConfidence, MaxConfidence].
// A qualifying recommendation never reports less than MinConfidence, however
// low its fitness was.
func Confidence(score float64) float64 {
	return math.Min(MaxConfidence, math.Max(MinConfidence, score))
}

// NoQualificationDecision is returned when the customer meets none of the
// case's credit requirements.
func NoQualificationDecision(c domain.Case) domain.Decision {
	return domain.Decision{
		RecommendedOptionID: domain.NoQualifyingOption,
		Confidence:          0,
		Reasoning: []string{
			fmt.Sprintf("Customer credit score (%d) does not qualify for any available options", c.Customer.CreditScore),
			fmt.Sprintf("Minimum required: %d", MinimumCreditRequired(c.Options)),
			"Recommendation: Consider secured financing or co-signer options",
		},
		Alternatives:     []string{},
		RiskFactors:      []string{"Credit score below all option thresholds"},
		CustomerFitScore: 0,
	}
}
