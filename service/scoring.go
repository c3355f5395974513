package service

import (
	"math"

	"financing-agent/domain"
)

// ScoredOption pairs a qualifying option with its fitness score.
type ScoredOption struct {
	Option domain.FinancingOption
	Score  float64
}

// ScoringEngine computes a weighted fitness score for one offer. Only the
// cost, payment and preference weights feed the formula; the interest-rate
// multiplier and the no-penalty bonus are fixed.
type ScoringEngine struct {
	weights domain.Weights
}

func NewScoringEngine(weights domain.Weights) *ScoringEngine {
	return &ScoringEngine{weights: weights}
}

// Score combines the five factors for option. Identical inputs always give
// identical scores.
func (e *ScoringEngine) Score(
	option domain.FinancingOption,
	customer domain.Customer,
	device domain.Device,
) float64 {
	return CostEfficiencyScore(option, device)*e.weights.TotalCost +
		AffordabilityScore(option, customer)*e.weights.MonthlyPayment +
		TermPreferenceScore(option, customer)*e.weights.CustomerPreference +
		InterestRateScore(option)*InterestRateWeight +
		PenaltyBonus(option)
}

// ScoreAll scores each option, keeping input order.
func (e *ScoringEngine) ScoreAll(
	options []domain.FinancingOption,
	customer domain.Customer,
	device domain.Device,
) []ScoredOption {
	scored := make([]ScoredOption, 0, len(options))
	for _, opt := range options {
		scored = append(scored, ScoredOption{
			Option: opt,
			Score:  e.Score(opt, customer, device),
		})
	}
	return scored
}

// CostEfficiencyScore is 100 when the total cost equals the base price and
// falls without bound as the financing markup grows.
func CostEfficiencyScore(option domain.FinancingOption, device domain.Device) float64 {
	return (1 - (option.TotalCost-device.BasePrice)/device.BasePrice) * 100
}

// AffordabilityScore maps the payment-to-income ratio onto a fixed ladder.
func AffordabilityScore(option domain.FinancingOption, customer domain.Customer) float64 {
	ratio := PaymentToIncomeRatio(option, customer)
	switch {
	case ratio < AffordabilityExcellentRatio:
		return AffordabilityExcellentScore
	case ratio < AffordabilityGoodRatio:
		return AffordabilityGoodScore
	case ratio < AffordabilityFairRatio:
		return AffordabilityFairScore
	default:
		return AffordabilityPoorScore
	}
}

// TermPreferenceScore is not clamped: large mismatches go negative.
func TermPreferenceScore(option domain.FinancingOption, customer domain.Customer) float64 {
	if !customer.HasPreferredTerm() {
		return NoPreferenceTermScore
	}
	diff := math.Abs(float64(option.Months - customer.PreferredTermMonths))
	return 100 - diff*TermMismatchPenalty
}

func InterestRateScore(option domain.FinancingOption) float64 {
	return (1 - option.InterestRate) * 100
}

func PenaltyBonus(option domain.FinancingOption) float64 {
	if option.EarlyPayoffPenalty {
		return 0
	}
	return NoPenaltyBonus
}

func PaymentToIncomeRatio(option domain.FinancingOption, customer domain.Customer) float64 {
	return option.MonthlyPayment / customer.MonthlyIncome
}
