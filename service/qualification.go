package service

import "financing-agent/domain"

// FilterQualifyingOptions keeps the options whose credit requirement the
// customer meets, in input order.
func FilterQualifyingOptions(options []domain.FinancingOption, creditScore int) []domain.FinancingOption {
	qualifying := []domain.FinancingOption{}
	for _, opt := range options {
		if creditScore >= opt.CreditScoreRequired {
			qualifying = append(qualifying, opt)
		}
	}
	return qualifying
}

// MinimumCreditRequired returns the lowest requirement across all options.
func MinimumCreditRequired(options []domain.FinancingOption) int {
	if len(options) == 0 {
		return 0
	}
	min := options[0].CreditScoreRequired
	for _, opt := range options[1:] {
		if opt.CreditScoreRequired < min {
			min = opt.CreditScoreRequired
		}
	}
	return min
}
