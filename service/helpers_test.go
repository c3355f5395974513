package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"financing-agent/domain"
	"financing-agent/repository"
)

func catalogCase(t *testing.T, id int) domain.Case {
	t.Helper()
	c, err := repository.NewCatalogRepository().GetByID(id)
	require.NoError(t, err)
	return c
}

func catalogCases() []domain.Case {
	return repository.NewCatalogRepository().All()
}

// premiumPhoneCase is a small two-offer case: an interest-free 24-month plan
// and a 5% APR plan with an early payoff penalty.
func premiumPhoneCase() domain.Case {
	return domain.Case{
		ID:    100,
		Title: "Premium phone",
		Device: domain.Device{
			Type: "Smartphone", Brand: "Apple", Model: "iPhone 15 Pro Max",
			BasePrice: 1199, MSRP: 1199,
		},
		Customer: domain.Customer{
			ID: "CUST-T1", CreditScore: 780, MonthlyIncome: 6500,
		},
		Options: []domain.FinancingOption{
			{ID: "APR5", Label: "36-month 5% APR", Months: 36, InterestRate: 0.05, DownPayment: 200, MonthlyPayment: 29.89, TotalCost: 1276, CreditScoreRequired: 680, EarlyPayoffPenalty: true},
			{ID: "ZERO", Label: "0% APR 24-month", Months: 24, MonthlyPayment: 49.96, TotalCost: 1199, CreditScoreRequired: 700},
		},
		OptimalChoice: "ZERO",
	}
}
