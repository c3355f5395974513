package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financing-agent/domain"
)

func TestValidateCase_CatalogIsValid(t *testing.T) {
	for _, c := range catalogCases() {
		assert.NoError(t, ValidateCase(c), "case %d", c.ID)
	}
}

func TestValidateCase_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Case)
	}{
		{"no options", func(c *domain.Case) { c.Options = nil }},
		{"missing device type", func(c *domain.Case) { c.Device.Type = "" }},
		{"zero base price", func(c *domain.Case) { c.Device.BasePrice = 0 }},
		{"zero income", func(c *domain.Case) { c.Customer.MonthlyIncome = 0 }},
		{"credit score too low", func(c *domain.Case) { c.Customer.CreditScore = 250 }},
		{"credit score too high", func(c *domain.Case) { c.Customer.CreditScore = 900 }},
		{"negative loans", func(c *domain.Case) { c.Customer.ExistingDeviceLoans = -1 }},
		{"negative preferred term", func(c *domain.Case) { c.Customer.PreferredTermMonths = -12 }},
		{"empty option id", func(c *domain.Case) { c.Options[0].ID = "" }},
		{"duplicate option id", func(c *domain.Case) { c.Options[1].ID = c.Options[0].ID }},
		{"negative rate", func(c *domain.Case) { c.Options[0].InterestRate = -0.01 }},
		{"negative months", func(c *domain.Case) { c.Options[0].Months = -1 }},
		{"total below principal", func(c *domain.Case) { c.Options[1].TotalCost = 500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := premiumPhoneCase()
			tt.mutate(&c)

			err := ValidateCase(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidCase))
		})
	}
}
