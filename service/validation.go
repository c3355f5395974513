package service

import (
	"github.com/pkg/errors"

	"financing-agent/domain"
)

// ValidateCase checks the preconditions the scoring engine relies on. Every
// returned error wraps domain.ErrInvalidCase.
func ValidateCase(c domain.Case) error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(domain.ErrInvalidCase, format, args...)
	}

	if c.Device.Type == "" || c.Device.Brand == "" || c.Device.Model == "" {
		return invalid("device type, brand and model are required")
	}
	if c.Device.BasePrice <= 0 {
		return invalid("device base price must be positive, got %.2f", c.Device.BasePrice)
	}
	if c.Customer.MonthlyIncome <= 0 {
		return invalid("customer monthly income must be positive, got %.2f", c.Customer.MonthlyIncome)
	}
	if c.Customer.CreditScore < MinCreditScore || c.Customer.CreditScore > MaxCreditScore {
		return invalid("credit score %d outside %d-%d", c.Customer.CreditScore, MinCreditScore, MaxCreditScore)
	}
	if c.Customer.ExistingDeviceLoans < 0 {
		return invalid("existing device loans cannot be negative")
	}
	if c.Customer.PreferredTermMonths < 0 {
		return invalid("preferred term cannot be negative")
	}
	if len(c.Options) == 0 {
		return invalid("no financing options")
	}

	seen := make(map[string]bool, len(c.Options))
	for _, opt := range c.Options {
		if opt.ID == "" {
			return invalid("option id cannot be empty")
		}
		if seen[opt.ID] {
			return invalid("duplicate option id %s", opt.ID)
		}
		seen[opt.ID] = true

		if opt.Months < 0 {
			return invalid("option %s: months cannot be negative", opt.ID)
		}
		if opt.InterestRate < 0 {
			return invalid("option %s: interest rate cannot be negative", opt.ID)
		}
		if opt.DownPayment < 0 || opt.MonthlyPayment < 0 {
			return invalid("option %s: payments cannot be negative", opt.ID)
		}
		if opt.CreditScoreRequired < 0 {
			return invalid("option %s: credit requirement cannot be negative", opt.ID)
		}
		if opt.TotalCost < c.Device.BasePrice-opt.DownPayment-TotalCostTolerance {
			return invalid("option %s: total cost %.2f below financed principal", opt.ID, opt.TotalCost)
		}
	}

	return nil
}
