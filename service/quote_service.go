package service

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"financing-agent/domain"
)

const (
	MaxQuotePrice        = 1_000_000.0
	MaxQuoteInterestRate = 10.0 // 1000% APR
	MaxQuoteMonths       = 600
)

// QuoteService prices an offer: the monthly payment on the financed
// principal and the total cost including the down payment.
type QuoteService struct{}

func NewQuoteService() *QuoteService {
	return &QuoteService{}
}

// CalculateQuote computes payment and total cost. Months == 0 prices a
// lump-sum purchase with no monthly payment.
func (s *QuoteService) CalculateQuote(input domain.QuoteInput) (domain.Quote, error) {
	if input.Price <= 0 {
		return domain.Quote{}, errors.New("price must be positive")
	}
	if input.Price > MaxQuotePrice {
		return domain.Quote{}, errors.Errorf("price exceeds the maximum of $%.2f", MaxQuotePrice)
	}
	if input.InterestRate < 0 {
		return domain.Quote{}, errors.New("interest rate cannot be negative")
	}
	if input.InterestRate > MaxQuoteInterestRate {
		return domain.Quote{}, errors.Errorf("interest rate exceeds the maximum of %.0f%%", MaxQuoteInterestRate*100)
	}
	if input.Months < 0 {
		return domain.Quote{}, errors.New("months cannot be negative")
	}
	if input.Months > MaxQuoteMonths {
		return domain.Quote{}, errors.Errorf("term exceeds the maximum of %d months", MaxQuoteMonths)
	}
	if input.DownPayment < 0 || input.DownPayment > input.Price {
		return domain.Quote{}, errors.New("down payment must be between 0 and the price")
	}

	price := decimal.NewFromFloat(input.Price)

	if input.Months == 0 {
		total := toCents(price)
		return domain.Quote{
			TotalCost: total.InexactFloat64(),
		}, nil
	}

	down := decimal.NewFromFloat(input.DownPayment)
	principal := price.Sub(down)
	months := decimal.NewFromInt(int64(input.Months))

	monthly := toCents(monthlyPayment(principal, decimal.NewFromFloat(input.InterestRate), months))
	total := monthly.Mul(months).Add(down)
	interest := total.Sub(price)
	if interest.IsNegative() {
		interest = decimal.Zero
	}

	return domain.Quote{
		Principal:      toCents(principal).InexactFloat64(),
		MonthlyPayment: monthly.InexactFloat64(),
		TotalCost:      toCents(total).InexactFloat64(),
		TotalInterest:  toCents(interest).InexactFloat64(),
	}, nil
}

// OptionFromQuote builds a financing option whose computed fields come from
// the quote calculator.
func (s *QuoteService) OptionFromQuote(
	id, label string,
	input domain.QuoteInput,
	creditScoreRequired int,
	earlyPayoffPenalty bool,
) (domain.FinancingOption, error) {
	quote, err := s.CalculateQuote(input)
	if err != nil {
		return domain.FinancingOption{}, err
	}
	return domain.FinancingOption{
		ID:                  id,
		Label:               label,
		Months:              input.Months,
		InterestRate:        input.InterestRate,
		DownPayment:         input.DownPayment,
		MonthlyPayment:      quote.MonthlyPayment,
		TotalCost:           quote.TotalCost,
		CreditScoreRequired: creditScoreRequired,
		EarlyPayoffPenalty:  earlyPayoffPenalty,
	}, nil
}

// monthlyPayment is the annuity payment P*r*g/(g-1) with r the monthly rate
// and g = (1+r)^n, or P/n when the rate is zero.
func monthlyPayment(principal, annualRate, months decimal.Decimal) decimal.Decimal {
	if annualRate.IsZero() {
		return principal.Div(months)
	}
	r := annualRate.Div(decimal.NewFromInt(12))
	growth := decimal.NewFromInt(1).Add(r).Pow(months)
	return principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

func toCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
