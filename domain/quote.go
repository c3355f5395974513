package domain

// QuoteInput describes an ad-hoc offer to price. InterestRate is an annual
// fraction.
type QuoteInput struct {
	Price        float64 `json:"price"`
	InterestRate float64 `json:"interestRate"`
	Months       int     `json:"months"`
	DownPayment  float64 `json:"downPayment"`
}

type Quote struct {
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalCost      float64 `json:"totalCost"`
	TotalInterest  float64 `json:"totalInterest"`
}
