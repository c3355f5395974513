package domain

type Device struct {
	Type      string  `json:"deviceType" yaml:"deviceType"`
	Brand     string  `json:"brand" yaml:"brand"`
	Model     string  `json:"model" yaml:"model"`
	BasePrice float64 `json:"basePrice" yaml:"basePrice"`
	MSRP      float64 `json:"msrp,omitempty" yaml:"msrp,omitempty"`
}

type Customer struct {
	ID                  string  `json:"customerId,omitempty"`
	CreditScore         int     `json:"creditScore"`
	MonthlyIncome       float64 `json:"monthlyIncome"`
	ExistingDeviceLoans int     `json:"existingDeviceLoans"`
	// PreferredTermMonths is 0 when the customer declared no preference.
	PreferredTermMonths int `json:"preferredPaymentPeriod,omitempty"`
}

// HasPreferredTerm reports whether the customer declared a repayment term.
func (c Customer) HasPreferredTerm() bool {
	return c.PreferredTermMonths > 0
}

// FinancingOption is one repayment plan. Months == 0 denotes a lump-sum
// purchase. InterestRate is an annual fraction (0.05 for 5%).
type FinancingOption struct {
	ID                  string  `json:"optionId"`
	Label               string  `json:"option"`
	Months              int     `json:"months"`
	InterestRate        float64 `json:"interestRate"`
	DownPayment         float64 `json:"downPayment"`
	MonthlyPayment      float64 `json:"monthlyPayment"`
	TotalCost           float64 `json:"totalCost"`
	CreditScoreRequired int     `json:"creditScoreRequired"`
	EarlyPayoffPenalty  bool    `json:"earlyPayoffPenalty"`
}

type MarketContext struct {
	CompetitorOffers   []string `json:"competitorOffers"`
	SeasonalPromotions bool     `json:"seasonalPromotions"`
	InventoryLevel     string   `json:"inventoryLevel"`
}

// Case is a device, a customer and the offers available to them. It is
// read-only once built.
type Case struct {
	ID              int               `json:"id"`
	Title           string            `json:"caseTitle"`
	Device          Device            `json:"device"`
	Customer        Customer          `json:"customer"`
	UserScenario    string            `json:"userScenario,omitempty"`
	Options         []FinancingOption `json:"financingOptions"`
	MarketContext   MarketContext     `json:"marketContext"`
	DecisionFactors []string          `json:"agentDecisionFactors,omitempty"`
	OptimalChoice   string            `json:"optimalChoice,omitempty"`
	Reasoning       string            `json:"reasoning,omitempty"`
}
