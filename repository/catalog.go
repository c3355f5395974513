package repository

import "financing-agent/domain"

// referenceCases returns the built-in device financing scenarios together
// with the option a human advisor picked for each.
func referenceCases() []domain.Case {
	return []domain.Case{
		{
			ID:    1,
			Title: "Premium Smartphone Financing - High Credit Score Customer",
			Device: domain.Device{
				Type: "Smartphone", Brand: "Apple", Model: "iPhone 15 Pro Max",
				BasePrice: 1199, MSRP: 1199,
			},
			Customer: domain.Customer{
				ID: "CUST-001", CreditScore: 780, MonthlyIncome: 6500,
				ExistingDeviceLoans: 0, PreferredTermMonths: 24,
			},
			UserScenario: "Customer wants to purchase latest iPhone with best available terms. Has excellent credit and stable income.",
			Options: []domain.FinancingOption{
				{ID: "OPT-1A", Label: "0% APR 12-month financing", Months: 12, InterestRate: 0.0, DownPayment: 0, MonthlyPayment: 99.92, TotalCost: 1199, CreditScoreRequired: 720, EarlyPayoffPenalty: false},
				{ID: "OPT-1B", Label: "0% APR 24-month financing", Months: 24, InterestRate: 0.0, DownPayment: 0, MonthlyPayment: 49.96, TotalCost: 1199, CreditScoreRequired: 700, EarlyPayoffPenalty: false},
				{ID: "OPT-1C", Label: "36-month financing with 5% APR", Months: 36, InterestRate: 0.05, DownPayment: 200, MonthlyPayment: 29.89, TotalCost: 1276, CreditScoreRequired: 680, EarlyPayoffPenalty: true},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Samsung offering 0% for 18 months", "Google Pixel with $200 trade-in bonus"},
				SeasonalPromotions: true,
				InventoryLevel:     "high",
			},
			DecisionFactors: []string{
				"Customer credit score qualifies for all options",
				"Monthly income supports higher monthly payments",
				"Customer preference for 24-month term aligns with 0% APR option",
				"No early payoff penalty on recommended option",
				"Seasonal promotion available",
			},
			OptimalChoice: "OPT-1B",
			Reasoning:     "0% APR 24-month option matches customer preference while minimizing total cost. Customer's excellent credit qualifies for best terms.",
		},
		{
			ID:    2,
			Title: "Mid-Range Smartphone with Trade-In - Average Credit",
			Device: domain.Device{
				Type: "Smartphone", Brand: "Samsung", Model: "Galaxy S24",
				BasePrice: 799, MSRP: 899,
			},
			Customer: domain.Customer{
				ID: "CUST-002", CreditScore: 650, MonthlyIncome: 3800,
				ExistingDeviceLoans: 1, PreferredTermMonths: 18,
			},
			UserScenario: "Customer trading in old phone (worth $150) and needs affordable monthly payment. Average credit score.",
			Options: []domain.FinancingOption{
				{ID: "OPT-2A", Label: "18-month with 8% APR + Trade-In Credit", Months: 18, InterestRate: 0.08, DownPayment: 150, MonthlyPayment: 39.67, TotalCost: 864, CreditScoreRequired: 620, EarlyPayoffPenalty: false},
				{ID: "OPT-2B", Label: "24-month with 12% APR + Trade-In Credit", Months: 24, InterestRate: 0.12, DownPayment: 150, MonthlyPayment: 30.71, TotalCost: 887, CreditScoreRequired: 600, EarlyPayoffPenalty: false},
				{ID: "OPT-2C", Label: "12-month with 6% APR + Trade-In Credit", Months: 12, InterestRate: 0.06, DownPayment: 150, MonthlyPayment: 56.13, TotalCost: 824, CreditScoreRequired: 660, EarlyPayoffPenalty: false},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"AT&T offering $200 off with new line", "Verizon 0% for qualified customers"},
				SeasonalPromotions: false,
				InventoryLevel:     "medium",
			},
			DecisionFactors: []string{
				"Customer has one existing device loan (debt-to-income consideration)",
				"Credit score limits access to best rates",
				"Monthly payment affordability is key factor (~10% of monthly income)",
				"Trade-in value reduces principal amount",
				"Customer preference for 18-month term available",
			},
			OptimalChoice: "OPT-2A",
			Reasoning:     "18-month option balances customer preference with affordable monthly payment of $39.67. Lower total interest cost than 24-month option while monthly payment remains manageable.",
		},
		{
			ID:    3,
			Title: "Business Tablet Fleet Purchase - Corporate Account",
			Device: domain.Device{
				Type: "Tablet", Brand: "Apple", Model: "iPad Pro 12.9-inch",
				BasePrice: 1099, MSRP: 1099,
			},
			Customer: domain.Customer{
				ID: "CORP-001", CreditScore: 800, MonthlyIncome: 50000,
				ExistingDeviceLoans: 5, PreferredTermMonths: 12,
			},
			UserScenario: "Corporate customer purchasing 10 tablets for sales team. Needs quick deployment and flexible terms.",
			Options: []domain.FinancingOption{
				{ID: "OPT-3A", Label: "Bulk 0% APR 12-month (10 devices)", Months: 12, InterestRate: 0.0, DownPayment: 1000, MonthlyPayment: 908.33, TotalCost: 10990, CreditScoreRequired: 750, EarlyPayoffPenalty: false},
				{ID: "OPT-3B", Label: "Business Line of Credit - 24-month 4% APR", Months: 24, InterestRate: 0.04, DownPayment: 0, MonthlyPayment: 477.82, TotalCost: 11467, CreditScoreRequired: 720, EarlyPayoffPenalty: false},
				{ID: "OPT-3C", Label: "Lease-to-Own Program - 36-month", Months: 36, InterestRate: 0.06, DownPayment: 500, MonthlyPayment: 319.44, TotalCost: 11990, CreditScoreRequired: 700, EarlyPayoffPenalty: true},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Microsoft Surface with enterprise discount", "Samsung offering MDM solution included"},
				SeasonalPromotions: true,
				InventoryLevel:     "high",
			},
			DecisionFactors: []string{
				"Corporate account with excellent credit",
				"Bulk purchase qualifies for special pricing",
				"Cash flow management important for business",
				"Tax implications of purchase vs lease",
				"Need for warranty and support services",
				"Upgrade cycle considerations",
			},
			OptimalChoice: "OPT-3A",
			Reasoning:     "0% APR 12-month option with minimal down payment provides lowest total cost. Quick payoff timeline aligns with corporate preference and technology refresh cycle. No early payoff penalty allows flexibility.",
		},
		{
			ID:    4,
			Title: "Budget Smartphone - Credit-Challenged Customer",
			Device: domain.Device{
				Type: "Smartphone", Brand: "Google", Model: "Pixel 7a",
				BasePrice: 449, MSRP: 499,
			},
			Customer: domain.Customer{
				ID: "CUST-004", CreditScore: 580, MonthlyIncome: 2400,
				ExistingDeviceLoans: 2, PreferredTermMonths: 24,
			},
			UserScenario: "Customer with limited credit history needs affordable smartphone. Has two existing device payment plans.",
			Options: []domain.FinancingOption{
				{ID: "OPT-4A", Label: "24-month with 18% APR", Months: 24, InterestRate: 0.18, DownPayment: 100, MonthlyPayment: 17.63, TotalCost: 523, CreditScoreRequired: 550, EarlyPayoffPenalty: false},
				{ID: "OPT-4B", Label: "12-month with 15% APR + Higher Down Payment", Months: 12, InterestRate: 0.15, DownPayment: 150, MonthlyPayment: 26.89, TotalCost: 473, CreditScoreRequired: 580, EarlyPayoffPenalty: false},
				{ID: "OPT-4C", Label: "Secured Financing 18-month 10% APR", Months: 18, InterestRate: 0.10, DownPayment: 200, MonthlyPayment: 15.31, TotalCost: 476, CreditScoreRequired: 540, EarlyPayoffPenalty: false},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Carrier offering phone with service contract", "Buy-here-pay-here options with higher rates"},
				SeasonalPromotions: false,
				InventoryLevel:     "low",
			},
			DecisionFactors: []string{
				"Low credit score limits financing options",
				"Multiple existing device loans increase risk",
				"Monthly income constrains payment capacity",
				"Need to build credit history",
				"Higher down payment reduces monthly burden",
				"Affordability is primary concern",
			},
			OptimalChoice: "OPT-4C",
			Reasoning:     "Secured financing offers best balance: lowest monthly payment ($15.31), moderate total cost, and helps build credit. Customer can afford down payment to reduce monthly obligation while maintaining existing device payments.",
		},
		{
			ID:    5,
			Title: "Gaming Laptop - Student Financing with Cosigner",
			Device: domain.Device{
				Type: "Laptop", Brand: "ASUS", Model: "ROG Strix G16",
				BasePrice: 1699, MSRP: 1899,
			},
			Customer: domain.Customer{
				ID: "CUST-005", CreditScore: 620, MonthlyIncome: 1200,
				ExistingDeviceLoans: 0, PreferredTermMonths: 24,
			},
			UserScenario: "College student needs gaming laptop for game development coursework. Parent willing to cosign. Limited personal income but has part-time job.",
			Options: []domain.FinancingOption{
				{ID: "OPT-5A", Label: "Student 0% APR 18-month (with cosigner)", Months: 18, InterestRate: 0.0, DownPayment: 300, MonthlyPayment: 77.72, TotalCost: 1699, CreditScoreRequired: 600, EarlyPayoffPenalty: false},
				{ID: "OPT-5B", Label: "Extended 36-month with 7% APR", Months: 36, InterestRate: 0.07, DownPayment: 200, MonthlyPayment: 46.33, TotalCost: 1868, CreditScoreRequired: 620, EarlyPayoffPenalty: false},
				{ID: "OPT-5C", Label: "Deferred Payment - 6 months + 24-month 5% APR", Months: 24, InterestRate: 0.05, DownPayment: 400, MonthlyPayment: 57.34, TotalCost: 1776, CreditScoreRequired: 640, EarlyPayoffPenalty: false},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Dell offering student discount", "Best Buy student rewards program", "Back-to-school promotions active"},
				SeasonalPromotions: true,
				InventoryLevel:     "high",
			},
			DecisionFactors: []string{
				"Cosigner significantly improves financing terms",
				"Student status qualifies for special 0% program",
				"Limited income requires careful affordability analysis",
				"Seasonal back-to-school promotions available",
				"Long-term value for coursework justifies investment",
				"Potential for payment assistance from family",
			},
			OptimalChoice: "OPT-5A",
			Reasoning:     "Student 0% APR program with cosigner offers best value: no interest charges, 18-month term is manageable, monthly payment of $77.72 is high but feasible with parent support. Saves $169 vs next best option while paying off faster.",
		},
		{
			ID:    6,
			Title: "Smartwatch Upgrade - Loyal Customer Early Upgrade",
			Device: domain.Device{
				Type: "Smartwatch", Brand: "Apple", Model: "Apple Watch Ultra 2",
				BasePrice: 799, MSRP: 799,
			},
			Customer: domain.Customer{
				ID: "CUST-006", CreditScore: 720, MonthlyIncome: 5200,
				ExistingDeviceLoans: 1, PreferredTermMonths: 12,
			},
			UserScenario: "Existing customer with 6 months remaining on current device. Wants to upgrade to latest smartwatch model. Has been customer for 5 years.",
			Options: []domain.FinancingOption{
				{ID: "OPT-6A", Label: "Early Upgrade 0% APR 12-month (loyalty bonus)", Months: 12, InterestRate: 0.0, DownPayment: 0, MonthlyPayment: 66.58, TotalCost: 799, CreditScoreRequired: 680, EarlyPayoffPenalty: false},
				{ID: "OPT-6B", Label: "Trade-In + 0% APR 18-month", Months: 18, InterestRate: 0.0, DownPayment: 100, MonthlyPayment: 38.83, TotalCost: 799, CreditScoreRequired: 700, EarlyPayoffPenalty: false},
				{ID: "OPT-6C", Label: "Rollover existing + New 24-month plan", Months: 24, InterestRate: 0.03, DownPayment: 50, MonthlyPayment: 32.73, TotalCost: 836, CreditScoreRequired: 680, EarlyPayoffPenalty: true},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Samsung offering $150 trade-in for any smartwatch", "Garmin with free accessories bundle"},
				SeasonalPromotions: false,
				InventoryLevel:     "medium",
			},
			DecisionFactors: []string{
				"Long-term customer loyalty merits best available terms",
				"Good credit score qualifies for premium options",
				"Existing device loan means debt management consideration",
				"Customer preference for 12-month payoff",
				"Trade-in value of current device available",
				"Customer retention strategy important",
			},
			OptimalChoice: "OPT-6A",
			Reasoning:     "Loyalty bonus 0% APR 12-month option rewards long-term customer, no down payment needed, matches customer preference for quick payoff, and maintains positive customer relationship. Highest monthly payment but customer income supports it.",
		},
		{
			ID:    7,
			Title: "Budget Tablet - Senior First-Time Technology Purchase",
			Device: domain.Device{
				Type: "Tablet", Brand: "Amazon", Model: "Fire HD 10",
				BasePrice: 149, MSRP: 149,
			},
			Customer: domain.Customer{
				ID: "CUST-007", CreditScore: 750, MonthlyIncome: 2800,
				ExistingDeviceLoans: 0, PreferredTermMonths: 6,
			},
			UserScenario: "Senior citizen purchasing first tablet for video calls with family. Wants simplest payment option and concerned about affordability.",
			Options: []domain.FinancingOption{
				{ID: "OPT-7A", Label: "6-month 0% APR Senior Discount", Months: 6, InterestRate: 0.0, DownPayment: 0, MonthlyPayment: 24.83, TotalCost: 149, CreditScoreRequired: 650, EarlyPayoffPenalty: false},
				{ID: "OPT-7B", Label: "Full Payment with 15% Senior Discount", Months: 0, InterestRate: 0.0, DownPayment: 127, MonthlyPayment: 0, TotalCost: 127, CreditScoreRequired: 0, EarlyPayoffPenalty: false},
				{ID: "OPT-7C", Label: "12-month 0% APR", Months: 12, InterestRate: 0.0, DownPayment: 0, MonthlyPayment: 12.42, TotalCost: 149, CreditScoreRequired: 600, EarlyPayoffPenalty: false},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Walmart offering similar tablet for $119", "Senior center has group purchase program"},
				SeasonalPromotions: true,
				InventoryLevel:     "high",
			},
			DecisionFactors: []string{
				"Senior citizen discount applicable",
				"Low price point makes financing optional",
				"Excellent credit score not typically primary factor for seniors",
				"Preference for simple, straightforward payment",
				"Fixed income considerations",
				"Tech support and ease of use more important than financing terms",
			},
			OptimalChoice: "OPT-7B",
			Reasoning:     "Full payment with 15% senior discount provides best value ($127 vs $149), eliminates monthly payment concerns, and simplifies the purchase. Customer's excellent credit and fixed income make one-time payment preferable to managing monthly bills.",
		},
		{
			ID:    8,
			Title: "Premium Laptop - Freelancer Business Expense",
			Device: domain.Device{
				Type: "Laptop", Brand: "Apple", Model: "MacBook Pro 16-inch M3 Max",
				BasePrice: 3499, MSRP: 3499,
			},
			Customer: domain.Customer{
				ID: "CUST-008", CreditScore: 690, MonthlyIncome: 4500,
				ExistingDeviceLoans: 0, PreferredTermMonths: 24,
			},
			UserScenario: "Freelance video editor needs high-performance laptop for 4K video editing. Business expense with potential tax deduction. Income variable but consistent.",
			Options: []domain.FinancingOption{
				{ID: "OPT-8A", Label: "Business 0% APR 12-month", Months: 12, InterestRate: 0.0, DownPayment: 500, MonthlyPayment: 249.92, TotalCost: 3499, CreditScoreRequired: 720, EarlyPayoffPenalty: false},
				{ID: "OPT-8B", Label: "24-month 6% APR with Business Rewards", Months: 24, InterestRate: 0.06, DownPayment: 350, MonthlyPayment: 139.44, TotalCost: 3697, CreditScoreRequired: 680, EarlyPayoffPenalty: false},
				{ID: "OPT-8C", Label: "36-month 8% APR Business Line", Months: 36, InterestRate: 0.08, DownPayment: 300, MonthlyPayment: 100.57, TotalCost: 3920, CreditScoreRequired: 660, EarlyPayoffPenalty: false},
			},
			MarketContext: domain.MarketContext{
				CompetitorOffers:   []string{"Dell Precision with similar specs", "Lenovo ThinkPad P series with business support", "Educational pricing available if enrolled in courses"},
				SeasonalPromotions: false,
				InventoryLevel:     "medium",
			},
			DecisionFactors: []string{
				"Business purchase qualifies for tax deduction",
				"Credit score slightly below 0% APR threshold",
				"Variable income requires affordable monthly payment",
				"High-value purchase needs careful cash flow management",
				"Business rewards program offers future benefits",
				"Equipment depreciation schedule aligns with financing term",
			},
			OptimalChoice: "OPT-8B",
			Reasoning:     "24-month option balances affordability ($139.44/month) with reasonable total cost increase ($198 over 2 years). Customer qualifies with 690 credit score, monthly payment manageable with variable income, and 24-month term aligns with typical business equipment depreciation.",
		},
	}
}
