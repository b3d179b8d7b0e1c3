package service

const (
	MaxPrincipal      = 1_000_000_000.0 // 1 billion
	MaxAmount         = MaxPrincipal    // cap for every money input
	MaxRatePercent    = 100.0
	MinTermYears      = 1.0
	MaxTermYears      = 50.0
	MonthsPerYear     = 12
	BalanceEpsilon    = 0.01 // currency epsilon for "balance reached zero"
	MaxProjectionYear = 20   // yearly loop cap and break-even search horizon

	// Rent vs buy
	DisplayProjectionYears = 10
	ShortHorizonYears      = 5
	LongHorizonYears       = 10
	AdvantageDeadBand      = 1_000.0
	LongTermBuyThreshold   = 50_000.0
	MonthlyRentThreshold   = 500.0
	MonthlyCostNotice      = 300.0
	UpfrontOutlayNotice    = 50_000.0

	ConfidenceStrong   = 85
	ConfidenceLongTerm = 70
	ConfidenceMonthly  = 75
	ConfidenceNeutral  = 60

	// Refinance
	MaxBreakEvenMonths = 60 // 5 years

	// Extra payments
	ExcellentSavings    = 50_000.0
	GoodSavings         = 20_000.0
	BeneficialSavings   = 5_000.0
	ScenarioMatchWindow = 1.0
)

// ScenarioExtraAmounts are the monthly extras the scenario generator compares.
var ScenarioExtraAmounts = []float64{50, 100, 200, 500}
