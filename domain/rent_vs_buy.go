package domain

// RentVsBuyInput holds every rent-vs-buy parameter. Percent fields are
// percentages; monthly fields are per-month currency amounts.
type RentVsBuyInput struct {
	HomePrice               float64
	MonthlyRent             float64
	DownPaymentPercent      float64
	InterestRate            float64
	LoanTermYears           float64
	ClosingCosts            float64
	PropertyTaxRatePercent  float64
	MonthlyInsurance        float64
	MaintenancePercent      float64
	MonthlyHOA              float64
	HomeAppreciationPercent float64
	RentIncreasePercent     float64
	InvestmentReturnPercent float64
	SecurityDeposit         float64
	MonthlyRentersInsurance float64
}

type BuyingAnalysis struct {
	LoanAmount         float64
	MonthlyPayment     float64
	TotalMonthlyCost   float64
	DownPayment        float64
	ClosingCosts       float64
	InitialCashOutlay  float64
	YearlyAppreciation float64
	EquityBuilt5Years  float64
	EquityBuilt10Years float64
	TotalCost5Years    float64
	TotalCost10Years   float64
	NetWorth5Years     float64
	NetWorth10Years    float64
}

type RentingAnalysis struct {
	MonthlyRent             float64
	TotalMonthlyCost        float64
	InitialDeposit          float64
	YearlyRentIncrease      float64
	TotalCost5Years         float64
	TotalCost10Years        float64
	InvestmentGrowth5Years  float64
	InvestmentGrowth10Years float64
	NetWorth5Years          float64
	NetWorth10Years         float64
}

// Advantage is the side a net-worth difference favors once the dead-band
// around zero is applied.
type Advantage string

const (
	AdvantageBuy     Advantage = "buy"
	AdvantageRent    Advantage = "rent"
	AdvantageNeutral Advantage = "neutral"
)

type RentVsBuyComparison struct {
	MonthlyDifference    float64
	CashOutlayDifference float64
	FiveYearSavings      float64
	TenYearSavings       float64
	FiveYearAdvantage    Advantage
	TenYearAdvantage     Advantage
}

// YearlyProjection is one simulated year of both paths.
type YearlyProjection struct {
	Year                  int
	HomeValue             float64
	RemainingLoanBalance  float64
	InvestmentValue       float64
	BuyingCumulativeCost  float64
	RentingCumulativeCost float64
	BuyingNetWorth        float64
	RentingNetWorth       float64
}

type Decision string

const (
	DecisionBuy     Decision = "buy"
	DecisionRent    Decision = "rent"
	DecisionNeutral Decision = "neutral"
)

type Recommendation struct {
	Decision          Decision
	ConfidencePercent int
	PrimaryReason     string
	Considerations    []string
}

type RentVsBuyProjection struct {
	Buying         BuyingAnalysis
	Renting        RentingAnalysis
	Comparison     RentVsBuyComparison
	BreakEvenYear  int
	Recommendation Recommendation
	Yearly         []YearlyProjection
}
