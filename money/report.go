package money

import (
	"github.com/shopspring/decimal"

	"mortgage-engine/domain"
)

type LoanTermsReport struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	TermYears         decimal.Decimal `json:"termYears"`
}

type OutcomeReport struct {
	Principal         decimal.Decimal `json:"principal"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	TotalPayments     int             `json:"totalPayments"`
	TotalInterest     decimal.Decimal `json:"totalInterest"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	PayoffMonthOffset int             `json:"payoffMonthOffset"`
	YearsToPayoff     decimal.Decimal `json:"yearsToPayoff"`
}

type ScheduleEntryReport struct {
	Index              int             `json:"index"`
	ScheduledPayment   decimal.Decimal `json:"scheduledPayment"`
	ExtraPayment       decimal.Decimal `json:"extraPayment"`
	PrincipalPortion   decimal.Decimal `json:"principalPortion"`
	InterestPortion    decimal.Decimal `json:"interestPortion"`
	RemainingBalance   decimal.Decimal `json:"remainingBalance"`
	CumulativeInterest decimal.Decimal `json:"cumulativeInterest"`
}

type AmortizationReport struct {
	Terms    LoanTermsReport       `json:"terms"`
	Outcome  OutcomeReport         `json:"outcome"`
	Schedule []ScheduleEntryReport `json:"schedule"`
}

type StrategyReport struct {
	Kind        domain.ExtraPaymentKind `json:"kind"`
	Amount      decimal.Decimal         `json:"amount"`
	TargetMonth int                     `json:"targetMonth,omitempty"`
}

type SavingsReport struct {
	InterestSaved       decimal.Decimal `json:"interestSaved"`
	MonthsSaved         int             `json:"monthsSaved"`
	TotalCostSaved      decimal.Decimal `json:"totalCostSaved"`
	PercentSaved        decimal.Decimal `json:"percentSaved"`
	MonthlyPaymentSaved decimal.Decimal `json:"monthlyPaymentSaved"`
}

type YearlyBreakdownReport struct {
	Year             int             `json:"year"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	PrincipalPaid    decimal.Decimal `json:"principalPaid"`
	InterestPaid     decimal.Decimal `json:"interestPaid"`
	ExtraPaid        decimal.Decimal `json:"extraPaid"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

type BreakdownReport struct {
	FirstYear            YearlyBreakdownReport `json:"firstYear"`
	FifthYear            YearlyBreakdownReport `json:"fifthYear"`
	TotalRegularPayments decimal.Decimal       `json:"totalRegularPayments"`
	TotalExtraPayments   decimal.Decimal       `json:"totalExtraPayments"`
	TotalInterestPaid    decimal.Decimal       `json:"totalInterestPaid"`
	TotalAmountPaid      decimal.Decimal       `json:"totalAmountPaid"`
}

type ExtraPaymentReport struct {
	Strategy            StrategyReport        `json:"strategy"`
	Baseline            OutcomeReport         `json:"baseline"`
	Accelerated         OutcomeReport         `json:"accelerated"`
	Savings             SavingsReport         `json:"savings"`
	Rating              domain.SavingsRating  `json:"rating"`
	AverageMonthlyExtra decimal.Decimal       `json:"averageMonthlyExtra"`
	Breakdown           BreakdownReport       `json:"breakdown"`
	Schedule            []ScheduleEntryReport `json:"schedule"`
}

type BreakEvenReport struct {
	ClosingCosts decimal.Decimal `json:"closingCosts"`
	// Months is nil when the closing costs are never recovered.
	Months           *int   `json:"months"`
	Label            string `json:"label"`
	WorthRefinancing bool   `json:"worthRefinancing"`
}

type RefinanceReport struct {
	Current        OutcomeReport           `json:"current"`
	Proposed       OutcomeReport           `json:"proposed"`
	Savings        SavingsReport           `json:"savings"`
	BreakEven      BreakEvenReport         `json:"breakEven"`
	Verdict        domain.RefinanceVerdict `json:"verdict"`
	Recommendation string                  `json:"recommendation"`
}

type BuyingReport struct {
	LoanAmount         decimal.Decimal `json:"loanAmount"`
	MonthlyPayment     decimal.Decimal `json:"monthlyPayment"`
	TotalMonthlyCost   decimal.Decimal `json:"totalMonthlyCost"`
	DownPayment        decimal.Decimal `json:"downPayment"`
	ClosingCosts       decimal.Decimal `json:"closingCosts"`
	InitialCashOutlay  decimal.Decimal `json:"initialCashOutlay"`
	YearlyAppreciation decimal.Decimal `json:"yearlyAppreciation"`
	EquityBuilt5Years  decimal.Decimal `json:"equityBuilt5Years"`
	EquityBuilt10Years decimal.Decimal `json:"equityBuilt10Years"`
	TotalCost5Years    decimal.Decimal `json:"totalCost5Years"`
	TotalCost10Years   decimal.Decimal `json:"totalCost10Years"`
	NetWorth5Years     decimal.Decimal `json:"netWorth5Years"`
	NetWorth10Years    decimal.Decimal `json:"netWorth10Years"`
}

type RentingReport struct {
	MonthlyRent             decimal.Decimal `json:"monthlyRent"`
	TotalMonthlyCost        decimal.Decimal `json:"totalMonthlyCost"`
	InitialDeposit          decimal.Decimal `json:"initialDeposit"`
	YearlyRentIncrease      decimal.Decimal `json:"yearlyRentIncrease"`
	TotalCost5Years         decimal.Decimal `json:"totalCost5Years"`
	TotalCost10Years        decimal.Decimal `json:"totalCost10Years"`
	InvestmentGrowth5Years  decimal.Decimal `json:"investmentGrowth5Years"`
	InvestmentGrowth10Years decimal.Decimal `json:"investmentGrowth10Years"`
	NetWorth5Years          decimal.Decimal `json:"netWorth5Years"`
	NetWorth10Years         decimal.Decimal `json:"netWorth10Years"`
}

type ComparisonReport struct {
	MonthlyDifference    decimal.Decimal  `json:"monthlyDifference"`
	CashOutlayDifference decimal.Decimal  `json:"cashOutlayDifference"`
	FiveYearSavings      decimal.Decimal  `json:"fiveYearSavings"`
	TenYearSavings       decimal.Decimal  `json:"tenYearSavings"`
	FiveYearAdvantage    domain.Advantage `json:"fiveYearAdvantage"`
	TenYearAdvantage     domain.Advantage `json:"tenYearAdvantage"`
}

type YearlyProjectionReport struct {
	Year                  int             `json:"year"`
	HomeValue             decimal.Decimal `json:"homeValue"`
	RemainingLoanBalance  decimal.Decimal `json:"remainingLoanBalance"`
	InvestmentValue       decimal.Decimal `json:"investmentValue"`
	BuyingCumulativeCost  decimal.Decimal `json:"buyingCumulativeCost"`
	RentingCumulativeCost decimal.Decimal `json:"rentingCumulativeCost"`
	BuyingNetWorth        decimal.Decimal `json:"buyingNetWorth"`
	RentingNetWorth       decimal.Decimal `json:"rentingNetWorth"`
}

type RecommendationReport struct {
	Decision          domain.Decision `json:"decision"`
	ConfidencePercent int             `json:"confidencePercent"`
	PrimaryReason     string          `json:"primaryReason"`
	Considerations    []string        `json:"considerations"`
}

type RentVsBuyReport struct {
	Buying         BuyingReport             `json:"buying"`
	Renting        RentingReport            `json:"renting"`
	Comparison     ComparisonReport         `json:"comparison"`
	BreakEvenYear  int                      `json:"breakEvenYear"`
	Recommendation RecommendationReport     `json:"recommendation"`
	Yearly         []YearlyProjectionReport `json:"yearly"`
}

type ScenarioReport struct {
	Name         string          `json:"name"`
	ExtraPayment decimal.Decimal `json:"extraPayment"`
	Outcome      OutcomeReport   `json:"outcome"`
	Savings      SavingsReport   `json:"savings"`
	Rank         int             `json:"rank"`
	Selected     bool            `json:"selected"`
}

type ScenariosReport struct {
	Baseline  OutcomeReport    `json:"baseline"`
	Scenarios []ScenarioReport `json:"scenarios"`
}
