package domain

// ExtraPaymentKind selects how additional principal is applied.
type ExtraPaymentKind string

const (
	ExtraPaymentNone    ExtraPaymentKind = "none"
	ExtraPaymentMonthly ExtraPaymentKind = "monthly"
	ExtraPaymentAnnual  ExtraPaymentKind = "annual"
	ExtraPaymentOneTime ExtraPaymentKind = "one_time"
)

// ExtraPaymentStrategy is a tagged variant: Kind picks which of Amount and
// TargetMonth are meaningful. Annual extras land on payments 12, 24, ...;
// a one-time extra lands on payment TargetMonth.
type ExtraPaymentStrategy struct {
	Kind        ExtraPaymentKind
	Amount      float64
	TargetMonth int
}

// NoExtraPayment is the None variant.
func NoExtraPayment() ExtraPaymentStrategy {
	return ExtraPaymentStrategy{Kind: ExtraPaymentNone}
}

// MonthlyExtra applies amount on every payment.
func MonthlyExtra(amount float64) ExtraPaymentStrategy {
	return ExtraPaymentStrategy{Kind: ExtraPaymentMonthly, Amount: amount}
}

// AnnualExtra applies amount on every twelfth payment.
func AnnualExtra(amount float64) ExtraPaymentStrategy {
	return ExtraPaymentStrategy{Kind: ExtraPaymentAnnual, Amount: amount}
}

// OneTimeExtra applies amount once, on payment index month.
func OneTimeExtra(amount float64, month int) ExtraPaymentStrategy {
	return ExtraPaymentStrategy{Kind: ExtraPaymentOneTime, Amount: amount, TargetMonth: month}
}

// ExtraPaymentInput pairs a loan with the strategy to simulate.
type ExtraPaymentInput struct {
	Loan     LoanTerms
	Strategy ExtraPaymentStrategy
}

// SavingsSummary is always baseline minus scenario, so any field can be
// negative when the scenario is worse.
type SavingsSummary struct {
	InterestSaved       float64
	MonthsSaved         int
	TotalCostSaved      float64
	PercentSaved        float64
	MonthlyPaymentSaved float64
}

// SavingsRating buckets the interest saved by an extra-payment plan.
type SavingsRating string

const (
	SavingsExcellent  SavingsRating = "excellent"
	SavingsGood       SavingsRating = "good"
	SavingsBeneficial SavingsRating = "beneficial"
	SavingsModest     SavingsRating = "modest"
)

// YearlyBreakdown sums the schedule entries of one loan year.
type YearlyBreakdown struct {
	Year             int
	TotalPaid        float64
	PrincipalPaid    float64
	InterestPaid     float64
	ExtraPaid        float64
	RemainingBalance float64
}

// TotalBreakdown sums the whole accelerated schedule.
type TotalBreakdown struct {
	TotalRegularPayments float64
	TotalExtraPayments   float64
	TotalInterestPaid    float64
	TotalAmountPaid      float64
}

type BreakdownAnalysis struct {
	FirstYear YearlyBreakdown
	FifthYear YearlyBreakdown
	Total     TotalBreakdown
}

// ExtraPaymentResult is the output of one extra-payment simulation.
type ExtraPaymentResult struct {
	Strategy            ExtraPaymentStrategy
	Baseline            LoanOutcome
	Accelerated         LoanOutcome
	Savings             SavingsSummary
	Rating              SavingsRating
	AverageMonthlyExtra float64
	Schedule            []PaymentScheduleEntry
	Breakdown           BreakdownAnalysis
}
