package domain

// RefinanceInput describes the loan being continued and the proposed
// replacement. Rates are percentages, terms are years.
type RefinanceInput struct {
	CurrentBalance float64
	CurrentRate    float64
	RemainingYears float64
	NewRate        float64
	NewTermYears   float64
	ClosingCosts   float64
	CashOut        float64
}

// BreakEvenNever marks a refinance whose monthly savings never recover the
// closing costs. It compares greater than any real month count.
const BreakEvenNever = int(^uint(0) >> 1)

type BreakEven struct {
	ClosingCosts     float64
	BreakEvenMonths  int
	Label            string
	WorthRefinancing bool
}

// Reached reports whether the closing costs are ever recovered.
func (b BreakEven) Reached() bool {
	return b.BreakEvenMonths != BreakEvenNever
}

// RefinanceVerdict is one of exactly three recommendation tiers.
type RefinanceVerdict string

const (
	RefinanceRecommended      RefinanceVerdict = "recommended"
	RefinanceBreakEvenTooLong RefinanceVerdict = "break_even_too_long"
	RefinanceMarginal         RefinanceVerdict = "marginal"
)

type RefinanceComparison struct {
	Current        LoanOutcome
	Proposed       LoanOutcome
	Savings        SavingsSummary
	BreakEven      BreakEven
	Verdict        RefinanceVerdict
	Recommendation string
}
