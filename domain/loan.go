package domain

import (
	"math"
	"time"
)

// LoanTerms describes a fixed-rate, fully-amortizing loan.
// AnnualRatePercent is a percentage (6.5 means 6.5%).
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         float64
}

// PaymentScheduleEntry is one period of an amortization schedule.
type PaymentScheduleEntry struct {
	Index              int
	ScheduledPayment   float64
	ExtraPayment       float64
	PrincipalPortion   float64
	InterestPortion    float64
	RemainingBalance   float64
	CumulativeInterest float64
}

// TotalPaid is everything paid in the period: regular payment plus extra.
func (e PaymentScheduleEntry) TotalPaid() float64 {
	return e.ScheduledPayment + e.ExtraPayment
}

// LoanOutcome aggregates one full schedule run.
type LoanOutcome struct {
	Principal         float64
	MonthlyPayment    float64
	TotalPayments     int
	TotalInterest     float64
	TotalCost         float64
	PayoffMonthOffset int
}

// PayoffDate returns the date of the final payment for a loan whose first
// payment falls one month after start.
func (o LoanOutcome) PayoffDate(start time.Time) time.Time {
	return start.AddDate(0, o.PayoffMonthOffset, 0)
}

// YearsToPayoff is the payoff horizon in years, rounded to one decimal.
func (o LoanOutcome) YearsToPayoff() float64 {
	return math.Round(float64(o.TotalPayments)/12*10) / 10
}

// AmortizationResult is the full output of an amortization request.
type AmortizationResult struct {
	Terms    LoanTerms
	Outcome  LoanOutcome
	Schedule []PaymentScheduleEntry
}
