package service

import (
	"fmt"
	"iter"
	"math"

	"mortgage-engine/domain"
)

// AmortizationService owns the one annuity formula and the one per-period
// amortization loop every other calculator builds on.
type AmortizationService struct{}

// NewAmortizationService creates a new AmortizationService.
func NewAmortizationService() *AmortizationService {
	return &AmortizationService{}
}

// ComputeMonthlyPayment returns the level payment that fully repays terms.
func (s *AmortizationService) ComputeMonthlyPayment(terms domain.LoanTerms) (float64, error) {
	if err := validateLoanTerms("", terms); err != nil {
		return 0, err
	}
	return monthlyPayment(terms.Principal, terms.AnnualRatePercent, paymentCount(terms.TermYears)), nil
}

// Schedule validates terms and returns a lazy sequence of schedule entries.
// Ranging over it again replays the loan from the first payment. If the
// period cap is hit with a balance still outstanding, the last value
// yielded carries a *domain.ConvergenceError.
func (s *AmortizationService) Schedule(
	terms domain.LoanTerms,
) (iter.Seq2[domain.PaymentScheduleEntry, error], error) {
	if err := validateLoanTerms("", terms); err != nil {
		return nil, err
	}
	return newAmortizer(terms, nil).entries(), nil
}

// GenerateSchedule runs the full schedule for terms and summarizes it.
func (s *AmortizationService) GenerateSchedule(
	terms domain.LoanTerms,
) (domain.AmortizationResult, error) {
	if err := validateLoanTerms("", terms); err != nil {
		return domain.AmortizationResult{}, err
	}

	a := newAmortizer(terms, nil)
	schedule, err := collectSchedule(a.entries())
	if err != nil {
		return domain.AmortizationResult{}, err
	}

	return domain.AmortizationResult{
		Terms:    terms,
		Outcome:  summarize(terms.Principal, a.payment, schedule),
		Schedule: schedule,
	}, nil
}

// Outcome is GenerateSchedule without the schedule.
func (s *AmortizationService) Outcome(terms domain.LoanTerms) (domain.LoanOutcome, error) {
	result, err := s.GenerateSchedule(terms)
	if err != nil {
		return domain.LoanOutcome{}, err
	}
	return result.Outcome, nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / MonthsPerYear
}

func paymentCount(termYears float64) int {
	return int(math.Round(termYears * MonthsPerYear))
}

func monthlyPayment(principal, annualRatePercent float64, payments int) float64 {
	rate := monthlyRate(annualRatePercent)
	if rate == 0 {
		return principal / float64(payments)
	}
	growth := math.Pow(1+rate, float64(payments))
	return principal * rate * growth / (growth - 1)
}

// remainingBalance is the closed-form balance left with remaining level
// payments still due.
func remainingBalance(payment, rate float64, remaining int) float64 {
	if remaining <= 0 {
		return 0
	}
	if rate == 0 {
		return payment * float64(remaining)
	}
	growth := math.Pow(1+rate, float64(remaining))
	return payment * (growth - 1) / (rate * growth)
}

// extraFunc returns the extra principal requested for a 1-based payment index.
type extraFunc func(index int) float64

type amortizer struct {
	principal float64
	rate      float64
	payment   float64
	periods   int
	extra     extraFunc
}

func newAmortizer(terms domain.LoanTerms, extra extraFunc) amortizer {
	periods := paymentCount(terms.TermYears)
	return amortizer{
		principal: terms.Principal,
		rate:      monthlyRate(terms.AnnualRatePercent),
		payment:   monthlyPayment(terms.Principal, terms.AnnualRatePercent, periods),
		periods:   periods,
		extra:     extra,
	}
}

func (a amortizer) entries() iter.Seq2[domain.PaymentScheduleEntry, error] {
	return func(yield func(domain.PaymentScheduleEntry, error) bool) {
		balance := a.principal
		cumulativeInterest := 0.0

		for index := 1; index <= a.periods && balance > BalanceEpsilon; index++ {
			interest := balance * a.rate
			principal := math.Max(0, math.Min(a.payment-interest, balance))

			extra := 0.0
			if a.extra != nil {
				extra = math.Max(0, math.Min(a.extra(index), balance-principal))
			}

			balance -= principal + extra
			if balance <= BalanceEpsilon {
				// Fold the rounding residue into the final payment.
				principal += balance
				balance = 0
			}
			cumulativeInterest += interest

			entry := domain.PaymentScheduleEntry{
				Index:              index,
				ScheduledPayment:   principal + interest,
				ExtraPayment:       extra,
				PrincipalPortion:   principal,
				InterestPortion:    interest,
				RemainingBalance:   balance,
				CumulativeInterest: cumulativeInterest,
			}
			if !yield(entry, nil) {
				return
			}

			if index == a.periods && balance > 0 {
				yield(domain.PaymentScheduleEntry{}, &domain.ConvergenceError{
					Periods:          index,
					RemainingBalance: balance,
				})
				return
			}
		}
	}
}

func collectSchedule(
	seq iter.Seq2[domain.PaymentScheduleEntry, error],
) ([]domain.PaymentScheduleEntry, error) {
	schedule := []domain.PaymentScheduleEntry{}
	for entry, err := range seq {
		if err != nil {
			return nil, fmt.Errorf("amortization: %w", err)
		}
		schedule = append(schedule, entry)
	}
	return schedule, nil
}

func summarize(
	principal float64,
	payment float64,
	schedule []domain.PaymentScheduleEntry,
) domain.LoanOutcome {
	outcome := domain.LoanOutcome{
		Principal:      principal,
		MonthlyPayment: payment,
		TotalPayments:  len(schedule),
	}
	for _, entry := range schedule {
		outcome.TotalCost += entry.TotalPaid()
	}
	if len(schedule) > 0 {
		outcome.TotalInterest = schedule[len(schedule)-1].CumulativeInterest
	}
	outcome.PayoffMonthOffset = outcome.TotalPayments
	return outcome
}
