package service

import (
	"gonum.org/v1/gonum/floats"

	"mortgage-engine/domain"
)

type ExtraPaymentService struct {
	amortization *AmortizationService
}

func NewExtraPaymentService(amortization *AmortizationService) *ExtraPaymentService {
	return &ExtraPaymentService{amortization: amortization}
}

// Simulate replays the loan with the requested extra principal payments and
// compares it with the plain schedule.
func (s *ExtraPaymentService) Simulate(
	input domain.ExtraPaymentInput,
) (domain.ExtraPaymentResult, error) {

	strategy, err := normalizeStrategy(input.Strategy)
	if err != nil {
		return domain.ExtraPaymentResult{}, err
	}

	baseline, err := s.amortization.Outcome(input.Loan)
	if err != nil {
		return domain.ExtraPaymentResult{}, err
	}

	schedule, accelerated, err := s.accelerate(input.Loan, strategy)
	if err != nil {
		return domain.ExtraPaymentResult{}, err
	}

	savings := s.CompareToBaseline(baseline, accelerated)

	return domain.ExtraPaymentResult{
		Strategy:            strategy,
		Baseline:            baseline,
		Accelerated:         accelerated,
		Savings:             savings,
		Rating:              rateSavings(savings.InterestSaved),
		AverageMonthlyExtra: averageMonthlyExtra(strategy, accelerated),
		Schedule:            schedule,
		Breakdown:           analyzeBreakdown(schedule),
	}, nil
}

// Accelerate returns the schedule and outcome of loan under strategy.
// A strategy amount of zero or less behaves exactly like no strategy.
func (s *ExtraPaymentService) Accelerate(
	loan domain.LoanTerms,
	strategy domain.ExtraPaymentStrategy,
) ([]domain.PaymentScheduleEntry, domain.LoanOutcome, error) {
	strategy, err := normalizeStrategy(strategy)
	if err != nil {
		return nil, domain.LoanOutcome{}, err
	}
	if err := validateLoanTerms("", loan); err != nil {
		return nil, domain.LoanOutcome{}, err
	}
	return s.accelerate(loan, strategy)
}

func (s *ExtraPaymentService) accelerate(
	loan domain.LoanTerms,
	strategy domain.ExtraPaymentStrategy,
) ([]domain.PaymentScheduleEntry, domain.LoanOutcome, error) {
	a := newAmortizer(loan, extraPaymentFunc(strategy))
	schedule, err := collectSchedule(a.entries())
	if err != nil {
		return nil, domain.LoanOutcome{}, err
	}
	return schedule, summarize(loan.Principal, a.payment, schedule), nil
}

// CompareToBaseline subtracts accelerated from baseline field by field.
func (s *ExtraPaymentService) CompareToBaseline(
	baseline domain.LoanOutcome,
	accelerated domain.LoanOutcome,
) domain.SavingsSummary {
	summary := domain.SavingsSummary{
		InterestSaved:       baseline.TotalInterest - accelerated.TotalInterest,
		MonthsSaved:         baseline.TotalPayments - accelerated.TotalPayments,
		TotalCostSaved:      baseline.TotalCost - accelerated.TotalCost,
		MonthlyPaymentSaved: baseline.MonthlyPayment - accelerated.MonthlyPayment,
	}
	// Zero-rate loans have no interest to save.
	if baseline.TotalInterest != 0 {
		summary.PercentSaved = summary.InterestSaved / baseline.TotalInterest * 100
	}
	return summary
}

func normalizeStrategy(strategy domain.ExtraPaymentStrategy) (domain.ExtraPaymentStrategy, error) {
	switch strategy.Kind {
	case "":
		return domain.NoExtraPayment(), nil
	case domain.ExtraPaymentMonthly, domain.ExtraPaymentAnnual, domain.ExtraPaymentOneTime:
		if !(strategy.Amount > 0) {
			return domain.NoExtraPayment(), nil
		}
	}
	if err := validateStrategy(strategy); err != nil {
		return domain.ExtraPaymentStrategy{}, err
	}
	if strategy.Kind == domain.ExtraPaymentNone {
		return domain.NoExtraPayment(), nil
	}
	return strategy, nil
}

func extraPaymentFunc(strategy domain.ExtraPaymentStrategy) extraFunc {
	amount := strategy.Amount

	switch strategy.Kind {
	case domain.ExtraPaymentMonthly:
		return func(int) float64 { return amount }
	case domain.ExtraPaymentAnnual:
		return func(index int) float64 {
			if index%MonthsPerYear == 0 {
				return amount
			}
			return 0
		}
	case domain.ExtraPaymentOneTime:
		target := strategy.TargetMonth
		return func(index int) float64 {
			if index == target {
				return amount
			}
			return 0
		}
	}
	return nil
}

func averageMonthlyExtra(strategy domain.ExtraPaymentStrategy, accelerated domain.LoanOutcome) float64 {
	switch strategy.Kind {
	case domain.ExtraPaymentMonthly:
		return strategy.Amount
	case domain.ExtraPaymentAnnual:
		return strategy.Amount / MonthsPerYear
	case domain.ExtraPaymentOneTime:
		if accelerated.TotalPayments > 0 {
			return strategy.Amount / float64(accelerated.TotalPayments)
		}
	}
	return 0
}

func rateSavings(interestSaved float64) domain.SavingsRating {
	switch {
	case interestSaved > ExcellentSavings:
		return domain.SavingsExcellent
	case interestSaved > GoodSavings:
		return domain.SavingsGood
	case interestSaved > BeneficialSavings:
		return domain.SavingsBeneficial
	default:
		return domain.SavingsModest
	}
}

func analyzeBreakdown(schedule []domain.PaymentScheduleEntry) domain.BreakdownAnalysis {
	regular := make([]float64, len(schedule))
	extra := make([]float64, len(schedule))
	interest := make([]float64, len(schedule))
	for i, entry := range schedule {
		regular[i] = entry.ScheduledPayment
		extra[i] = entry.ExtraPayment
		interest[i] = entry.InterestPortion
	}

	total := domain.TotalBreakdown{
		TotalRegularPayments: floats.Sum(regular),
		TotalExtraPayments:   floats.Sum(extra),
		TotalInterestPaid:    floats.Sum(interest),
	}
	total.TotalAmountPaid = total.TotalRegularPayments + total.TotalExtraPayments

	return domain.BreakdownAnalysis{
		FirstYear: yearlyBreakdown(schedule, 1),
		FifthYear: yearlyBreakdown(schedule, 5),
		Total:     total,
	}
}

func yearlyBreakdown(schedule []domain.PaymentScheduleEntry, year int) domain.YearlyBreakdown {
	breakdown := domain.YearlyBreakdown{Year: year}

	first := (year-1)*MonthsPerYear + 1
	last := year * MonthsPerYear
	for _, entry := range schedule {
		if entry.Index < first || entry.Index > last {
			continue
		}
		breakdown.TotalPaid += entry.TotalPaid()
		breakdown.PrincipalPaid += entry.PrincipalPortion + entry.ExtraPayment
		breakdown.InterestPaid += entry.InterestPortion
		breakdown.ExtraPaid += entry.ExtraPayment
		breakdown.RemainingBalance = entry.RemainingBalance
	}
	return breakdown
}
