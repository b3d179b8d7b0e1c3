package service

import (
	"fmt"
	"math"

	"mortgage-engine/domain"
)

type RefinanceService struct {
	amortization *AmortizationService
}

func NewRefinanceService(amortization *AmortizationService) *RefinanceService {
	return &RefinanceService{amortization: amortization}
}

// Analyze compares continuing the current loan with replacing it.
func (s *RefinanceService) Analyze(
	input domain.RefinanceInput,
) (domain.RefinanceComparison, error) {

	if err := validateRefinance(input); err != nil {
		return domain.RefinanceComparison{}, err
	}

	current, err := s.amortization.Outcome(domain.LoanTerms{
		Principal:         input.CurrentBalance,
		AnnualRatePercent: input.CurrentRate,
		TermYears:         input.RemainingYears,
	})
	if err != nil {
		return domain.RefinanceComparison{}, fmt.Errorf("current loan: %w", err)
	}

	proposed, err := s.amortization.Outcome(domain.LoanTerms{
		Principal:         input.CurrentBalance + input.CashOut,
		AnnualRatePercent: input.NewRate,
		TermYears:         input.NewTermYears,
	})
	if err != nil {
		return domain.RefinanceComparison{}, fmt.Errorf("proposed loan: %w", err)
	}

	savings := refinanceSavings(current, proposed, input.ClosingCosts)

	months := BreakEvenMonths(input.ClosingCosts, savings.MonthlyPaymentSaved)
	breakEven := domain.BreakEven{
		ClosingCosts:     input.ClosingCosts,
		BreakEvenMonths:  months,
		Label:            breakEvenLabel(months),
		WorthRefinancing: months <= MaxBreakEvenMonths && savings.TotalCostSaved > 0,
	}

	verdict, text := refinanceRecommendation(breakEven, savings)

	return domain.RefinanceComparison{
		Current:        current,
		Proposed:       proposed,
		Savings:        savings,
		BreakEven:      breakEven,
		Verdict:        verdict,
		Recommendation: text,
	}, nil
}

// BreakEvenMonths is the whole number of months of payment savings needed
// to recover closingCosts, or domain.BreakEvenNever when the new payment is
// not lower.
func BreakEvenMonths(closingCosts, monthlySavings float64) int {
	if !(monthlySavings > 0) {
		return domain.BreakEvenNever
	}
	months := math.Ceil(closingCosts / monthlySavings)
	if math.IsNaN(months) || months >= float64(domain.BreakEvenNever) {
		return domain.BreakEvenNever
	}
	return int(months)
}

// refinanceSavings charges the closing costs to the new loan's lifetime cost.
func refinanceSavings(
	current domain.LoanOutcome,
	proposed domain.LoanOutcome,
	closingCosts float64,
) domain.SavingsSummary {
	summary := domain.SavingsSummary{
		InterestSaved:       current.TotalInterest - proposed.TotalInterest,
		MonthsSaved:         current.TotalPayments - proposed.TotalPayments,
		TotalCostSaved:      current.TotalCost - (proposed.TotalCost + closingCosts),
		MonthlyPaymentSaved: current.MonthlyPayment - proposed.MonthlyPayment,
	}
	if current.TotalCost != 0 {
		summary.PercentSaved = summary.TotalCostSaved / current.TotalCost * 100
	}
	return summary
}

func breakEvenLabel(months int) string {
	if months == domain.BreakEvenNever {
		return "Never"
	}
	return fmt.Sprintf("%d years, %d months", months/MonthsPerYear, months%MonthsPerYear)
}

func refinanceRecommendation(
	breakEven domain.BreakEven,
	savings domain.SavingsSummary,
) (domain.RefinanceVerdict, string) {
	switch {
	case breakEven.WorthRefinancing:
		return domain.RefinanceRecommended, fmt.Sprintf(
			"We recommend refinancing. You'll save %s monthly and break even in %d months.",
			formatMoney(math.Abs(savings.MonthlyPaymentSaved)), breakEven.BreakEvenMonths)
	case breakEven.BreakEvenMonths > MaxBreakEvenMonths:
		return domain.RefinanceBreakEvenTooLong, fmt.Sprintf(
			"We don't recommend refinancing. Break-even period is too long (%s).",
			breakEvenPeriod(breakEven.BreakEvenMonths))
	default:
		return domain.RefinanceMarginal, fmt.Sprintf(
			"Refinancing may not be beneficial. Consider your long-term plans and break-even period of %d months.",
			breakEven.BreakEvenMonths)
	}
}

func breakEvenPeriod(months int) string {
	if months == domain.BreakEvenNever {
		return "the closing costs are never recovered"
	}
	return fmt.Sprintf("%d months", months)
}
