package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
)

var concreteLoan = domain.LoanTerms{Principal: 260000, AnnualRatePercent: 6.5, TermYears: 25}

func newExtraPaymentService() *ExtraPaymentService {
	return NewExtraPaymentService(NewAmortizationService())
}

func TestSimulate_MonthlyExtra(t *testing.T) {
	service := newExtraPaymentService()

	result, err := service.Simulate(domain.ExtraPaymentInput{
		Loan:     concreteLoan,
		Strategy: domain.MonthlyExtra(200),
	})

	require.NoError(t, err)
	assert.Equal(t, 300, result.Baseline.TotalPayments)
	assert.Equal(t, 236, result.Accelerated.TotalPayments)
	assert.Less(t, result.Accelerated.TotalPayments, 300)
	assert.Greater(t, result.Savings.InterestSaved, 0.0)
	assert.InDelta(t, 65619.30, result.Savings.InterestSaved, 0.05)
	assert.Equal(t, 64, result.Savings.MonthsSaved)
	assert.Equal(t, domain.SavingsExcellent, result.Rating)
	assert.Equal(t, 200.0, result.AverageMonthlyExtra)
	assert.Len(t, result.Schedule, 236)
	assert.InDelta(t,
		result.Savings.InterestSaved/result.Baseline.TotalInterest*100,
		result.Savings.PercentSaved, 1e-9)
}

func TestSimulate_ScheduleInvariants(t *testing.T) {
	service := newExtraPaymentService()

	strategies := []domain.ExtraPaymentStrategy{
		domain.MonthlyExtra(200),
		domain.AnnualExtra(5000),
		domain.OneTimeExtra(10000, 12),
		domain.OneTimeExtra(1e9, 12),
	}

	for _, strategy := range strategies {
		result, err := service.Simulate(domain.ExtraPaymentInput{Loan: concreteLoan, Strategy: strategy})
		require.NoError(t, err)

		paid := 0.0
		previous := concreteLoan.Principal
		for _, entry := range result.Schedule {
			assert.GreaterOrEqual(t, entry.ExtraPayment, 0.0)
			assert.LessOrEqual(t, entry.RemainingBalance, previous)
			assert.GreaterOrEqual(t, entry.RemainingBalance, 0.0)
			previous = entry.RemainingBalance
			paid += entry.PrincipalPortion + entry.ExtraPayment
		}
		last := result.Schedule[len(result.Schedule)-1]
		assert.Equal(t, 0.0, last.RemainingBalance)
		assert.InDelta(t, concreteLoan.Principal, paid, BalanceEpsilon)
		assert.InDelta(t, concreteLoan.Principal+result.Accelerated.TotalInterest, result.Accelerated.TotalCost, BalanceEpsilon)
	}
}

func TestSimulate_StrategyTiming(t *testing.T) {
	service := newExtraPaymentService()

	annual, err := service.Simulate(domain.ExtraPaymentInput{Loan: concreteLoan, Strategy: domain.AnnualExtra(5000)})
	require.NoError(t, err)
	assert.Equal(t, 197, annual.Accelerated.TotalPayments)
	for _, entry := range annual.Schedule {
		if entry.Index%12 == 0 {
			assert.Equal(t, 5000.0, entry.ExtraPayment, "payment %d", entry.Index)
		} else {
			assert.Zero(t, entry.ExtraPayment, "payment %d", entry.Index)
		}
	}

	oneTime, err := service.Simulate(domain.ExtraPaymentInput{Loan: concreteLoan, Strategy: domain.OneTimeExtra(10000, 12)})
	require.NoError(t, err)
	assert.Equal(t, 275, oneTime.Accelerated.TotalPayments)
	assert.Equal(t, 10000.0, oneTime.Schedule[11].ExtraPayment)
	assert.Equal(t, 10000.0, oneTime.Breakdown.Total.TotalExtraPayments)
	assert.InDelta(t, 10000.0/275, oneTime.AverageMonthlyExtra, 1e-9)
}

func TestSimulate_ExtraCappedAtRemainingBalance(t *testing.T) {
	service := newExtraPaymentService()

	result, err := service.Simulate(domain.ExtraPaymentInput{
		Loan:     concreteLoan,
		Strategy: domain.OneTimeExtra(1e9, 12),
	})

	require.NoError(t, err)
	require.Len(t, result.Schedule, 12)
	last := result.Schedule[11]
	assert.Equal(t, 0.0, last.RemainingBalance)
	assert.Less(t, last.ExtraPayment, concreteLoan.Principal)
	assert.InDelta(t, result.Schedule[10].RemainingBalance, last.PrincipalPortion+last.ExtraPayment, 1e-6)
}

func TestSimulate_NonPositiveAmountIsNoOp(t *testing.T) {
	service := newExtraPaymentService()

	strategies := []domain.ExtraPaymentStrategy{
		domain.MonthlyExtra(0),
		domain.MonthlyExtra(-100),
		domain.AnnualExtra(-1),
		domain.OneTimeExtra(0, 0),
		{},
	}

	for _, strategy := range strategies {
		result, err := service.Simulate(domain.ExtraPaymentInput{Loan: concreteLoan, Strategy: strategy})
		require.NoError(t, err)
		assert.Equal(t, domain.ExtraPaymentNone, result.Strategy.Kind)
		assert.Equal(t, result.Baseline, result.Accelerated)
		assert.Equal(t, domain.SavingsSummary{}, result.Savings)
		assert.Equal(t, domain.SavingsModest, result.Rating)
	}
}

func TestSimulate_InvalidStrategy(t *testing.T) {
	service := newExtraPaymentService()

	_, err := service.Simulate(domain.ExtraPaymentInput{
		Loan:     concreteLoan,
		Strategy: domain.ExtraPaymentStrategy{Kind: "weekly", Amount: 10},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = service.Simulate(domain.ExtraPaymentInput{
		Loan:     concreteLoan,
		Strategy: domain.OneTimeExtra(500, 0),
	})
	var paramErr *domain.ParameterError
	require.ErrorAs(t, err, &paramErr)
	assert.Equal(t, "strategyTargetMonth", paramErr.Field)
}

func TestSimulate_InvalidLoan(t *testing.T) {
	service := newExtraPaymentService()

	_, err := service.Simulate(domain.ExtraPaymentInput{
		Loan:     domain.LoanTerms{Principal: 100000, AnnualRatePercent: 5, TermYears: 60},
		Strategy: domain.MonthlyExtra(100),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestAccelerate_MonthlyExtraIsMonotonic(t *testing.T) {
	service := newExtraPaymentService()

	previousInterest := 0.0
	previousPayments := 0
	for i, amount := range []float64{0, 30, 50, 100, 200, 500, 1000} {
		_, outcome, err := service.Accelerate(concreteLoan, domain.MonthlyExtra(amount))
		require.NoError(t, err)

		if i > 0 {
			assert.Less(t, outcome.TotalInterest, previousInterest, "extra %.0f", amount)
			assert.LessOrEqual(t, outcome.TotalPayments, previousPayments, "extra %.0f", amount)
		}
		previousInterest = outcome.TotalInterest
		previousPayments = outcome.TotalPayments
	}
}

func TestCompareToBaseline(t *testing.T) {
	service := newExtraPaymentService()

	baseline := domain.LoanOutcome{MonthlyPayment: 1000, TotalPayments: 360, TotalInterest: 100000, TotalCost: 300000}
	worse := domain.LoanOutcome{MonthlyPayment: 1000, TotalPayments: 370, TotalInterest: 110000, TotalCost: 310000}

	savings := service.CompareToBaseline(baseline, worse)

	assert.Equal(t, -10000.0, savings.InterestSaved)
	assert.Equal(t, -10, savings.MonthsSaved)
	assert.Equal(t, -10000.0, savings.TotalCostSaved)
	assert.Equal(t, -10.0, savings.PercentSaved)

	zeroRate := service.CompareToBaseline(domain.LoanOutcome{TotalPayments: 12, TotalCost: 1200}, domain.LoanOutcome{TotalPayments: 10, TotalCost: 1200})
	assert.Zero(t, zeroRate.PercentSaved)
	assert.Equal(t, 2, zeroRate.MonthsSaved)
}

func TestBreakdownAnalysis(t *testing.T) {
	service := newExtraPaymentService()

	result, err := service.Simulate(domain.ExtraPaymentInput{Loan: concreteLoan, Strategy: domain.MonthlyExtra(200)})
	require.NoError(t, err)

	first := result.Breakdown.FirstYear
	assert.Equal(t, 1, first.Year)
	assert.InDelta(t, 23466.46, first.TotalPaid, 0.01)
	assert.InDelta(t, 2400.0, first.ExtraPaid, 1e-9)
	assert.InDelta(t, 16700.80, first.InterestPaid, 0.01)
	assert.InDelta(t, 6765.66, first.PrincipalPaid, 0.01)
	assert.InDelta(t, 253234.34, first.RemainingBalance, 0.01)

	fifth := result.Breakdown.FifthYear
	assert.Equal(t, 5, fifth.Year)
	assert.InDelta(t, 221326.83, fifth.RemainingBalance, 0.01)

	total := result.Breakdown.Total
	assert.InDelta(t, result.Accelerated.TotalCost, total.TotalAmountPaid, 1e-6)
	assert.InDelta(t, result.Accelerated.TotalInterest, total.TotalInterestPaid, 1e-6)
	// The final payment clears the balance on its own and carries no extra.
	last := result.Schedule[len(result.Schedule)-1]
	assert.Zero(t, last.ExtraPayment)
	assert.InDelta(t, 200.0*235, total.TotalExtraPayments, 1e-6)

	beyond := yearlyBreakdown(result.Schedule, 30)
	assert.Equal(t, domain.YearlyBreakdown{Year: 30}, beyond)
}

func TestRateSavings(t *testing.T) {
	testCases := []struct {
		saved    float64
		expected domain.SavingsRating
	}{
		{60000, domain.SavingsExcellent},
		{50000, domain.SavingsGood},
		{20000.01, domain.SavingsGood},
		{20000, domain.SavingsBeneficial},
		{5000, domain.SavingsModest},
		{-10, domain.SavingsModest},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rateSavings(tc.saved), "saved %.2f", tc.saved)
	}
}
