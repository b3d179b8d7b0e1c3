package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
)

func newScenarioService(workers int) *ScenarioService {
	amortization := NewAmortizationService()
	return NewScenarioService(amortization, NewExtraPaymentService(amortization), workers)
}

func TestGenerate_DefaultCandidates(t *testing.T) {
	service := newScenarioService(4)

	result, err := service.Generate(domain.ScenarioInput{Loan: concreteLoan})

	require.NoError(t, err)
	assert.Equal(t, 300, result.Baseline.TotalPayments)
	require.Len(t, result.Scenarios, 4)

	names := []string{"$50 Monthly", "$100 Monthly", "$200 Monthly", "$500 Monthly"}
	payments := []int{281, 264, 236, 182}
	ranks := []int{4, 3, 2, 1}
	for i, scenario := range result.Scenarios {
		assert.Equal(t, names[i], scenario.Name)
		assert.Equal(t, ScenarioExtraAmounts[i], scenario.ExtraPayment)
		assert.Equal(t, payments[i], scenario.Outcome.TotalPayments)
		assert.Equal(t, 300-payments[i], scenario.Savings.MonthsSaved)
		assert.Equal(t, ranks[i], scenario.Rank)
		assert.False(t, scenario.Selected)
	}
}

func TestGenerate_MatchesSequentialSimulation(t *testing.T) {
	concurrent, err := newScenarioService(8).Generate(domain.ScenarioInput{Loan: concreteLoan})
	require.NoError(t, err)

	sequential, err := newScenarioService(1).Generate(domain.ScenarioInput{Loan: concreteLoan})
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)

	extra := newExtraPaymentService()
	for _, scenario := range concurrent.Scenarios {
		result, err := extra.Simulate(domain.ExtraPaymentInput{
			Loan:     concreteLoan,
			Strategy: domain.MonthlyExtra(scenario.ExtraPayment),
		})
		require.NoError(t, err)
		assert.Equal(t, result.Accelerated, scenario.Outcome)
		assert.Equal(t, result.Savings, scenario.Savings)
	}
}

func TestGenerate_FlagsSelectedScenario(t *testing.T) {
	service := newScenarioService(2)

	monthly, err := service.Generate(domain.ScenarioInput{Loan: concreteLoan, Current: domain.MonthlyExtra(200.5)})
	require.NoError(t, err)
	assert.True(t, monthly.Scenarios[2].Selected)
	assert.False(t, monthly.Scenarios[1].Selected)

	annual, err := service.Generate(domain.ScenarioInput{Loan: concreteLoan, Current: domain.AnnualExtra(1200)})
	require.NoError(t, err)
	assert.True(t, annual.Scenarios[1].Selected)
}

func TestGenerateFor_CustomCandidatesAndTies(t *testing.T) {
	service := newScenarioService(3)

	result, err := service.GenerateFor(domain.ScenarioInput{Loan: concreteLoan}, []float64{100, 1500, 100, 0})

	require.NoError(t, err)
	require.Len(t, result.Scenarios, 4)
	assert.Equal(t, "$1,500 Monthly", result.Scenarios[1].Name)
	assert.Equal(t, 1, result.Scenarios[1].Rank)
	assert.Equal(t, 2, result.Scenarios[0].Rank)
	assert.Equal(t, 3, result.Scenarios[2].Rank)
	assert.Equal(t, 4, result.Scenarios[3].Rank)
	assert.Equal(t, result.Baseline, result.Scenarios[3].Outcome)
}

func TestGenerate_InvalidLoan(t *testing.T) {
	service := newScenarioService(4)

	_, err := service.Generate(domain.ScenarioInput{Loan: domain.LoanTerms{Principal: -1, AnnualRatePercent: 5, TermYears: 30}})

	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestNewScenarioService_ClampsWorkers(t *testing.T) {
	service := newScenarioService(0)
	assert.Equal(t, 1, service.workers)
}
