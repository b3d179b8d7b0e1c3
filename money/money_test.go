package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-engine/domain"
)

func TestCents(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1755.5449999, "1755.54"},
		{1755.545, "1755.55"},
		{-0.005, "-0.01"},
		{0.1 + 0.2, "0.3"},
		{266661.59, "266661.59"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Cents(tt.in).String())
	}
}

func TestNewOutcomeReport(t *testing.T) {
	report := NewOutcomeReport(domain.LoanOutcome{
		Principal:         260000,
		MonthlyPayment:    1755.5421,
		TotalPayments:     300,
		TotalInterest:     266661.5949,
		TotalCost:         526661.5949,
		PayoffMonthOffset: 300,
	})

	assert.Equal(t, "1755.54", report.MonthlyPayment.String())
	assert.Equal(t, "266661.59", report.TotalInterest.String())
	assert.Equal(t, "25", report.YearsToPayoff.String())
	assert.Equal(t, 300, report.TotalPayments)
}

func TestNewRefinanceReport_NeverBreaksEven(t *testing.T) {
	report := NewRefinanceReport(domain.RefinanceComparison{
		BreakEven: domain.BreakEven{
			ClosingCosts:    5000,
			BreakEvenMonths: domain.BreakEvenNever,
			Label:           "Never",
		},
		Verdict: domain.RefinanceBreakEvenTooLong,
	})

	assert.Nil(t, report.BreakEven.Months)

	data, err := Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	breakEven := decoded["breakEven"].(map[string]any)
	assert.Nil(t, breakEven["months"])
	assert.Equal(t, "Never", breakEven["label"])
	assert.Equal(t, "5000", breakEven["closingCosts"])
	assert.Equal(t, "break_even_too_long", decoded["verdict"])
}

func TestNewRefinanceReport_ReachedBreakEven(t *testing.T) {
	report := NewRefinanceReport(domain.RefinanceComparison{
		BreakEven: domain.BreakEven{BreakEvenMonths: 14, Label: "1 years, 2 months", WorthRefinancing: true},
	})

	require.NotNil(t, report.BreakEven.Months)
	assert.Equal(t, 14, *report.BreakEven.Months)
}

func TestNewAmortizationReport_Schedule(t *testing.T) {
	result := domain.AmortizationResult{
		Terms:   domain.LoanTerms{Principal: 1200, AnnualRatePercent: 0, TermYears: 1},
		Outcome: domain.LoanOutcome{Principal: 1200, MonthlyPayment: 100, TotalPayments: 12, TotalCost: 1200, PayoffMonthOffset: 12},
		Schedule: []domain.PaymentScheduleEntry{
			{Index: 1, ScheduledPayment: 100, PrincipalPortion: 100, RemainingBalance: 1100},
			{Index: 2, ScheduledPayment: 100, PrincipalPortion: 100, RemainingBalance: 1000.004},
		},
	}

	report := NewAmortizationReport(result)

	require.Len(t, report.Schedule, 2)
	assert.Equal(t, "1000", report.Schedule[1].RemainingBalance.String())
	assert.Equal(t, "1", report.Outcome.YearsToPayoff.String())

	data, err := Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monthlyPayment":"100"`)
	assert.Contains(t, string(data), `"schedule":[{"index":1`)
}

func TestNewScenariosReport(t *testing.T) {
	report := NewScenariosReport(domain.ScenarioResult{
		Scenarios: []domain.PaymentScenario{
			{Name: "$50 Monthly", ExtraPayment: 50, Rank: 2},
			{Name: "$100 Monthly", ExtraPayment: 100, Rank: 1, Selected: true},
		},
	})

	require.Len(t, report.Scenarios, 2)
	assert.Equal(t, "$100 Monthly", report.Scenarios[1].Name)
	assert.True(t, report.Scenarios[1].Selected)
	assert.Equal(t, "50", report.Scenarios[0].ExtraPayment.String())
}
