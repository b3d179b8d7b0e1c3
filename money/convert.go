package money

import (
	"github.com/shopspring/decimal"

	"mortgage-engine/domain"
)

func NewOutcomeReport(o domain.LoanOutcome) OutcomeReport {
	return OutcomeReport{
		Principal:         Cents(o.Principal),
		MonthlyPayment:    Cents(o.MonthlyPayment),
		TotalPayments:     o.TotalPayments,
		TotalInterest:     Cents(o.TotalInterest),
		TotalCost:         Cents(o.TotalCost),
		PayoffMonthOffset: o.PayoffMonthOffset,
		YearsToPayoff:     decimal.NewFromFloat(o.YearsToPayoff()).Round(1),
	}
}

func NewScheduleReport(schedule []domain.PaymentScheduleEntry) []ScheduleEntryReport {
	entries := make([]ScheduleEntryReport, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, ScheduleEntryReport{
			Index:              e.Index,
			ScheduledPayment:   Cents(e.ScheduledPayment),
			ExtraPayment:       Cents(e.ExtraPayment),
			PrincipalPortion:   Cents(e.PrincipalPortion),
			InterestPortion:    Cents(e.InterestPortion),
			RemainingBalance:   Cents(e.RemainingBalance),
			CumulativeInterest: Cents(e.CumulativeInterest),
		})
	}
	return entries
}

func NewAmortizationReport(r domain.AmortizationResult) AmortizationReport {
	return AmortizationReport{
		Terms: LoanTermsReport{
			Principal:         Cents(r.Terms.Principal),
			AnnualRatePercent: Percent(r.Terms.AnnualRatePercent),
			TermYears:         decimal.NewFromFloat(r.Terms.TermYears),
		},
		Outcome:  NewOutcomeReport(r.Outcome),
		Schedule: NewScheduleReport(r.Schedule),
	}
}

func NewSavingsReport(s domain.SavingsSummary) SavingsReport {
	return SavingsReport{
		InterestSaved:       Cents(s.InterestSaved),
		MonthsSaved:         s.MonthsSaved,
		TotalCostSaved:      Cents(s.TotalCostSaved),
		PercentSaved:        Percent(s.PercentSaved),
		MonthlyPaymentSaved: Cents(s.MonthlyPaymentSaved),
	}
}

func newYearlyBreakdownReport(y domain.YearlyBreakdown) YearlyBreakdownReport {
	return YearlyBreakdownReport{
		Year:             y.Year,
		TotalPaid:        Cents(y.TotalPaid),
		PrincipalPaid:    Cents(y.PrincipalPaid),
		InterestPaid:     Cents(y.InterestPaid),
		ExtraPaid:        Cents(y.ExtraPaid),
		RemainingBalance: Cents(y.RemainingBalance),
	}
}

func NewExtraPaymentReport(r domain.ExtraPaymentResult) ExtraPaymentReport {
	return ExtraPaymentReport{
		Strategy: StrategyReport{
			Kind:        r.Strategy.Kind,
			Amount:      Cents(r.Strategy.Amount),
			TargetMonth: r.Strategy.TargetMonth,
		},
		Baseline:            NewOutcomeReport(r.Baseline),
		Accelerated:         NewOutcomeReport(r.Accelerated),
		Savings:             NewSavingsReport(r.Savings),
		Rating:              r.Rating,
		AverageMonthlyExtra: Cents(r.AverageMonthlyExtra),
		Breakdown: BreakdownReport{
			FirstYear:            newYearlyBreakdownReport(r.Breakdown.FirstYear),
			FifthYear:            newYearlyBreakdownReport(r.Breakdown.FifthYear),
			TotalRegularPayments: Cents(r.Breakdown.Total.TotalRegularPayments),
			TotalExtraPayments:   Cents(r.Breakdown.Total.TotalExtraPayments),
			TotalInterestPaid:    Cents(r.Breakdown.Total.TotalInterestPaid),
			TotalAmountPaid:      Cents(r.Breakdown.Total.TotalAmountPaid),
		},
		Schedule: NewScheduleReport(r.Schedule),
	}
}

func NewRefinanceReport(r domain.RefinanceComparison) RefinanceReport {
	var months *int
	if r.BreakEven.Reached() {
		m := r.BreakEven.BreakEvenMonths
		months = &m
	}
	return RefinanceReport{
		Current:  NewOutcomeReport(r.Current),
		Proposed: NewOutcomeReport(r.Proposed),
		Savings:  NewSavingsReport(r.Savings),
		BreakEven: BreakEvenReport{
			ClosingCosts:     Cents(r.BreakEven.ClosingCosts),
			Months:           months,
			Label:            r.BreakEven.Label,
			WorthRefinancing: r.BreakEven.WorthRefinancing,
		},
		Verdict:        r.Verdict,
		Recommendation: r.Recommendation,
	}
}

func NewRentVsBuyReport(p domain.RentVsBuyProjection) RentVsBuyReport {
	b, r, c := p.Buying, p.Renting, p.Comparison

	yearly := make([]YearlyProjectionReport, 0, len(p.Yearly))
	for _, y := range p.Yearly {
		yearly = append(yearly, YearlyProjectionReport{
			Year:                  y.Year,
			HomeValue:             Cents(y.HomeValue),
			RemainingLoanBalance:  Cents(y.RemainingLoanBalance),
			InvestmentValue:       Cents(y.InvestmentValue),
			BuyingCumulativeCost:  Cents(y.BuyingCumulativeCost),
			RentingCumulativeCost: Cents(y.RentingCumulativeCost),
			BuyingNetWorth:        Cents(y.BuyingNetWorth),
			RentingNetWorth:       Cents(y.RentingNetWorth),
		})
	}

	return RentVsBuyReport{
		Buying: BuyingReport{
			LoanAmount:         Cents(b.LoanAmount),
			MonthlyPayment:     Cents(b.MonthlyPayment),
			TotalMonthlyCost:   Cents(b.TotalMonthlyCost),
			DownPayment:        Cents(b.DownPayment),
			ClosingCosts:       Cents(b.ClosingCosts),
			InitialCashOutlay:  Cents(b.InitialCashOutlay),
			YearlyAppreciation: Cents(b.YearlyAppreciation),
			EquityBuilt5Years:  Cents(b.EquityBuilt5Years),
			EquityBuilt10Years: Cents(b.EquityBuilt10Years),
			TotalCost5Years:    Cents(b.TotalCost5Years),
			TotalCost10Years:   Cents(b.TotalCost10Years),
			NetWorth5Years:     Cents(b.NetWorth5Years),
			NetWorth10Years:    Cents(b.NetWorth10Years),
		},
		Renting: RentingReport{
			MonthlyRent:             Cents(r.MonthlyRent),
			TotalMonthlyCost:        Cents(r.TotalMonthlyCost),
			InitialDeposit:          Cents(r.InitialDeposit),
			YearlyRentIncrease:      Cents(r.YearlyRentIncrease),
			TotalCost5Years:         Cents(r.TotalCost5Years),
			TotalCost10Years:        Cents(r.TotalCost10Years),
			InvestmentGrowth5Years:  Cents(r.InvestmentGrowth5Years),
			InvestmentGrowth10Years: Cents(r.InvestmentGrowth10Years),
			NetWorth5Years:          Cents(r.NetWorth5Years),
			NetWorth10Years:         Cents(r.NetWorth10Years),
		},
		Comparison: ComparisonReport{
			MonthlyDifference:    Cents(c.MonthlyDifference),
			CashOutlayDifference: Cents(c.CashOutlayDifference),
			FiveYearSavings:      Cents(c.FiveYearSavings),
			TenYearSavings:       Cents(c.TenYearSavings),
			FiveYearAdvantage:    c.FiveYearAdvantage,
			TenYearAdvantage:     c.TenYearAdvantage,
		},
		BreakEvenYear: p.BreakEvenYear,
		Recommendation: RecommendationReport{
			Decision:          p.Recommendation.Decision,
			ConfidencePercent: p.Recommendation.ConfidencePercent,
			PrimaryReason:     p.Recommendation.PrimaryReason,
			Considerations:    p.Recommendation.Considerations,
		},
		Yearly: yearly,
	}
}

func NewScenariosReport(r domain.ScenarioResult) ScenariosReport {
	scenarios := make([]ScenarioReport, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		scenarios = append(scenarios, ScenarioReport{
			Name:         s.Name,
			ExtraPayment: Cents(s.ExtraPayment),
			Outcome:      NewOutcomeReport(s.Outcome),
			Savings:      NewSavingsReport(s.Savings),
			Rank:         s.Rank,
			Selected:     s.Selected,
		})
	}
	return ScenariosReport{
		Baseline:  NewOutcomeReport(r.Baseline),
		Scenarios: scenarios,
	}
}
