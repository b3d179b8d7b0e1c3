package service

import (
	"fmt"
	"math"

	"mortgage-engine/domain"
)

type RentVsBuyService struct {
	amortization *AmortizationService
}

func NewRentVsBuyService(amortization *AmortizationService) *RentVsBuyService {
	return &RentVsBuyService{amortization: amortization}
}

// rentVsBuyModel holds the per-request constants both paths are projected from.
type rentVsBuyModel struct {
	input             domain.RentVsBuyInput
	downPayment       float64
	loanAmount        float64
	rate              float64
	payments          int
	monthlyPayment    float64
	monthlyCarryCost  float64
	initialCashOutlay float64
}

// Project runs the year-by-year buy and rent projections and recommends one.
func (s *RentVsBuyService) Project(
	input domain.RentVsBuyInput,
) (domain.RentVsBuyProjection, error) {

	if err := validateRentVsBuy(input); err != nil {
		return domain.RentVsBuyProjection{}, err
	}

	m, err := s.newModel(input)
	if err != nil {
		return domain.RentVsBuyProjection{}, err
	}

	buying := m.buyingAnalysis()
	renting := m.rentingAnalysis()
	comparison := compareRentVsBuy(buying, renting)

	yearly := make([]domain.YearlyProjection, 0, DisplayProjectionYears)
	for year := 1; year <= DisplayProjectionYears; year++ {
		yearly = append(yearly, m.projectYear(year))
	}

	return domain.RentVsBuyProjection{
		Buying:         buying,
		Renting:        renting,
		Comparison:     comparison,
		BreakEvenYear:  m.breakEvenYear(),
		Recommendation: recommend(comparison, buying.InitialCashOutlay),
		Yearly:         yearly,
	}, nil
}

func (s *RentVsBuyService) newModel(input domain.RentVsBuyInput) (rentVsBuyModel, error) {
	downPayment := input.HomePrice * input.DownPaymentPercent / 100
	m := rentVsBuyModel{
		input:             input,
		downPayment:       downPayment,
		loanAmount:        input.HomePrice - downPayment,
		rate:              monthlyRate(input.InterestRate),
		payments:          paymentCount(input.LoanTermYears),
		initialCashOutlay: downPayment + input.ClosingCosts,
	}

	// A 100% down payment leaves no loan to amortize.
	if m.loanAmount > BalanceEpsilon {
		payment, err := s.amortization.ComputeMonthlyPayment(domain.LoanTerms{
			Principal:         m.loanAmount,
			AnnualRatePercent: input.InterestRate,
			TermYears:         input.LoanTermYears,
		})
		if err != nil {
			return rentVsBuyModel{}, fmt.Errorf("mortgage: %w", err)
		}
		m.monthlyPayment = payment
	} else {
		m.loanAmount = 0
	}

	monthlyTax := input.HomePrice * input.PropertyTaxRatePercent / 100 / MonthsPerYear
	monthlyMaintenance := input.HomePrice * input.MaintenancePercent / 100 / MonthsPerYear
	m.monthlyCarryCost = monthlyTax + input.MonthlyInsurance + monthlyMaintenance + input.MonthlyHOA
	return m, nil
}

func (m rentVsBuyModel) totalMonthlyCost() float64 {
	return m.monthlyPayment + m.monthlyCarryCost
}

func (m rentVsBuyModel) homeValue(year int) float64 {
	return m.input.HomePrice * math.Pow(1+m.input.HomeAppreciationPercent/100, float64(year))
}

func (m rentVsBuyModel) paymentsMade(year int) int {
	return min(year*MonthsPerYear, m.payments)
}

func (m rentVsBuyModel) remainingLoanBalance(year int) float64 {
	if m.loanAmount == 0 {
		return 0
	}
	return remainingBalance(m.monthlyPayment, m.rate, m.payments-m.paymentsMade(year))
}

// buyingCost counts mortgage payments only while the loan is running.
func (m rentVsBuyModel) buyingCost(year int) float64 {
	return m.initialCashOutlay +
		m.monthlyPayment*float64(m.paymentsMade(year)) +
		m.monthlyCarryCost*float64(year*MonthsPerYear)
}

func (m rentVsBuyModel) buyingNetWorth(year int) float64 {
	return m.homeValue(year) - m.remainingLoanBalance(year) - m.buyingCost(year)
}

func (m rentVsBuyModel) investmentValue(year int) float64 {
	return m.initialCashOutlay * math.Pow(1+m.input.InvestmentReturnPercent/100, float64(year))
}

// rentingCost grows rent geometrically once per year.
func (m rentVsBuyModel) rentingCost(year int) float64 {
	total := m.input.SecurityDeposit
	rent := m.input.MonthlyRent
	for y := 0; y < year && y < MaxProjectionYear; y++ {
		total += (rent + m.input.MonthlyRentersInsurance) * MonthsPerYear
		rent *= 1 + m.input.RentIncreasePercent/100
	}
	return total
}

func (m rentVsBuyModel) rentingNetWorth(year int) float64 {
	return m.investmentValue(year) - m.rentingCost(year)
}

func (m rentVsBuyModel) projectYear(year int) domain.YearlyProjection {
	return domain.YearlyProjection{
		Year:                  year,
		HomeValue:             m.homeValue(year),
		RemainingLoanBalance:  m.remainingLoanBalance(year),
		InvestmentValue:       m.investmentValue(year),
		BuyingCumulativeCost:  m.buyingCost(year),
		RentingCumulativeCost: m.rentingCost(year),
		BuyingNetWorth:        m.buyingNetWorth(year),
		RentingNetWorth:       m.rentingNetWorth(year),
	}
}

// breakEvenYear is the first year buying pulls ahead, capped at
// MaxProjectionYear when it never does.
func (m rentVsBuyModel) breakEvenYear() int {
	for year := 1; year <= MaxProjectionYear; year++ {
		if m.buyingNetWorth(year) > m.rentingNetWorth(year) {
			return year
		}
	}
	return MaxProjectionYear
}

func (m rentVsBuyModel) buyingAnalysis() domain.BuyingAnalysis {
	equity := func(year int) float64 {
		return m.homeValue(year) - m.remainingLoanBalance(year)
	}
	return domain.BuyingAnalysis{
		LoanAmount:         m.loanAmount,
		MonthlyPayment:     m.monthlyPayment,
		TotalMonthlyCost:   m.totalMonthlyCost(),
		DownPayment:        m.downPayment,
		ClosingCosts:       m.input.ClosingCosts,
		InitialCashOutlay:  m.initialCashOutlay,
		YearlyAppreciation: m.input.HomePrice * m.input.HomeAppreciationPercent / 100,
		EquityBuilt5Years:  equity(ShortHorizonYears),
		EquityBuilt10Years: equity(LongHorizonYears),
		TotalCost5Years:    m.buyingCost(ShortHorizonYears),
		TotalCost10Years:   m.buyingCost(LongHorizonYears),
		NetWorth5Years:     m.buyingNetWorth(ShortHorizonYears),
		NetWorth10Years:    m.buyingNetWorth(LongHorizonYears),
	}
}

func (m rentVsBuyModel) rentingAnalysis() domain.RentingAnalysis {
	return domain.RentingAnalysis{
		MonthlyRent:             m.input.MonthlyRent,
		TotalMonthlyCost:        m.input.MonthlyRent + m.input.MonthlyRentersInsurance,
		InitialDeposit:          m.input.SecurityDeposit,
		YearlyRentIncrease:      m.input.RentIncreasePercent,
		TotalCost5Years:         m.rentingCost(ShortHorizonYears),
		TotalCost10Years:        m.rentingCost(LongHorizonYears),
		InvestmentGrowth5Years:  m.investmentValue(ShortHorizonYears),
		InvestmentGrowth10Years: m.investmentValue(LongHorizonYears),
		NetWorth5Years:          m.rentingNetWorth(ShortHorizonYears),
		NetWorth10Years:         m.rentingNetWorth(LongHorizonYears),
	}
}

func compareRentVsBuy(
	buying domain.BuyingAnalysis,
	renting domain.RentingAnalysis,
) domain.RentVsBuyComparison {
	fiveYear := buying.NetWorth5Years - renting.NetWorth5Years
	tenYear := buying.NetWorth10Years - renting.NetWorth10Years
	return domain.RentVsBuyComparison{
		MonthlyDifference:    buying.TotalMonthlyCost - renting.TotalMonthlyCost,
		CashOutlayDifference: buying.InitialCashOutlay - renting.InitialDeposit,
		FiveYearSavings:      fiveYear,
		TenYearSavings:       tenYear,
		FiveYearAdvantage:    advantage(fiveYear),
		TenYearAdvantage:     advantage(tenYear),
	}
}

// advantage ignores net-worth differences inside the dead-band.
func advantage(netWorthDifference float64) domain.Advantage {
	switch {
	case netWorthDifference > AdvantageDeadBand:
		return domain.AdvantageBuy
	case netWorthDifference < -AdvantageDeadBand:
		return domain.AdvantageRent
	default:
		return domain.AdvantageNeutral
	}
}

func recommend(c domain.RentVsBuyComparison, initialCashOutlay float64) domain.Recommendation {
	var r domain.Recommendation

	switch {
	case c.FiveYearAdvantage == domain.AdvantageBuy && c.TenYearAdvantage == domain.AdvantageBuy:
		r.Decision = domain.DecisionBuy
		r.ConfidencePercent = ConfidenceStrong
		r.PrimaryReason = fmt.Sprintf("Buying provides significant financial advantages in both 5 and 10-year scenarios, with potential savings of %s over 10 years.",
			formatMoney(math.Abs(c.TenYearSavings)))
	case c.FiveYearAdvantage == domain.AdvantageRent && c.TenYearAdvantage == domain.AdvantageRent:
		r.Decision = domain.DecisionRent
		r.ConfidencePercent = ConfidenceStrong
		r.PrimaryReason = fmt.Sprintf("Renting is more cost-effective in both short and long-term scenarios, potentially saving %s over 10 years.",
			formatMoney(math.Abs(c.TenYearSavings)))
	case c.TenYearAdvantage == domain.AdvantageBuy && math.Abs(c.TenYearSavings) > LongTermBuyThreshold:
		r.Decision = domain.DecisionBuy
		r.ConfidencePercent = ConfidenceLongTerm
		r.PrimaryReason = "While renting may be cheaper initially, buying becomes significantly more advantageous over the long term."
	case c.FiveYearAdvantage == domain.AdvantageRent && c.MonthlyDifference > MonthlyRentThreshold:
		r.Decision = domain.DecisionRent
		r.ConfidencePercent = ConfidenceMonthly
		r.PrimaryReason = fmt.Sprintf("Renting provides immediate monthly savings of %s and short-term financial flexibility.",
			formatMoney(math.Abs(c.MonthlyDifference)))
	default:
		r.Decision = domain.DecisionNeutral
		r.ConfidencePercent = ConfidenceNeutral
		r.PrimaryReason = "Both options have similar financial outcomes. Your personal circumstances and preferences should guide the decision."
	}

	r.Considerations = []string{}
	if c.MonthlyDifference > MonthlyCostNotice {
		r.Considerations = append(r.Considerations,
			fmt.Sprintf("Buying requires %s more per month", formatMoney(math.Abs(c.MonthlyDifference))))
	}
	if initialCashOutlay > UpfrontOutlayNotice {
		r.Considerations = append(r.Considerations,
			fmt.Sprintf("Significant upfront investment required: %s", formatMoney(initialCashOutlay)))
	}
	if c.TenYearAdvantage == domain.AdvantageBuy {
		r.Considerations = append(r.Considerations, "Long-term wealth building potential through home equity")
	}
	if c.FiveYearAdvantage == domain.AdvantageRent {
		r.Considerations = append(r.Considerations, "Greater flexibility and lower maintenance responsibilities with renting")
	}

	return r
}
