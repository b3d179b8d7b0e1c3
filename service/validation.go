package service

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"mortgage-engine/domain"
)

// validator accumulates field errors so callers see every bad field at once.
type validator struct {
	errs *multierror.Error
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = multierror.Append(v.errs, &domain.ParameterError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

// positive accepts amounts in (0, MaxAmount].
func (v *validator) positive(field string, value float64) {
	if !(value > 0) {
		v.fail(field, "must be greater than 0, got %v", value)
		return
	}
	v.bounded(field, value)
}

// nonNegative accepts amounts in [0, MaxAmount].
func (v *validator) nonNegative(field string, value float64) {
	if !(value >= 0) {
		v.fail(field, "must not be negative, got %v", value)
		return
	}
	v.bounded(field, value)
}

func (v *validator) bounded(field string, value float64) {
	if math.IsInf(value, 0) || value > MaxAmount {
		v.fail(field, "exceeds the maximum of %.2f, got %v", MaxAmount, value)
	}
}

func (v *validator) rate(field string, value float64) {
	if !(value >= 0) || value > MaxRatePercent {
		v.fail(field, "must be between 0 and %.0f percent, got %v", MaxRatePercent, value)
	}
}

func (v *validator) percent(field string, value float64) {
	if !(value >= 0) || value > 100 {
		v.fail(field, "must be between 0 and 100 percent, got %v", value)
	}
}

func (v *validator) term(field string, years float64) {
	if !(years >= MinTermYears) || years > MaxTermYears {
		v.fail(field, "must be between %.0f and %.0f years, got %v", MinTermYears, MaxTermYears, years)
	}
}

func (v *validator) err() error {
	return v.errs.ErrorOrNil()
}

func validateLoanTerms(prefix string, terms domain.LoanTerms) error {
	v := &validator{}
	v.loanTerms(prefix, terms)
	return v.err()
}

func (v *validator) loanTerms(prefix string, terms domain.LoanTerms) {
	v.positive(prefix+"principal", terms.Principal)
	v.rate(prefix+"annualRatePercent", terms.AnnualRatePercent)
	v.term(prefix+"termYears", terms.TermYears)
}

func validateStrategy(strategy domain.ExtraPaymentStrategy) error {
	v := &validator{}
	switch strategy.Kind {
	case domain.ExtraPaymentNone, domain.ExtraPaymentMonthly, domain.ExtraPaymentAnnual:
	case domain.ExtraPaymentOneTime:
		if strategy.TargetMonth < 1 {
			v.fail("strategyTargetMonth", "must be at least 1, got %d", strategy.TargetMonth)
		}
	default:
		v.fail("strategyKind", "unknown extra payment strategy %q", strategy.Kind)
	}
	return v.err()
}

func validateRefinance(input domain.RefinanceInput) error {
	v := &validator{}
	v.loanTerms("", domain.LoanTerms{
		Principal:         input.CurrentBalance,
		AnnualRatePercent: input.CurrentRate,
		TermYears:         input.RemainingYears,
	})
	v.rate("newRate", input.NewRate)
	v.term("newTermYears", input.NewTermYears)
	v.nonNegative("closingCosts", input.ClosingCosts)
	v.nonNegative("cashOut", input.CashOut)
	if input.CurrentBalance+input.CashOut > MaxPrincipal {
		v.fail("cashOut", "raises the new loan above the maximum of %.2f", MaxPrincipal)
	}
	return v.err()
}

func validateRentVsBuy(input domain.RentVsBuyInput) error {
	v := &validator{}
	v.positive("homePrice", input.HomePrice)
	v.positive("monthlyRent", input.MonthlyRent)
	v.percent("downPaymentPercent", input.DownPaymentPercent)
	v.rate("interestRate", input.InterestRate)
	v.term("loanTermYears", input.LoanTermYears)
	v.nonNegative("closingCosts", input.ClosingCosts)
	v.rate("propertyTaxRatePercent", input.PropertyTaxRatePercent)
	v.nonNegative("monthlyInsurance", input.MonthlyInsurance)
	v.rate("maintenancePercent", input.MaintenancePercent)
	v.nonNegative("monthlyHOA", input.MonthlyHOA)
	v.rate("homeAppreciationPercent", input.HomeAppreciationPercent)
	v.rate("rentIncreasePercent", input.RentIncreasePercent)
	v.rate("investmentReturnPercent", input.InvestmentReturnPercent)
	v.nonNegative("securityDeposit", input.SecurityDeposit)
	v.nonNegative("monthlyRentersInsurance", input.MonthlyRentersInsurance)
	return v.err()
}
