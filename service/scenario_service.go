package service

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"mortgage-engine/domain"
)

type ScenarioService struct {
	extraPayments *ExtraPaymentService
	amortization  *AmortizationService
	workers       int
}

// NewScenarioService evaluates up to workers scenarios at a time.
func NewScenarioService(
	amortization *AmortizationService,
	extraPayments *ExtraPaymentService,
	workers int,
) *ScenarioService {
	if workers < 1 {
		workers = 1
	}
	return &ScenarioService{
		extraPayments: extraPayments,
		amortization:  amortization,
		workers:       workers,
	}
}

// Generate evaluates every candidate monthly extra against the plain loan.
// Scenarios come back in candidate order; Rank orders them by interest saved.
func (s *ScenarioService) Generate(
	input domain.ScenarioInput,
) (domain.ScenarioResult, error) {
	return s.GenerateFor(input, ScenarioExtraAmounts)
}

func (s *ScenarioService) GenerateFor(
	input domain.ScenarioInput,
	amounts []float64,
) (domain.ScenarioResult, error) {

	current, err := normalizeStrategy(input.Current)
	if err != nil {
		return domain.ScenarioResult{}, err
	}

	baseline, err := s.amortization.Outcome(input.Loan)
	if err != nil {
		return domain.ScenarioResult{}, err
	}

	currentAverage := 0.0
	if current.Kind != domain.ExtraPaymentNone {
		_, accelerated, err := s.extraPayments.accelerate(input.Loan, current)
		if err != nil {
			return domain.ScenarioResult{}, err
		}
		currentAverage = averageMonthlyExtra(current, accelerated)
	}

	scenarios := make([]domain.PaymentScenario, len(amounts))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, amount := range amounts {
		g.Go(func() error {
			_, outcome, err := s.extraPayments.Accelerate(input.Loan, domain.MonthlyExtra(amount))
			if err != nil {
				return fmt.Errorf("scenario %s: %w", scenarioName(amount), err)
			}
			scenarios[i] = domain.PaymentScenario{
				Name:         scenarioName(amount),
				ExtraPayment: amount,
				Outcome:      outcome,
				Savings:      s.extraPayments.CompareToBaseline(baseline, outcome),
				Selected:     math.Abs(amount-currentAverage) < ScenarioMatchWindow,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ScenarioResult{}, err
	}

	rankScenarios(scenarios)

	return domain.ScenarioResult{
		Baseline:  baseline,
		Scenarios: scenarios,
	}, nil
}

func scenarioName(amount float64) string {
	return fmt.Sprintf("%s Monthly", formatWholeMoney(amount))
}

// rankScenarios numbers scenarios by interest saved, earlier candidates
// winning ties.
func rankScenarios(scenarios []domain.PaymentScenario) {
	order := make([]int, len(scenarios))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scenarios[order[a]].Savings.InterestSaved > scenarios[order[b]].Savings.InterestSaved
	})
	for rank, i := range order {
		scenarios[i].Rank = rank + 1
	}
}
