package domain

// PaymentScenario is one ranked alternative produced by the scenario
// generator. Rank 1 saves the most interest.
type PaymentScenario struct {
	Name         string
	ExtraPayment float64
	Outcome      LoanOutcome
	Savings      SavingsSummary
	Rank         int
	Selected     bool
}

type ScenarioInput struct {
	Loan LoanTerms
	// Current is the strategy the caller is looking at; scenarios within $1
	// of its average monthly extra are flagged Selected.
	Current ExtraPaymentStrategy
}

type ScenarioResult struct {
	Baseline  LoanOutcome
	Scenarios []PaymentScenario
}
