package domain

import (
	"encoding/json"
	"time"
)

// CalculationKind names the engine entry point a record came from.
type CalculationKind string

const (
	KindAmortization CalculationKind = "amortization"
	KindExtraPayment CalculationKind = "extra_payment"
	KindRefinance    CalculationKind = "refinance"
	KindRentVsBuy    CalculationKind = "rent_vs_buy"
	KindScenarios    CalculationKind = "scenarios"
)

// CalculationKinds lists every supported kind.
var CalculationKinds = []CalculationKind{
	KindAmortization,
	KindExtraPayment,
	KindRefinance,
	KindRentVsBuy,
	KindScenarios,
}

// CalculationRequest is one engine call. Params holds the JSON form of the
// kind's input type (LoanTerms, ExtraPaymentInput, RefinanceInput,
// RentVsBuyInput or ScenarioInput).
type CalculationRequest struct {
	Kind   CalculationKind `json:"kind"`
	Params json.RawMessage `json:"params"`
}

// CalculationRecord is what gets persisted for a finished calculation.
// Report holds the serialized, currency-safe result.
type CalculationRecord struct {
	ID        string
	Kind      CalculationKind
	Report    []byte
	Cached    bool
	CreatedAt time.Time
}
