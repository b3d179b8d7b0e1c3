// Package money turns engine results into currency-safe reports.
//
// The engine computes in float64; reports carry shopspring decimals rounded
// to cents so that serialized amounts never show binary fractions.
package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents rounds v half away from zero to two decimal places.
func Cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Percent rounds a percentage to two decimal places.
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Marshal serializes a report.
func Marshal(report any) ([]byte, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}
