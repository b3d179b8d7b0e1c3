package service

import (
	"math"

	"github.com/dustin/go-humanize"
)

// formatMoney renders an amount as "$1,234.56" for recommendation text.
func formatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}

// formatWholeMoney drops the cents: "$1,500".
func formatWholeMoney(amount float64) string {
	return "$" + humanize.Comma(int64(math.Round(amount)))
}
