package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places shown for peso amounts.
const DefaultPrecision = 2

// FormatAmount formats an amount with two decimal places, e.g. 1438.92 or 73.00.
// Amounts with sub-cent digits, such as 1.25 x 0.01, keep them.
func FormatAmount(amount decimal.Decimal) string {
	if !amount.Equal(amount.Truncate(DefaultPrecision)) {
		return amount.String()
	}
	return amount.StringFixed(DefaultPrecision)
}
