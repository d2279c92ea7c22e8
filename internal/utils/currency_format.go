package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision, padding with zeros.
// Example: 4.1 with precision 4 returns "4.1000"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
