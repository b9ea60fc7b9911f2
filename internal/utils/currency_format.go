package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for balances.
const DisplayPrecision int32 = 2

// FormatAmount formats an amount with the fixed display precision
// Example: 60 returns "60.00", 12.345 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatRaw formats an amount without padding or rounding
// Example: 100 returns "100", 60.5 returns "60.5"
func FormatRaw(amount decimal.Decimal) string {
	return amount.String()
}
