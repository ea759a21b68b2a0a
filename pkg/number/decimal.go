package number

import (
	"github.com/shopspring/decimal"
)

// Decimal parses v, ignoring errors. Intended for constants and tests.
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Percentage renders a basis-point rate as a percentage, e.g. 700 -> 7.
func Percentage(bps uint64) decimal.Decimal {
	return decimal.NewFromInt(int64(bps)).Shift(-2)
}
