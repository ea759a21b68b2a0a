package number

import (
	"math"
	"math/bits"
)

// Balances and rates are unsigned 64 bit integers. Arithmetic on them must
// never raise a fault: extreme inputs clamp at 0 or math.MaxUint64 instead of
// wrapping. Every balance mutation in the ledger goes through these helpers.

// SatAdd returns a+b, clamped at math.MaxUint64.
func SatAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}

// SatSub returns a-b, clamped at 0.
func SatSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}

	return a - b
}

// SatMul returns a*b, clamped at math.MaxUint64.
func SatMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// MulDiv returns a*b/den with the product widened to 128 bits, truncated down.
// A zero denominator yields 0, and a quotient beyond 64 bits clamps at
// math.MaxUint64.
func MulDiv(a, b, den uint64) uint64 {
	if den == 0 {
		return 0
	}

	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		return math.MaxUint64
	}

	quo, _ := bits.Div64(hi, lo, den)
	return quo
}

// Min returns the smaller of a and b.
func Min(a, b uint64) uint64 {
	if a < b {
		return a
	}

	return b
}
