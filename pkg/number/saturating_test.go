package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatAdd(t *testing.T) {
	assert.Equal(t, uint64(3), SatAdd(1, 2))
	assert.Equal(t, uint64(math.MaxUint64), SatAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), SatAdd(math.MaxUint64, math.MaxUint64))
}

func TestSatSub(t *testing.T) {
	assert.Equal(t, uint64(1), SatSub(3, 2))
	assert.Equal(t, uint64(0), SatSub(2, 3))
	assert.Equal(t, uint64(0), SatSub(0, math.MaxUint64))
}

func TestSatMul(t *testing.T) {
	assert.Equal(t, uint64(6), SatMul(2, 3))
	assert.Equal(t, uint64(0), SatMul(0, math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), SatMul(math.MaxUint64, 2))
}

func TestMulDiv(t *testing.T) {
	assert.Equal(t, uint64(5000), MulDiv(500_000, 10_000, 1_000_000))
	assert.Equal(t, uint64(0), MulDiv(1, 1, 0), "zero denominator yields zero")
	assert.Equal(t, uint64(0), MulDiv(1, 2, 3), "truncates down")

	// product needs the full 128 bit intermediate
	assert.Equal(t, uint64(math.MaxUint64), MulDiv(math.MaxUint64, 10_000, 10_000))

	// quotient beyond 64 bits clamps
	assert.Equal(t, uint64(math.MaxUint64), MulDiv(math.MaxUint64, 10_000, 1))
}
