package rates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilization(t *testing.T) {
	assert.Equal(t, uint64(0), Utilization(0, 500_000), "empty pool")
	assert.Equal(t, uint64(5000), Utilization(1_000_000, 500_000))
	assert.Equal(t, uint64(10_000), Utilization(1_000_000, 1_000_000))

	// over-borrowed pools report above 10000; the curve does not cap it
	assert.Equal(t, uint64(20_000), Utilization(1_000_000, 2_000_000))
}

func TestBorrowAPR(t *testing.T) {
	assert.Equal(t, uint64(700), BorrowAPR(200, 1000, 5000))
	assert.Equal(t, uint64(200), BorrowAPR(200, 1000, 0), "idle pool pays base rate")
	assert.Equal(t, uint64(math.MaxUint64), BorrowAPR(math.MaxUint64, 1000, 10_000))
}

func TestDepositAPR(t *testing.T) {
	borrowAPR := BorrowAPR(200, 1000, 5000)
	assert.Equal(t, uint64(315), DepositAPR(borrowAPR, 5000, 10))
	assert.Equal(t, uint64(350), DepositAPR(borrowAPR, 5000, 0))
	assert.Equal(t, uint64(0), DepositAPR(borrowAPR, 0, 10), "no deposits, no yield")
	assert.Equal(t, uint64(0), DepositAPR(borrowAPR, 5000, 100), "full fee eats everything")
}

func TestDepositAPRNeverExceedsBorrowAPR(t *testing.T) {
	for _, u := range []uint64{0, 1, 2500, 5000, 9999, 10_000} {
		borrowAPR := BorrowAPR(200, 1000, u)
		assert.LessOrEqual(t, DepositAPR(borrowAPR, u, 10), borrowAPR, "utilization %d", u)
	}
}

func TestPerSecond(t *testing.T) {
	// realistic rates truncate to zero per second; preserved precision loss
	assert.Equal(t, uint64(0), PerSecond(700))
	assert.Equal(t, uint64(0), PerSecond(10_000))
	assert.Equal(t, uint64(1), PerSecond(BasisPoints*SecondsPerYear))
}
