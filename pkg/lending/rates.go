package lending

import (
	"rwrd/core"
	"rwrd/internal/rates"
)

// Utilization current pool utilization in basis points
func Utilization(pool *core.Pool) uint64 {
	return rates.Utilization(pool.TotalDeposited, pool.TotalBorrowed)
}

// BorrowAPR current borrow APR in basis points, from the live aggregate
func BorrowAPR(pool *core.Pool) uint64 {
	return rates.BorrowAPR(pool.BaseRate, pool.UtilizationSlope, Utilization(pool))
}

// DepositAPR current deposit APR in basis points, from the live aggregate
func DepositAPR(pool *core.Pool) uint64 {
	u := Utilization(pool)
	return rates.DepositAPR(rates.BorrowAPR(pool.BaseRate, pool.UtilizationSlope, u), u, pool.ProtocolFeePercent)
}
