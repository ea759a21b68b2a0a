package lending

import (
	"rwrd/core"
	"rwrd/internal/rates"
	"rwrd/pkg/number"
)

// AccrueInterest folds the interest earned since the last calculation into
// the deposit record and returns the delta. Invoked at the start of deposit,
// withdraw and pay, before any balance mutation from that operation.
//
// The deposit APR is sampled once from the pool's current aggregate and
// applied across the whole elapsed interval; accrual is not an integral over
// the interval's true rate history. The per-second rate uses integer floor
// division, so short intervals or small rates truncate to zero. Both are
// deliberate and load bearing.
func AccrueInterest(deposit *core.Deposit, pool *core.Pool, now int64) uint64 {
	if deposit.DepositedAmount == 0 || deposit.LastInterestCalculation >= now {
		return 0
	}

	elapsed := uint64(now - deposit.LastInterestCalculation)
	perSecond := rates.PerSecond(DepositAPR(pool))

	interest := number.SatMul(number.SatMul(deposit.DepositedAmount, perSecond), elapsed)
	deposit.InterestEarned = number.SatAdd(deposit.InterestEarned, interest)
	deposit.LastInterestCalculation = now

	return interest
}
