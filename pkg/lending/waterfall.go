package lending

import (
	"rwrd/core"
	"rwrd/pkg/number"
)

// SplitPayment allocates a payment across the payer's accrued interest,
// deposited principal and outside funds, in that order. The deposit may be
// nil for payers without a record; then the whole amount comes from the
// wallet. Mutates deposit balances and pool.TotalDeposited in place; the
// caller persists them inside the operation's transaction.
func SplitPayment(deposit *core.Deposit, pool *core.Pool, amount uint64, now int64) core.PaymentSplit {
	var split core.PaymentSplit

	if deposit != nil {
		AccrueInterest(deposit, pool, now)

		if deposit.InterestEarned > 0 {
			split.FromInterest = number.Min(deposit.InterestEarned, amount)
			deposit.InterestEarned = number.SatSub(deposit.InterestEarned, split.FromInterest)
		}

		remaining := number.SatSub(amount, split.FromInterest)
		if remaining > 0 && deposit.DepositedAmount > 0 {
			split.FromDeposit = number.Min(deposit.DepositedAmount, remaining)
			deposit.DepositedAmount = number.SatSub(deposit.DepositedAmount, split.FromDeposit)
			pool.TotalDeposited = number.SatSub(pool.TotalDeposited, split.FromDeposit)
		}
	}

	split.FromWallet = number.SatSub(amount, split.FromInterest+split.FromDeposit)

	return split
}
