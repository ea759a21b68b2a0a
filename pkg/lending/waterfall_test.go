package lending

import (
	"testing"
	"time"

	"rwrd/core"

	"github.com/stretchr/testify/assert"
)

func TestSplitPaymentWithoutDeposit(t *testing.T) {
	pool := testPool()
	split := SplitPayment(nil, pool, 900, time.Now().Unix())

	assert.Equal(t, core.PaymentSplit{FromWallet: 900}, split)
	assert.Equal(t, uint64(1_000_000), pool.TotalDeposited, "pool untouched")
}

func TestSplitPaymentWaterfall(t *testing.T) {
	now := time.Now().Unix()

	for _, tc := range []struct {
		name     string
		interest uint64
		deposit  uint64
		amount   uint64
		want     core.PaymentSplit
	}{
		{
			name:     "interest covers everything",
			interest: 500, deposit: 1000, amount: 300,
			want: core.PaymentSplit{FromInterest: 300},
		},
		{
			name:     "interest then deposit",
			interest: 100, deposit: 1000, amount: 300,
			want: core.PaymentSplit{FromInterest: 100, FromDeposit: 200},
		},
		{
			name:     "all three sources",
			interest: 100, deposit: 150, amount: 300,
			want: core.PaymentSplit{FromInterest: 100, FromDeposit: 150, FromWallet: 50},
		},
		{
			name:   "zero balances fall through to wallet",
			amount: 300,
			want:   core.PaymentSplit{FromWallet: 300},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pool := testPool()
			deposit := &core.Deposit{
				DepositedAmount:         tc.deposit,
				InterestEarned:          tc.interest,
				LastInterestCalculation: now,
			}

			split := SplitPayment(deposit, pool, tc.amount, now)

			assert.Equal(t, tc.want, split)
			assert.Equal(t, tc.amount, split.Total(), "legs sum to the amount")
			assert.Equal(t, tc.interest-tc.want.FromInterest, deposit.InterestEarned)
			assert.Equal(t, tc.deposit-tc.want.FromDeposit, deposit.DepositedAmount)
			assert.Equal(t, uint64(1_000_000)-tc.want.FromDeposit, pool.TotalDeposited)
		})
	}
}
