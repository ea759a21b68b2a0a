package lending

import (
	"rwrd/core"
	"rwrd/internal/rates"
	"rwrd/pkg/number"
)

const (
	// underwriting uses a fixed 5%/year simple-interest approximation over
	// whole elapsed days; actual accrual uses the dynamic borrow APR. The two
	// rate sources disagree on purpose and must not be unified silently.
	underwritingRatePercent uint64 = 5
	secondsPerDay           int64  = 86_400
)

// LoanInterest interest accrued on a loan since the last repayment, using the
// dynamic borrow APR sampled from the pool's current aggregate.
func LoanInterest(loan *core.Loan, pool *core.Pool, now int64) uint64 {
	if loan.Principal == 0 || loan.LastRepaymentDate >= now {
		return 0
	}

	elapsed := uint64(now - loan.LastRepaymentDate)
	perSecond := rates.PerSecond(BorrowAPR(pool))

	return number.SatMul(number.SatMul(loan.Principal, perSecond), elapsed)
}

// OutstandingAmount principal plus the fixed-rate interest approximation,
// used only for limit checking in underwriting. Zero for non-active loans.
func OutstandingAmount(loan *core.Loan, now int64) uint64 {
	if loan == nil || loan.Status != core.LoanStatusActive {
		return 0
	}

	daysElapsed := uint64(0)
	if d := (now - loan.LastRepaymentDate) / secondsPerDay; d > 0 {
		daysElapsed = uint64(d)
	}

	interest := number.MulDiv(loan.Principal, underwritingRatePercent*daysElapsed, 365*100)
	return number.SatAdd(loan.Principal, interest)
}

// RepaymentSplit the interest-then-principal allocation of a repayment
type RepaymentSplit struct {
	Effective uint64 `json:"effective"`
	Interest  uint64 `json:"interest"`
	Principal uint64 `json:"principal"`
}

// ApplyRepayment credits paid against the loan: interest first, then
// principal, with the ledger credit capped at principal plus accrued
// interest. The caller transfers the full nominal paid amount regardless of
// the cap, before calling this.
func ApplyRepayment(loan *core.Loan, pool *core.Pool, paid uint64, now int64) RepaymentSplit {
	accrued := LoanInterest(loan, pool, now)

	effective := number.Min(paid, number.SatAdd(loan.Principal, accrued))
	interestPortion := number.Min(effective, accrued)
	principalPortion := number.SatSub(effective, interestPortion)

	loan.Principal = number.SatSub(loan.Principal, principalPortion)
	pool.TotalBorrowed = number.SatSub(pool.TotalBorrowed, principalPortion)
	loan.LastRepaymentDate = now

	if loan.Principal == 0 {
		loan.Status = core.LoanStatusRepaid
	}

	return RepaymentSplit{
		Effective: effective,
		Interest:  interestPortion,
		Principal: principalPortion,
	}
}
