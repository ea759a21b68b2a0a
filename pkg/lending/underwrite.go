package lending

import (
	"rwrd/core"
	"rwrd/pkg/number"
)

// TrustScore 0..100. Binary for now: verified merchants score 30, everyone
// else 0. A real score would weigh revenue and repayment history.
func TrustScore(merchant *core.Merchant) uint8 {
	if merchant != nil && merchant.Verified {
		return 30
	}

	return 0
}

// BorrowLimit sizes the limit from the requested amount itself:
// requested * (trust_score * 10) / 100. Because the limit scales with the
// request, the gate outstanding+requested <= limit passes for almost any
// request once the score reaches 10. Known weakness, kept as is.
func BorrowLimit(trustScore uint8, requested uint64) uint64 {
	return number.MulDiv(requested, uint64(trustScore)*10, 100)
}
