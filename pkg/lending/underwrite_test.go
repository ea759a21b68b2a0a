package lending

import (
	"testing"

	"rwrd/core"

	"github.com/stretchr/testify/assert"
)

func TestTrustScore(t *testing.T) {
	assert.Equal(t, uint8(30), TrustScore(&core.Merchant{Verified: true}))
	assert.Equal(t, uint8(0), TrustScore(&core.Merchant{}))
	assert.Equal(t, uint8(0), TrustScore(nil))
}

func TestBorrowLimit(t *testing.T) {
	// limit scales with the request itself: score 30 -> 3x the request
	assert.Equal(t, uint64(30_000), BorrowLimit(30, 10_000))
	assert.Equal(t, uint64(0), BorrowLimit(0, 10_000))

	// the gate outstanding+requested <= limit therefore passes any fresh
	// request from a verified merchant with no outstanding loans
	requested := uint64(1_000_000_000)
	assert.LessOrEqual(t, requested, BorrowLimit(30, requested))
}
