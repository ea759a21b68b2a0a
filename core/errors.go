package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized caller does not own the record being mutated
	ErrUnauthorized ErrorCode = 100001

	// ErrPoolNotFound no pool
	ErrPoolNotFound ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrInsufficientFunds withdraw or transfer exceeds balance
	ErrInsufficientFunds ErrorCode = 100102
	// ErrInsufficientLiquidity borrow exceeds pool deposits
	ErrInsufficientLiquidity ErrorCode = 100103
	// ErrInvalidFeePercentage protocol fee above 100 at initialization
	ErrInvalidFeePercentage ErrorCode = 100104
	// ErrDepositNotFound no deposit record
	ErrDepositNotFound ErrorCode = 100105

	// ErrMerchantNotFound no merchant record
	ErrMerchantNotFound ErrorCode = 100200
	// ErrMerchantNotVerified merchant is not verified
	ErrMerchantNotVerified ErrorCode = 100201
	// ErrExceedsBorrowLimit requested amount over the underwriting limit
	ErrExceedsBorrowLimit ErrorCode = 100202
	// ErrLoanNotFound no loan record
	ErrLoanNotFound ErrorCode = 100203
	// ErrLoanNotActive repay on a non-active loan
	ErrLoanNotActive ErrorCode = 100204
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Msg short human readable message for api responses
func (e ErrorCode) Msg() string {
	switch e {
	case ErrUnauthorized:
		return "unauthorized access"
	case ErrPoolNotFound:
		return "pool not found"
	case ErrInvalidAmount:
		return "invalid amount"
	case ErrInsufficientFunds:
		return "insufficient funds"
	case ErrInsufficientLiquidity:
		return "insufficient liquidity in pool"
	case ErrInvalidFeePercentage:
		return "invalid fee percentage"
	case ErrDepositNotFound:
		return "deposit not found"
	case ErrMerchantNotFound:
		return "merchant not found"
	case ErrMerchantNotVerified:
		return "merchant is not verified"
	case ErrExceedsBorrowLimit:
		return "merchant exceeds borrow limit"
	case ErrLoanNotFound:
		return "loan not found"
	case ErrLoanNotActive:
		return "loan is not active"
	default:
		return "internal error"
	}
}
