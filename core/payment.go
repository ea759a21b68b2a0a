package core

import "context"

// PaymentSplit the three-way allocation of a payment, in strict priority
// order: accrued interest, then deposited principal, then outside funds.
type PaymentSplit struct {
	FromInterest uint64 `json:"from_interest"`
	FromDeposit  uint64 `json:"from_deposit"`
	FromWallet   uint64 `json:"from_wallet"`
}

// Total sum of the three legs
func (s PaymentSplit) Total() uint64 {
	return s.FromInterest + s.FromDeposit + s.FromWallet
}

// IPaymentService payment service interface
type IPaymentService interface {
	Pay(ctx context.Context, payerID, merchantID, assetID string, amount uint64) (*PaymentSplit, error)
}
