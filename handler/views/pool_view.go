package views

import (
	"rwrd/core"
	"rwrd/pkg/number"

	"github.com/shopspring/decimal"
)

// Pool pool view with rates recomputed from the live aggregate
type Pool struct {
	core.Pool
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	BorrowAPR       decimal.Decimal `json:"borrow_apr"`
	DepositAPR      decimal.Decimal `json:"deposit_apr"`
}

// Rates standalone rate view, percentages
type Rates struct {
	AssetID         string          `json:"asset_id"`
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	BorrowAPR       decimal.Decimal `json:"borrow_apr"`
	DepositAPR      decimal.Decimal `json:"deposit_apr"`
}

// NewPool build the pool view
func NewPool(pool *core.Pool, poolz core.IPoolService) *Pool {
	return &Pool{
		Pool:            *pool,
		UtilizationRate: number.Percentage(poolz.Utilization(pool)),
		BorrowAPR:       number.Percentage(poolz.BorrowAPR(pool)),
		DepositAPR:      number.Percentage(poolz.DepositAPR(pool)),
	}
}

// NewRates build the rate view
func NewRates(pool *core.Pool, poolz core.IPoolService) *Rates {
	return &Rates{
		AssetID:         pool.AssetID,
		UtilizationRate: number.Percentage(poolz.Utilization(pool)),
		BorrowAPR:       number.Percentage(poolz.BorrowAPR(pool)),
		DepositAPR:      number.Percentage(poolz.DepositAPR(pool)),
	}
}
