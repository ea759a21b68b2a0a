package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Pool the single aggregate record of one asset pool. Amounts are u64 base
// units, rates are yearly basis points. Totals are intended to equal the sum
// of live per-account balances; mutations clamp instead of overflowing.
type Pool struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID   string    `sql:"size:36;unique_index:idx_pools_asset" json:"asset_id"`
	Authority string    `sql:"size:64" json:"authority"`
	// 池内存款总额
	TotalDeposited uint64 `sql:"default:0" json:"total_deposited"`
	// 池内借款总额
	TotalBorrowed uint64 `sql:"default:0" json:"total_borrowed"`
	// 基础利率 per year, basis points
	BaseRate uint64 `sql:"default:0" json:"base_rate"`
	// 利用率斜率 basis points
	UtilizationSlope uint64 `sql:"default:0" json:"utilization_slope"`
	// 协议费率 (0-100)
	ProtocolFeePercent uint8     `sql:"default:0" json:"protocol_fee_percent"`
	Version            int64     `sql:"default:0" json:"version"`
	CreatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPoolStore pool store interface
type IPoolStore interface {
	Save(ctx context.Context, tx *db.DB, pool *Pool) error
	Find(ctx context.Context, assetID string) (*Pool, error)
	All(ctx context.Context) ([]*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}

// IPoolService pool service interface. Rates are recomputed from the live
// aggregate on every call, never cached.
type IPoolService interface {
	Init(ctx context.Context, pool *Pool) error
	Utilization(pool *Pool) uint64
	BorrowAPR(pool *Pool) uint64
	DepositAPR(pool *Pool) uint64
}
