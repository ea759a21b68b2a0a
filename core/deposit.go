package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Deposit one depositor's record per asset. Interest accrues lazily: every
// touch folds the interest earned since LastInterestCalculation into
// InterestEarned before any balance mutation. Records are never deleted,
// even at zero balance.
type Deposit struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID  string `sql:"size:64;unique_index:idx_deposits_user_asset" json:"user_id"`
	AssetID string `sql:"size:36;unique_index:idx_deposits_user_asset" json:"asset_id"`
	// 存款本金
	DepositedAmount uint64 `sql:"default:0" json:"deposited_amount"`
	// 已计息未提取
	InterestEarned uint64 `sql:"default:0" json:"interest_earned"`
	// unix seconds
	LastInterestCalculation int64     `sql:"default:0" json:"last_interest_calculation"`
	DepositDate             int64     `sql:"default:0" json:"deposit_date"`
	Version                 int64     `sql:"default:0" json:"version"`
	CreatedAt               time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IDepositStore deposit store interface
type IDepositStore interface {
	Create(ctx context.Context, tx *db.DB, deposit *Deposit) error
	Find(ctx context.Context, userID, assetID string) (*Deposit, error)
	FindByUser(ctx context.Context, userID string) ([]*Deposit, error)
	Update(ctx context.Context, tx *db.DB, deposit *Deposit) error
}

// IDepositService deposit service interface
type IDepositService interface {
	Deposit(ctx context.Context, userID, assetID string, amount uint64) (*Deposit, error)
	Withdraw(ctx context.Context, userID, assetID string, amount uint64) (*Deposit, error)
}
