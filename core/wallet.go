package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Wallet a value-holding account balance per asset
type Wallet struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string    `sql:"size:64;unique_index:idx_wallets_user_asset" json:"user_id"`
	AssetID   string    `sql:"size:36;unique_index:idx_wallets_user_asset" json:"asset_id"`
	Balance   uint64    `sql:"default:0" json:"balance"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IWalletStore wallet store interface
type IWalletStore interface {
	Find(ctx context.Context, userID, assetID string) (*Wallet, error)
	Create(ctx context.Context, tx *db.DB, wallet *Wallet) error
	Update(ctx context.Context, tx *db.DB, wallet *Wallet) error
}

// TransferRequest one value movement between two accounts. The authorizer
// must own the source account, except that the pool authority may spend from
// the pool vault.
type TransferRequest struct {
	TraceID    string `json:"trace_id"`
	AssetID    string `json:"asset_id"`
	FromID     string `json:"from_id"`
	ToID       string `json:"to_id"`
	Authorizer string `json:"authorizer"`
	Amount     uint64 `json:"amount"`
	Memo       string `json:"memo"`
}

// IWalletService value-transfer primitive. Transfer must complete inside the
// enclosing operation's transaction; a failed leg aborts the whole operation.
type IWalletService interface {
	Transfer(ctx context.Context, tx *db.DB, req *TransferRequest) (*Transfer, error)
}
