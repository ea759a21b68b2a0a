package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Transfer executed transfer log
type Transfer struct {
	ID         uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TraceID    string    `sql:"size:36;unique_index:idx_transfers_trace" json:"trace_id,omitempty"`
	AssetID    string    `sql:"size:36" json:"asset_id,omitempty"`
	FromID     string    `sql:"size:64;index:idx_transfers_from" json:"from_id,omitempty"`
	ToID       string    `sql:"size:64;index:idx_transfers_to" json:"to_id,omitempty"`
	Authorizer string    `sql:"size:64" json:"authorizer,omitempty"`
	Amount     uint64    `sql:"default:0" json:"amount,omitempty"`
	Memo       string    `sql:"size:140" json:"memo,omitempty"`
	CreatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

// ITransferStore transfer store interface
type ITransferStore interface {
	Create(ctx context.Context, tx *db.DB, transfer *Transfer) error
	Top(ctx context.Context, limit int) ([]*Transfer, error)
}
