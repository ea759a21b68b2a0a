package core

import (
	"context"
	"time"
)

// Merchant registry record. The registry's own verification workflow lives
// outside this service; underwriting only consumes the verified flag.
type Merchant struct {
	ID         uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	MerchantID string    `sql:"size:64;unique_index:idx_merchants_merchant" json:"merchant_id"`
	Name       string    `sql:"size:64" json:"name"`
	Category   string    `sql:"size:36" json:"category"`
	Verified   bool      `sql:"default:false" json:"verified"`
	Version    int64     `sql:"default:0" json:"version"`
	CreatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IMerchantStore merchant store interface
type IMerchantStore interface {
	Save(ctx context.Context, merchant *Merchant) error
	Find(ctx context.Context, merchantID string) (*Merchant, error)
	All(ctx context.Context) ([]*Merchant, error)
}

// IMerchantService merchant verification interface, invoked once per borrow
type IMerchantService interface {
	Find(ctx context.Context, merchantID string) (*Merchant, error)
	IsVerified(ctx context.Context, merchantID string) (bool, error)
}
