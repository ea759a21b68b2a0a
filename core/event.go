package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
)

// ActionType public operation kind
type ActionType int

const (
	// ActionTypeDeposit deposit into the pool
	ActionTypeDeposit ActionType = iota + 1
	// ActionTypeWithdraw withdraw deposited funds
	ActionTypeWithdraw
	// ActionTypePay pay a merchant through the pool
	ActionTypePay
	// ActionTypeBorrow merchant borrow
	ActionTypeBorrow
	// ActionTypeRepay loan repayment
	ActionTypeRepay
	// ActionTypeRatesSnapshot periodic rate observation
	ActionTypeRatesSnapshot
)

func (a ActionType) String() string {
	switch a {
	case ActionTypeDeposit:
		return "deposit"
	case ActionTypeWithdraw:
		return "withdraw"
	case ActionTypePay:
		return "pay"
	case ActionTypeBorrow:
		return "borrow"
	case ActionTypeRepay:
		return "repay"
	case ActionTypeRatesSnapshot:
		return "rates_snapshot"
	default:
		return "unknown"
	}
}

const (
	// EventKeyTotalDeposited resulting deposit balance
	EventKeyTotalDeposited = "total_deposited"
	// EventKeyRemainingDeposit deposit balance after withdraw
	EventKeyRemainingDeposit = "remaining_deposit"
	// EventKeyFromInterest payment funded by accrued interest
	EventKeyFromInterest = "from_interest"
	// EventKeyFromDeposit payment funded by deposited principal
	EventKeyFromDeposit = "from_deposit"
	// EventKeyFromWallet payment funded by outside funds
	EventKeyFromWallet = "from_wallet"
	// EventKeyMerchant merchant identity
	EventKeyMerchant = "merchant"
	// EventKeyBorrowLimit underwriting limit at borrow time
	EventKeyBorrowLimit = "borrow_limit"
	// EventKeyOutstanding outstanding loan total after borrow
	EventKeyOutstanding = "current_outstanding"
	// EventKeyToInterest repayment applied to interest
	EventKeyToInterest = "to_interest"
	// EventKeyToPrincipal repayment applied to principal
	EventKeyToPrincipal = "to_principal"
	// EventKeyRemainingPrincipal principal after repay
	EventKeyRemainingPrincipal = "remaining_principal"
	// EventKeyBorrowAPR borrow rate in basis points
	EventKeyBorrowAPR = "borrow_apr"
	// EventKeyDepositAPR deposit rate in basis points
	EventKeyDepositAPR = "deposit_apr"
	// EventKeyUtilization utilization in basis points
	EventKeyUtilization = "utilization"
)

// EventExtraData extra data
type EventExtraData map[string]interface{}

// NewEventExtra new event extra instance
func NewEventExtra() EventExtraData {
	return make(EventExtraData)
}

// Put put data
func (e EventExtraData) Put(key string, value interface{}) {
	e[key] = value
}

// Format format as []byte by default
func (e EventExtraData) Format() []byte {
	bs, err := json.Marshal(e)
	if err != nil {
		return []byte("{}")
	}

	return bs
}

// Event one structured record per successful operation, for external
// observability and indexing
type Event struct {
	ID        int64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TraceID   string         `sql:"size:36;unique_index:idx_events_trace" json:"trace_id,omitempty"`
	Action    ActionType     `json:"action,omitempty"`
	UserID    string         `sql:"size:64;index:idx_events_user" json:"user_id,omitempty"`
	AssetID   string         `sql:"size:36;index:idx_events_asset" json:"asset_id,omitempty"`
	Amount    uint64         `sql:"default:0" json:"amount,omitempty"`
	Timestamp int64          `sql:"default:0" json:"timestamp,omitempty"`
	Data      types.JSONText `sql:"type:TEXT" json:"data,omitempty"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP;index:idx_events_created_at" json:"created_at,omitempty"`
}

// SetExtraData set extra payload
func (e *Event) SetExtraData(extra EventExtraData) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	e.Data = data
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, tx *db.DB, event *Event) error
	List(ctx context.Context, fromID int64, limit int) ([]*Event, error)
	DeleteBefore(ctx context.Context, t time.Time) error
}
