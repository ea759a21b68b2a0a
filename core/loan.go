package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// LoanStatus loan lifecycle
type LoanStatus int

const (
	// LoanStatusActive loan with outstanding principal
	LoanStatusActive LoanStatus = iota
	// LoanStatusRepaid principal fully repaid
	LoanStatusRepaid
	// LoanStatusWrittenOff terminal, set by an external process only
	LoanStatusWrittenOff
)

func (s LoanStatus) String() string {
	switch s {
	case LoanStatusActive:
		return "active"
	case LoanStatusRepaid:
		return "repaid"
	case LoanStatusWrittenOff:
		return "written_off"
	default:
		return "unknown"
	}
}

// Loan one merchant's working-capital loan per asset. Repayments settle
// accrued interest first, then principal.
type Loan struct {
	ID         uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	MerchantID string `sql:"size:64;unique_index:idx_loans_merchant_asset" json:"merchant_id"`
	AssetID    string `sql:"size:36;unique_index:idx_loans_merchant_asset" json:"asset_id"`
	// 贷款本金
	Principal uint64 `sql:"default:0" json:"principal"`
	// unix seconds
	IssueDate         int64      `sql:"default:0" json:"issue_date"`
	LastRepaymentDate int64      `sql:"default:0" json:"last_repayment_date"`
	Status            LoanStatus `sql:"default:0" json:"status"`
	Version           int64      `sql:"default:0" json:"version"`
	CreatedAt         time.Time  `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time  `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ILoanStore loan store interface
type ILoanStore interface {
	Create(ctx context.Context, tx *db.DB, loan *Loan) error
	Find(ctx context.Context, merchantID, assetID string) (*Loan, error)
	FindByMerchant(ctx context.Context, merchantID string) ([]*Loan, error)
	Update(ctx context.Context, tx *db.DB, loan *Loan) error
}

// ILoanService loan service interface
type ILoanService interface {
	Borrow(ctx context.Context, merchantID, assetID string, amount uint64) (*Loan, error)
	Repay(ctx context.Context, merchantID, assetID string, amount uint64) (*Loan, error)
}
