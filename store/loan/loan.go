package loan

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type loanStore struct {
	db *db.DB
}

// New new loan store
func New(db *db.DB) core.ILoanStore {
	return &loanStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Loan{})
		if err := tx.AutoMigrate(core.Loan{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *loanStore) Create(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	return tx.Update().Create(loan).Error
}

func (s *loanStore) Find(ctx context.Context, merchantID, assetID string) (*core.Loan, error) {
	var loan core.Loan
	if err := s.db.View().Where("merchant_id=? and asset_id=?", merchantID, assetID).First(&loan).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Loan{}, nil
		}

		return nil, err
	}

	return &loan, nil
}

func (s *loanStore) FindByMerchant(ctx context.Context, merchantID string) ([]*core.Loan, error) {
	var loans []*core.Loan
	if err := s.db.View().Where("merchant_id=?", merchantID).Find(&loans).Error; err != nil {
		return nil, err
	}

	return loans, nil
}

func (s *loanStore) Update(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	version := loan.Version
	loan.Version++

	if err := tx.Update().Model(core.Loan{}).
		Where("merchant_id=? and asset_id=? and version=?", loan.MerchantID, loan.AssetID, version).
		Updates(map[string]interface{}{
			"principal":           loan.Principal,
			"issue_date":          loan.IssueDate,
			"last_repayment_date": loan.LastRepaymentDate,
			"status":              loan.Status,
			"version":             loan.Version,
		}).Error; err != nil {
		return err
	}

	return nil
}
