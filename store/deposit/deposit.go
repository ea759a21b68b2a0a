package deposit

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type depositStore struct {
	db *db.DB
}

// New new deposit store
func New(db *db.DB) core.IDepositStore {
	return &depositStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Deposit{})
		if err := tx.AutoMigrate(core.Deposit{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *depositStore) Create(ctx context.Context, tx *db.DB, deposit *core.Deposit) error {
	return tx.Update().Create(deposit).Error
}

func (s *depositStore) Find(ctx context.Context, userID, assetID string) (*core.Deposit, error) {
	var deposit core.Deposit
	if err := s.db.View().Where("user_id=? and asset_id=?", userID, assetID).First(&deposit).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Deposit{}, nil
		}

		return nil, err
	}

	return &deposit, nil
}

func (s *depositStore) FindByUser(ctx context.Context, userID string) ([]*core.Deposit, error) {
	var deposits []*core.Deposit
	if err := s.db.View().Where("user_id=?", userID).Find(&deposits).Error; err != nil {
		return nil, err
	}

	return deposits, nil
}

func (s *depositStore) Update(ctx context.Context, tx *db.DB, deposit *core.Deposit) error {
	version := deposit.Version
	deposit.Version++

	if err := tx.Update().Model(core.Deposit{}).
		Where("user_id=? and asset_id=? and version=?", deposit.UserID, deposit.AssetID, version).
		Updates(map[string]interface{}{
			"deposited_amount":          deposit.DepositedAmount,
			"interest_earned":           deposit.InterestEarned,
			"last_interest_calculation": deposit.LastInterestCalculation,
			"version":                   deposit.Version,
		}).Error; err != nil {
		return err
	}

	return nil
}
