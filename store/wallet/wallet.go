package wallet

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.IWalletStore {
	return &walletStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Wallet{})
		if err := tx.AutoMigrate(core.Wallet{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) Find(ctx context.Context, userID, assetID string) (*core.Wallet, error) {
	var wallet core.Wallet
	if err := s.db.View().Where("user_id=? and asset_id=?", userID, assetID).First(&wallet).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Wallet{}, nil
		}

		return nil, err
	}

	return &wallet, nil
}

func (s *walletStore) Create(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	return tx.Update().Create(wallet).Error
}

func (s *walletStore) Update(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	version := wallet.Version
	wallet.Version++

	if err := tx.Update().Model(core.Wallet{}).
		Where("user_id=? and asset_id=? and version=?", wallet.UserID, wallet.AssetID, version).
		Updates(map[string]interface{}{
			"balance": wallet.Balance,
			"version": wallet.Version,
		}).Error; err != nil {
		return err
	}

	return nil
}
