package merchant

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type merchantStore struct {
	db *db.DB
}

// New new merchant store
func New(db *db.DB) core.IMerchantStore {
	return &merchantStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Merchant{})
		if err := tx.AutoMigrate(core.Merchant{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *merchantStore) Save(ctx context.Context, merchant *core.Merchant) error {
	return s.db.Update().Where("merchant_id=?", merchant.MerchantID).FirstOrCreate(merchant).Error
}

func (s *merchantStore) Find(ctx context.Context, merchantID string) (*core.Merchant, error) {
	var merchant core.Merchant
	if err := s.db.View().Where("merchant_id=?", merchantID).First(&merchant).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Merchant{}, nil
		}

		return nil, err
	}

	return &merchant, nil
}

func (s *merchantStore) All(ctx context.Context) ([]*core.Merchant, error) {
	var merchants []*core.Merchant
	if err := s.db.View().Find(&merchants).Error; err != nil {
		return nil, err
	}

	return merchants, nil
}
