package pool

import (
	"context"

	"rwrd/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.IPoolStore {
	return &poolStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Pool{})
		if err := tx.AutoMigrate(core.Pool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *poolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	return tx.Update().Where("asset_id=?", pool.AssetID).FirstOrCreate(pool).Error
}

func (s *poolStore) Find(ctx context.Context, assetID string) (*core.Pool, error) {
	var pool core.Pool
	if err := s.db.View().Where("asset_id=?", assetID).First(&pool).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Pool{}, nil
		}

		return nil, err
	}

	return &pool, nil
}

func (s *poolStore) All(ctx context.Context) ([]*core.Pool, error) {
	var pools []*core.Pool
	if err := s.db.View().Find(&pools).Error; err != nil {
		return nil, err
	}

	return pools, nil
}

func (s *poolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	version := pool.Version
	pool.Version++

	if err := tx.Update().Model(core.Pool{}).
		Where("asset_id=? and version=?", pool.AssetID, version).
		Updates(map[string]interface{}{
			"total_deposited": pool.TotalDeposited,
			"total_borrowed":  pool.TotalBorrowed,
			"version":         pool.Version,
		}).Error; err != nil {
		return err
	}

	return nil
}
