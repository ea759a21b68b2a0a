package pool

import (
	"context"

	"rwrd/core"
	"rwrd/pkg/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type poolService struct {
	db    *db.DB
	pools core.IPoolStore
}

// New new pool service
func New(db *db.DB, pools core.IPoolStore) core.IPoolService {
	return &poolService{
		db:    db,
		pools: pools,
	}
}

// Init creates the pool aggregate if absent. Idempotent; rerunning with the
// same asset leaves the existing aggregate untouched.
func (s *poolService) Init(ctx context.Context, pool *core.Pool) error {
	log := logger.FromContext(ctx).WithField("service", "pool")

	if pool.ProtocolFeePercent > 100 {
		return core.ErrInvalidFeePercentage
	}

	return s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Save(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Save")
			return err
		}

		return nil
	})
}

func (s *poolService) Utilization(pool *core.Pool) uint64 {
	return lending.Utilization(pool)
}

func (s *poolService) BorrowAPR(pool *core.Pool) uint64 {
	return lending.BorrowAPR(pool)
}

func (s *poolService) DepositAPR(pool *core.Pool) uint64 {
	return lending.DepositAPR(pool)
}
