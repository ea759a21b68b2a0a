package deposit

import (
	"context"
	"time"

	"rwrd/core"
	"rwrd/pkg/id"
	"rwrd/pkg/lending"
	"rwrd/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"
)

type depositService struct {
	db       *db.DB
	system   *core.System
	pools    core.IPoolStore
	deposits core.IDepositStore
	walletz  core.IWalletService
	events   core.IEventStore
}

// New new deposit service
func New(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	walletz core.IWalletService,
	events core.IEventStore,
) core.IDepositService {
	return &depositService{
		db:       db,
		system:   system,
		pools:    pools,
		deposits: deposits,
		walletz:  walletz,
		events:   events,
	}
}

// Deposit credits amount into the caller's deposit record. Interest accrued
// so far is folded in first, sampled from the pool aggregate before this
// deposit changes it.
func (s *depositService) Deposit(ctx context.Context, userID, assetID string, amount uint64) (*core.Deposit, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service": "deposit",
		"user_id": userID,
		"amount":  amount,
	})
	ctx = logger.WithContext(ctx, log)

	if amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	deposit, err := s.deposits.Find(ctx, userID, assetID)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	now := time.Now().Unix()
	traceID := id.GenTraceID()

	err = s.db.Tx(func(tx *db.DB) error {
		if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
			TraceID:    id.Modify(traceID, "deposit"),
			AssetID:    assetID,
			FromID:     userID,
			ToID:       s.system.VaultID,
			Authorizer: userID,
			Amount:     amount,
			Memo:       core.ActionTypeDeposit.String(),
		}); err != nil {
			return err
		}

		if deposit.ID == 0 {
			deposit = &core.Deposit{
				UserID:                  userID,
				AssetID:                 assetID,
				DepositedAmount:         amount,
				DepositDate:             now,
				LastInterestCalculation: now,
			}
			if err := s.deposits.Create(ctx, tx, deposit); err != nil {
				log.WithError(err).Errorln("deposits.Create")
				return err
			}
		} else {
			lending.AccrueInterest(deposit, pool, now)
			deposit.DepositedAmount = number.SatAdd(deposit.DepositedAmount, amount)
			deposit.LastInterestCalculation = now
			if err := s.deposits.Update(ctx, tx, deposit); err != nil {
				log.WithError(err).Errorln("deposits.Update")
				return err
			}
		}

		pool.TotalDeposited = number.SatAdd(pool.TotalDeposited, amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyTotalDeposited, deposit.DepositedAmount)

		event := &core.Event{
			TraceID:   traceID,
			Action:    core.ActionTypeDeposit,
			UserID:    userID,
			AssetID:   assetID,
			Amount:    amount,
			Timestamp: now,
		}
		event.SetExtraData(extra)

		if err := s.events.Create(ctx, tx, event); err != nil {
			log.WithError(err).Errorln("events.Create")
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deposit, nil
}

// Withdraw debits amount from the caller's deposit record after accruing
// interest up to now. The vault pays the depositor back, authorized by the
// pool itself.
func (s *depositService) Withdraw(ctx context.Context, userID, assetID string, amount uint64) (*core.Deposit, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service": "withdraw",
		"user_id": userID,
		"amount":  amount,
	})
	ctx = logger.WithContext(ctx, log)

	if amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	deposit, err := s.deposits.Find(ctx, userID, assetID)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	if deposit.ID == 0 {
		return nil, core.ErrDepositNotFound
	}

	if deposit.DepositedAmount < amount {
		return nil, core.ErrInsufficientFunds
	}

	now := time.Now().Unix()
	traceID := id.GenTraceID()

	err = s.db.Tx(func(tx *db.DB) error {
		lending.AccrueInterest(deposit, pool, now)

		deposit.DepositedAmount = number.SatSub(deposit.DepositedAmount, amount)
		if err := s.deposits.Update(ctx, tx, deposit); err != nil {
			log.WithError(err).Errorln("deposits.Update")
			return err
		}

		pool.TotalDeposited = number.SatSub(pool.TotalDeposited, amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
			TraceID:    id.Modify(traceID, "withdraw"),
			AssetID:    assetID,
			FromID:     s.system.VaultID,
			ToID:       userID,
			Authorizer: s.system.Authority,
			Amount:     amount,
			Memo:       core.ActionTypeWithdraw.String(),
		}); err != nil {
			return err
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyRemainingDeposit, deposit.DepositedAmount)

		event := &core.Event{
			TraceID:   traceID,
			Action:    core.ActionTypeWithdraw,
			UserID:    userID,
			AssetID:   assetID,
			Amount:    amount,
			Timestamp: now,
		}
		event.SetExtraData(extra)

		if err := s.events.Create(ctx, tx, event); err != nil {
			log.WithError(err).Errorln("events.Create")
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deposit, nil
}
