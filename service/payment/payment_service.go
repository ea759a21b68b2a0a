package payment

import (
	"context"
	"time"

	"rwrd/core"
	"rwrd/pkg/id"
	"rwrd/pkg/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"
)

type paymentService struct {
	db       *db.DB
	system   *core.System
	pools    core.IPoolStore
	deposits core.IDepositStore
	walletz  core.IWalletService
	events   core.IEventStore
}

// New new payment service
func New(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	walletz core.IWalletService,
	events core.IEventStore,
) core.IPaymentService {
	return &paymentService{
		db:       db,
		system:   system,
		pools:    pools,
		deposits: deposits,
		walletz:  walletz,
		events:   events,
	}
}

// Pay settles a purchase from up to three sources in priority order: accrued
// interest, deposited principal, outside funds. Payers without a deposit
// record pay everything from the wallet. Both transfer legs must land inside
// the transaction or nothing commits.
func (s *paymentService) Pay(ctx context.Context, payerID, merchantID, assetID string, amount uint64) (*core.PaymentSplit, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service":  "payment",
		"payer_id": payerID,
		"merchant": merchantID,
		"amount":   amount,
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

	found, err := s.deposits.Find(ctx, payerID, assetID)
	if err != nil {
		log.WithError(err).Errorln("deposits.Find")
		return nil, err
	}

	// absent records stay absent: the waterfall must see nil, not a
	// zero-value stand-in
	var deposit *core.Deposit
	if found.ID > 0 {
		deposit = found
	}

	now := time.Now().Unix()
	traceID := id.GenTraceID()

	var split core.PaymentSplit

	err = s.db.Tx(func(tx *db.DB) error {
		split = lending.SplitPayment(deposit, pool, amount, now)

		if split.FromWallet > 0 {
			if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
				TraceID:    id.Modify(traceID, "wallet"),
				AssetID:    assetID,
				FromID:     payerID,
				ToID:       merchantID,
				Authorizer: payerID,
				Amount:     split.FromWallet,
				Memo:       core.ActionTypePay.String(),
			}); err != nil {
				return err
			}
		}

		// interest and deposit legs leave the vault as one transfer,
		// authorized by the pool rather than the payer
		if pooled := split.FromInterest + split.FromDeposit; pooled > 0 {
			if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
				TraceID:    id.Modify(traceID, "pool"),
				AssetID:    assetID,
				FromID:     s.system.VaultID,
				ToID:       merchantID,
				Authorizer: s.system.Authority,
				Amount:     pooled,
				Memo:       core.ActionTypePay.String(),
			}); err != nil {
				return err
			}
		}

		if deposit != nil {
			if err := s.deposits.Update(ctx, tx, deposit); err != nil {
				log.WithError(err).Errorln("deposits.Update")
				return err
			}

			if err := s.pools.Update(ctx, tx, pool); err != nil {
				log.WithError(err).Errorln("pools.Update")
				return err
			}
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyMerchant, merchantID)
		extra.Put(core.EventKeyFromInterest, split.FromInterest)
		extra.Put(core.EventKeyFromDeposit, split.FromDeposit)
		extra.Put(core.EventKeyFromWallet, split.FromWallet)

		event := &core.Event{
			TraceID:   traceID,
			Action:    core.ActionTypePay,
			UserID:    payerID,
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

	return &split, nil
}
