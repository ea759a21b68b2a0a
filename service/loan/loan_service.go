package loan

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

type loanService struct {
	db        *db.DB
	system    *core.System
	pools     core.IPoolStore
	loans     core.ILoanStore
	merchantz core.IMerchantService
	walletz   core.IWalletService
	events    core.IEventStore
}

// New new loan service
func New(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	loans core.ILoanStore,
	merchantz core.IMerchantService,
	walletz core.IWalletService,
	events core.IEventStore,
) core.ILoanService {
	return &loanService{
		db:        db,
		system:    system,
		pools:     pools,
		loans:     loans,
		merchantz: merchantz,
		walletz:   walletz,
		events:    events,
	}
}

// Borrow draws working capital against the pool, gated by the merchant's
// trust score. The limit is sized from the requested amount itself and the
// outstanding check uses the fixed underwriting rate; see pkg/lending.
func (s *loanService) Borrow(ctx context.Context, merchantID, assetID string, amount uint64) (*core.Loan, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service":  "borrow",
		"merchant": merchantID,
		"amount":   amount,
	})
	ctx = logger.WithContext(ctx, log)

	if amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	verified, err := s.merchantz.IsVerified(ctx, merchantID)
	if err != nil {
		log.WithError(err).Errorln("merchantz.IsVerified")
		return nil, err
	}

	if !verified {
		return nil, core.ErrMerchantNotVerified
	}

	merchant, err := s.merchantz.Find(ctx, merchantID)
	if err != nil {
		log.WithError(err).Errorln("merchantz.Find")
		return nil, err
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	loan, err := s.loans.Find(ctx, merchantID, assetID)
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return nil, err
	}

	now := time.Now().Unix()

	limit := lending.BorrowLimit(lending.TrustScore(merchant), amount)
	outstanding := number.SatAdd(lending.OutstandingAmount(loan, now), amount)

	if outstanding > limit {
		return nil, core.ErrExceedsBorrowLimit
	}

	// raw liquidity check against total deposits, not netted against
	// amounts already borrowed
	if pool.TotalDeposited < amount {
		return nil, core.ErrInsufficientLiquidity
	}

	traceID := id.GenTraceID()

	err = s.db.Tx(func(tx *db.DB) error {
		loan.Principal = number.SatAdd(loan.Principal, amount)
		loan.IssueDate = now
		loan.LastRepaymentDate = now
		loan.Status = core.LoanStatusActive

		if loan.ID == 0 {
			loan.MerchantID = merchantID
			loan.AssetID = assetID
			if err := s.loans.Create(ctx, tx, loan); err != nil {
				log.WithError(err).Errorln("loans.Create")
				return err
			}
		} else {
			if err := s.loans.Update(ctx, tx, loan); err != nil {
				log.WithError(err).Errorln("loans.Update")
				return err
			}
		}

		pool.TotalBorrowed = number.SatAdd(pool.TotalBorrowed, amount)
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
			TraceID:    id.Modify(traceID, "borrow"),
			AssetID:    assetID,
			FromID:     s.system.VaultID,
			ToID:       merchantID,
			Authorizer: s.system.Authority,
			Amount:     amount,
			Memo:       core.ActionTypeBorrow.String(),
		}); err != nil {
			return err
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyBorrowLimit, limit)
		extra.Put(core.EventKeyOutstanding, outstanding)

		event := &core.Event{
			TraceID:   traceID,
			Action:    core.ActionTypeBorrow,
			UserID:    merchantID,
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

	return loan, nil
}

// Repay settles a loan, interest first then principal. The full nominal
// amount moves merchant to vault before the capped ledger credit is applied;
// an overpayment is kept by the pool. The order matters and must not change.
func (s *loanService) Repay(ctx context.Context, merchantID, assetID string, amount uint64) (*core.Loan, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service":  "repay",
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

	loan, err := s.loans.Find(ctx, merchantID, assetID)
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return nil, err
	}

	if loan.ID == 0 {
		return nil, core.ErrLoanNotFound
	}

	if loan.Status != core.LoanStatusActive {
		return nil, core.ErrLoanNotActive
	}

	now := time.Now().Unix()
	traceID := id.GenTraceID()

	err = s.db.Tx(func(tx *db.DB) error {
		return s.settleRepayment(ctx, tx, pool, loan, amount, now, traceID)
	})
	if err != nil {
		return nil, err
	}

	return loan, nil
}

// settleRepayment executes one repayment inside tx. The full nominal amount
// moves to the vault; ApplyRepayment then decides how much of it the ledger
// actually credits.
func (s *loanService) settleRepayment(ctx context.Context, tx *db.DB, pool *core.Pool, loan *core.Loan, amount uint64, now int64, traceID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.walletz.Transfer(ctx, tx, &core.TransferRequest{
		TraceID:    id.Modify(traceID, "repay"),
		AssetID:    loan.AssetID,
		FromID:     loan.MerchantID,
		ToID:       s.system.VaultID,
		Authorizer: loan.MerchantID,
		Amount:     amount,
		Memo:       core.ActionTypeRepay.String(),
	}); err != nil {
		return err
	}

	split := lending.ApplyRepayment(loan, pool, amount, now)

	if err := s.loans.Update(ctx, tx, loan); err != nil {
		log.WithError(err).Errorln("loans.Update")
		return err
	}

	if err := s.pools.Update(ctx, tx, pool); err != nil {
		log.WithError(err).Errorln("pools.Update")
		return err
	}

	extra := core.NewEventExtra()
	extra.Put(core.EventKeyToInterest, split.Interest)
	extra.Put(core.EventKeyToPrincipal, split.Principal)
	extra.Put(core.EventKeyRemainingPrincipal, loan.Principal)

	event := &core.Event{
		TraceID:   traceID,
		Action:    core.ActionTypeRepay,
		UserID:    loan.MerchantID,
		AssetID:   loan.AssetID,
		Amount:    split.Effective,
		Timestamp: now,
	}
	event.SetExtraData(extra)

	if err := s.events.Create(ctx, tx, event); err != nil {
		log.WithError(err).Errorln("events.Create")
		return err
	}

	return nil
}
