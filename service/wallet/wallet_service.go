package wallet

import (
	"context"

	"rwrd/core"
	"rwrd/pkg/id"
	"rwrd/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// Config wallet service config
type Config struct {
	// Authority identity allowed to spend from the vault
	Authority string `json:"authority" valid:"required"`
	// VaultID the pool vault account
	VaultID string `json:"vault_id" valid:"required"`
}

type walletService struct {
	wallets   core.IWalletStore
	transfers core.ITransferStore
	cfg       Config
}

// New new wallet service
func New(wallets core.IWalletStore, transfers core.ITransferStore, cfg Config) core.IWalletService {
	return &walletService{
		wallets:   wallets,
		transfers: transfers,
		cfg:       cfg,
	}
}

// Transfer moves value between two accounts inside the caller's transaction.
// The authorizer must own the source account; the configured authority may
// spend from the vault on the pool's behalf.
func (s *walletService) Transfer(ctx context.Context, tx *db.DB, req *core.TransferRequest) (*core.Transfer, error) {
	log := logger.FromContext(ctx).WithField("service", "wallet")

	if req.Amount == 0 {
		return nil, core.ErrInvalidAmount
	}

	if !s.authorized(req) {
		return nil, core.ErrUnauthorized
	}

	from, err := s.wallets.Find(ctx, req.FromID, req.AssetID)
	if err != nil {
		log.WithError(err).Errorln("wallets.Find from")
		return nil, err
	}

	if from.ID == 0 || from.Balance < req.Amount {
		return nil, core.ErrInsufficientFunds
	}

	from.Balance = number.SatSub(from.Balance, req.Amount)
	if err := s.wallets.Update(ctx, tx, from); err != nil {
		log.WithError(err).Errorln("wallets.Update from")
		return nil, err
	}

	to, err := s.wallets.Find(ctx, req.ToID, req.AssetID)
	if err != nil {
		log.WithError(err).Errorln("wallets.Find to")
		return nil, err
	}

	if to.ID == 0 {
		to = &core.Wallet{
			UserID:  req.ToID,
			AssetID: req.AssetID,
			Balance: req.Amount,
		}
		if err := s.wallets.Create(ctx, tx, to); err != nil {
			log.WithError(err).Errorln("wallets.Create to")
			return nil, err
		}
	} else {
		to.Balance = number.SatAdd(to.Balance, req.Amount)
		if err := s.wallets.Update(ctx, tx, to); err != nil {
			log.WithError(err).Errorln("wallets.Update to")
			return nil, err
		}
	}

	traceID := req.TraceID
	if traceID == "" {
		traceID = id.GenTraceID()
	}

	transfer := &core.Transfer{
		TraceID:    traceID,
		AssetID:    req.AssetID,
		FromID:     req.FromID,
		ToID:       req.ToID,
		Authorizer: req.Authorizer,
		Amount:     req.Amount,
		Memo:       req.Memo,
	}

	if err := s.transfers.Create(ctx, tx, transfer); err != nil {
		log.WithError(err).Errorln("transfers.Create")
		return nil, err
	}

	return transfer, nil
}

func (s *walletService) authorized(req *core.TransferRequest) bool {
	if req.Authorizer == req.FromID {
		return true
	}

	// vault spends are signed by the pool authority, not the payer
	return req.FromID == s.cfg.VaultID && req.Authorizer == s.cfg.Authority
}
