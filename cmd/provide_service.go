package cmd

import (
	"rwrd/core"
	depositservice "rwrd/service/deposit"
	loanservice "rwrd/service/loan"
	merchantservice "rwrd/service/merchant"
	paymentservice "rwrd/service/payment"
	poolservice "rwrd/service/pool"
	walletservice "rwrd/service/wallet"

	"github.com/fox-one/pkg/store/db"
)

func provideWalletService(wallets core.IWalletStore, transfers core.ITransferStore) core.IWalletService {
	return walletservice.New(wallets, transfers, walletservice.Config{
		Authority: cfg.App.Authority,
		VaultID:   cfg.App.VaultID,
	})
}

func providePoolService(db *db.DB, pools core.IPoolStore) core.IPoolService {
	return poolservice.New(db, pools)
}

func provideMerchantService(merchants core.IMerchantStore) core.IMerchantService {
	if cfg.Registry.Endpoint != "" {
		return merchantservice.NewRegistry(merchantservice.RegistryConfig{
			Endpoint: cfg.Registry.Endpoint,
		})
	}

	return merchantservice.New(merchants)
}

func provideDepositService(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	walletz core.IWalletService,
	events core.IEventStore,
) core.IDepositService {
	return depositservice.New(db, system, pools, deposits, walletz, events)
}

func providePaymentService(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	deposits core.IDepositStore,
	walletz core.IWalletService,
	events core.IEventStore,
) core.IPaymentService {
	return paymentservice.New(db, system, pools, deposits, walletz, events)
}

func provideLoanService(
	db *db.DB,
	system *core.System,
	pools core.IPoolStore,
	loans core.ILoanStore,
	merchantz core.IMerchantService,
	walletz core.IWalletService,
	events core.IEventStore,
) core.ILoanService {
	return loanservice.New(db, system, pools, loans, merchantz, walletz, events)
}
