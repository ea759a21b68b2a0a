package cmd

import (
	"time"

	"rwrd/core"
	"rwrd/store/deposit"
	"rwrd/store/event"
	"rwrd/store/loan"
	"rwrd/store/merchant"
	"rwrd/store/pool"
	"rwrd/store/transfer"
	"rwrd/store/wallet"

	"github.com/fox-one/pkg/store/db"
)

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

func provideDepositStore(db *db.DB) core.IDepositStore {
	return deposit.New(db)
}

func provideLoanStore(db *db.DB) core.ILoanStore {
	return loan.New(db)
}

func provideMerchantStore(db *db.DB) core.IMerchantStore {
	return merchant.Cache(merchant.New(db), 5*time.Minute)
}

func provideWalletStore(db *db.DB) core.IWalletStore {
	return wallet.New(db)
}

func provideTransferStore(db *db.DB) core.ITransferStore {
	return transfer.New(db)
}

func provideEventStore(db *db.DB) core.IEventStore {
	return event.New(db)
}
