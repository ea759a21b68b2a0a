package cmd

import (
	"rwrd/core"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideSystem() *core.System {
	return &core.System{
		Authority: cfg.App.Authority,
		VaultID:   cfg.App.VaultID,
		Location:  cfg.App.Location,
		Version:   rootCmd.Version,
	}
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}
