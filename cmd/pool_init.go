package cmd

import (
	"rwrd/core"

	"github.com/spf13/cobra"
)

// command for bootstrapping the pool aggregate from config. Idempotent.
var poolInitCmd = &cobra.Command{
	Use:   "pool-init",
	Short: "create the pool aggregate from config",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		poolService := providePoolService(database, providePoolStore(database))

		pool := &core.Pool{
			AssetID:            cfg.Pool.AssetID,
			Authority:          cfg.App.Authority,
			BaseRate:           cfg.Pool.BaseRate,
			UtilizationSlope:   cfg.Pool.UtilizationSlope,
			ProtocolFeePercent: cfg.Pool.ProtocolFeePercent,
		}

		if err := poolService.Init(ctx, pool); err != nil {
			cmd.PrintErrln("init pool error:", err)
			return
		}

		cmd.Println("pool ready:", pool.AssetID)
	},
}

func init() {
	rootCmd.AddCommand(poolInitCmd)
}
