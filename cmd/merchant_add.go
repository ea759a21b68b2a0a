package cmd

import (
	"rwrd/core"

	"github.com/spf13/cobra"
)

// command for registering a merchant in the local registry. Verification is
// an operator decision here; a remote registry brings its own workflow.
var merchantAddCmd = &cobra.Command{
	Use:   "merchant-add <merchant-id>",
	Short: "register a merchant in the local registry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		merchants := provideMerchantStore(database)

		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		verified, _ := cmd.Flags().GetBool("verified")

		merchant := &core.Merchant{
			MerchantID: args[0],
			Name:       name,
			Category:   category,
			Verified:   verified,
		}

		if err := merchants.Save(ctx, merchant); err != nil {
			cmd.PrintErrln("save merchant error:", err)
			return
		}

		cmd.Println("merchant ready:", merchant.MerchantID)
	},
}

func init() {
	rootCmd.AddCommand(merchantAddCmd)
	merchantAddCmd.Flags().String("name", "", "merchant display name")
	merchantAddCmd.Flags().String("category", "", "merchant category")
	merchantAddCmd.Flags().Bool("verified", false, "mark the merchant verified")
}
