package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rwrd/handler/hc"
	"rwrd/handler/rest"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run rwrd api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		system := provideSystem()

		poolStore := providePoolStore(database)
		depositStore := provideDepositStore(database)
		loanStore := provideLoanStore(database)
		merchantStore := provideMerchantStore(database)
		walletStore := provideWalletStore(database)
		transferStore := provideTransferStore(database)
		eventStore := provideEventStore(database)

		walletService := provideWalletService(walletStore, transferStore)
		poolService := providePoolService(database, poolStore)
		merchantService := provideMerchantService(merchantStore)
		depositService := provideDepositService(database, system, poolStore, depositStore, walletService, eventStore)
		paymentService := providePaymentService(database, system, poolStore, depositStore, walletService, eventStore)
		loanService := provideLoanService(database, system, poolStore, loanStore, merchantService, walletService, eventStore)

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version))
		}

		{
			//restful api
			mux.Mount("/api", rest.Handle(
				poolStore,
				depositStore,
				loanStore,
				transferStore,
				eventStore,
				poolService,
				depositService,
				paymentService,
				loanService,
				merchantService,
			))
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
}
