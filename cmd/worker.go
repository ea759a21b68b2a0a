package cmd

import (
	"time"

	"rwrd/worker"
	"rwrd/worker/flusher"
	"rwrd/worker/snapshot"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "rwrd job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		propertyStore := providePropertyStore(database)
		poolStore := providePoolStore(database)
		eventStore := provideEventStore(database)

		poolService := providePoolService(database, poolStore)

		retention := time.Duration(cfg.Worker.EventRetentionDays) * 24 * time.Hour

		workers := []worker.Worker{
			snapshot.New(cfg.App.Location, cfg.Worker.SnapshotSpec, database, poolStore, eventStore, poolService, propertyStore),
			flusher.New(eventStore, retention),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("workers exit")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
