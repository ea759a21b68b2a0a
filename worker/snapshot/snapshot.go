package snapshot

import (
	"context"
	"fmt"
	"time"

	"rwrd/core"
	"rwrd/pkg/id"
	"rwrd/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	"github.com/robfig/cron/v3"
)

const checkpointKey = "rates_snapshot_checkpoint"

// Worker periodic rate observer. Writes one rates_snapshot event per pool per
// round so indexers can chart utilization without replaying the ledger.
type Worker struct {
	worker.BaseJob
	db       *db.DB
	pools    core.IPoolStore
	events   core.IEventStore
	poolz    core.IPoolService
	property property.Store
}

// New new snapshot worker
func New(
	location, spec string,
	database *db.DB,
	pools core.IPoolStore,
	events core.IEventStore,
	poolz core.IPoolService,
	property property.Store,
) *Worker {
	job := Worker{
		db:       database,
		pools:    pools,
		events:   events,
		poolz:    poolz,
		property: property,
	}

	l, _ := time.LoadLocation(location)
	job.Cron = cron.New(cron.WithLocation(l))
	job.Cron.AddFunc(spec, job.Tick)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "snapshot")
	ctx = logger.WithContext(ctx, log)

	pools, err := w.pools.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("pools.All")
		return err
	}

	now := time.Now().Unix()

	for _, pool := range pools {
		extra := core.NewEventExtra()
		extra.Put(core.EventKeyUtilization, w.poolz.Utilization(pool))
		extra.Put(core.EventKeyBorrowAPR, w.poolz.BorrowAPR(pool))
		extra.Put(core.EventKeyDepositAPR, w.poolz.DepositAPR(pool))

		// trace derived from asset and time, a retried round writes nothing new
		event := &core.Event{
			TraceID:   id.TraceIDFrom(fmt.Sprintf("rates-snapshot-%s-%d", pool.AssetID, now)),
			Action:    core.ActionTypeRatesSnapshot,
			AssetID:   pool.AssetID,
			Timestamp: now,
		}
		event.SetExtraData(extra)

		err := w.db.Tx(func(tx *db.DB) error {
			return w.events.Create(ctx, tx, event)
		})
		if err != nil {
			log.WithError(err).Errorln("events.Create")
			return err
		}
	}

	if err := w.property.Save(ctx, checkpointKey, now); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}
