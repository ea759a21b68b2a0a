package flusher

import (
	"context"
	"time"

	"rwrd/core"

	"github.com/fox-one/pkg/logger"
)

// Flusher trims aged events so the table stays bounded
type Flusher struct {
	events    core.IEventStore
	retention time.Duration
}

// New new flusher worker
func New(events core.IEventStore, retention time.Duration) *Flusher {
	return &Flusher{
		events:    events,
		retention: retention,
	}
}

// Run worker run
func (w *Flusher) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "flusher")
	ctx = logger.WithContext(ctx, log)

	dur := time.Minute

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := w.run(ctx); err != nil {
				dur = time.Minute
			} else {
				dur = time.Hour
			}
		}
	}
}

func (w *Flusher) run(ctx context.Context) error {
	deadline := time.Now().Add(-w.retention)
	if err := w.events.DeleteBefore(ctx, deadline); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("events.DeleteBefore")
		return err
	}

	return nil
}
