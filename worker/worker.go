package worker

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Worker long running worker
type Worker interface {
	Run(ctx context.Context) error
}

type OnWork func() error

// BaseJob 定时任务的公共部分
type BaseJob struct {
	Cron      *cron.Cron
	IsRunning bool
	OnWork    OnWork
}

// Tick runs one round; a round still in flight is skipped, not queued
func (job *BaseJob) Tick() {
	if job.IsRunning {
		return
	}

	job.IsRunning = true
	job.OnWork()
	job.IsRunning = false
}

// Run starts the cron and blocks until ctx is done
func (job *BaseJob) Run(ctx context.Context) error {
	job.Cron.Start()
	<-ctx.Done()
	<-job.Cron.Stop().Done()
	return ctx.Err()
}
