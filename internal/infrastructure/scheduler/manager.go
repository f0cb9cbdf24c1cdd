// Package scheduler runs background jobs with gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"agroplan/internal/shared/logger"
)

// BatchJob processes one batch per call and returns how many items it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) {
	return f(ctx)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterCatalogSyncJob pulls the ERP pesticide feed every interval. Runs
// never overlap; a slow run pushes the next one back.
func (m *SchedulerManager) RegisterCatalogSyncJob(job BatchJob, interval, timeout time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runBatch(ctx, "catalog sync", job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("catalog", "sync"),
		gocron.WithName("catalog-sync"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered catalog sync job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runBatch(ctx context.Context, name string, job BatchJob) {
	m.logger.Debugw("batch job started", "job", name)

	startTime := time.Now()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("batch job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("batch job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("batch job had nothing to do",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs and shuts the scheduler down.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
