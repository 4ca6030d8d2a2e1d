// Package scheduler provides unified scheduled-job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/haven-rp/warden/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Manager owns the process's periodic jobs: the checkout expiry sweep and the
// nightly database backup.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterCheckoutSweep runs the expiry sweep every five minutes, starting
// immediately.
func (m *Manager) RegisterCheckoutSweep(sweep BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			m.runCheckoutSweep(ctx, sweep)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("checkout-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered checkout sweep", "interval", "5m")
	return nil
}

func (m *Manager) runCheckoutSweep(ctx context.Context, sweep BatchJob) {
	m.logger.Debugw("checkout sweep started")

	startTime := time.Now()
	expiredCount, err := sweep.Execute(ctx)
	if err != nil {
		m.logger.Errorw("checkout sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		m.logger.Infow("expired checkouts removed",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no expired checkouts")
	}
}

// RegisterBackup runs the database backup at midnight every day.
func (m *Manager) RegisterBackup(backup func(ctx context.Context) error) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 0 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.runBackup(ctx, backup)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("database-backup"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered database backup", "at", "00:00")
	return nil
}

func (m *Manager) runBackup(ctx context.Context, backup func(ctx context.Context) error) {
	startTime := time.Now()
	if err := backup(ctx); err != nil {
		m.logger.Errorw("database backup failed", "error", err)
		return
	}
	m.logger.Infow("database backup completed", "duration", time.Since(startTime))
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}
	m.logger.Infow("scheduler stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
