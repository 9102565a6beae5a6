// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"zelo/internal/shared/logger"
)

// ReminderProcessor defines the interface for the daily reminder batch.
type ReminderProcessor interface {
	ProcessReminders(ctx context.Context) error
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterReminderJob registers the visit/validation reminder batch on the
// given cron expression (typically once a day in the morning).
func (m *SchedulerManager) RegisterReminderJob(cronExpr string, processor ReminderProcessor) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.processReminders(ctx, processor)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("reminder", "email"),
		gocron.WithName("reminder-processor"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder job", "cron", cronExpr)
	return nil
}

func (m *SchedulerManager) processReminders(ctx context.Context, processor ReminderProcessor) {
	m.logger.Debugw("processing reminders task started")

	if err := processor.ProcessReminders(ctx); err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("failed to process reminders", "error", err)
		return
	}

	m.logger.Debugw("reminders processed successfully")
}

// Start starts the scheduler and all registered jobs.
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

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
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

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
