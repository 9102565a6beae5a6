// Package reminder implements the periodic visit-reminder batch over
// scheduled assistances.
package reminder

import (
	"context"
	"fmt"
	"time"

	"zelo/internal/domain/assistance"
	"zelo/internal/domain/building"
	"zelo/internal/domain/supplier"
	"zelo/internal/shared/logger"
)

// Notifier is the outbound email surface the batch requires.
type Notifier interface {
	SendSameDayReminderEmail(to, buildingName, scheduledAt string) error
	SendCompletionReminderEmail(to, buildingName, schedulingToken string) error
}

type ProcessRemindersResult struct {
	SameDayReminders int      `json:"sameDayReminders"`
	NextDayReminders int      `json:"nextDayReminders"`
	Errors           []string `json:"errors"`
}

// ProcessRemindersUseCase sends two reminder kinds over Agendado tickets:
// a same-day visit reminder for tickets scheduled today, and a day-after
// nudge for tickets scheduled yesterday that were never reported done. One
// ticket failing never aborts the batch; failures are collected into the
// summary.
type ProcessRemindersUseCase struct {
	assistanceRepo assistance.Repository
	supplierRepo   supplier.Repository
	buildingRepo   building.Repository
	notifier       Notifier
	logger         logger.Interface

	now func() time.Time
}

func NewProcessRemindersUseCase(
	assistanceRepo assistance.Repository,
	supplierRepo supplier.Repository,
	buildingRepo building.Repository,
	notifier Notifier,
	logger logger.Interface,
) *ProcessRemindersUseCase {
	return &ProcessRemindersUseCase{
		assistanceRepo: assistanceRepo,
		supplierRepo:   supplierRepo,
		buildingRepo:   buildingRepo,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *ProcessRemindersUseCase) Execute(ctx context.Context) (*ProcessRemindersResult, error) {
	result := &ProcessRemindersResult{Errors: []string{}}

	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	uc.logger.Infow("processing reminders", "window_start", yesterdayStart, "window_end", tomorrowStart)

	today, err := uc.assistanceRepo.ListScheduledBetween(ctx, todayStart, tomorrowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's scheduled assistances: %w", err)
	}

	for _, a := range today {
		if err := uc.sendSameDayReminder(ctx, a); err != nil {
			uc.logger.Errorw("same-day reminder failed", "assistance_id", a.ID(), "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("assistance %d: %v", a.ID(), err))
			continue
		}
		result.SameDayReminders++
	}

	yesterday, err := uc.assistanceRepo.ListScheduledBetween(ctx, yesterdayStart, todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list yesterday's scheduled assistances: %w", err)
	}

	for _, a := range yesterday {
		if err := uc.sendDayAfterReminder(ctx, a); err != nil {
			uc.logger.Errorw("day-after reminder failed", "assistance_id", a.ID(), "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("assistance %d: %v", a.ID(), err))
			continue
		}
		result.NextDayReminders++
	}

	uc.logger.Infow("reminders processed",
		"same_day", result.SameDayReminders,
		"next_day", result.NextDayReminders,
		"errors", len(result.Errors),
	)

	return result, nil
}

// ProcessReminders satisfies the scheduler's processor interface.
func (uc *ProcessRemindersUseCase) ProcessReminders(ctx context.Context) error {
	_, err := uc.Execute(ctx)
	return err
}

func (uc *ProcessRemindersUseCase) sendSameDayReminder(ctx context.Context, a *assistance.Assistance) error {
	email, buildingName, err := uc.recipient(ctx, a)
	if err != nil {
		return err
	}

	scheduledAt := ""
	if a.ScheduledAt() != nil {
		scheduledAt = a.ScheduledAt().Format("02/01/2006 15:04")
	}

	return uc.notifier.SendSameDayReminderEmail(email, buildingName, scheduledAt)
}

func (uc *ProcessRemindersUseCase) sendDayAfterReminder(ctx context.Context, a *assistance.Assistance) error {
	email, buildingName, err := uc.recipient(ctx, a)
	if err != nil {
		return err
	}

	if err := uc.notifier.SendCompletionReminderEmail(email, buildingName, a.SchedulingToken().String()); err != nil {
		return err
	}

	// Counter moves only after a confirmed send.
	a.RecordValidationReminder(uc.now())
	if err := uc.assistanceRepo.Update(ctx, a); err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}

	return nil
}

func (uc *ProcessRemindersUseCase) recipient(ctx context.Context, a *assistance.Assistance) (string, string, error) {
	if a.SupplierID() == nil {
		return "", "", fmt.Errorf("no supplier assigned")
	}

	s, err := uc.supplierRepo.GetByID(ctx, *a.SupplierID())
	if err != nil {
		return "", "", fmt.Errorf("failed to load supplier %d: %w", *a.SupplierID(), err)
	}

	buildingName := ""
	if b, err := uc.buildingRepo.GetByID(ctx, a.BuildingID()); err == nil && b != nil {
		buildingName = b.Name()
	}

	return s.Email(), buildingName, nil
}
