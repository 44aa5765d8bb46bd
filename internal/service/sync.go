package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/syncer"
)

// Derived sync status values reported by Status
const (
	StatusNotConfigured = "not_configured"
	StatusDisabled      = "disabled"
	StatusInProgress    = "in_progress"
	StatusError         = "error"
	StatusPartial       = "partial"
	StatusActive        = "active"
	StatusPending       = "pending"
)

// TriggerStatus is the acknowledgement returned for a manual trigger
const TriggerStatus = "triggered"

// SyncStatus is the human-facing view of the sync job
type SyncStatus struct {
	Config             *models.SyncConfig
	LastSyncAt         *time.Time
	NextSyncTime       *time.Time
	Status             string
	Message            string
	Frequency          string
	SchedulerState     string
	TotalRecordsSynced int64
	IsActive           bool
}

// SyncActivity is the in-process view of sync work, read without storage
type SyncActivity struct {
	SchedulerState string
	Running        bool
}

// TriggerAck acknowledges a background sync
type TriggerAck struct {
	TriggeredAt time.Time
	Status      string
	Message     string
}

// SyncService handles sync configuration, status and manual runs
type SyncService struct {
	configs   repository.SyncConfigRepository
	runner    SyncRunner
	scheduler Scheduler
	logger    *slog.Logger
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewSyncService creates a new SyncService. scheduler may be nil when no
// background schedule runs, as in the CLI.
func NewSyncService(
	configs repository.SyncConfigRepository,
	runner SyncRunner,
	scheduler Scheduler,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		configs:   configs,
		runner:    runner,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

// GetConfig returns the job config, creating the default on first use
func (s *SyncService) GetConfig(ctx context.Context) (*models.SyncConfig, error) {
	cfg, err := s.configs.GetOrCreate(ctx, s.runner.JobName())
	if err != nil {
		return nil, internalError("failed to load sync config", err)
	}
	return cfg, nil
}

// UpdateConfig validates and stores new settings, then reschedules
func (s *SyncService) UpdateConfig(ctx context.Context, isActive bool, frequencyMinutes int) (*models.SyncConfig, error) {
	if err := ValidateFrequency(frequencyMinutes); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidFrequency,
			Message: err.Error(),
		}
	}

	cfg, err := s.configs.UpdateSettings(ctx, s.runner.JobName(), isActive, frequencyMinutes)
	if err != nil {
		return nil, internalError("failed to update sync config", err)
	}

	if s.scheduler != nil {
		s.scheduler.Apply(cfg)
	}

	s.logger.Info("sync config updated",
		"is_active", cfg.IsActive,
		"frequency_minutes", cfg.SyncFrequencyMinutes,
	)
	return cfg, nil
}

// Status derives the human-facing status of the job
func (s *SyncService) Status(ctx context.Context) (*SyncStatus, error) {
	cfg, err := s.configs.Get(ctx, s.runner.JobName())
	if errors.Is(err, models.ErrNotFound) {
		return &SyncStatus{
			Status:  StatusNotConfigured,
			Message: "Sync has not been configured yet",
		}, nil
	}
	if err != nil {
		return nil, internalError("failed to load sync config", err)
	}

	status, message := deriveStatus(cfg, s.runner.Running())
	report := &SyncStatus{
		Config:             cfg,
		LastSyncAt:         cfg.LastSyncAt,
		NextSyncTime:       cfg.NextSyncAt(),
		Status:             status,
		Message:            message,
		Frequency:          fmt.Sprintf("%d minutes", cfg.SyncFrequencyMinutes),
		TotalRecordsSynced: cfg.TotalRecordsSynced,
		IsActive:           cfg.IsActive,
	}
	if s.scheduler != nil {
		report.SchedulerState = string(s.scheduler.State())
	}
	return report, nil
}

// deriveStatus maps the stored state to a status and message. An inactive
// job is disabled whatever its last result.
func deriveStatus(cfg *models.SyncConfig, running bool) (string, string) {
	lastError := ""
	if cfg.LastSyncError != nil {
		lastError = *cfg.LastSyncError
	}

	switch {
	case !cfg.IsActive:
		return StatusDisabled, "Automatic sync is disabled"
	case running || cfg.LastSyncStatus == models.SyncStatusInProgress:
		return StatusInProgress, "A sync is currently running"
	case cfg.LastSyncStatus == models.SyncStatusError:
		return StatusError, "Last sync failed: " + lastError
	case cfg.LastSyncStatus == models.SyncStatusPartialSuccess:
		return StatusPartial, "Last sync completed with errors: " + lastError
	case cfg.LastSyncStatus == models.SyncStatusSuccess && cfg.LastSyncAt != nil:
		return StatusActive, "Last synced successfully at " + cfg.LastSyncAt.UTC().Format(time.RFC3339)
	default:
		return StatusPending, "Sync is configured and waiting for its first run"
	}
}

// Trigger starts a sync over the job's implicit range in the background and
// returns immediately. The job's slot is claimed before returning, so an
// acknowledged trigger always runs. The run outlives the request.
func (s *SyncService) Trigger(ctx context.Context) (*TriggerAck, error) {
	run, err := s.runner.StartIncremental(syncer.TriggerManual)
	if errors.Is(err, syncer.ErrSyncInProgress) {
		return nil, syncInProgressError()
	}
	if err != nil {
		return nil, internalError("failed to start sync", err)
	}

	job := s.runner.JobName()
	if err := s.configs.MarkStarted(ctx, job, models.SyncStatusPending); err != nil {
		s.logger.Warn("failed to mark sync pending", "job", job, "error", err)
	}

	runCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		result, err := run(runCtx)
		if err != nil {
			s.logger.Warn("triggered sync did not run", "job", job, "error", err)
			return
		}
		s.logger.Info("triggered sync finished",
			"job", job,
			"status", result.Status,
			"processed", result.TransactionsProcessed,
		)
	}()

	return &TriggerAck{
		TriggeredAt: s.now().UTC(),
		Status:      TriggerStatus,
		Message:     "Sync started in the background; check the status endpoint for the result",
	}, nil
}

// Activity reports whether a run is in flight and the scheduler's state. The
// state is empty when no scheduler is attached.
func (s *SyncService) Activity() SyncActivity {
	activity := SyncActivity{Running: s.runner.Running()}
	if s.scheduler != nil {
		activity.SchedulerState = string(s.scheduler.State())
	}
	return activity
}

// Wait blocks until background runs started by Trigger finish or ctx ends
func (s *SyncService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunRange runs a sync over an explicit inclusive date range and returns
// its result
func (s *SyncService) RunRange(ctx context.Context, start, end time.Time) (*syncer.Result, error) {
	if err := ValidateDateRange(start, end); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidDateRange,
			Message: err.Error(),
		}
	}

	result, err := s.runner.Run(ctx, syncer.Request{
		Start:   start,
		End:     end,
		Trigger: syncer.TriggerRange,
	})
	switch {
	case errors.Is(err, syncer.ErrSyncInProgress):
		return nil, syncInProgressError()
	case errors.Is(err, syncer.ErrInvalidRange):
		return nil, &ServiceError{
			Code:    ErrCodeInvalidDateRange,
			Message: err.Error(),
		}
	case err != nil:
		return nil, internalError("failed to run sync", err)
	}
	return result, nil
}

func syncInProgressError() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeSyncInProgress,
		Message: "a sync is already in progress",
		Err:     syncer.ErrSyncInProgress,
	}
}
