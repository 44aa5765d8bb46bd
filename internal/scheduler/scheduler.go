// Package scheduler runs the sync job on a timer derived from its stored
// frequency.
package scheduler

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

// interruptedMessage is recorded for runs left in progress by a previous process
const interruptedMessage = "sync interrupted: the previous process stopped before the run finished"

// State is the scheduler's externally visible state
type State string

const (
	StateDisabled State = "disabled"
	StateIdle     State = "idle"
	StateRunning  State = "running"
)

// Runner runs the scheduled sync. *syncer.Engine implements it.
type Runner interface {
	RunScheduled(ctx context.Context) (*syncer.Result, error)
	Running() bool
	JobName() string
}

// Timer is a pending tick
type Timer interface {
	Stop() bool
}

// Options overrides the clock, mainly for tests
type Options struct {
	Now       func() time.Time
	AfterFunc func(d time.Duration, f func()) Timer
}

// Scheduler fires the sync job every SyncFrequencyMinutes while the job is
// active. At most one scheduled run is in flight; a tick that finds a run
// already going is skipped and the timer re-armed.
type Scheduler struct {
	nextRun   time.Time
	runner    Runner
	configs   repository.SyncConfigRepository
	timer     Timer
	runCtx    context.Context
	logger    *slog.Logger
	now       func() time.Time
	afterFunc func(d time.Duration, f func()) Timer
	cancelRun context.CancelFunc
	wg        sync.WaitGroup
	interval  time.Duration
	gen       uint64
	mu        sync.Mutex
	active    bool
	running   bool
	stopped   bool
}

// New creates a Scheduler in the disabled state
func New(runner Runner, configs repository.SyncConfigRepository, logger *slog.Logger, opts Options) *Scheduler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		runner:    runner,
		configs:   configs,
		logger:    logger.With("component", "scheduler", "job", runner.JobName()),
		now:       opts.Now,
		afterFunc: opts.AfterFunc,
		runCtx:    runCtx,
		cancelRun: cancel,
	}
}

// Start recovers runs interrupted by a previous process, loads the job
// config and arms the timer if the job is active.
func (s *Scheduler) Start(ctx context.Context) error {
	s.recoverInterrupted(ctx)

	cfg, err := s.configs.GetOrCreate(ctx, s.runner.JobName())
	if err != nil {
		return fmt.Errorf("failed to load sync config: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return errors.New("scheduler already stopped")
	}

	s.active = cfg.IsActive
	s.interval = cfg.Interval()
	if !s.active {
		s.logger.Info("scheduler started, job is disabled")
		return nil
	}

	s.armLocked(s.initialDelay(cfg))
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"next_run", s.nextRun,
	)
	return nil
}

// initialDelay resumes the cadence of the last run so a restart neither
// fires immediately nor waits a full interval
func (s *Scheduler) initialDelay(cfg *models.SyncConfig) time.Duration {
	if cfg.LastSyncAt == nil {
		return s.interval
	}
	delay := cfg.LastSyncAt.Add(s.interval).Sub(s.now())
	if delay < 0 {
		return 0
	}
	if delay > s.interval {
		return s.interval
	}
	return delay
}

// Apply reschedules from a changed config. The old timer is cancelled and,
// when the job is active, a new one armed at now plus the new interval. A run
// in flight is not interrupted; the new interval applies once it finishes.
func (s *Scheduler) Apply(cfg *models.SyncConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	s.active = cfg.IsActive
	s.interval = cfg.Interval()
	s.stopTimerLocked()

	if !s.active {
		s.logger.Info("sync schedule disabled")
		return
	}
	if s.running {
		s.logger.Info("sync schedule updated, applies after the current run", "interval", s.interval)
		return
	}

	s.armLocked(s.interval)
	s.logger.Info("sync rescheduled", "interval", s.interval, "next_run", s.nextRun)
}

// Stop cancels the timer and waits for an in-flight run to finish. If ctx
// ends first the run is cancelled and ctx's error returned.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.active = false
	s.stopTimerLocked()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancelRun()
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancelRun()
		s.logger.Warn("scheduler stop timed out, cancelled in-flight sync")
		return ctx.Err()
	}
}

// State reports whether the job is disabled, waiting for its next tick or
// running. A manually triggered run also reports running.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.running || s.runner.Running():
		return StateRunning
	case !s.active:
		return StateDisabled
	default:
		return StateIdle
	}
}

// NextRun returns when the timer fires next, false when none is armed
func (s *Scheduler) NextRun() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil {
		return time.Time{}, false
	}
	return s.nextRun, true
}

// Interval returns the current tick interval
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) armLocked(delay time.Duration) {
	s.stopTimerLocked()
	gen := s.gen
	s.nextRun = s.now().Add(delay)
	s.timer = s.afterFunc(delay, func() { s.tick(gen) })
}

// stopTimerLocked cancels the pending tick. The generation bump makes a tick
// that already fired a no-op.
func (s *Scheduler) stopTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.nextRun = time.Time{}
}

func (s *Scheduler) tick(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen || !s.active {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	if s.running || s.runner.Running() {
		s.logger.Warn("skipping scheduled sync, a run is already in progress")
		s.armLocked(s.interval)
		s.mu.Unlock()
		return
	}
	s.running = true
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.run()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	if s.active && !s.stopped {
		s.armLocked(s.interval)
		s.logger.Debug("next scheduled sync armed", "next_run", s.nextRun)
	}
}

func (s *Scheduler) run() {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled sync panicked", "panic", r)
		}
	}()

	result, err := s.runner.RunScheduled(s.runCtx)
	switch {
	case errors.Is(err, syncer.ErrSyncInProgress):
		s.logger.Warn("scheduled sync skipped, a run is already in progress")
	case err != nil:
		s.logger.Error("scheduled sync failed to start", "error", err)
	default:
		s.logger.Info("scheduled sync finished",
			"status", result.Status,
			"processed", result.TransactionsProcessed,
			"errors", result.ErrorCount,
		)
	}
}

// recoverInterrupted finalizes configs left in_progress by a crashed
// process so status never stays stuck
func (s *Scheduler) recoverInterrupted(ctx context.Context) {
	stale, err := s.configs.ListByStatus(ctx, models.SyncStatusInProgress)
	if err != nil {
		s.logger.Warn("failed to check for interrupted syncs", "error", err)
		return
	}

	msg := interruptedMessage
	for _, cfg := range stale {
		if cfg.Name == s.runner.JobName() && s.runner.Running() {
			continue
		}
		err := s.configs.Finish(ctx, cfg.Name, repository.SyncFinish{
			At:     s.now(),
			Status: models.SyncStatusError,
			Error:  &msg,
		})
		if err != nil {
			s.logger.Warn("failed to finalize interrupted sync", "name", cfg.Name, "error", err)
			continue
		}
		s.logger.Warn("finalized sync interrupted by a previous shutdown", "name", cfg.Name)
	}
}
