package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/repository/mocks"
	"github.com/benx421/donorsync/internal/syncer"
)

const jobName = models.DefaultSyncJobName

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTimer struct {
	f       func()
	delay   time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeClock records armed timers so tests can fire them by hand
type fakeClock struct {
	now    time.Time
	timers []*fakeTimer
	mu     sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

func (c *fakeClock) armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

type fakeRunner struct {
	release chan struct{}
	started chan struct{}
	err     error
	calls   int
	mu      sync.Mutex
	busy    bool
}

func (r *fakeRunner) JobName() string { return jobName }

func (r *fakeRunner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *fakeRunner) RunScheduled(ctx context.Context) (*syncer.Result, error) {
	r.mu.Lock()
	r.calls++
	r.busy = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
	}()

	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return &syncer.Result{Status: models.SyncStatusError}, nil
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return &syncer.Result{Status: models.SyncStatusSuccess}, nil
}

func (r *fakeRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestScheduler(t *testing.T, runner *fakeRunner, cfg *models.SyncConfig) (*Scheduler, *fakeClock, *mocks.MockSyncConfigRepository) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	configs := mocks.NewMockSyncConfigRepository(t)
	configs.On("ListByStatus", mock.Anything, models.SyncStatusInProgress).Return([]models.SyncConfig{}, nil).Maybe()
	configs.On("GetOrCreate", mock.Anything, jobName).Return(cfg, nil).Maybe()

	s := New(runner, configs, testLogger(), Options{Now: clock.Now, AfterFunc: clock.AfterFunc})
	return s, clock, configs
}

func activeConfig(minutes int) *models.SyncConfig {
	return &models.SyncConfig{
		Name:                 jobName,
		IsActive:             true,
		SyncFrequencyMinutes: minutes,
		LastSyncStatus:       models.SyncStatusNeverRun,
	}
}

func TestScheduler_InitialStateIsDisabled(t *testing.T) {
	s, _, _ := newTestScheduler(t, &fakeRunner{}, activeConfig(60))

	assert.Equal(t, StateDisabled, s.State())
	_, ok := s.NextRun()
	assert.False(t, ok)
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		cfg       *models.SyncConfig
		name      string
		wantState State
		wantDelay time.Duration
		wantArmed bool
	}{
		{
			name:      "active job arms the timer",
			cfg:       activeConfig(60),
			wantState: StateIdle,
			wantArmed: true,
			wantDelay: time.Hour,
		},
		{
			name:      "inactive job stays disabled",
			cfg:       &models.SyncConfig{Name: jobName, SyncFrequencyMinutes: 60},
			wantState: StateDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock, _ := newTestScheduler(t, &fakeRunner{}, tt.cfg)

			require.NoError(t, s.Start(context.Background()))
			assert.Equal(t, tt.wantState, s.State())

			next, ok := s.NextRun()
			assert.Equal(t, tt.wantArmed, ok)
			if tt.wantArmed {
				assert.Equal(t, tt.wantDelay, clock.last().delay)
				assert.Equal(t, clock.Now().Add(tt.wantDelay), next)
			}
		})
	}
}

func TestScheduler_Start_ResumesCadence(t *testing.T) {
	cfg := activeConfig(60)
	last := time.Date(2026, 3, 1, 11, 40, 0, 0, time.UTC)
	cfg.LastSyncAt = &last

	s, clock, _ := newTestScheduler(t, &fakeRunner{}, cfg)
	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, 40*time.Minute, clock.last().delay)
}

func TestScheduler_Start_ConfigLoadFails(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	configs.On("ListByStatus", mock.Anything, models.SyncStatusInProgress).Return(nil, errors.New("db down"))
	configs.On("GetOrCreate", mock.Anything, jobName).Return(nil, errors.New("db down"))

	s := New(&fakeRunner{}, configs, testLogger(), Options{})
	err := s.Start(context.Background())
	assert.ErrorContains(t, err, "db down")
	assert.Equal(t, StateDisabled, s.State())
}

func TestScheduler_Start_RecoversInterruptedRun(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	configs := mocks.NewMockSyncConfigRepository(t)
	configs.On("ListByStatus", mock.Anything, models.SyncStatusInProgress).
		Return([]models.SyncConfig{{Name: jobName, LastSyncStatus: models.SyncStatusInProgress}}, nil)
	configs.On("Finish", mock.Anything, jobName, mock.MatchedBy(func(f repository.SyncFinish) bool {
		return f.Status == models.SyncStatusError &&
			f.Error != nil && *f.Error == interruptedMessage &&
			f.Increment == 0
	})).Return(nil).Once()
	configs.On("GetOrCreate", mock.Anything, jobName).Return(activeConfig(60), nil)

	s := New(&fakeRunner{}, configs, testLogger(), Options{Now: clock.Now, AfterFunc: clock.AfterFunc})
	require.NoError(t, s.Start(context.Background()))
}

func TestScheduler_Apply_Reschedules(t *testing.T) {
	s, clock, _ := newTestScheduler(t, &fakeRunner{}, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))

	first := clock.last()
	require.NotNil(t, first)
	assert.Equal(t, time.Hour, first.delay)

	clock.mu.Lock()
	clock.now = clock.now.Add(10 * time.Minute)
	clock.mu.Unlock()

	s.Apply(activeConfig(15))

	assert.True(t, first.stopped, "stale timer must be cancelled")
	assert.Equal(t, 15*time.Minute, s.Interval())
	assert.Equal(t, 15*time.Minute, clock.last().delay)

	next, ok := s.NextRun()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(15*time.Minute), next)
	assert.Equal(t, StateIdle, s.State())
}

func TestScheduler_Apply_Toggle(t *testing.T) {
	s, clock, _ := newTestScheduler(t, &fakeRunner{}, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))
	armed := clock.last()

	disabled := activeConfig(60)
	disabled.IsActive = false
	s.Apply(disabled)

	assert.Equal(t, StateDisabled, s.State())
	assert.True(t, armed.stopped)
	_, ok := s.NextRun()
	assert.False(t, ok)

	s.Apply(activeConfig(30))
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 30*time.Minute, clock.last().delay)
}

func TestScheduler_StaleTickIsIgnored(t *testing.T) {
	runner := &fakeRunner{}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))
	stale := clock.last()

	s.Apply(activeConfig(15))
	stale.f()

	assert.Zero(t, runner.callCount(), "a cancelled timer must not run the job")
}

func TestScheduler_TickRunsAndRearms(t *testing.T) {
	runner := &fakeRunner{}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(20))
	require.NoError(t, s.Start(context.Background()))

	clock.last().f()

	assert.Equal(t, 1, runner.callCount())
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 2, clock.armed())
	assert.Equal(t, 20*time.Minute, clock.last().delay)
}

func TestScheduler_TickSurvivesRunFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("boom")}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(20))
	require.NoError(t, s.Start(context.Background()))

	clock.last().f()

	assert.Equal(t, StateIdle, s.State())
	_, ok := s.NextRun()
	assert.True(t, ok, "a failed run must not stop the schedule")
}

func TestScheduler_TickSkippedWhileRunning(t *testing.T) {
	runner := &fakeRunner{busy: true}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(20))
	require.NoError(t, s.Start(context.Background()))

	clock.last().f()

	assert.Zero(t, runner.callCount(), "overlapping runs are not allowed")
	assert.Equal(t, 2, clock.armed(), "the skipped tick re-arms the timer")
	assert.Equal(t, StateRunning, s.State())
}

func TestScheduler_ApplyDuringRun(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		clock.last().f()
	}()
	<-runner.started
	assert.Equal(t, StateRunning, s.State())

	s.Apply(activeConfig(5))
	_, ok := s.NextRun()
	assert.False(t, ok, "no timer is armed while the run is in flight")

	close(runner.release)
	<-done

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 5*time.Minute, clock.last().delay)
}

func TestScheduler_StopWaitsForRun(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))

	go clock.last().f()
	<-runner.started

	stopped := make(chan error, 1)
	go func() {
		stopped <- s.Stop(context.Background())
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a run was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(runner.release)
	require.NoError(t, <-stopped)

	armedBefore := clock.armed()
	s.Apply(activeConfig(5))
	assert.Equal(t, armedBefore, clock.armed(), "a stopped scheduler does not re-arm")
}

func TestScheduler_StopTimeoutCancelsRun(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{}, 1), release: make(chan struct{})}
	s, clock, _ := newTestScheduler(t, runner, activeConfig(60))
	require.NoError(t, s.Start(context.Background()))

	go clock.last().f()
	<-runner.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Eventually(t, func() bool { return !runner.Running() }, time.Second, 5*time.Millisecond)
}
