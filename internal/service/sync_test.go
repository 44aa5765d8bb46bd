package service

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
	"github.com/benx421/donorsync/internal/repository/mocks"
	"github.com/benx421/donorsync/internal/scheduler"
	"github.com/benx421/donorsync/internal/syncer"
)

const jobName = models.DefaultSyncJobName

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRunner struct {
	result    *syncer.Result
	err       error
	requests  []syncer.Request
	triggers  []syncer.Trigger
	mu        sync.Mutex
	running   bool
	runCtxErr error
}

func (r *stubRunner) JobName() string { return jobName }

func (r *stubRunner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *stubRunner) Run(_ context.Context, req syncer.Request) (*syncer.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return r.result, r.err
}

func (r *stubRunner) StartIncremental(trigger syncer.Trigger) (func(context.Context) (*syncer.Result, error), error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return nil, syncer.ErrSyncInProgress
	}
	r.running = true
	return func(ctx context.Context) (*syncer.Result, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.running = false
		r.triggers = append(r.triggers, trigger)
		r.runCtxErr = ctx.Err()
		return r.result, r.err
	}, nil
}

type stubScheduler struct {
	applied []*models.SyncConfig
	state   scheduler.State
}

func (s *stubScheduler) Apply(cfg *models.SyncConfig) {
	s.applied = append(s.applied, cfg)
}

func (s *stubScheduler) State() scheduler.State {
	return s.state
}

func TestSyncService_GetConfig(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	svc := NewSyncService(configs, &stubRunner{}, nil, testLogger())
	ctx := context.Background()

	defaults := &models.SyncConfig{
		Name:                 jobName,
		IsActive:             true,
		SyncFrequencyMinutes: models.DefaultSyncFrequencyMinutes,
		LastSyncStatus:       models.SyncStatusNeverRun,
	}
	configs.On("GetOrCreate", ctx, jobName).Return(defaults, nil)

	cfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestSyncService_UpdateConfig(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		wantErr   bool
	}{
		{name: "zero rejected", frequency: 0, wantErr: true},
		{name: "lower bound accepted", frequency: 1},
		{name: "upper bound accepted", frequency: 1440},
		{name: "above upper bound rejected", frequency: 1441, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configs := mocks.NewMockSyncConfigRepository(t)
			sched := &stubScheduler{}
			svc := NewSyncService(configs, &stubRunner{}, sched, testLogger())
			ctx := context.Background()

			if !tt.wantErr {
				configs.On("UpdateSettings", ctx, jobName, true, tt.frequency).
					Return(&models.SyncConfig{Name: jobName, IsActive: true, SyncFrequencyMinutes: tt.frequency}, nil)
			}

			cfg, err := svc.UpdateConfig(ctx, true, tt.frequency)
			if tt.wantErr {
				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, ErrCodeInvalidFrequency, svcErr.Code)
				assert.Empty(t, sched.applied, "invalid settings must never reach the scheduler")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.frequency, cfg.SyncFrequencyMinutes)
			require.Len(t, sched.applied, 1)
			assert.Equal(t, cfg, sched.applied[0])
		})
	}
}

func TestSyncService_UpdateConfig_StoreFailure(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	sched := &stubScheduler{}
	svc := NewSyncService(configs, &stubRunner{}, sched, testLogger())
	ctx := context.Background()

	configs.On("UpdateSettings", ctx, jobName, false, 30).Return(nil, errors.New("db down"))

	_, err := svc.UpdateConfig(ctx, false, 30)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	assert.Empty(t, sched.applied)
}

func TestDeriveStatus(t *testing.T) {
	last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	boom := "boom"

	tests := []struct {
		cfg         models.SyncConfig
		name        string
		wantStatus  string
		wantMessage string
		running     bool
	}{
		{
			name:        "error with message",
			cfg:         models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusError, LastSyncError: &boom, LastSyncAt: &last},
			wantStatus:  StatusError,
			wantMessage: "boom",
		},
		{
			name:       "inactive wins over error",
			cfg:        models.SyncConfig{IsActive: false, LastSyncStatus: models.SyncStatusError, LastSyncError: &boom},
			wantStatus: StatusDisabled,
		},
		{
			name:       "inactive wins over success",
			cfg:        models.SyncConfig{IsActive: false, LastSyncStatus: models.SyncStatusSuccess, LastSyncAt: &last},
			wantStatus: StatusDisabled,
		},
		{
			name:        "success",
			cfg:         models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusSuccess, LastSyncAt: &last},
			wantStatus:  StatusActive,
			wantMessage: "2026-03-01T10:00:00Z",
		},
		{
			name:        "partial success",
			cfg:         models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusPartialSuccess, LastSyncError: &boom, LastSyncAt: &last},
			wantStatus:  StatusPartial,
			wantMessage: "boom",
		},
		{
			name:       "never run",
			cfg:        models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusNeverRun},
			wantStatus: StatusPending,
		},
		{
			name:       "stored in progress",
			cfg:        models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusInProgress},
			wantStatus: StatusInProgress,
		},
		{
			name:       "running in this process",
			cfg:        models.SyncConfig{IsActive: true, LastSyncStatus: models.SyncStatusSuccess, LastSyncAt: &last},
			running:    true,
			wantStatus: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := deriveStatus(&tt.cfg, tt.running)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, message)
			if tt.wantMessage != "" {
				assert.Contains(t, message, tt.wantMessage)
			}
		})
	}
}

func TestSyncService_Status(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		configs := mocks.NewMockSyncConfigRepository(t)
		svc := NewSyncService(configs, &stubRunner{}, nil, testLogger())
		ctx := context.Background()

		configs.On("Get", ctx, jobName).Return(nil, models.ErrNotFound)

		status, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatusNotConfigured, status.Status)
		assert.Nil(t, status.Config)
		assert.Nil(t, status.NextSyncTime)
	})

	t.Run("active with next sync time", func(t *testing.T) {
		configs := mocks.NewMockSyncConfigRepository(t)
		sched := &stubScheduler{state: scheduler.StateIdle}
		svc := NewSyncService(configs, &stubRunner{}, sched, testLogger())
		ctx := context.Background()

		last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		configs.On("Get", ctx, jobName).Return(&models.SyncConfig{
			Name:                 jobName,
			IsActive:             true,
			SyncFrequencyMinutes: 15,
			LastSyncAt:           &last,
			LastSyncStatus:       models.SyncStatusSuccess,
			TotalRecordsSynced:   242,
		}, nil)

		status, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatusActive, status.Status)
		assert.Equal(t, "15 minutes", status.Frequency)
		assert.Equal(t, int64(242), status.TotalRecordsSynced)
		assert.Equal(t, string(scheduler.StateIdle), status.SchedulerState)
		require.NotNil(t, status.NextSyncTime)
		assert.Equal(t, last.Add(15*time.Minute), *status.NextSyncTime)
	})

	t.Run("disabled has no next sync time", func(t *testing.T) {
		configs := mocks.NewMockSyncConfigRepository(t)
		svc := NewSyncService(configs, &stubRunner{}, nil, testLogger())
		ctx := context.Background()

		last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		configs.On("Get", ctx, jobName).Return(&models.SyncConfig{
			Name:                 jobName,
			SyncFrequencyMinutes: 15,
			LastSyncAt:           &last,
			LastSyncStatus:       models.SyncStatusSuccess,
		}, nil)

		status, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatusDisabled, status.Status)
		assert.Nil(t, status.NextSyncTime)
	})

	t.Run("store failure", func(t *testing.T) {
		configs := mocks.NewMockSyncConfigRepository(t)
		svc := NewSyncService(configs, &stubRunner{}, nil, testLogger())
		ctx := context.Background()

		configs.On("Get", ctx, jobName).Return(nil, errors.New("db down"))

		_, err := svc.Status(ctx)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	})
}

func TestSyncService_Trigger(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	runner := &stubRunner{result: &syncer.Result{Status: models.SyncStatusSuccess}}
	svc := NewSyncService(configs, runner, nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	configs.On("MarkStarted", mock.Anything, jobName, models.SyncStatusPending).Return(nil)

	ack, err := svc.Trigger(ctx)
	require.NoError(t, err)
	assert.Equal(t, TriggerStatus, ack.Status)
	assert.False(t, ack.TriggeredAt.IsZero())

	cancel()
	require.NoError(t, svc.Wait(context.Background()))

	runner.mu.Lock()
	defer runner.mu.Unlock()
	assert.Equal(t, []syncer.Trigger{syncer.TriggerManual}, runner.triggers)
	assert.NoError(t, runner.runCtxErr, "the run must outlive the request context")
}

func TestSyncService_Trigger_ClaimsSlotBeforeAcknowledging(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	runner := &stubRunner{result: &syncer.Result{Status: models.SyncStatusSuccess}}
	svc := NewSyncService(configs, runner, nil, testLogger())

	release := make(chan struct{})
	configs.On("MarkStarted", mock.Anything, jobName, models.SyncStatusPending).
		Run(func(mock.Arguments) { <-release }).
		Return(nil).Once()

	ackErr := make(chan error, 1)
	go func() {
		_, err := svc.Trigger(context.Background())
		ackErr <- err
	}()

	assert.Eventually(t, runner.Running, time.Second, 5*time.Millisecond)

	_, err := svc.Trigger(context.Background())
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeSyncInProgress, svcErr.Code)

	close(release)
	require.NoError(t, <-ackErr)
	require.NoError(t, svc.Wait(context.Background()))
	assert.False(t, runner.Running())
}

func TestSyncService_Trigger_AlreadyRunning(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)
	runner := &stubRunner{running: true}
	svc := NewSyncService(configs, runner, nil, testLogger())

	_, err := svc.Trigger(context.Background())

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ErrCodeSyncInProgress, svcErr.Code)
	assert.ErrorIs(t, err, syncer.ErrSyncInProgress)
	assert.Empty(t, runner.triggers)
}

func TestSyncService_Activity(t *testing.T) {
	configs := mocks.NewMockSyncConfigRepository(t)

	withoutScheduler := NewSyncService(configs, &stubRunner{running: true}, nil, testLogger())
	assert.Equal(t, SyncActivity{Running: true}, withoutScheduler.Activity())

	sched := &stubScheduler{state: scheduler.StateIdle}
	withScheduler := NewSyncService(configs, &stubRunner{}, sched, testLogger())
	assert.Equal(t, SyncActivity{SchedulerState: string(scheduler.StateIdle)}, withScheduler.Activity())
}

func TestSyncService_RunRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		runErr   error
		name     string
		wantCode string
		start    time.Time
		end      time.Time
		wantRuns int
	}{
		{name: "success", start: start, end: end, wantRuns: 1},
		{name: "missing start", end: end, wantCode: ErrCodeInvalidDateRange},
		{name: "reversed", start: end, end: start, wantCode: ErrCodeInvalidDateRange},
		{name: "already running", start: start, end: end, runErr: syncer.ErrSyncInProgress, wantCode: ErrCodeSyncInProgress, wantRuns: 1},
		{name: "unexpected failure", start: start, end: end, runErr: errors.New("boom"), wantCode: ErrCodeInternalError, wantRuns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{
				result: &syncer.Result{Status: models.SyncStatusSuccess, TotalTransactionsRetrieved: 3},
				err:    tt.runErr,
			}
			if tt.runErr != nil {
				runner.result = nil
			}
			svc := NewSyncService(mocks.NewMockSyncConfigRepository(t), runner, nil, testLogger())

			result, err := svc.RunRange(context.Background(), tt.start, tt.end)
			assert.Len(t, runner.requests, tt.wantRuns)

			if tt.wantCode != "" {
				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, tt.wantCode, svcErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, result.TotalTransactionsRetrieved)
			assert.Equal(t, syncer.TriggerRange, runner.requests[0].Trigger)
			assert.Equal(t, tt.start, runner.requests[0].Start)
			assert.Equal(t, tt.end, runner.requests[0].End)
		})
	}
}
