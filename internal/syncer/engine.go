// Package syncer pulls processor transactions into the local store.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/archive"
	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/processor"
	"github.com/benx421/donorsync/internal/repository"
)

const dateLayout = processor.DateLayout

// finalizeTimeout bounds the status write after a run, which uses a
// context detached from the run's own deadline
const finalizeTimeout = 10 * time.Second

var (
	// ErrSyncInProgress is returned when a run for the same job is already active
	ErrSyncInProgress = errors.New("a sync is already in progress")

	// ErrInvalidRange is returned when the start date is after the end date
	ErrInvalidRange = errors.New("start date must not be after end date")
)

// Fetcher retrieves one page of processor transactions
type Fetcher interface {
	FetchPage(ctx context.Context, req processor.PageRequest) (*processor.Page, error)
}

// Stores groups the repositories a run writes to
type Stores struct {
	Customers    repository.CustomerRepository
	Transactions repository.TransactionRepository
	Configs      repository.SyncConfigRepository
}

// Options bounds a run
type Options struct {
	JobName           string
	Timeout           time.Duration
	PageSize          int
	MaxPages          int
	LookbackDays      int
	OverlapDays       int
	MaxReportedErrors int
}

// OptionsFromConfig builds Options from the sync and processor settings
func OptionsFromConfig(sync config.SyncConfig, pageSize int) Options {
	return Options{
		JobName:           sync.JobName,
		Timeout:           sync.Timeout,
		PageSize:          pageSize,
		MaxPages:          sync.MaxPages,
		LookbackDays:      sync.LookbackDays,
		OverlapDays:       sync.OverlapDays,
		MaxReportedErrors: sync.MaxReportedErrors,
	}
}

func (o Options) withDefaults() Options {
	if o.JobName == "" {
		o.JobName = models.DefaultSyncJobName
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Minute
	}
	if o.PageSize <= 0 {
		o.PageSize = 100
	}
	if o.MaxPages <= 0 {
		o.MaxPages = 100
	}
	if o.LookbackDays <= 0 {
		o.LookbackDays = 7
	}
	if o.OverlapDays < 0 {
		o.OverlapDays = 0
	}
	if o.MaxReportedErrors <= 0 {
		o.MaxReportedErrors = 10
	}
	return o
}

// Request describes one run. Start and End are inclusive calendar dates.
type Request struct {
	Start   time.Time
	End     time.Time
	Trigger Trigger
}

// Engine runs syncs. At most one run per job name is active at a time.
type Engine struct {
	fetcher      Fetcher
	customers    repository.CustomerRepository
	transactions repository.TransactionRepository
	configs      repository.SyncConfigRepository
	archiver     archive.Archiver
	logger       *slog.Logger
	now          func() time.Time
	running      map[string]struct{}
	opts         Options
	mu           sync.Mutex
}

// NewEngine creates an Engine
func NewEngine(fetcher Fetcher, stores Stores, archiver archive.Archiver, logger *slog.Logger, opts Options) *Engine {
	if archiver == nil {
		archiver = archive.Nop{}
	}
	return &Engine{
		fetcher:      fetcher,
		customers:    stores.Customers,
		transactions: stores.Transactions,
		configs:      stores.Configs,
		archiver:     archiver,
		logger:       logger,
		now:          time.Now,
		running:      make(map[string]struct{}),
		opts:         opts.withDefaults(),
	}
}

// JobName returns the job this engine syncs
func (e *Engine) JobName() string {
	return e.opts.JobName
}

// Running reports whether a run for the engine's job is active
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.running[e.opts.JobName]
	return ok
}

func (e *Engine) acquire(job string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.running[job]; ok {
		return false
	}
	e.running[job] = struct{}{}
	return true
}

func (e *Engine) release(job string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.running, job)
}

// ScheduledRange derives the implicit range for a scheduled run: from the
// last run minus the overlap margin, or the lookback window when the job has
// never run, through tomorrow.
func (e *Engine) ScheduledRange(cfg *models.SyncConfig) (time.Time, time.Time) {
	today := truncateDay(e.now())
	end := today.AddDate(0, 0, 1)

	if cfg == nil || cfg.LastSyncAt == nil {
		return today.AddDate(0, 0, -e.opts.LookbackDays), end
	}
	return truncateDay(*cfg.LastSyncAt).AddDate(0, 0, -e.opts.OverlapDays), end
}

// RunScheduled runs the job over its implicit range
func (e *Engine) RunScheduled(ctx context.Context) (*Result, error) {
	return e.RunIncremental(ctx, TriggerScheduled)
}

// RunIncremental runs the job over its implicit range on behalf of trigger
func (e *Engine) RunIncremental(ctx context.Context, trigger Trigger) (*Result, error) {
	return e.Run(ctx, e.incrementalRequest(ctx, trigger))
}

// StartIncremental claims the job's single-flight slot now and returns the
// run to execute under it, so a caller can acknowledge a run that is
// guaranteed to happen. It returns ErrSyncInProgress when the job is already
// running. The returned func must be called exactly once.
func (e *Engine) StartIncremental(trigger Trigger) (func(ctx context.Context) (*Result, error), error) {
	job := e.opts.JobName
	if !e.acquire(job) {
		return nil, ErrSyncInProgress
	}
	return func(ctx context.Context) (*Result, error) {
		defer e.release(job)
		return e.run(ctx, job, e.incrementalRequest(ctx, trigger)), nil
	}, nil
}

func (e *Engine) incrementalRequest(ctx context.Context, trigger Trigger) Request {
	cfg, err := e.configs.GetOrCreate(ctx, e.opts.JobName)
	if err != nil {
		e.logger.Warn("failed to load sync config, using lookback window",
			"job", e.opts.JobName,
			"error", err,
		)
		cfg = nil
	}

	start, end := e.ScheduledRange(cfg)
	return Request{Start: start, End: end, Trigger: trigger}
}

// Run performs one sync over req's range. It returns ErrSyncInProgress
// without side effects when the job is already running. Every other failure
// is reported through the Result, which is always finalized to a terminal
// status.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Start.After(req.End) {
		return nil, ErrInvalidRange
	}

	job := e.opts.JobName
	if !e.acquire(job) {
		return nil, ErrSyncInProgress
	}
	defer e.release(job)

	return e.run(ctx, job, req), nil
}

// run executes one sync while the caller holds job's slot
func (e *Engine) run(ctx context.Context, job string, req Request) (result *Result) {
	if req.Trigger == "" {
		req.Trigger = TriggerManual
	}

	result = newResult(job, req, e.now(), e.opts.MaxReportedErrors)
	touched := make(map[uuid.UUID]struct{})

	logger := e.logger.With("job", job, "trigger", req.Trigger)
	logger.Info("sync started", "start_date", result.StartDate, "end_date", result.EndDate)

	runCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	if err := e.configs.MarkStarted(runCtx, job, models.SyncStatusInProgress); err != nil {
		logger.Warn("failed to mark sync in progress", "error", err)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("sync panicked", "panic", r, "stack", string(debug.Stack()))
			result.fail(fmt.Sprintf("sync aborted unexpectedly: %v", r))
		}
		e.finalize(ctx, logger, result, touched)
	}()

	e.loop(runCtx, logger, req, result, touched)
	return result
}

func (e *Engine) loop(ctx context.Context, logger *slog.Logger, req Request, result *Result, touched map[uuid.UUID]struct{}) {
	for pageNum := 1; ; pageNum++ {
		if err := ctx.Err(); err != nil {
			e.stopOnContext(logger, result, err)
			return
		}

		page, err := e.fetcher.FetchPage(ctx, processor.PageRequest{
			Start:    req.Start,
			End:      req.End,
			Page:     pageNum,
			PageSize: e.opts.PageSize,
		})
		if err != nil {
			e.pageFailed(ctx, logger, result, pageNum, err)
			return
		}

		result.PagesProcessed++
		if len(page.Records) == 0 {
			logger.Debug("empty page, stopping", "page", pageNum)
			return
		}
		result.TotalTransactionsRetrieved += len(page.Records)

		for i := range page.Records {
			if err := ctx.Err(); err != nil {
				e.stopOnContext(logger, result, err)
				return
			}
			e.processRecord(ctx, logger, &page.Records[i], result, touched)
		}

		logger.Info("sync page processed",
			"page", pageNum,
			"records", len(page.Records),
			"processed", result.TransactionsProcessed,
		)

		if !e.hasMore(page, pageNum) {
			return
		}
		if pageNum >= e.opts.MaxPages {
			result.Truncated = true
			logger.Warn("sync stopped at page limit, more pages may remain",
				"max_pages", e.opts.MaxPages,
			)
			return
		}
	}
}

func (e *Engine) hasMore(page *processor.Page, pageNum int) bool {
	if len(page.Records) < e.opts.PageSize {
		return false
	}
	if page.HasMore != nil {
		return *page.HasMore
	}
	if page.TotalPages > 0 && pageNum >= page.TotalPages {
		return false
	}
	return true
}

func (e *Engine) stopOnContext(logger *slog.Logger, result *Result, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Error("sync timed out", "timeout", e.opts.Timeout)
		result.fail(fmt.Sprintf("sync timed out after %s", e.opts.Timeout))
		return
	}
	logger.Warn("sync cancelled", "error", err)
	result.fail("sync cancelled: " + err.Error())
}

func (e *Engine) pageFailed(ctx context.Context, logger *slog.Logger, result *Result, pageNum int, err error) {
	if ctx.Err() != nil {
		e.stopOnContext(logger, result, ctx.Err())
		return
	}

	var authErr *processor.AuthError
	if errors.As(err, &authErr) {
		logger.Error("processor authentication failed",
			"page", pageNum,
			"attempts", authErr.Attempts,
			"status", authErr.StatusCode,
		)
		result.fail(err.Error())
		return
	}

	logger.Error("failed to fetch page", "page", pageNum, "error", err)
	if result.PagesProcessed == 0 {
		result.fail(fmt.Sprintf("failed to fetch page %d: %v", pageNum, err))
		return
	}
	result.addError(fmt.Sprintf("page %d", pageNum), err)
}

// processRecord resolves the record's customer and upserts the transaction.
// Failures, including panics, are confined to the record.
func (e *Engine) processRecord(
	ctx context.Context,
	logger *slog.Logger,
	rec *processor.Record,
	result *Result,
	touched map[uuid.UUID]struct{},
) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("record processing panicked", "record_id", rec.ID, "panic", r)
			result.addError(rec.ID, fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	if rec.Err != nil {
		logger.Warn("skipping unreadable record", "record_id", rec.ID, "error", rec.Err)
		result.addError(rec.ID, rec.Err)
		return
	}

	var customerID *uuid.UUID
	if hasIdentity(rec) {
		resolved, created, err := e.resolveCustomer(ctx, rec)
		if err != nil {
			logger.Warn("customer resolution failed", "record_id", rec.ID, "error", err)
			result.addError(rec.ID, fmt.Errorf("customer resolution: %w", err))
		} else {
			customerID = &resolved
			if created {
				result.CustomersCreated++
			}
		}
	}

	txn, err := toTransaction(rec, customerID)
	if err != nil {
		result.addError(rec.ID, err)
		return
	}

	outcome, err := e.transactions.Upsert(ctx, txn)
	if err != nil {
		logger.Warn("transaction upsert failed", "record_id", rec.ID, "error", err)
		result.addError(rec.ID, err)
		return
	}

	result.TransactionsProcessed++
	switch outcome {
	case models.UpsertInserted:
		result.Inserted++
	case models.UpsertUpdated:
		result.Updated++
	default:
		result.Unchanged++
	}
	if customerID != nil {
		touched[*customerID] = struct{}{}
	}
}

// finalize records the terminal state. It runs on a context detached from
// the run deadline so a timed-out run is still written.
func (e *Engine) finalize(parent context.Context, logger *slog.Logger, result *Result, touched map[uuid.UUID]struct{}) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), finalizeTimeout)
	defer cancel()

	if len(touched) > 0 {
		ids := make([]uuid.UUID, 0, len(touched))
		for id := range touched {
			ids = append(ids, id)
		}
		if err := e.customers.RefreshTotals(ctx, ids); err != nil {
			logger.Warn("failed to refresh customer totals", "customers", len(ids), "error", err)
		}
	}

	result.FinishedAt = e.now()
	result.settle()

	err := e.configs.Finish(ctx, result.Job, repository.SyncFinish{
		At:        result.FinishedAt,
		Status:    result.Status,
		Error:     result.errorText(),
		Increment: int64(result.RecordsChanged()),
	})
	if err != nil {
		logger.Error("failed to record sync result", "status", result.Status, "error", err)
	}

	if err := e.archiver.Archive(ctx, result.Job, result.FinishedAt, result); err != nil {
		logger.Warn("failed to archive sync report", "error", err)
	}

	logger.Info("sync finished",
		"status", result.Status,
		"pages", result.PagesProcessed,
		"retrieved", result.TotalTransactionsRetrieved,
		"processed", result.TransactionsProcessed,
		"changed", result.RecordsChanged(),
		"errors", result.ErrorCount,
		"duration", result.Duration(),
	)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
