package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/donorsync/internal/models"
)

// SyncConfigRepository defines the interface for sync job state access.
// Every write is a single-row statement keyed by job name.
type SyncConfigRepository interface {
	Get(ctx context.Context, name string) (*models.SyncConfig, error)
	GetOrCreate(ctx context.Context, name string) (*models.SyncConfig, error)
	UpdateSettings(ctx context.Context, name string, isActive bool, frequencyMinutes int) (*models.SyncConfig, error)
	MarkStarted(ctx context.Context, name string, status models.SyncStatus) error
	Finish(ctx context.Context, name string, finish SyncFinish) error
	ListByStatus(ctx context.Context, status models.SyncStatus) ([]models.SyncConfig, error)
}

// SyncFinish is the terminal state written when a run ends
type SyncFinish struct {
	At        time.Time
	Error     *string
	Status    models.SyncStatus
	Increment int64
}

// syncConfigRepository implements SyncConfigRepository
type syncConfigRepository struct {
	db DBTX
}

// NewSyncConfigRepository creates a new SyncConfigRepository
func NewSyncConfigRepository(database DBTX) SyncConfigRepository {
	return &syncConfigRepository{db: database}
}

const syncConfigColumns = `
	name, is_active, sync_frequency_minutes, last_sync_at, last_sync_status,
	last_sync_error, total_records_synced, created_at, updated_at`

func scanSyncConfig(row rowScanner) (*models.SyncConfig, error) {
	var c models.SyncConfig
	err := row.Scan(
		&c.Name,
		&c.IsActive,
		&c.SyncFrequencyMinutes,
		&c.LastSyncAt,
		&c.LastSyncStatus,
		&c.LastSyncError,
		&c.TotalRecordsSynced,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get retrieves the config for a job without creating it
func (r *syncConfigRepository) Get(ctx context.Context, name string) (*models.SyncConfig, error) {
	query := `SELECT ` + syncConfigColumns + ` FROM sync_configs WHERE name = $1`

	cfg, err := scanSyncConfig(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sync config %s not found: %w", name, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sync config: %w", err)
	}
	return cfg, nil
}

// GetOrCreate returns the config for a job, inserting the defaults
// (active, 60 minutes, never run) when no row exists yet
func (r *syncConfigRepository) GetOrCreate(ctx context.Context, name string) (*models.SyncConfig, error) {
	insert := `
		INSERT INTO sync_configs (name, is_active, sync_frequency_minutes, last_sync_status)
		VALUES ($1, TRUE, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, name, models.DefaultSyncFrequencyMinutes, models.SyncStatusNeverRun); err != nil {
		return nil, fmt.Errorf("failed to create default sync config: %w", err)
	}
	return r.Get(ctx, name)
}

// UpdateSettings sets enablement and frequency, creating the row if needed
func (r *syncConfigRepository) UpdateSettings(
	ctx context.Context,
	name string,
	isActive bool,
	frequencyMinutes int,
) (*models.SyncConfig, error) {
	if !models.ValidSyncFrequency(frequencyMinutes) {
		return nil, fmt.Errorf("sync frequency %d outside [%d, %d]",
			frequencyMinutes, models.MinSyncFrequencyMinutes, models.MaxSyncFrequencyMinutes)
	}

	query := `
		INSERT INTO sync_configs (name, is_active, sync_frequency_minutes, last_sync_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			is_active              = EXCLUDED.is_active,
			sync_frequency_minutes = EXCLUDED.sync_frequency_minutes,
			updated_at             = NOW()
		RETURNING ` + syncConfigColumns

	cfg, err := scanSyncConfig(r.db.QueryRowContext(ctx, query, name, isActive, frequencyMinutes, models.SyncStatusNeverRun))
	if err != nil {
		return nil, fmt.Errorf("failed to update sync config: %w", err)
	}
	return cfg, nil
}

// MarkStarted records that a run has begun
func (r *syncConfigRepository) MarkStarted(ctx context.Context, name string, status models.SyncStatus) error {
	query := `
		INSERT INTO sync_configs (name, last_sync_status)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			last_sync_status = EXCLUDED.last_sync_status,
			updated_at       = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, name, status); err != nil {
		return fmt.Errorf("failed to mark sync started: %w", err)
	}
	return nil
}

// Finish records the terminal state of a run. The record counter is
// incremented, never replaced.
func (r *syncConfigRepository) Finish(ctx context.Context, name string, finish SyncFinish) error {
	if finish.Increment < 0 {
		return fmt.Errorf("sync record increment cannot be negative: %d", finish.Increment)
	}

	query := `
		INSERT INTO sync_configs (name, last_sync_at, last_sync_status, last_sync_error, total_records_synced)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			last_sync_at         = EXCLUDED.last_sync_at,
			last_sync_status     = EXCLUDED.last_sync_status,
			last_sync_error      = EXCLUDED.last_sync_error,
			total_records_synced = sync_configs.total_records_synced + EXCLUDED.total_records_synced,
			updated_at           = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, name, finish.At, finish.Status, finish.Error, finish.Increment); err != nil {
		return fmt.Errorf("failed to record sync result: %w", err)
	}
	return nil
}

// ListByStatus returns every job whose last status matches
func (r *syncConfigRepository) ListByStatus(ctx context.Context, status models.SyncStatus) ([]models.SyncConfig, error) {
	query := `SELECT ` + syncConfigColumns + ` FROM sync_configs WHERE last_sync_status = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync configs: %w", err)
	}
	defer rows.Close()

	var out []models.SyncConfig
	for rows.Next() {
		cfg, err := scanSyncConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync config: %w", err)
		}
		out = append(out, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync configs: %w", err)
	}
	return out, nil
}
