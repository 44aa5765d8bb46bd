package models

import "time"

// DefaultSyncJobName identifies the processor transaction sync job
const DefaultSyncJobName = "processor_transactions"

// Sync frequency bounds in minutes
const (
	MinSyncFrequencyMinutes     = 1
	MaxSyncFrequencyMinutes     = 1440
	DefaultSyncFrequencyMinutes = 60
)

// SyncStatus is the terminal or in-flight state of the last sync run
type SyncStatus string

const (
	SyncStatusNeverRun       SyncStatus = "never_run"
	SyncStatusPending        SyncStatus = "pending"
	SyncStatusInProgress     SyncStatus = "in_progress"
	SyncStatusSuccess        SyncStatus = "success"
	SyncStatusPartialSuccess SyncStatus = "partial_success"
	SyncStatusError          SyncStatus = "error"
)

// IsTerminal reports whether the status marks a finished run
func (s SyncStatus) IsTerminal() bool {
	switch s {
	case SyncStatusSuccess, SyncStatusPartialSuccess, SyncStatusError:
		return true
	default:
		return false
	}
}

// SyncConfig holds the live state of one named sync job
type SyncConfig struct {
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
	LastSyncAt           *time.Time `db:"last_sync_at"`
	LastSyncError        *string    `db:"last_sync_error"`
	Name                 string     `db:"name"`
	LastSyncStatus       SyncStatus `db:"last_sync_status"`
	TotalRecordsSynced   int64      `db:"total_records_synced"`
	SyncFrequencyMinutes int        `db:"sync_frequency_minutes"`
	IsActive             bool       `db:"is_active"`
}

// Interval returns the configured frequency as a duration
func (c *SyncConfig) Interval() time.Duration {
	return time.Duration(c.SyncFrequencyMinutes) * time.Minute
}

// NextSyncAt estimates the next scheduled run. It is nil when the job is
// inactive or has never run.
func (c *SyncConfig) NextSyncAt() *time.Time {
	if !c.IsActive || c.LastSyncAt == nil {
		return nil
	}
	next := c.LastSyncAt.Add(c.Interval())
	return &next
}

// ValidSyncFrequency reports whether minutes is within the accepted range
func ValidSyncFrequency(minutes int) bool {
	return minutes >= MinSyncFrequencyMinutes && minutes <= MaxSyncFrequencyMinutes
}
