package syncer

import (
	"fmt"
	"time"

	"github.com/benx421/donorsync/internal/models"
)

// Trigger identifies what started a run
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
	TriggerRange     Trigger = "range"
	TriggerCLI       Trigger = "cli"
)

// RecordError is a failure isolated to one processor record
type RecordError struct {
	RecordID string `json:"recordId"`
	Error    string `json:"error"`
}

// Result summarizes one sync run
type Result struct {
	StartedAt                  time.Time         `json:"startedAt"`
	FinishedAt                 time.Time         `json:"finishedAt"`
	Job                        string            `json:"job"`
	Trigger                    Trigger           `json:"trigger"`
	StartDate                  string            `json:"startDate"`
	EndDate                    string            `json:"endDate"`
	Status                     models.SyncStatus `json:"status"`
	Message                    string            `json:"message,omitempty"`
	Errors                     []RecordError     `json:"errors"`
	ErrorCount                 int               `json:"errorCount"`
	TransactionsProcessed      int               `json:"transactionsProcessed"`
	TotalTransactionsRetrieved int               `json:"totalTransactionsRetrieved"`
	PagesProcessed             int               `json:"pagesProcessed"`
	Inserted                   int               `json:"inserted"`
	Updated                    int               `json:"updated"`
	Unchanged                  int               `json:"unchanged"`
	CustomersCreated           int               `json:"customersCreated"`
	Truncated                  bool              `json:"truncated"`

	// fatal is the run-level failure, if any
	fatal     string
	maxErrors int
}

func newResult(job string, req Request, startedAt time.Time, maxErrors int) *Result {
	return &Result{
		StartedAt: startedAt,
		Job:       job,
		Trigger:   req.Trigger,
		StartDate: req.Start.Format(dateLayout),
		EndDate:   req.End.Format(dateLayout),
		Status:    models.SyncStatusInProgress,
		Errors:    []RecordError{},
		maxErrors: maxErrors,
	}
}

// RecordsChanged is the number of transactions inserted or updated
func (r *Result) RecordsChanged() int {
	return r.Inserted + r.Updated
}

// Duration is the wall-clock time of the run
func (r *Result) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Result) addError(recordID string, err error) {
	r.ErrorCount++
	if len(r.Errors) < r.maxErrors {
		r.Errors = append(r.Errors, RecordError{RecordID: recordID, Error: err.Error()})
	}
}

// fail marks a run-level failure. The first failure wins.
func (r *Result) fail(msg string) {
	if r.fatal == "" {
		r.fatal = msg
	}
}

// settle computes the terminal status and its summary message
func (r *Result) settle() {
	switch {
	case r.fatal != "":
		r.Status = models.SyncStatusError
		r.Message = r.fatal
	case r.ErrorCount > 0:
		r.Status = models.SyncStatusPartialSuccess
		r.Message = fmt.Sprintf("%d errors while syncing %d transactions; first error: %s",
			r.ErrorCount, r.TotalTransactionsRetrieved, r.firstError())
	default:
		r.Status = models.SyncStatusSuccess
		r.Message = fmt.Sprintf("synced %d transactions (%d changed)", r.TransactionsProcessed, r.RecordsChanged())
	}
	if r.Truncated {
		r.Message += fmt.Sprintf("; stopped at the %d page limit", r.PagesProcessed)
	}
}

func (r *Result) firstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	e := r.Errors[0]
	if e.RecordID == "" {
		return e.Error
	}
	return e.RecordID + ": " + e.Error
}

// errorText is the value stored as the job's last error, nil on success
func (r *Result) errorText() *string {
	if r.Status == models.SyncStatusSuccess {
		return nil
	}
	msg := r.Message
	return &msg
}
