package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/scheduler"
	"github.com/benx421/donorsync/internal/syncer"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// SyncRunner runs sync jobs. *syncer.Engine implements it.
type SyncRunner interface {
	Run(ctx context.Context, req syncer.Request) (*syncer.Result, error)
	StartIncremental(trigger syncer.Trigger) (func(ctx context.Context) (*syncer.Result, error), error)
	Running() bool
	JobName() string
}

// Scheduler is the part of the scheduler the sync service drives
type Scheduler interface {
	Apply(cfg *models.SyncConfig)
	State() scheduler.State
}

// SyncManager handles sync configuration, status and manual runs
type SyncManager interface {
	GetConfig(ctx context.Context) (*models.SyncConfig, error)
	UpdateConfig(ctx context.Context, isActive bool, frequencyMinutes int) (*models.SyncConfig, error)
	Status(ctx context.Context) (*SyncStatus, error)
	Trigger(ctx context.Context) (*TriggerAck, error)
	RunRange(ctx context.Context, start, end time.Time) (*syncer.Result, error)
	Activity() SyncActivity
}

// TransactionManager handles transaction reads and the refund transition
type TransactionManager interface {
	ListTransactions(ctx context.Context, filter TransactionFilter) (*ListResult[models.Transaction], error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	Refund(ctx context.Context, id string) (*models.Transaction, error)
}

// CustomerManager handles customer reads
type CustomerManager interface {
	ListCustomers(ctx context.Context, filter CustomerFilter) (*ListResult[models.Customer], error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	CustomerID *uuid.UUID
	Status     models.TransactionStatus
	ListParams
}

// CustomerFilter narrows a customer listing
type CustomerFilter struct {
	Type models.CustomerType
	ListParams
}

// Ensure concrete types implement interfaces
var (
	_ SyncManager        = (*SyncService)(nil)
	_ TransactionManager = (*TransactionService)(nil)
	_ CustomerManager    = (*CustomerService)(nil)
	_ SyncRunner         = (*syncer.Engine)(nil)
	_ Scheduler          = (*scheduler.Scheduler)(nil)
)
