package syncer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/processor"
	"github.com/benx421/donorsync/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pagedFetcher serves pre-built pages and records each request
type pagedFetcher struct {
	errs     map[int]error
	pages    map[int][]processor.Record
	fullPage func(page int) []processor.Record
	block    chan struct{}
	requests []processor.PageRequest
	mu       sync.Mutex
}

func (f *pagedFetcher) FetchPage(ctx context.Context, req processor.PageRequest) (*processor.Page, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, &processor.NetworkError{Strategy: processor.StrategyBearer, Err: ctx.Err()}
		}
	}
	if err := f.errs[req.Page]; err != nil {
		return nil, err
	}
	if f.fullPage != nil {
		return &processor.Page{Page: req.Page, PageSize: req.PageSize, Records: f.fullPage(req.Page)}, nil
	}
	return &processor.Page{Page: req.Page, PageSize: req.PageSize, Records: f.pages[req.Page]}, nil
}

func (f *pagedFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func makeRecords(prefix string, n int) []processor.Record {
	recs := make([]processor.Record, n)
	for i := range recs {
		recs[i] = processor.Record{
			ID:          fmt.Sprintf("%s_%03d", prefix, i),
			Status:      "SETTLED",
			AmountCents: int64(100 + i),
			Raw:         []byte(fmt.Sprintf(`{"id":"%s_%03d"}`, prefix, i)),
		}
	}
	return recs
}

// memCustomers is an in-memory CustomerRepository
type memCustomers struct {
	byID      map[uuid.UUID]*models.Customer
	failEmail map[string]error
	refreshed []uuid.UUID
	mu        sync.Mutex
}

func newMemCustomers() *memCustomers {
	return &memCustomers{byID: map[uuid.UUID]*models.Customer{}, failEmail: map[string]error{}}
}

func (m *memCustomers) find(match func(c *models.Customer) bool) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best *models.Customer
	for _, c := range m.byID {
		if match(c) && (best == nil || c.CreatedAt.Before(best.CreatedAt)) {
			best = c
		}
	}
	if best == nil {
		return nil, fmt.Errorf("customer not found: %w", models.ErrNotFound)
	}
	cp := *best
	return &cp, nil
}

func (m *memCustomers) FindByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	return m.find(func(c *models.Customer) bool { return c.ID == id })
}

func (m *memCustomers) FindByExternalID(_ context.Context, externalID string) (*models.Customer, error) {
	return m.find(func(c *models.Customer) bool { return c.ExternalCustomerID == externalID })
}

func (m *memCustomers) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	if err := m.failEmail[strings.ToLower(email)]; err != nil {
		return nil, err
	}
	return m.find(func(c *models.Customer) bool {
		return c.Email != nil && strings.EqualFold(*c.Email, email)
	})
}

func (m *memCustomers) FindByName(_ context.Context, firstName, lastName string) (*models.Customer, error) {
	return m.find(func(c *models.Customer) bool {
		return c.Email == nil && strings.EqualFold(c.FirstName, firstName) && strings.EqualFold(c.LastName, lastName)
	})
}

func (m *memCustomers) Create(_ context.Context, customer *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if c.ExternalCustomerID == customer.ExternalCustomerID {
			return fmt.Errorf("customer %s: %w", customer.ExternalCustomerID, models.ErrDuplicate)
		}
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now().Add(time.Duration(len(m.byID)) * time.Millisecond)
	cp := *customer
	m.byID[customer.ID] = &cp
	return nil
}

func (m *memCustomers) FillMissing(_ context.Context, id uuid.UUID, d models.ContactDetails, syncedAt time.Time) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("customer not found: %w", models.ErrNotFound)
	}
	fill := func(dst **string, src *string) {
		if *dst == nil && src != nil {
			v := *src
			*dst = &v
		}
	}
	fill(&c.Email, d.Email)
	fill(&c.Phone, d.Phone)
	fill(&c.AddressLine1, d.AddressLine1)
	fill(&c.AddressLine2, d.AddressLine2)
	fill(&c.City, d.City)
	fill(&c.State, d.State)
	fill(&c.PostalCode, d.PostalCode)
	fill(&c.Country, d.Country)
	c.LastSyncedAt = &syncedAt
	cp := *c
	return &cp, nil
}

func (m *memCustomers) List(context.Context, repository.CustomerFilter) ([]models.Customer, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Customer, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (m *memCustomers) RefreshTotals(_ context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshed = append(m.refreshed, ids...)
	return nil
}

func (m *memCustomers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// memTransactions is an in-memory TransactionRepository
type memTransactions struct {
	byID   map[string]models.Transaction
	failID map[string]error
	mu     sync.Mutex
}

func newMemTransactions() *memTransactions {
	return &memTransactions{byID: map[string]models.Transaction{}, failID: map[string]error{}}
}

func (m *memTransactions) Upsert(_ context.Context, txn *models.Transaction) (models.UpsertOutcome, error) {
	if err := m.failID[txn.ID]; err != nil {
		return models.UpsertUnchanged, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn.ContentHash = txn.ComputeContentHash()
	txn.SyncedAt = time.Now()
	prev, ok := m.byID[txn.ID]
	m.byID[txn.ID] = *txn
	switch {
	case !ok:
		return models.UpsertInserted, nil
	case prev.ContentHash != txn.ContentHash:
		return models.UpsertUpdated, nil
	default:
		return models.UpsertUnchanged, nil
	}
}

func (m *memTransactions) FindByID(_ context.Context, id string) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("transaction not found: %w", models.ErrNotFound)
	}
	return &t, nil
}

func (m *memTransactions) FindByIDForUpdate(ctx context.Context, id string) (*models.Transaction, error) {
	return m.FindByID(ctx, id)
}

func (m *memTransactions) List(context.Context, repository.TransactionFilter) ([]models.Transaction, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Transaction, 0, len(m.byID))
	for _, t := range m.byID {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *memTransactions) UpdateStatus(_ context.Context, id string, status models.TransactionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("transaction not found: %w", models.ErrNotFound)
	}
	t.Status = status
	m.byID[id] = t
	return nil
}

func (m *memTransactions) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

// memConfigs is an in-memory SyncConfigRepository
type memConfigs struct {
	byName   map[string]*models.SyncConfig
	statuses []models.SyncStatus
	mu       sync.Mutex
}

func newMemConfigs() *memConfigs {
	return &memConfigs{byName: map[string]*models.SyncConfig{}}
}

func (m *memConfigs) getOrInit(name string) *models.SyncConfig {
	cfg, ok := m.byName[name]
	if !ok {
		cfg = &models.SyncConfig{
			Name:                 name,
			IsActive:             true,
			SyncFrequencyMinutes: models.DefaultSyncFrequencyMinutes,
			LastSyncStatus:       models.SyncStatusNeverRun,
		}
		m.byName[name] = cfg
	}
	return cfg
}

func (m *memConfigs) Get(_ context.Context, name string) (*models.SyncConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("sync config %s not found: %w", name, models.ErrNotFound)
	}
	cp := *cfg
	return &cp, nil
}

func (m *memConfigs) GetOrCreate(_ context.Context, name string) (*models.SyncConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *m.getOrInit(name)
	return &cp, nil
}

func (m *memConfigs) UpdateSettings(_ context.Context, name string, isActive bool, frequency int) (*models.SyncConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := m.getOrInit(name)
	cfg.IsActive = isActive
	cfg.SyncFrequencyMinutes = frequency
	cp := *cfg
	return &cp, nil
}

func (m *memConfigs) MarkStarted(_ context.Context, name string, status models.SyncStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getOrInit(name).LastSyncStatus = status
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *memConfigs) Finish(_ context.Context, name string, finish repository.SyncFinish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg := m.getOrInit(name)
	at := finish.At
	cfg.LastSyncAt = &at
	cfg.LastSyncStatus = finish.Status
	cfg.LastSyncError = finish.Error
	cfg.TotalRecordsSynced += finish.Increment
	m.statuses = append(m.statuses, finish.Status)
	return nil
}

func (m *memConfigs) ListByStatus(_ context.Context, status models.SyncStatus) ([]models.SyncConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.SyncConfig
	for _, cfg := range m.byName {
		if cfg.LastSyncStatus == status {
			out = append(out, *cfg)
		}
	}
	return out, nil
}

type testEnv struct {
	fetcher      *pagedFetcher
	customers    *memCustomers
	transactions *memTransactions
	configs      *memConfigs
	engine       *Engine
}

func newTestEnv(fetcher *pagedFetcher, opts Options) *testEnv {
	env := &testEnv{
		fetcher:      fetcher,
		customers:    newMemCustomers(),
		transactions: newMemTransactions(),
		configs:      newMemConfigs(),
	}
	env.engine = NewEngine(fetcher, Stores{
		Customers:    env.customers,
		Transactions: env.transactions,
		Configs:      env.configs,
	}, nil, testLogger(), opts)
	return env
}

func (env *testEnv) config() *models.SyncConfig {
	cfg, _ := env.configs.Get(context.Background(), env.engine.JobName())
	return cfg
}
