//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/benx421/donorsync/internal/archive"
	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/handlers"
	"github.com/benx421/donorsync/internal/middleware"
	"github.com/benx421/donorsync/internal/processor"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/service"
	"github.com/benx421/donorsync/internal/syncer"
)

const (
	testSessionSecret = "integration-session-secret"
	testProcessorKey  = "integration-processor-token"
)

// FakeProcessor serves a fixed set of transaction records as a single page.
type FakeProcessor struct {
	Server *httptest.Server

	mu      sync.Mutex
	records []map[string]any
	calls   int
}

func newFakeProcessor() *FakeProcessor {
	fp := &FakeProcessor{}
	fp.Server = httptest.NewServer(http.HandlerFunc(fp.serve))
	return fp
}

func (fp *FakeProcessor) serve(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testProcessorKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	fp.mu.Lock()
	fp.calls++
	records := fp.records
	fp.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": records,
		"pagination": map[string]any{
			"page":       1,
			"totalPages": 1,
			"total":      len(records),
		},
	})
}

// SetRecords replaces the records returned by the next fetch.
func (fp *FakeProcessor) SetRecords(records ...map[string]any) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.records = records
}

// Calls returns how many pages were served.
func (fp *FakeProcessor) Calls() int {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.calls
}

// TestServer wraps the HTTP test server, database and fake processor for integration tests.
type TestServer struct {
	Server    *httptest.Server
	Database  *db.DB
	Processor *FakeProcessor
	Sync      *service.SyncService
	Token     string
	t         *testing.T
}

// SetupTest creates a new test server with a clean database state. The test
// is skipped when no database is reachable.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	dbCfg, err := config.LoadDatabase()
	require.NoError(t, err, "failed to load database config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &dbCfg, logger)
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}

	_, err = database.Migrate(ctx)
	require.NoError(t, err, "failed to migrate database")

	resetTestData(t, database)

	fake := newFakeProcessor()

	cfg := &config.Config{
		Database: dbCfg,
		Auth: config.AuthConfig{
			SessionSecret: testSessionSecret,
			SessionCookie: "donorsync_session",
		},
		Processor: config.ProcessorConfig{
			BaseURL:        fake.Server.URL,
			SearchPath:     "/api/v1/transactions/search",
			APIToken:       testProcessorKey,
			RequestTimeout: 5 * time.Second,
			PageSize:       100,
		},
		Sync: config.SyncConfig{
			JobName:           "integration",
			Timeout:           time.Minute,
			MaxPages:          10,
			LookbackDays:      30,
			OverlapDays:       1,
			MaxReportedErrors: 50,
		},
	}

	client, err := processor.NewClient(cfg.Processor, logger)
	require.NoError(t, err)

	archiver, err := archive.New(context.Background(), cfg.Archive, logger)
	require.NoError(t, err)

	configs := repository.NewSyncConfigRepository(database)
	engine := syncer.NewEngine(client, syncer.Stores{
		Customers:    repository.NewCustomerRepository(database),
		Transactions: repository.NewTransactionRepository(database),
		Configs:      configs,
	}, archiver, logger, syncer.OptionsFromConfig(cfg.Sync, client.PageSize()))

	syncService := service.NewSyncService(configs, engine, nil, logger)

	router, err := handlers.NewRouter(database, cfg, syncService, logger)
	require.NoError(t, err, "failed to build router")

	token, err := middleware.IssueStaffToken(testSessionSecret, "staff-1", "staff@example.org", time.Hour)
	require.NoError(t, err)

	return &TestServer{
		Server:    httptest.NewServer(router),
		Database:  database,
		Processor: fake,
		Sync:      syncService,
		Token:     token,
		t:         t,
	}
}

// Close shuts down the servers and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Processor.Server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = ts.Sync.Wait(ctx)

	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE customers CASCADE;
		TRUNCATE TABLE sync_configs CASCADE;
		TRUNCATE TABLE idempotency_keys CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

// Do sends an authenticated request with an optional JSON body.
func (ts *TestServer) Do(t *testing.T, method, path string, body any, idempotencyKey string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	req.Header.Set("Authorization", "Bearer "+ts.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

// SyncRange runs a synchronous sync over the given dates.
func (ts *TestServer) SyncRange(t *testing.T, start, end, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.Do(t, http.MethodPost, "/api/v1/sync/range", map[string]any{
		"startDate": start,
		"endDate":   end,
	}, idempotencyKey)
}

// Refund sends a POST request to refund a transaction.
func (ts *TestServer) Refund(t *testing.T, transactionID, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.Do(t, http.MethodPost, "/api/v1/transactions/"+transactionID+"/refund", nil, idempotencyKey)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func donation(id string, amount any, status, email string) map[string]any {
	return map[string]any{
		"id":        id,
		"amount":    amount,
		"status":    status,
		"createdAt": "2026-10-01T10:00:00Z",
		"customer": map[string]any{
			"id":        "cus_" + email,
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     email,
		},
	}
}
