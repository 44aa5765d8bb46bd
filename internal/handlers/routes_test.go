package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/middleware"
	"github.com/benx421/donorsync/internal/models"
	repomocks "github.com/benx421/donorsync/internal/repository/mocks"
	"github.com/benx421/donorsync/internal/service"
	"github.com/benx421/donorsync/internal/service/mocks"
)

const routerSecret = "router-test-secret-router-test-secret"

type routerFixture struct {
	router      http.Handler
	syncMgr     *mocks.MockSyncManager
	txnMgr      *mocks.MockTransactionManager
	customerMgr *mocks.MockCustomerManager
	health      *mocks.MockHealthChecker
	idempotency *repomocks.MockIdempotencyRepository
	token       string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		syncMgr:     mocks.NewMockSyncManager(t),
		txnMgr:      mocks.NewMockTransactionManager(t),
		customerMgr: mocks.NewMockCustomerManager(t),
		health:      mocks.NewMockHealthChecker(t),
		idempotency: repomocks.NewMockIdempotencyRepository(t),
	}

	handler := NewHandler(f.syncMgr, f.txnMgr, f.customerMgr, f.health, testLogger())
	router, err := newRouter(handler, f.idempotency, config.AuthConfig{
		SessionSecret: routerSecret,
		SessionCookie: "donorsync_session",
	}, testLogger())
	require.NoError(t, err)
	f.router = router

	token, err := middleware.IssueStaffToken(routerSecret, "staff-7", "ops@example.org", time.Hour)
	require.NoError(t, err)
	f.token = token

	return f
}

func (f *routerFixture) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: "donorsync_session", Value: f.token})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthIsPublic(t *testing.T) {
	f := newRouterFixture(t)
	f.health.On("PingContext", mock.Anything).Return(nil)
	f.syncMgr.On("Activity").Return(service.SyncActivity{SchedulerState: "idle"})

	rec := f.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"up","syncRunning":false,"scheduler":"idle"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestRouter_DocsArePublic(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/docs/openapi", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Donorsync API")
}

func TestRouter_RequiresStaffSession(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{
		"/api/v1/sync/status",
		"/api/v1/sync/config",
		"/api/v1/transactions",
		"/api/v1/customers",
	} {
		rec := f.do(http.MethodGet, target, "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		var body api.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, api.ErrorCodeUnauthorized, body.Error)
	}
}

func TestRouter_GetSyncStatus(t *testing.T) {
	f := newRouterFixture(t)
	f.syncMgr.On("Status", mock.Anything).Return(&service.SyncStatus{
		Status:  service.StatusNotConfigured,
		Message: "Sync has not been configured",
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/sync/status", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"not_configured","message":"Sync has not been configured","nextSyncTime":null}`, rec.Body.String())
}

func TestRouter_ValidationRejectsBeforeHandler(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/sync/config", `{"isActive":true,"syncFrequencyMinutes":0}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.syncMgr.AssertNotCalled(t, "UpdateConfig", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_UpdateSyncConfig(t *testing.T) {
	f := newRouterFixture(t)
	f.syncMgr.On("UpdateConfig", mock.Anything, false, 30).Return(&models.SyncConfig{
		Name:                 models.DefaultSyncJobName,
		SyncFrequencyMinutes: 30,
		LastSyncStatus:       models.SyncStatusNeverRun,
	}, nil)

	rec := f.do(http.MethodPut, "/api/v1/sync/config", `{"isActive":false,"syncFrequencyMinutes":30}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.SyncConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 30, body.SyncFrequencyMinutes)
	assert.False(t, body.IsActive)
}

func TestRouter_GetTransactionPathParam(t *testing.T) {
	f := newRouterFixture(t)
	f.txnMgr.On("GetTransaction", mock.Anything, "txn_abc").
		Return(testTransaction("txn_abc", models.TransactionStatusSettled), nil)

	rec := f.do(http.MethodGet, "/api/v1/transactions/txn_abc", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "txn_abc", body.Id)
}

func TestRouter_RefundReplaysWithIdempotencyKey(t *testing.T) {
	f := newRouterFixture(t)
	f.idempotency.On("Get", mock.Anything, "refund-key", "/api/v1/transactions/txn_abc/refund").
		Return(&models.IdempotencyKey{
			Key:            "refund-key",
			RequestPath:    "/api/v1/transactions/txn_abc/refund",
			ResponseStatus: http.StatusOK,
			ResponseBody:   `{"id":"txn_abc","status":"REFUNDED"}`,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/txn_abc/refund", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Idempotency-Key", "refund-key")
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	f.txnMgr.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestRouter_TriggerConflict(t *testing.T) {
	f := newRouterFixture(t)
	f.syncMgr.On("Trigger", mock.Anything).
		Return(nil, &service.ServiceError{Code: service.ErrCodeSyncInProgress, Message: "a sync is already in progress"})

	rec := f.do(http.MethodPost, "/api/v1/sync/trigger", "", true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"sync_in_progress","message":"a sync is already in progress"}`, rec.Body.String())
}
