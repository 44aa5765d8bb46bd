// Package handlers implements HTTP handlers for the donorsync staff API.
package handlers

import (
	"log/slog"

	"github.com/benx421/donorsync/internal/service"
)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	syncManager        service.SyncManager
	transactionManager service.TransactionManager
	customerManager    service.CustomerManager
	healthChecker      service.HealthChecker
	logger             *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	syncManager service.SyncManager,
	transactionManager service.TransactionManager,
	customerManager service.CustomerManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		syncManager:        syncManager,
		transactionManager: transactionManager,
		customerManager:    customerManager,
		healthChecker:      healthChecker,
		logger:             logger,
	}
}
