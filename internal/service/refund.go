package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
)

// Refund moves a settled transaction to REFUNDED and refreshes the donor's
// totals. A later sync overwrites the status with whatever the processor
// reports.
func (s *TransactionService) Refund(ctx context.Context, id string) (*models.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txTransactionRepo := repository.NewTransactionRepository(tx)
	txCustomerRepo := repository.NewCustomerRepository(tx)

	refunded, err := s.performRefund(ctx, txTransactionRepo, txCustomerRepo, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return refunded, nil
}

// performRefund contains the core refund business logic
func (s *TransactionService) performRefund(
	ctx context.Context,
	transactionRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	id string,
) (*models.Transaction, error) {
	txn, err := transactionRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, transactionLookupError(id, err)
	}

	switch txn.Status {
	case models.TransactionStatusRefunded:
		return nil, &ServiceError{
			Code:    ErrCodeAlreadyRefunded,
			Message: fmt.Sprintf("transaction %s has already been refunded", id),
		}
	case models.TransactionStatusSettled:
	default:
		return nil, &ServiceError{
			Code:    ErrCodeNotRefundable,
			Message: fmt.Sprintf("only settled transactions can be refunded, transaction %s is %s", id, txn.Status),
		}
	}

	if err := transactionRepo.UpdateStatus(ctx, id, models.TransactionStatusRefunded); err != nil {
		return nil, internalError("failed to refund transaction", err)
	}
	txn.Status = models.TransactionStatusRefunded

	if txn.CustomerID != nil {
		if err := customerRepo.RefreshTotals(ctx, []uuid.UUID{*txn.CustomerID}); err != nil {
			return nil, internalError("failed to refresh customer totals", err)
		}
	}

	return txn, nil
}
