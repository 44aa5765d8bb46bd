package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
)

// TransactionService handles transaction reads and refunds
type TransactionService struct {
	db *db.DB
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(database *db.DB) *TransactionService {
	return &TransactionService{
		db: database,
	}
}

// ListTransactions returns one page of transactions, newest first
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter) (*ListResult[models.Transaction], error) {
	return listTransactions(ctx, repository.NewTransactionRepository(s.db), filter)
}

func listTransactions(
	ctx context.Context,
	transactionRepo repository.TransactionRepository,
	filter TransactionFilter,
) (*ListResult[models.Transaction], error) {
	params, err := filter.Normalize()
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	items, total, err := transactionRepo.List(ctx, repository.TransactionFilter{
		CustomerID: filter.CustomerID,
		Status:     filter.Status,
		Page:       params.repositoryPage(),
	})
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	return &ListResult[models.Transaction]{
		Items:    items,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}, nil
}

// GetTransaction retrieves a transaction by its processor id
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	repo := repository.NewTransactionRepository(s.db)
	txn, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, transactionLookupError(id, err)
	}
	return txn, nil
}

func transactionLookupError(id string, err error) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeTransactionNotFound,
			Message: fmt.Sprintf("transaction %s not found", id),
		}
	}
	return internalError("failed to load transaction", err)
}
