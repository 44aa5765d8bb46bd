package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/repository"
)

// CustomerService handles donor reads
type CustomerService struct {
	db *db.DB
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(database *db.DB) *CustomerService {
	return &CustomerService{
		db: database,
	}
}

// ListCustomers returns one page of customers, newest first
func (s *CustomerService) ListCustomers(ctx context.Context, filter CustomerFilter) (*ListResult[models.Customer], error) {
	return listCustomers(ctx, repository.NewCustomerRepository(s.db), filter)
}

func listCustomers(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	filter CustomerFilter,
) (*ListResult[models.Customer], error) {
	params, err := filter.Normalize()
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRequest,
			Message: err.Error(),
		}
	}

	items, total, err := customerRepo.List(ctx, repository.CustomerFilter{
		Type: filter.Type,
		Page: params.repositoryPage(),
	})
	if err != nil {
		return nil, internalError("failed to list customers", err)
	}

	return &ListResult[models.Customer]{
		Items:    items,
		Page:     params.Page,
		PageSize: params.PageSize,
		Total:    total,
	}, nil
}

// GetCustomer retrieves a customer by id
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return getCustomer(ctx, repository.NewCustomerRepository(s.db), id)
}

func getCustomer(ctx context.Context, customerRepo repository.CustomerRepository, id uuid.UUID) (*models.Customer, error) {
	customer, err := customerRepo.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeCustomerNotFound,
			Message: "customer not found",
		}
	}
	if err != nil {
		return nil, internalError("failed to load customer", err)
	}
	return customer, nil
}
