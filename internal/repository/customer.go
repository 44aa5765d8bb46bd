package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benx421/donorsync/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByExternalID(ctx context.Context, externalID string) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByName(ctx context.Context, firstName, lastName string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	FillMissing(ctx context.Context, id uuid.UUID, details models.ContactDetails, syncedAt time.Time) (*models.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]models.Customer, int, error)
	RefreshTotals(ctx context.Context, ids []uuid.UUID) error
}

// CustomerFilter narrows a customer listing
type CustomerFilter struct {
	Type models.CustomerType
	Page Page
}

// customerRepository implements CustomerRepository
type customerRepository struct {
	db DBTX
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(database DBTX) CustomerRepository {
	return &customerRepository{db: database}
}

const customerColumns = `
	id, external_customer_id, first_name, last_name, email, phone,
	address_line1, address_line2, city, state, postal_code, country,
	customer_type, total_donated_cents, transaction_count,
	last_synced_at, created_at, updated_at`

func scanCustomer(row rowScanner) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.ExternalCustomerID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.AddressLine1,
		&c.AddressLine2,
		&c.City,
		&c.State,
		&c.PostalCode,
		&c.Country,
		&c.Type,
		&c.TotalDonatedCents,
		&c.TransactionCount,
		&c.LastSyncedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) findOne(ctx context.Context, what, where string, args ...any) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where + ` ORDER BY created_at ASC LIMIT 1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by %s: %w", what, err)
	}
	return customer, nil
}

// FindByID retrieves a customer by its local UUID
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return r.findOne(ctx, "id", "id = $1", id)
}

// FindByExternalID retrieves a customer by the processor-issued customer id
func (r *customerRepository) FindByExternalID(ctx context.Context, externalID string) (*models.Customer, error) {
	return r.findOne(ctx, "external id", "external_customer_id = $1", externalID)
}

// FindByEmail retrieves the oldest customer with the given email, ignoring case
func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.findOne(ctx, "email", "LOWER(email) = LOWER($1)", strings.TrimSpace(email))
}

// FindByName retrieves the oldest customer with the given name and no email
func (r *customerRepository) FindByName(ctx context.Context, firstName, lastName string) (*models.Customer, error) {
	return r.findOne(ctx, "name",
		"LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2) AND email IS NULL",
		strings.TrimSpace(firstName), strings.TrimSpace(lastName),
	)
}

// Create inserts a new customer, generating its id when unset
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if customer.Type == "" {
		customer.Type = models.CustomerTypeOneTime
	}

	query := `
		INSERT INTO customers (
			id, external_customer_id, first_name, last_name, email, phone,
			address_line1, address_line2, city, state, postal_code, country,
			customer_type, last_synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		customer.ID,
		customer.ExternalCustomerID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.AddressLine1,
		customer.AddressLine2,
		customer.City,
		customer.State,
		customer.PostalCode,
		customer.Country,
		customer.Type,
		customer.LastSyncedAt,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer %s: %w", customer.ExternalCustomerID, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// FillMissing sets contact and address fields that are currently NULL and
// stamps last_synced_at. Populated fields are never overwritten.
func (r *customerRepository) FillMissing(
	ctx context.Context,
	id uuid.UUID,
	details models.ContactDetails,
	syncedAt time.Time,
) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET email          = COALESCE(email, $2),
		    phone          = COALESCE(phone, $3),
		    address_line1  = COALESCE(address_line1, $4),
		    address_line2  = COALESCE(address_line2, $5),
		    city           = COALESCE(city, $6),
		    state          = COALESCE(state, $7),
		    postal_code    = COALESCE(postal_code, $8),
		    country        = COALESCE(country, $9),
		    last_synced_at = $10,
		    updated_at     = NOW()
		WHERE id = $1
		RETURNING ` + customerColumns

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query,
		id,
		details.Email,
		details.Phone,
		details.AddressLine1,
		details.AddressLine2,
		details.City,
		details.State,
		details.PostalCode,
		details.Country,
		syncedAt,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update customer contact details: %w", err)
	}
	return customer, nil
}

// List returns a page of customers, newest first, and the total match count
func (r *customerRepository) List(ctx context.Context, filter CustomerFilter) ([]models.Customer, int, error) {
	page := filter.Page.normalized()

	where := "TRUE"
	args := []any{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = fmt.Sprintf("customer_type = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, page.Limit)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, total, nil
}

// RefreshTotals recomputes donation aggregates and classification from the
// transactions table. Only settled transactions count toward totals.
func (r *customerRepository) RefreshTotals(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `
		UPDATE customers c
		SET total_donated_cents = agg.total,
		    transaction_count   = agg.cnt,
		    customer_type       = CASE
		        WHEN agg.recurring THEN 'recurring'
		        WHEN agg.cnt = 0 THEN 'inactive'
		        ELSE 'one_time'
		    END,
		    updated_at = NOW()
		FROM (
			SELECT cu.id,
			       COALESCE(SUM(t.amount_cents) FILTER (WHERE t.status = 'SETTLED'), 0) AS total,
			       COUNT(t.id) FILTER (WHERE t.status = 'SETTLED') AS cnt,
			       COALESCE(BOOL_OR(t.subscription_id IS NOT NULL AND t.subscription_id <> ''), FALSE) AS recurring
			FROM customers cu
			LEFT JOIN transactions t ON t.customer_id = cu.id
			WHERE cu.id = ANY($1::uuid[])
			GROUP BY cu.id
		) agg
		WHERE c.id = agg.id
	`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(keys)); err != nil {
		return fmt.Errorf("failed to refresh customer totals: %w", err)
	}
	return nil
}
