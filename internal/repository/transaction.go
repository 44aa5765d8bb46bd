package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/donorsync/internal/models"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	Upsert(ctx context.Context, txn *models.Transaction) (models.UpsertOutcome, error)
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
	FindByIDForUpdate(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int, error)
	UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error
	Count(ctx context.Context) (int64, error)
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	CustomerID *uuid.UUID
	Status     models.TransactionStatus
	Page       Page
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db  DBTX
	now func() time.Time
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(database DBTX) TransactionRepository {
	return &transactionRepository{db: database, now: time.Now}
}

const transactionColumns = `
	id, external_customer_id, customer_id, type, kind, amount_cents, status,
	payment_method, raw_response, response_code, response_message,
	subscription_id, settlement_batch_id, billing_address, shipping_address,
	ip_address, description, content_hash, created_at, updated_at,
	settled_at, processor_updated_at, synced_at`

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		t                      models.Transaction
		raw, billing, shipping []byte
	)
	err := row.Scan(
		&t.ID,
		&t.ExternalCustomerID,
		&t.CustomerID,
		&t.Type,
		&t.Kind,
		&t.AmountCents,
		&t.Status,
		&t.PaymentMethod,
		&raw,
		&t.ResponseCode,
		&t.ResponseMessage,
		&t.SubscriptionID,
		&t.SettlementBatchID,
		&billing,
		&shipping,
		&t.IPAddress,
		&t.Description,
		&t.ContentHash,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.SettledAt,
		&t.ProcessorUpdatedAt,
		&t.SyncedAt,
	)
	if err != nil {
		return nil, err
	}
	t.RawResponse = raw
	t.BillingAddress = billing
	t.ShippingAddress = shipping
	return &t, nil
}

// Upsert inserts the transaction or overwrites every column of the existing
// row with the same processor id. synced_at is always stamped to now. When
// the processor sent no created or updated time, inserts default them to now
// and updates keep the stored values. The outcome compares the stored content
// hash with the incoming one.
func (r *transactionRepository) Upsert(ctx context.Context, txn *models.Transaction) (models.UpsertOutcome, error) {
	if txn.ID == "" {
		return models.UpsertUnchanged, fmt.Errorf("transaction id is required")
	}

	txn.ContentHash = txn.ComputeContentHash()
	txn.SyncedAt = r.now().UTC()

	var createdAt, updatedAt *time.Time
	if !txn.CreatedAt.IsZero() {
		createdAt = &txn.CreatedAt
	}
	if !txn.UpdatedAt.IsZero() {
		updatedAt = &txn.UpdatedAt
	}

	query := `
		WITH prev AS (
			SELECT content_hash FROM transactions WHERE id = $1
		)
		INSERT INTO transactions (
			id, external_customer_id, customer_id, type, kind, amount_cents, status,
			payment_method, raw_response, response_code, response_message,
			subscription_id, settlement_batch_id, billing_address, shipping_address,
			ip_address, description, content_hash, created_at, updated_at,
			settled_at, processor_updated_at, synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			COALESCE($19::timestamptz, $23),
			COALESCE($20::timestamptz, $19::timestamptz, $23),
			$21, $22, $23
		)
		ON CONFLICT (id) DO UPDATE SET
			external_customer_id = EXCLUDED.external_customer_id,
			customer_id          = EXCLUDED.customer_id,
			type                 = EXCLUDED.type,
			kind                 = EXCLUDED.kind,
			amount_cents         = EXCLUDED.amount_cents,
			status               = EXCLUDED.status,
			payment_method       = EXCLUDED.payment_method,
			raw_response         = EXCLUDED.raw_response,
			response_code        = EXCLUDED.response_code,
			response_message     = EXCLUDED.response_message,
			subscription_id      = EXCLUDED.subscription_id,
			settlement_batch_id  = EXCLUDED.settlement_batch_id,
			billing_address      = EXCLUDED.billing_address,
			shipping_address     = EXCLUDED.shipping_address,
			ip_address           = EXCLUDED.ip_address,
			description          = EXCLUDED.description,
			content_hash         = EXCLUDED.content_hash,
			created_at           = COALESCE($19::timestamptz, transactions.created_at),
			updated_at           = COALESCE($20::timestamptz, transactions.updated_at),
			settled_at           = EXCLUDED.settled_at,
			processor_updated_at = EXCLUDED.processor_updated_at,
			synced_at            = EXCLUDED.synced_at
		RETURNING (SELECT content_hash FROM prev), created_at, updated_at
	`

	var previousHash sql.NullString
	err := r.db.QueryRowContext(ctx, query,
		txn.ID,
		txn.ExternalCustomerID,
		txn.CustomerID,
		txn.Type,
		txn.Kind,
		txn.AmountCents,
		txn.Status,
		txn.PaymentMethod,
		nullableJSON(txn.RawResponse),
		txn.ResponseCode,
		txn.ResponseMessage,
		txn.SubscriptionID,
		txn.SettlementBatchID,
		nullableJSON(txn.BillingAddress),
		nullableJSON(txn.ShippingAddress),
		txn.IPAddress,
		txn.Description,
		txn.ContentHash,
		createdAt,
		updatedAt,
		txn.SettledAt,
		txn.ProcessorUpdatedAt,
		txn.SyncedAt,
	).Scan(&previousHash, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return models.UpsertUnchanged, fmt.Errorf("failed to upsert transaction %s: %w", txn.ID, err)
	}

	switch {
	case !previousHash.Valid:
		return models.UpsertInserted, nil
	case previousHash.String != txn.ContentHash:
		return models.UpsertUpdated, nil
	default:
		return models.UpsertUnchanged, nil
	}
}

// FindByID retrieves a transaction by processor id
func (r *transactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// FindByIDForUpdate retrieves a transaction and locks the row for the
// surrounding database transaction
func (r *transactionRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.Transaction, error) {
	return r.findOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1 FOR UPDATE`, id)
}

func (r *transactionRepository) findOne(ctx context.Context, query, id string) (*models.Transaction, error) {
	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by id: %w", err)
	}
	return txn, nil
}

// List returns a page of transactions, newest first, and the total match count
func (r *transactionRepository) List(ctx context.Context, filter TransactionFilter) ([]models.Transaction, int, error) {
	page := filter.Page.normalized()

	where := "TRUE"
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, page.Limit, page.Offset)
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0, page.Limit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, total, nil
}

// UpdateStatus sets a transaction's status
func (r *transactionRepository) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction not found: %w", models.ErrNotFound)
	}

	return nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}
