package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the processor-reported state of a transaction
type TransactionStatus string

const (
	TransactionStatusSettled  TransactionStatus = "SETTLED"
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusRefunded TransactionStatus = "REFUNDED"
	TransactionStatusVoided   TransactionStatus = "VOIDED"
)

// Transaction is the local copy of one payment processor transaction.
// ID is the processor's own transaction id.
type Transaction struct {
	CreatedAt          time.Time         `db:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at"`
	SyncedAt           time.Time         `db:"synced_at"`
	SettledAt          *time.Time        `db:"settled_at"`
	ProcessorUpdatedAt *time.Time        `db:"processor_updated_at"`
	CustomerID         *uuid.UUID        `db:"customer_id"`
	ExternalCustomerID *string           `db:"external_customer_id"`
	SubscriptionID     *string           `db:"subscription_id"`
	SettlementBatchID  *string           `db:"settlement_batch_id"`
	ID                 string            `db:"id"`
	Type               string            `db:"type"`
	Kind               string            `db:"kind"`
	Status             TransactionStatus `db:"status"`
	PaymentMethod      string            `db:"payment_method"`
	ResponseCode       string            `db:"response_code"`
	ResponseMessage    string            `db:"response_message"`
	IPAddress          string            `db:"ip_address"`
	Description        string            `db:"description"`
	ContentHash        string            `db:"content_hash"`
	RawResponse        json.RawMessage   `db:"raw_response"`
	BillingAddress     json.RawMessage   `db:"billing_address"`
	ShippingAddress    json.RawMessage   `db:"shipping_address"`
	AmountCents        int64             `db:"amount_cents"`
}

// IsRecurring reports whether the transaction belongs to a subscription
func (t *Transaction) IsRecurring() bool {
	return t.SubscriptionID != nil && *t.SubscriptionID != ""
}

// ComputeContentHash fingerprints every synced field except the sync stamp,
// so repeated observations of an unchanged transaction hash identically.
func (t *Transaction) ComputeContentHash() string {
	fingerprint := struct {
		CreatedAt          time.Time         `json:"c"`
		UpdatedAt          time.Time         `json:"u"`
		SettledAt          *time.Time        `json:"sa"`
		ProcessorUpdatedAt *time.Time        `json:"pu"`
		CustomerID         *uuid.UUID        `json:"cid"`
		ExternalCustomerID *string           `json:"ecid"`
		SubscriptionID     *string           `json:"sub"`
		SettlementBatchID  *string           `json:"sb"`
		Type               string            `json:"t"`
		Kind               string            `json:"k"`
		Status             TransactionStatus `json:"s"`
		PaymentMethod      string            `json:"pm"`
		ResponseCode       string            `json:"rc"`
		ResponseMessage    string            `json:"rm"`
		IPAddress          string            `json:"ip"`
		Description        string            `json:"d"`
		RawResponse        string            `json:"raw"`
		BillingAddress     string            `json:"ba"`
		ShippingAddress    string            `json:"sh"`
		AmountCents        int64             `json:"a"`
	}{
		CreatedAt:          t.CreatedAt.UTC(),
		UpdatedAt:          t.UpdatedAt.UTC(),
		SettledAt:          utcPtr(t.SettledAt),
		ProcessorUpdatedAt: utcPtr(t.ProcessorUpdatedAt),
		CustomerID:         t.CustomerID,
		ExternalCustomerID: t.ExternalCustomerID,
		SubscriptionID:     t.SubscriptionID,
		SettlementBatchID:  t.SettlementBatchID,
		Type:               t.Type,
		Kind:               t.Kind,
		Status:             t.Status,
		PaymentMethod:      t.PaymentMethod,
		ResponseCode:       t.ResponseCode,
		ResponseMessage:    t.ResponseMessage,
		IPAddress:          t.IPAddress,
		Description:        t.Description,
		RawResponse:        string(t.RawResponse),
		BillingAddress:     string(t.BillingAddress),
		ShippingAddress:    string(t.ShippingAddress),
		AmountCents:        t.AmountCents,
	}

	// Marshal cannot fail: every field is a plain value
	data, _ := json.Marshal(fingerprint) //nolint:errcheck // see above
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// UpsertOutcome describes what an upsert did to the stored row
type UpsertOutcome int

const (
	UpsertUnchanged UpsertOutcome = iota
	UpsertInserted
	UpsertUpdated
)

func (o UpsertOutcome) String() string {
	switch o {
	case UpsertInserted:
		return "inserted"
	case UpsertUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Changed reports whether the upsert inserted or modified data
func (o UpsertOutcome) Changed() bool {
	return o == UpsertInserted || o == UpsertUpdated
}
