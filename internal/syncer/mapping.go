package syncer

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/processor"
)

// toTransaction maps a normalized processor record onto the stored shape
func toTransaction(rec *processor.Record, customerID *uuid.UUID) (*models.Transaction, error) {
	billing, err := addressJSON(rec.Billing)
	if err != nil {
		return nil, fmt.Errorf("failed to encode billing address: %w", err)
	}
	shipping, err := addressJSON(rec.Shipping)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipping address: %w", err)
	}

	txn := &models.Transaction{
		ID:                 rec.ID,
		CustomerID:         customerID,
		ExternalCustomerID: optional(rec.CustomerID),
		SubscriptionID:     optional(rec.SubscriptionID),
		SettlementBatchID:  optional(rec.SettlementBatchID),
		Type:               rec.Type,
		Kind:               rec.Kind,
		Status:             models.TransactionStatus(rec.Status),
		PaymentMethod:      rec.PaymentMethod,
		ResponseCode:       rec.ResponseCode,
		ResponseMessage:    rec.ResponseMessage,
		IPAddress:          rec.IPAddress,
		Description:        rec.Description,
		RawResponse:        rec.Raw,
		BillingAddress:     billing,
		ShippingAddress:    shipping,
		AmountCents:        rec.AmountCents,
		SettledAt:          rec.SettledAt,
		ProcessorUpdatedAt: rec.ProcessorUpdatedAt,
	}

	if rec.CreatedAt != nil {
		txn.CreatedAt = *rec.CreatedAt
	}
	switch {
	case rec.UpdatedAt != nil:
		txn.UpdatedAt = *rec.UpdatedAt
	case rec.ProcessorUpdatedAt != nil:
		txn.UpdatedAt = *rec.ProcessorUpdatedAt
	default:
		txn.UpdatedAt = txn.CreatedAt
	}
	return txn, nil
}

func addressJSON(addr *processor.Address) (json.RawMessage, error) {
	if addr.IsZero() {
		return nil, nil
	}
	return json.Marshal(addr)
}
