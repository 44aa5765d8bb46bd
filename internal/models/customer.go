package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerType classifies a donor by giving pattern
type CustomerType string

const (
	CustomerTypeOneTime   CustomerType = "one_time"
	CustomerTypeRecurring CustomerType = "recurring"
	CustomerTypeInactive  CustomerType = "inactive"
)

// Customer represents a donor known to the payment processor
type Customer struct {
	CreatedAt          time.Time    `db:"created_at"`
	UpdatedAt          time.Time    `db:"updated_at"`
	LastSyncedAt       *time.Time   `db:"last_synced_at"`
	Email              *string      `db:"email"`
	Phone              *string      `db:"phone"`
	AddressLine1       *string      `db:"address_line1"`
	AddressLine2       *string      `db:"address_line2"`
	City               *string      `db:"city"`
	State              *string      `db:"state"`
	PostalCode         *string      `db:"postal_code"`
	Country            *string      `db:"country"`
	ExternalCustomerID string       `db:"external_customer_id"`
	FirstName          string       `db:"first_name"`
	LastName           string       `db:"last_name"`
	Type               CustomerType `db:"customer_type"`
	TotalDonatedCents  int64        `db:"total_donated_cents"`
	TransactionCount   int          `db:"transaction_count"`
	ID                 uuid.UUID    `db:"id"`
}

// ContactDetails is the subset of customer fields a sync may fill in
type ContactDetails struct {
	Email        *string
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
}
