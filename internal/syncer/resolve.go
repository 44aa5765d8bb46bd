package syncer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/processor"
)

// syntheticNamespace seeds external ids derived for records that carry none
var syntheticNamespace = uuid.MustParse("5b0c8f0e-3f2a-4d61-9a57-2c1d6e7f8a90")

func hasIdentity(rec *processor.Record) bool {
	return (rec.FirstName != "" && rec.LastName != "") || rec.Email != ""
}

// resolveCustomer finds or creates the local customer for a record. Lookup
// order is processor customer id, then email, then first and last name among
// customers without an email. Existing customers only gain fields they lack.
func (e *Engine) resolveCustomer(ctx context.Context, rec *processor.Record) (uuid.UUID, bool, error) {
	details := contactDetails(rec)
	syncedAt := e.now().UTC()

	existing, err := e.findCustomer(ctx, rec)
	if err != nil {
		return uuid.Nil, false, err
	}
	if existing != nil {
		if _, err := e.customers.FillMissing(ctx, existing.ID, details, syncedAt); err != nil {
			return uuid.Nil, false, err
		}
		return existing.ID, false, nil
	}

	customer := &models.Customer{
		ExternalCustomerID: externalCustomerID(rec),
		FirstName:          rec.FirstName,
		LastName:           rec.LastName,
		Email:              details.Email,
		Phone:              details.Phone,
		AddressLine1:       details.AddressLine1,
		AddressLine2:       details.AddressLine2,
		City:               details.City,
		State:              details.State,
		PostalCode:         details.PostalCode,
		Country:            details.Country,
		Type:               models.CustomerTypeOneTime,
		LastSyncedAt:       &syncedAt,
	}
	if rec.SubscriptionID != "" {
		customer.Type = models.CustomerTypeRecurring
	}

	err = e.customers.Create(ctx, customer)
	if errors.Is(err, models.ErrDuplicate) {
		// created concurrently under the same external id
		found, findErr := e.customers.FindByExternalID(ctx, customer.ExternalCustomerID)
		if findErr != nil {
			return uuid.Nil, false, fmt.Errorf("customer %s exists but could not be loaded: %w", customer.ExternalCustomerID, findErr)
		}
		return found.ID, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return customer.ID, true, nil
}

func (e *Engine) findCustomer(ctx context.Context, rec *processor.Record) (*models.Customer, error) {
	lookups := []func() (*models.Customer, error){}
	if rec.CustomerID != "" {
		lookups = append(lookups, func() (*models.Customer, error) {
			return e.customers.FindByExternalID(ctx, rec.CustomerID)
		})
	}
	if rec.Email != "" {
		lookups = append(lookups, func() (*models.Customer, error) {
			return e.customers.FindByEmail(ctx, rec.Email)
		})
	} else if rec.FirstName != "" && rec.LastName != "" {
		lookups = append(lookups, func() (*models.Customer, error) {
			return e.customers.FindByName(ctx, rec.FirstName, rec.LastName)
		})
	}

	for _, lookup := range lookups {
		customer, err := lookup()
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}
	return nil, nil
}

// externalCustomerID returns the processor's customer id or a stable
// synthetic one derived from the matching key
func externalCustomerID(rec *processor.Record) string {
	if rec.CustomerID != "" {
		return rec.CustomerID
	}
	key := "name:" + strings.ToLower(rec.FirstName) + "|" + strings.ToLower(rec.LastName)
	if rec.Email != "" {
		key = "email:" + strings.ToLower(rec.Email)
	}
	return "syn_" + uuid.NewSHA1(syntheticNamespace, []byte(key)).String()
}

func contactDetails(rec *processor.Record) models.ContactDetails {
	details := models.ContactDetails{
		Email: optional(rec.Email),
		Phone: optional(rec.Phone),
	}
	if addr := rec.Billing; addr != nil {
		details.AddressLine1 = optional(addr.Line1)
		details.AddressLine2 = optional(addr.Line2)
		details.City = optional(addr.City)
		details.State = optional(addr.State)
		details.PostalCode = optional(addr.PostalCode)
		details.Country = optional(addr.Country)
	}
	return details
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
