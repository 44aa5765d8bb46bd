package handlers

import (
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/service"
	"github.com/benx421/donorsync/internal/syncer"
)

func toAPISyncConfig(cfg *models.SyncConfig) api.SyncConfig {
	return api.SyncConfig{
		Name:                 cfg.Name,
		IsActive:             cfg.IsActive,
		SyncFrequencyMinutes: cfg.SyncFrequencyMinutes,
		LastSyncAt:           cfg.LastSyncAt,
		LastSyncStatus:       api.SyncRunStatus(cfg.LastSyncStatus),
		LastSyncError:        cfg.LastSyncError,
		TotalRecordsSynced:   cfg.TotalRecordsSynced,
		CreatedAt:            cfg.CreatedAt,
		UpdatedAt:            cfg.UpdatedAt,
	}
}

func toAPISyncStatus(status *service.SyncStatus) api.SyncStatus {
	out := api.SyncStatus{
		Status:       api.SyncStatusStatus(status.Status),
		Message:      status.Message,
		NextSyncTime: status.NextSyncTime,
		LastSyncAt:   status.LastSyncAt,
	}
	if status.Config == nil {
		return out
	}

	cfg := toAPISyncConfig(status.Config)
	out.Config = &cfg
	out.IsActive = &status.IsActive
	out.TotalRecordsSynced = &status.TotalRecordsSynced
	if status.Frequency != "" {
		out.Frequency = &status.Frequency
	}
	if status.SchedulerState != "" {
		state := api.SyncStatusSchedulerState(status.SchedulerState)
		out.SchedulerState = &state
	}
	return out
}

func toAPISyncResult(result *syncer.Result) api.SyncResult {
	errs := make([]api.RecordError, 0, len(result.Errors))
	for _, e := range result.Errors {
		errs = append(errs, api.RecordError{RecordId: e.RecordID, Error: e.Error})
	}

	out := api.SyncResult{
		Status:                     api.SyncRunStatus(result.Status),
		StartDate:                  toAPIDate(result.StartDate),
		EndDate:                    toAPIDate(result.EndDate),
		TransactionsProcessed:      result.TransactionsProcessed,
		TotalTransactionsRetrieved: result.TotalTransactionsRetrieved,
		PagesProcessed:             result.PagesProcessed,
		RecordsChanged:             result.RecordsChanged(),
		CustomersCreated:           &result.CustomersCreated,
		Errors:                     errs,
		ErrorCount:                 result.ErrorCount,
		Truncated:                  result.Truncated,
		StartedAt:                  result.StartedAt,
		FinishedAt:                 result.FinishedAt,
		SyncTime:                   result.Duration().Round(time.Millisecond).String(),
	}
	if result.Message != "" {
		out.Message = &result.Message
	}
	return out
}

func toAPIDate(s string) openapi_types.Date {
	t, err := time.Parse(openapi_types.DateFormat, s)
	if err != nil {
		return openapi_types.Date{}
	}
	return openapi_types.Date{Time: t}
}

func toAPITransaction(txn *models.Transaction) api.Transaction {
	return api.Transaction{
		Id:                 txn.ID,
		CustomerId:         txn.CustomerID,
		ExternalCustomerId: txn.ExternalCustomerID,
		Type:               optionalString(txn.Type),
		Kind:               optionalString(txn.Kind),
		AmountCents:        txn.AmountCents,
		Status:             api.TransactionStatus(txn.Status),
		PaymentMethod:      optionalString(txn.PaymentMethod),
		ResponseCode:       optionalString(txn.ResponseCode),
		ResponseMessage:    optionalString(txn.ResponseMessage),
		SubscriptionId:     txn.SubscriptionID,
		SettlementBatchId:  txn.SettlementBatchID,
		IpAddress:          optionalString(txn.IPAddress),
		Description:        optionalString(txn.Description),
		BillingAddress:     addressObject(txn.BillingAddress),
		ShippingAddress:    addressObject(txn.ShippingAddress),
		CreatedAt:          txn.CreatedAt,
		UpdatedAt:          txn.UpdatedAt,
		SettledAt:          txn.SettledAt,
		ProcessorUpdatedAt: txn.ProcessorUpdatedAt,
		SyncedAt:           txn.SyncedAt,
	}
}

func toAPICustomer(c *models.Customer) api.Customer {
	return api.Customer{
		Id:                 c.ID,
		ExternalCustomerId: c.ExternalCustomerID,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Email:              c.Email,
		Phone:              c.Phone,
		AddressLine1:       c.AddressLine1,
		AddressLine2:       c.AddressLine2,
		City:               c.City,
		State:              c.State,
		PostalCode:         c.PostalCode,
		Country:            c.Country,
		Type:               api.CustomerType(c.Type),
		TotalDonatedCents:  c.TotalDonatedCents,
		TransactionCount:   c.TransactionCount,
		LastSyncedAt:       c.LastSyncedAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func addressObject(raw json.RawMessage) *map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var addr map[string]interface{}
	if err := json.Unmarshal(raw, &addr); err != nil || addr == nil {
		return nil
	}
	return &addr
}
