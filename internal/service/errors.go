package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidRequest      = "invalid_request"
	ErrCodeInvalidFrequency    = "invalid_frequency"
	ErrCodeInvalidDateRange    = "invalid_date_range"
	ErrCodeSyncInProgress      = "sync_in_progress"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeCustomerNotFound    = "customer_not_found"
	ErrCodeAlreadyRefunded     = "already_refunded"
	ErrCodeNotRefundable       = "not_refundable"
	ErrCodeInternalError       = "internal_error"
)

func internalError(msg string, err error) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: msg,
		Err:     err,
	}
}
