package handlers

import (
	"errors"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/service"
)

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidRequest:
		return api.ErrorCodeInvalidRequest
	case service.ErrCodeInvalidFrequency:
		return api.ErrorCodeInvalidFrequency
	case service.ErrCodeInvalidDateRange:
		return api.ErrorCodeInvalidDateRange
	case service.ErrCodeSyncInProgress:
		return api.ErrorCodeSyncInProgress
	case service.ErrCodeTransactionNotFound:
		return api.ErrorCodeTransactionNotFound
	case service.ErrCodeCustomerNotFound:
		return api.ErrorCodeCustomerNotFound
	case service.ErrCodeAlreadyRefunded:
		return api.ErrorCodeAlreadyRefunded
	case service.ErrCodeNotRefundable:
		return api.ErrorCodeNotRefundable
	default:
		return api.ErrorCodeInternalError
	}
}

func statusForCode(code api.ErrorCode) int {
	switch code {
	case api.ErrorCodeInvalidRequest, api.ErrorCodeInvalidFrequency, api.ErrorCodeInvalidDateRange:
		return http.StatusBadRequest
	case api.ErrorCodeTransactionNotFound, api.ErrorCodeCustomerNotFound:
		return http.StatusNotFound
	case api.ErrorCodeSyncInProgress, api.ErrorCodeAlreadyRefunded, api.ErrorCodeNotRefundable:
		return http.StatusConflict
	case api.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// errorBody converts a service failure into the API error body and its
// HTTP status. Internal details are logged, never returned.
func (h *Handler) errorBody(op string, err error) (int, api.Error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("unexpected error", "operation", op, "error", err)
		return http.StatusInternalServerError, api.Error{
			Error:   api.ErrorCodeInternalError,
			Message: "internal error",
		}
	}

	code := mapServiceErrorToCode(svcErr.Code)
	return statusForCode(code), api.Error{
		Error:   code,
		Message: svcErr.Message,
	}
}

func invalidRequest(msg string) api.Error {
	return api.Error{Error: api.ErrorCodeInvalidRequest, Message: msg}
}
