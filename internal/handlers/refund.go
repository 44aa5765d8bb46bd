package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
)

// RefundTransaction handles POST /api/v1/transactions/{transactionId}/refund
func (h *Handler) RefundTransaction(
	ctx context.Context,
	request api.RefundTransactionRequestObject,
) (api.RefundTransactionResponseObject, error) {
	txn, err := h.transactionManager.Refund(ctx, request.TransactionId)
	if err != nil {
		return h.handleRefundError(err)
	}

	return api.RefundTransaction200JSONResponse(toAPITransaction(txn)), nil
}

// handleRefundError maps service errors to appropriate HTTP responses
func (h *Handler) handleRefundError(err error) (api.RefundTransactionResponseObject, error) {
	status, body := h.errorBody("refund transaction", err)

	switch status {
	case http.StatusNotFound:
		return api.RefundTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
	case http.StatusConflict:
		return api.RefundTransaction409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
	default:
		return api.RefundTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}
}
