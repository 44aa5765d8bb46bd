package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/service"
)

// ListTransactions handles GET /api/v1/transactions
func (h *Handler) ListTransactions(
	ctx context.Context,
	request api.ListTransactionsRequestObject,
) (api.ListTransactionsResponseObject, error) {
	params := request.Params
	filter := service.TransactionFilter{
		CustomerID: params.CustomerId,
		ListParams: listParams(params.Page, params.PageSize),
	}
	if params.Status != nil {
		filter.Status = models.TransactionStatus(*params.Status)
	}

	page, err := h.transactionManager.ListTransactions(ctx, filter)
	if err != nil {
		status, body := h.errorBody("list transactions", err)
		if status == http.StatusBadRequest {
			return api.ListTransactions400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		return api.ListTransactions500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	data := make([]api.Transaction, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, toAPITransaction(&page.Items[i]))
	}

	return api.ListTransactions200JSONResponse{
		Data:     data,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}, nil
}

// GetTransaction handles GET /api/v1/transactions/{transactionId}
func (h *Handler) GetTransaction(
	ctx context.Context,
	request api.GetTransactionRequestObject,
) (api.GetTransactionResponseObject, error) {
	txn, err := h.transactionManager.GetTransaction(ctx, request.TransactionId)
	if err != nil {
		status, body := h.errorBody("get transaction", err)
		if status == http.StatusNotFound {
			return api.GetTransaction404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.GetTransaction500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetTransaction200JSONResponse(toAPITransaction(txn)), nil
}

func listParams(page, pageSize *int) service.ListParams {
	var p service.ListParams
	if page != nil {
		p.Page = *page
	}
	if pageSize != nil {
		p.PageSize = *pageSize
	}
	return p
}
