package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/service"
)

// ListCustomers handles GET /api/v1/customers
func (h *Handler) ListCustomers(
	ctx context.Context,
	request api.ListCustomersRequestObject,
) (api.ListCustomersResponseObject, error) {
	params := request.Params
	filter := service.CustomerFilter{
		ListParams: listParams(params.Page, params.PageSize),
	}
	if params.Type != nil {
		filter.Type = models.CustomerType(*params.Type)
	}

	page, err := h.customerManager.ListCustomers(ctx, filter)
	if err != nil {
		status, body := h.errorBody("list customers", err)
		if status == http.StatusBadRequest {
			return api.ListCustomers400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		return api.ListCustomers500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	data := make([]api.Customer, 0, len(page.Items))
	for i := range page.Items {
		data = append(data, toAPICustomer(&page.Items[i]))
	}

	return api.ListCustomers200JSONResponse{
		Data:     data,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}, nil
}

// GetCustomer handles GET /api/v1/customers/{customerId}
func (h *Handler) GetCustomer(
	ctx context.Context,
	request api.GetCustomerRequestObject,
) (api.GetCustomerResponseObject, error) {
	customer, err := h.customerManager.GetCustomer(ctx, request.CustomerId)
	if err != nil {
		status, body := h.errorBody("get customer", err)
		if status == http.StatusNotFound {
			return api.GetCustomer404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse(body)}, nil
		}
		return api.GetCustomer500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetCustomer200JSONResponse(toAPICustomer(customer)), nil
}
