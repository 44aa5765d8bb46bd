package handlers

import (
	"context"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
)

// GetSyncConfig handles GET /api/v1/sync/config
func (h *Handler) GetSyncConfig(
	ctx context.Context,
	request api.GetSyncConfigRequestObject,
) (api.GetSyncConfigResponseObject, error) {
	cfg, err := h.syncManager.GetConfig(ctx)
	if err != nil {
		_, body := h.errorBody("get sync config", err)
		return api.GetSyncConfig500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetSyncConfig200JSONResponse(toAPISyncConfig(cfg)), nil
}

// UpdateSyncConfig handles PUT /api/v1/sync/config
func (h *Handler) UpdateSyncConfig(
	ctx context.Context,
	request api.UpdateSyncConfigRequestObject,
) (api.UpdateSyncConfigResponseObject, error) {
	if request.Body == nil {
		return api.UpdateSyncConfig400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse(invalidRequest("request body is required")),
		}, nil
	}

	cfg, err := h.syncManager.UpdateConfig(ctx, request.Body.IsActive, request.Body.SyncFrequencyMinutes)
	if err != nil {
		status, body := h.errorBody("update sync config", err)
		if status == http.StatusBadRequest {
			return api.UpdateSyncConfig400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		}
		return api.UpdateSyncConfig500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.UpdateSyncConfig200JSONResponse(toAPISyncConfig(cfg)), nil
}

// GetSyncStatus handles GET /api/v1/sync/status
func (h *Handler) GetSyncStatus(
	ctx context.Context,
	request api.GetSyncStatusRequestObject,
) (api.GetSyncStatusResponseObject, error) {
	status, err := h.syncManager.Status(ctx)
	if err != nil {
		_, body := h.errorBody("get sync status", err)
		return api.GetSyncStatus500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.GetSyncStatus200JSONResponse(toAPISyncStatus(status)), nil
}

// TriggerSync handles POST /api/v1/sync/trigger
func (h *Handler) TriggerSync(
	ctx context.Context,
	request api.TriggerSyncRequestObject,
) (api.TriggerSyncResponseObject, error) {
	ack, err := h.syncManager.Trigger(ctx)
	if err != nil {
		status, body := h.errorBody("trigger sync", err)
		if status == http.StatusConflict {
			return api.TriggerSync409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		}
		return api.TriggerSync500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
	}

	return api.TriggerSync202JSONResponse{
		Status:      api.TriggerResponseStatus(ack.Status),
		Message:     ack.Message,
		TriggeredAt: ack.TriggeredAt,
	}, nil
}

// SyncRange handles POST /api/v1/sync/range
func (h *Handler) SyncRange(
	ctx context.Context,
	request api.SyncRangeRequestObject,
) (api.SyncRangeResponseObject, error) {
	if request.Body == nil {
		return api.SyncRange400JSONResponse{
			BadRequestJSONResponse: api.BadRequestJSONResponse(invalidRequest("request body is required")),
		}, nil
	}

	result, err := h.syncManager.RunRange(ctx, request.Body.StartDate.Time, request.Body.EndDate.Time)
	if err != nil {
		status, body := h.errorBody("sync range", err)
		switch status {
		case http.StatusBadRequest:
			return api.SyncRange400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(body)}, nil
		case http.StatusConflict:
			return api.SyncRange409JSONResponse{ConflictJSONResponse: api.ConflictJSONResponse(body)}, nil
		default:
			return api.SyncRange500JSONResponse{InternalErrorJSONResponse: api.InternalErrorJSONResponse(body)}, nil
		}
	}

	return api.SyncRange200JSONResponse(toAPISyncResult(result)), nil
}
