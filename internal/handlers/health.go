package handlers

import (
	"context"
	"time"

	"github.com/benx421/donorsync/internal/api"
)

const healthPingTimeout = 2 * time.Second

// GetHealth handles GET /health. Only the database decides the status code;
// sync activity is reported alongside it.
func (h *Handler) GetHealth(
	ctx context.Context,
	request api.GetHealthRequestObject,
) (api.GetHealthResponseObject, error) {
	body := api.HealthResponse{
		Status:   api.Healthy,
		Database: api.Up,
	}

	if h.syncManager != nil {
		activity := h.syncManager.Activity()
		body.SyncRunning = activity.Running
		if activity.SchedulerState != "" {
			state := api.HealthResponseScheduler(activity.SchedulerState)
			body.Scheduler = &state
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		body.Status = api.Unhealthy
		body.Database = api.Down
		return api.GetHealth503JSONResponse(body), nil
	}

	return api.GetHealth200JSONResponse(body), nil
}
