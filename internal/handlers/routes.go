package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/benx421/donorsync/internal/api"
	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/middleware"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	syncManager service.SyncManager,
	logger *slog.Logger,
) (http.Handler, error) {
	transactionService := service.NewTransactionService(database)
	customerService := service.NewCustomerService(database)

	handler := NewHandler(syncManager, transactionService, customerService, database, logger)

	return newRouter(handler, repository.NewIdempotencyRepository(database), cfg.Auth, logger)
}

func newRouter(
	handler *Handler,
	idempotencyRepo middleware.IdempotencyRepository,
	auth config.AuthConfig,
	logger *slog.Logger,
) (http.Handler, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := middleware.RequestValidation(swagger, logger)
	if err != nil {
		return nil, err
	}

	strictHandler := api.NewStrictHandlerWithOptions(handler, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			middleware.WriteError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, err.Error())
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed to write response", "path", r.URL.Path, "error", err)
			middleware.WriteError(w, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal error")
		},
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter: mux,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			middleware.WriteError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, err.Error())
		},
	})

	var apiHandler http.Handler = mux
	apiHandler = middleware.Idempotency(idempotencyRepo, logger)(apiHandler)
	apiHandler = validate(apiHandler)
	apiHandler = middleware.StaffAuth(auth, logger)(apiHandler)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Handle("/*", apiHandler)

	return r, nil
}
