package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/handlers"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/scheduler"
	"github.com/benx421/donorsync/internal/service"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the staff API and the sync scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before serving")

	return cmd
}

func runServe(parent context.Context, migrate bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("starting donorsync api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if migrate {
		applied, err := database.Migrate(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", applied)
	}

	engine, err := newEngine(ctx, cfg, database, logger)
	if err != nil {
		return err
	}

	configs := repository.NewSyncConfigRepository(database)

	var sched *scheduler.Scheduler
	var schedulerIface service.Scheduler
	if cfg.Sync.SchedulerEnabled {
		sched = scheduler.New(engine, configs, logger, scheduler.Options{})
		if err := sched.Start(ctx); err != nil {
			return err
		}
		schedulerIface = sched
	} else {
		logger.Info("sync scheduler disabled by configuration")
	}

	syncService := service.NewSyncService(configs, engine, schedulerIface, logger)

	router, err := handlers.NewRouter(database, cfg, syncService, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Error("scheduler did not stop cleanly", "error", err)
		}
	}
	if err := syncService.Wait(shutdownCtx); err != nil {
		logger.Error("manual sync still running at shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
