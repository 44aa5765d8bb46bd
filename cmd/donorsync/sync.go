package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/models"
	"github.com/benx421/donorsync/internal/processor"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/service"
	"github.com/benx421/donorsync/internal/syncer"
)

func syncCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync and print its result",
		Long: `Run one sync against the payment processor and print the result as JSON.

With --start and --end the given inclusive date range is synced. Without them
the incremental window the scheduler would use is synced.

Examples:
  donorsync sync
  donorsync sync --start 2025-01-01 --end 2025-01-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), start, end)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first date to sync (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last date to sync (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("start", "end")

	return cmd
}

func runSync(ctx context.Context, start, end string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	engine, err := newEngine(ctx, cfg, database, logger)
	if err != nil {
		return err
	}

	var result *syncer.Result
	if start == "" {
		result, err = engine.RunIncremental(ctx, syncer.TriggerCLI)
	} else {
		req, parseErr := parseRange(start, end)
		if parseErr != nil {
			return parseErr
		}
		result, err = engine.Run(ctx, req)
	}
	if result != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(result); encErr != nil {
			return fmt.Errorf("failed to print result: %w", encErr)
		}
	}
	if err != nil {
		return err
	}

	if result.Status == models.SyncStatusError {
		return fmt.Errorf("sync failed: %s", result.Message)
	}

	stored, err := repository.NewTransactionRepository(database).Count(ctx)
	if err != nil {
		logger.Warn("failed to count stored transactions", "error", err)
		return nil
	}
	logger.Info("sync complete", "status", result.Status, "stored_transactions", stored)
	return nil
}

func parseRange(start, end string) (syncer.Request, error) {
	startDate, err := time.Parse(processor.DateLayout, start)
	if err != nil {
		return syncer.Request{}, fmt.Errorf("invalid --start: %w", err)
	}
	endDate, err := time.Parse(processor.DateLayout, end)
	if err != nil {
		return syncer.Request{}, fmt.Errorf("invalid --end: %w", err)
	}
	if err := service.ValidateDateRange(startDate, endDate); err != nil {
		return syncer.Request{}, err
	}

	return syncer.Request{Start: startDate, End: endDate, Trigger: syncer.TriggerCLI}, nil
}
