package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/benx421/donorsync/internal/archive"
	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/processor"
	"github.com/benx421/donorsync/internal/repository"
	"github.com/benx421/donorsync/internal/syncer"
)

// newEngine builds the sync engine with its processor client, stores and archive
func newEngine(ctx context.Context, cfg *config.Config, database *db.DB, logger *slog.Logger) (*syncer.Engine, error) {
	client, err := processor.NewClient(cfg.Processor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create processor client: %w", err)
	}
	logger.Info("processor client ready",
		"base_url", cfg.Processor.BaseURL,
		"strategies", client.Strategies(),
	)

	archiver, err := archive.New(ctx, cfg.Archive, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create report archiver: %w", err)
	}

	stores := syncer.Stores{
		Customers:    repository.NewCustomerRepository(database),
		Transactions: repository.NewTransactionRepository(database),
		Configs:      repository.NewSyncConfigRepository(database),
	}

	opts := syncer.OptionsFromConfig(cfg.Sync, client.PageSize())
	return syncer.NewEngine(client, stores, archiver, logger, opts), nil
}
