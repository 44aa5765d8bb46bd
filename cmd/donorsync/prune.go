package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/db"
	"github.com/benx421/donorsync/internal/repository"
)

func pruneCmd() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune-idempotency",
		Short: "Delete stored idempotent responses older than a cutoff",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive")
			}

			dbCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			database, err := db.Connect(cmd.Context(), &dbCfg, slog.Default())
			if err != nil {
				return err
			}
			defer database.Close()

			repo := repository.NewIdempotencyRepository(database)
			deleted, err := repo.DeleteOlderThan(cmd.Context(), time.Now().Add(-olderThan))
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %d idempotency key(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 7*24*time.Hour, "age after which stored responses are deleted")

	return cmd
}
