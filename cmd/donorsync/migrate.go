package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/benx421/donorsync/internal/config"
	"github.com/benx421/donorsync/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}

			logger := slog.Default()
			database, err := db.Connect(cmd.Context(), &dbCfg, logger)
			if err != nil {
				return err
			}
			defer database.Close()

			applied, err := database.Migrate(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Applied %d migration(s)\n", applied)
			return nil
		},
	}
}
