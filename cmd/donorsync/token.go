package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/benx421/donorsync/internal/middleware"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff session token for API access",
		Long: `Issue a signed staff session token using SESSION_SECRET.

The token is accepted in the session cookie or as a Bearer token.

Examples:
  donorsync token --subject staff-1 --email ops@example.org --ttl 8h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := middleware.IssueStaffToken(cfg.Auth.SessionSecret, subject, email, ttl)
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "staff identifier placed in the sub claim")
	cmd.Flags().StringVar(&email, "email", "", "staff email placed in the email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 8*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject") //nolint:errcheck // flag is defined above

	return cmd
}
