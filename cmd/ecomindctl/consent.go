package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/app"
)

func newConsentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consent",
		Short: "Inspect AI-processing consent",
	}

	var userID string
	check := &cobra.Command{
		Use:   "check",
		Short: "Report whether AI operations may run for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uid, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, cfg.Database, "ecomindctl")
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svcs, err := app.NewServices(ctx, cfg, logger, pool, postgres.NewTxManager(pool))
			if err != nil {
				return err
			}

			verdict := "refused"
			if svcs.Gate.CheckConsent(ctx, uid) {
				verdict = "granted"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %s: AI processing %s (policy %s)\n", uid, verdict, cfg.Consent.CurrentVersion)
			return nil
		},
	}
	check.Flags().StringVar(&userID, "user", "", "user id")
	_ = check.MarkFlagRequired("user")

	cmd.AddCommand(check)
	return cmd
}
