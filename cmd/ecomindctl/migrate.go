package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := openMigrator(cmd, opts)
			if err != nil {
				return err
			}
			defer m.Close()

			n, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := openMigrator(cmd, opts)
			if err != nil {
				return err
			}
			defer m.Close()

			states, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range states {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s  %s\n", s.Version, state, s.Source)
			}
			return nil
		},
	})

	return cmd
}

func openMigrator(cmd *cobra.Command, opts *rootOptions) (*postgres.Migrator, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}
	return postgres.NewMigrator(cmd.Context(), cfg.Database.DSN)
}
