package main

import (
	"errors"

	"github.com/ougirez/landscape/internal/config"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/spf13/cobra"
)

var errProductionRefused = errors.New("refusing to run in production (app.env)")

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the landscape schema objects the API uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.IsProduction() {
				return errProductionRefused
			}

			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := store.Migrate(ctx, pool); err != nil {
				return err
			}
			logger.Info(ctx, "schema is up to date")

			return nil
		},
	}
}
