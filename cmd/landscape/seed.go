package main

import (
	"fmt"

	"github.com/ougirez/landscape/internal/config"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/ougirez/landscape/internal/service/finance"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert reference data and starter categories",
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

			resp, err := finance.NewService(store.NewStore(pool)).Seed(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d uoms, %d confidence tiers, %d categories\n",
				resp.UOMs, resp.Confidence, resp.Categories)

			return nil
		},
	}
}
