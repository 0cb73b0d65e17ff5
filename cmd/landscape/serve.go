package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/landscape/internal/api"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/ougirez/landscape/internal/pkg/store"
	"github.com/ougirez/landscape/internal/pkg/store/memstore"
	"github.com/ougirez/landscape/internal/service/finance"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	var memory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), memory)
		},
	}

	cmd.Flags().BoolVar(&memory, "memory", false, "Use a seeded in-memory store instead of PostgreSQL")

	return cmd
}

func serve(ctx context.Context, memory bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var st store.Store
	if memory {
		mem := memstore.New()
		if _, err := finance.NewService(mem).Seed(ctx); err != nil {
			return err
		}
		st = mem
		logger.Info(ctx, "using in-memory store")
	} else {
		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()
		st = store.NewStore(pool)
	}

	svc, err := api.NewAPIService(st)
	if err != nil {
		return err
	}

	addr := viper.GetString(constants.ViperHTTPAddrKey)
	go svc.Serve(addr)
	logger.Infof(ctx, "listening on %s", addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return svc.Shutdown(shutdownCtx)
}
