// Command landscape serves the financial planning API and carries the
// maintenance commands that go with it.
package main

import (
	"fmt"
	"os"

	"github.com/ougirez/landscape/internal/config"
	"github.com/ougirez/landscape/internal/pkg/constants"
	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.1.0"
	appName = "landscape"
)

func main() {
	defer logger.Sync()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Land development financial planning API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(configPath); err != nil {
				return err
			}
			if logLevel != "" {
				viper.Set(constants.ViperLogLevelKey, logLevel)
			}
			return logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetBool(constants.ViperLogJSONKey))
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
