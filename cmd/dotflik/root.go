package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotflik/dotflik/internal/config"
	"github.com/dotflik/dotflik/pkg/logger"
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "dotflik",
		Short:         "Movie catalog API with token-based pagination",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	load := func() (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.LogLevel, !cfg.Env().IsProduction()); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		return cfg, nil
	}

	rootCmd.AddCommand(
		newServeCommand(load),
		newMigrateCommand(load),
		newSeedCommand(load),
		newVersionCommand(),
	)

	return rootCmd
}

// configLoader loads configuration and initializes logging.
type configLoader func() (*config.Config, error)
