// Package cmd implements the CLI commands for the dataset-pricer server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dataset-pricer/internal/config"
	"github.com/donaldgifford/dataset-pricer/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dataset-pricer",
	Short: "Recommend and apply dataset listing prices",
	Long: "An API-first service that computes suggested listing prices for catalog items, " +
		"enforces seller guardrails before changing a price, keeps an audit trail, and " +
		"reprices opted-in items on a schedule.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and builds the process logger from it.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	return cfg, log, nil
}
