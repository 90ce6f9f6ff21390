package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dataset-pricer/internal/engine"
)

var repriceCmd = &cobra.Command{
	Use:   "reprice",
	Short: "Run one auto-reprice batch and exit",
	Long: "Recomputes and applies prices for every auto-priced item once, under the same " +
		"lock and job history as the scheduled run. Intended for external cron.",
	RunE: runReprice,
}

func init() {
	rootCmd.AddCommand(repriceCmd)
}

func runReprice(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Pricing.Enabled {
		return errors.New("dynamic pricing is not enabled (pricing.enabled=false)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	sched, err := engine.NewScheduler(newEngine(pg, cfg, logger), pg,
		cfg.Schedule.RepriceInterval, cfg.Schedule.LockTTL, logger.With("component", "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	if err := sched.RunReprice(ctx); err != nil {
		return fmt.Errorf("running reprice: %w", err)
	}

	logger.Info("reprice complete")
	return nil
}
