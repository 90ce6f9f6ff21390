package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dataset-pricer/internal/store"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: "Applies the embedded SQL migrations that have not run yet. serve also\n" +
		"migrates on startup; this command is for running it as a separate step.",
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "list pending migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(2))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	todo, err := pg.PendingMigrations(ctx)
	if err != nil {
		return err
	}
	if len(todo) == 0 {
		logger.Info("schema is up to date", "database", cfg.Database.Name)
		return nil
	}
	if migrateDryRun {
		logger.Info("pending migrations", "database", cfg.Database.Name, "versions", todo)
		return nil
	}

	logger.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name, "pending", len(todo))
	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("migrations complete", "applied", todo)
	return nil
}
