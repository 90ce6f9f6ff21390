package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/dataset-pricer/internal/auditlog"
	"github.com/donaldgifford/dataset-pricer/internal/config"
	"github.com/donaldgifford/dataset-pricer/internal/engine"
	"github.com/donaldgifford/dataset-pricer/internal/store"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// openStore connects to Postgres and applies pending migrations.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.PostgresStore, error) {
	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info("database ready", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return pg, nil
}

// newAuditSink returns the webhook sink when configured, otherwise a sink
// that writes audit events to the process log.
func newAuditSink(cfg *config.AuditConfig, log *slog.Logger) auditlog.Sink {
	if cfg.Webhook.Enabled {
		return auditlog.NewWebhookSink(cfg.Webhook.URL, auditlog.WithHeaders(cfg.Webhook.Headers))
	}
	return auditlog.NewLogSink(log.With("component", "audit"))
}

func engineOptions(cfg *config.PricingConfig, log *slog.Logger) []engine.EngineOption {
	return []engine.EngineOption{
		engine.WithLogger(log.With("component", "engine")),
		engine.WithCacheMaxAge(cfg.CacheMaxAge),
		engine.WithMinPeers(cfg.MinPeers),
		engine.WithHistoryLimits(cfg.HistorySnapshots, cfg.HistoryAudits),
		engine.WithDefaultAssessment(engine.Assessment{
			QualityPercent:  cfg.Defaults.QualityPercent,
			ComplexityTag:   domain.ComplexityTag(cfg.Defaults.ComplexityTag),
			CleaningCostUSD: decimal.NewFromFloat(cfg.Defaults.CleaningCostUSD),
		}),
		engine.WithRepriceRate(cfg.RepriceRate.PerSecond, cfg.RepriceRate.Burst),
	}
}

func newEngine(s store.Store, cfg *config.Config, log *slog.Logger) *engine.Engine {
	return engine.NewEngine(s, newAuditSink(&cfg.Audit, log), engineOptions(&cfg.Pricing, log)...)
}
