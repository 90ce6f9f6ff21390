package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/dataset-pricer/api/openapi"
	"github.com/donaldgifford/dataset-pricer/internal/api/handlers"
	mw "github.com/donaldgifford/dataset-pricer/internal/api/middleware"
	"github.com/donaldgifford/dataset-pricer/internal/engine"
	"github.com/donaldgifford/dataset-pricer/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, &telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
	}, logger)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	pg, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	eng := newEngine(pg, cfg, logger)

	var sched *engine.Scheduler
	if cfg.Pricing.Enabled {
		sched, err = engine.NewScheduler(eng, pg, cfg.Schedule.RepriceInterval, cfg.Schedule.LockTTL,
			logger.With("component", "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.RecoverStaleJobRuns(ctx)
		sched.Start()
	} else {
		logger.Info("dynamic pricing disabled; scheduler not started")
	}

	e := newServer(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	e.Use(mw.RequestLog(logger), mw.Recovery(logger), mw.Tracing(), mw.Metrics())

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(pg,
		handlers.WithVersion(Version),
		handlers.WithHealthLogger(logger),
	))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("Dataset Pricer API", Version)
	humaCfg.OpenAPIPath = ""
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng, cfg.Pricing.Enabled))
	handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(eng, cfg.Pricing.Enabled))
	handlers.RegisterTriggerRoutes(api, handlers.NewRepriceHandler(eng, cfg.Pricing.Enabled, cfg.Cron.Token))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(pg))
	openapi.RegisterRoutes(e, api)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr, "pricing_enabled", cfg.Pricing.Enabled)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn("scheduled job still running at shutdown")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newServer(readTimeout, writeTimeout time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout
	return e
}
