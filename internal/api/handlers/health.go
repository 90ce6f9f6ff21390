package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const readyzTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      Pinger
	version string
	log     *slog.Logger
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithVersion reports the build version from /healthz.
func WithVersion(v string) HealthOption {
	return func(h *HealthHandler) { h.version = v }
}

// WithHealthLogger sets the logger used for failed readiness checks.
func WithHealthLogger(l *slog.Logger) HealthOption {
	return func(h *HealthHandler) { h.log = l }
}

// NewHealthHandler creates a HealthHandler that checks db for readiness.
func NewHealthHandler(db Pinger, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Healthz answers 200 while the process is serving.
func (h *HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Readyz answers 200 when the database responds to a ping within two
// seconds and 503 otherwise. The body names each check and its result.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readyzTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "readiness check failed", "check", "database", "error", err)
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Checks: map[string]string{"database": "unreachable"},
		})
	}
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ready",
		Checks: map[string]string{"database": "ok"},
	})
}

// RegisterHealthRoutes mounts the probes on e, outside the Huma API.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
