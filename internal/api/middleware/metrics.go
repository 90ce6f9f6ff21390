// Package middleware provides the Echo middleware stack for dataset-pricer:
// request logging, panic recovery, tracing, and Prometheus metrics.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/dataset-pricer/internal/metrics"
)

// operationalPaths are probes and scrapes. They get no request metrics or
// spans; the probes update the up gauges instead.
var operationalPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// uninstrumented reports whether a route is kept out of request metrics
// and tracing: operational paths and the API docs.
func uninstrumented(path string) bool {
	if _, ok := operationalPaths[path]; ok {
		return true
	}
	return path == "/swagger" || strings.HasPrefix(path, "/swagger/")
}

// healthGauges holds the 0/1 gauge for each probe path.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and count
// labeled by method, route template and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if uninstrumented(path) {
				err := next(c)
				updateHealthGauge(path, c.Response().Status)
				return err
			}

			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// updateHealthGauge sets a probe's gauge to 1 on 2xx and 0 otherwise.
func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}

// routePath returns the registered route template (e.g.
// /api/v1/items/:item_id/pricing) so labels stay low-cardinality, falling
// back to the raw path for unmatched requests.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}
