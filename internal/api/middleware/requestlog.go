package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// probePaths are polled by orchestrators. Only their first success and any
// failure are logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs one structured line per
// request. It generates a request ID if none is provided and propagates it
// through the response header and echo context. Server errors log at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probesSeen sync.Map

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			err := next(c)
			if err != nil {
				// Let Echo write the error response so the logged status is final.
				c.Error(err)
			}

			status := c.Response().Status
			path := c.Request().URL.Path
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelWarn
			}

			if _, probe := probePaths[path]; probe && status < 400 {
				if _, seen := probesSeen.LoadOrStore(path, true); seen {
					return nil
				}
			}

			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String(requestIDKey, reqID),
			)

			return nil
		}
	}
}

// RequestID returns the ID assigned by RequestLog, or "" outside it.
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
