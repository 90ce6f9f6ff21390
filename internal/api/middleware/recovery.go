package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const stackSize = 4096

// panicResponse mirrors the problem shape Huma uses for its own errors so
// clients parse one error format.
type panicResponse struct {
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// Recovery returns Echo middleware that turns a handler panic into a 500.
// The panic value and stack are logged with the request ID and recorded on
// the request's span when one is active.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, stackSize)
				buf = buf[:runtime.Stack(buf, false)]

				req := c.Request()
				ctx := req.Context()
				reqID := RequestID(c)

				if span := trace.SpanFromContext(ctx); span.IsRecording() {
					span.RecordError(fmt.Errorf("panic: %v", r))
					span.SetStatus(codes.Error, "panic")
				}

				log.ErrorContext(ctx, "panic recovered",
					"error", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", reqID,
					"stack", string(buf),
				)

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, panicResponse{
					Title:     http.StatusText(http.StatusInternalServerError),
					Status:    http.StatusInternalServerError,
					Detail:    "internal server error",
					RequestID: reqID,
				})
			}()
			return next(c)
		}
	}
}
