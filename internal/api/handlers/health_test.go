package handlers_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/dataset-pricer/internal/api/handlers"
	"github.com/donaldgifford/dataset-pricer/internal/store/mocks"
)

func serveProbe(t *testing.T, h *handlers.HealthHandler, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handlers.RegisterHealthRoutes(e, h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []handlers.HealthOption
		wantBody string
	}{
		{name: "without version", wantBody: `{"status":"ok"}`},
		{
			name:     "with version",
			opts:     []handlers.HealthOption{handlers.WithVersion("v1.2.3")},
			wantBody: `{"status":"ok","version":"v1.2.3"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Liveness never touches the database.
			h := handlers.NewHealthHandler(mocks.NewMockStore(t), tt.opts...)

			rec := serveProbe(t, h, "/healthz")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
		wantLog    bool
	}{
		{
			name:       "database reachable",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready","checks":{"database":"ok"}}`,
		},
		{
			name:       "database unreachable",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","checks":{"database":"unreachable"}}`,
			wantLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			ms.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()

			var buf bytes.Buffer
			h := handlers.NewHealthHandler(ms,
				handlers.WithHealthLogger(slog.New(slog.NewTextHandler(&buf, nil))))

			rec := serveProbe(t, h, "/readyz")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			if tt.wantLog {
				assert.Contains(t, buf.String(), "connection refused")
				assert.NotContains(t, rec.Body.String(), "connection refused")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
