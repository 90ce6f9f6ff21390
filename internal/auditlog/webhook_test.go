package auditlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *Event {
	return &Event{
		Type:        EventPriceChanged,
		ItemID:      "item-1",
		OrgID:       "org-1",
		ActorID:     "user-1",
		SnapshotID:  "snap-1",
		OldPriceUSD: decimal.NewFromInt(1000),
		NewPriceUSD: decimal.NewFromInt(1050),
		Reason:      "manual_apply",
		OccurredAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWebhookSink_Record(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
		errMsg     string
	}{
		{name: "accepted", statusCode: http.StatusAccepted},
		{name: "no content", statusCode: http.StatusNoContent},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
			errMsg:     "audit webhook returned 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received map[string]any

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
					assert.Equal(t, http.MethodPost, r.Method)

					assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			s := NewWebhookSink(srv.URL, WithHeaders(map[string]string{"Authorization": "Bearer secret"}))
			err := s.Record(context.Background(), testEvent())

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, EventPriceChanged, received["type"])
			assert.Equal(t, "item-1", received["item_id"])
			assert.Equal(t, "1000", received["old_price_usd"])
			assert.Equal(t, "1050", received["new_price_usd"])
		})
	}
}

func TestWebhookSink_NetworkError(t *testing.T) {
	t.Parallel()

	s := NewWebhookSink("http://127.0.0.1:1") // nothing listening
	err := s.Record(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending audit webhook")
}

func TestWebhookSink_InvalidURL(t *testing.T) {
	t.Parallel()

	s := NewWebhookSink("://not-a-valid-url")
	err := s.Record(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating audit request")
}

func TestWebhookSink_CustomClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := &http.Client{Timeout: time.Second}
	s := NewWebhookSink(srv.URL, WithHTTPClient(c))
	assert.Same(t, c, s.client)
	require.NoError(t, s.Record(context.Background(), testEvent()))
}
