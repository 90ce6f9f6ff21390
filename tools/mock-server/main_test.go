package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

const priceChanged = `{"type":"pricing.price_changed","item_id":"item-1","old_price_usd":"450","new_price_usd":"480"}`

func postEvent(handler http.HandlerFunc, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestReceiveHandler_Success(t *testing.T) {
	store := &eventStore{}
	handler := receiveHandler(testLogger(), store, "", 0)

	w := postEvent(handler, priceChanged, "")

	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusAccepted)
	}

	var resp map[string]int
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["received"] != 1 {
		t.Errorf("received=%d, want 1", resp["received"])
	}

	events := store.list("", 0)
	if len(events) != 1 {
		t.Fatalf("stored=%d, want 1", len(events))
	}
	if events[0]["new_price_usd"] != "480" {
		t.Errorf("new_price_usd=%v, want 480", events[0]["new_price_usd"])
	}
}

func TestReceiveHandler_Token(t *testing.T) {
	tests := []struct {
		name string
		auth string
		want int
	}{
		{name: "missing", auth: "", want: http.StatusUnauthorized},
		{name: "wrong", auth: "Bearer nope", want: http.StatusUnauthorized},
		{name: "correct", auth: "Bearer s3cret", want: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := receiveHandler(testLogger(), &eventStore{}, "s3cret", 0)
			w := postEvent(handler, priceChanged, tt.auth)
			if w.Code != tt.want {
				t.Errorf("status=%d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestReceiveHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: "{"},
		{name: "missing type", body: `{"item_id":"item-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &eventStore{}
			handler := receiveHandler(testLogger(), store, "", 0)

			w := postEvent(handler, tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("status=%d, want %d", w.Code, http.StatusBadRequest)
			}
			if n := len(store.list("", 0)); n != 0 {
				t.Errorf("stored=%d, want 0", n)
			}
		})
	}
}

func TestReceiveHandler_FailEvery(t *testing.T) {
	store := &eventStore{}
	handler := receiveHandler(testLogger(), store, "", 2)

	codes := make([]int, 0, 4)
	for range 4 {
		codes = append(codes, postEvent(handler, priceChanged, "").Code)
	}

	want := []int{
		http.StatusAccepted,
		http.StatusServiceUnavailable,
		http.StatusAccepted,
		http.StatusServiceUnavailable,
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("post %d: status=%d, want %d", i+1, codes[i], want[i])
		}
	}
	if n := len(store.list("", 0)); n != 2 {
		t.Errorf("stored=%d, want 2", n)
	}
}

func TestListHandler_FilterAndLimit(t *testing.T) {
	store := &eventStore{}
	store.add(map[string]any{"type": "pricing.price_changed", "item_id": "item-1", "reason": "first"})
	store.add(map[string]any{"type": "pricing.price_changed", "item_id": "item-2"})
	store.add(map[string]any{"type": "pricing.price_changed", "item_id": "item-1", "reason": "second"})

	handler := listHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/events?item_id=item-1&limit=1", http.NoBody)
	w := httptest.NewRecorder()
	handler(w, req)

	var events []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&events); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events=%d, want 1", len(events))
	}
	if events[0]["reason"] != "second" {
		t.Errorf("reason=%v, want second (newest)", events[0]["reason"])
	}
}

func TestListHandler_Empty(t *testing.T) {
	handler := listHandler(&eventStore{})
	req := httptest.NewRequest(http.MethodGet, "/events", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body=%q, want []", w.Body.String())
	}
}

func TestEventStore_Cap(t *testing.T) {
	store := &eventStore{}
	for range maxStoredEvents + 5 {
		store.add(map[string]any{"type": "x"})
	}
	if n := len(store.list("", 0)); n != maxStoredEvents {
		t.Errorf("stored=%d, want %d", n, maxStoredEvents)
	}
	if store.received != maxStoredEvents+5 {
		t.Errorf("received=%d, want %d", store.received, maxStoredEvents+5)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
