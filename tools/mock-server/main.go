// Package main implements a mock audit-log receiver for local development.
// Point audit.webhook.url at it to watch price change events arrive without
// a real audit service. Received events are kept in memory and can be listed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const maxStoredEvents = 1000

// eventStore keeps the most recent events in arrival order.
type eventStore struct {
	mu       sync.Mutex
	events   []map[string]any
	received int
}

// add stores an event and returns how many have been received in total.
func (s *eventStore) add(ev map[string]any) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.received++
	s.events = append(s.events, ev)
	if len(s.events) > maxStoredEvents {
		s.events = s.events[len(s.events)-maxStoredEvents:]
	}
	return s.received
}

// list returns up to limit events (newest last), optionally for one item.
func (s *eventStore) list(itemID string, limit int) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []map[string]any{}
	for _, ev := range s.events {
		if itemID != "" && ev["item_id"] != itemID {
			continue
		}
		out = append(out, ev)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	token := flag.String("token", "", "require 'Authorization: Bearer <token>' on event posts")
	failEvery := flag.Int("fail-every", 0, "answer every Nth event post with 503 (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := &eventStore{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /events", receiveHandler(logger, store, *token, *failEvery))
	mux.HandleFunc("GET /events", listHandler(store))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock audit server", "addr", addr, "auth", *token != "", "fail_every", *failEvery)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func receiveHandler(logger *slog.Logger, store *eventStore, token string, failEvery int) http.HandlerFunc {
	var mu sync.Mutex
	posts := 0

	return func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			logger.Warn("event post with missing or wrong token")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}

		mu.Lock()
		posts++
		n := posts
		mu.Unlock()
		if failEvery > 0 && n%failEvery == 0 {
			logger.Warn("simulating audit outage", "post", n)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "simulated outage"})
			return
		}

		var ev map[string]any
		if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
		if typ, _ := ev["type"].(string); typ == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "event type is required"})
			return
		}

		total := store.add(ev)
		logger.Info("event received",
			"type", ev["type"],
			"item_id", ev["item_id"],
			"old_price_usd", ev["old_price_usd"],
			"new_price_usd", ev["new_price_usd"],
			"total", total,
		)
		writeJSON(w, http.StatusAccepted, map[string]int{"received": total})
	}
}

func listHandler(store *eventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = v
		}
		writeJSON(w, http.StatusOK, store.list(r.URL.Query().Get("item_id"), limit))
	}
}
