package auditlog

import (
	"context"
	"log/slog"
)

// LogSink implements Sink by writing events to a structured logger. It is
// used when no webhook is configured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink that records events as log lines.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Record logs the event at info level.
func (s *LogSink) Record(_ context.Context, event *Event) error {
	s.log.Info("audit event",
		"type", event.Type,
		"item_id", event.ItemID,
		"org_id", event.OrgID,
		"actor_id", event.ActorID,
		"snapshot_id", event.SnapshotID,
		"old_price_usd", event.OldPriceUSD.StringFixed(2),
		"new_price_usd", event.NewPriceUSD.StringFixed(2),
		"reason", event.Reason,
	)
	return nil
}
