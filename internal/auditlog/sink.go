// Package auditlog delivers price change events to an external audit log.
// Delivery is best-effort and happens after the price change has committed;
// a sink failure never rolls back or fails the change itself.
package auditlog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventPriceChanged is the event type recorded for an applied price change.
const EventPriceChanged = "pricing.price_changed"

// Event describes one applied price change.
type Event struct {
	Type        string          `json:"type"`
	ItemID      string          `json:"item_id"`
	OrgID       string          `json:"org_id"`
	ActorID     string          `json:"actor_id"`
	SnapshotID  string          `json:"snapshot_id"`
	OldPriceUSD decimal.Decimal `json:"old_price_usd"`
	NewPriceUSD decimal.Decimal `json:"new_price_usd"`
	Reason      string          `json:"reason"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Sink defines the interface for recording audit events.
type Sink interface {
	Record(ctx context.Context, event *Event) error
}
