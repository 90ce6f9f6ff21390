package engine

import (
	"context"
	"time"

	"github.com/donaldgifford/dataset-pricer/internal/store"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// HistoryFilter narrows the audit rows returned by GetPriceHistory. Zero
// fields do not filter. Snapshots are never filtered.
type HistoryFilter struct {
	Reason  string
	ActorID string
	Since   time.Time
}

func (f HistoryFilter) auditQuery(itemID string, limit int) *store.AuditQuery {
	q := &store.AuditQuery{ItemID: itemID, Limit: limit}
	if f.Reason != "" {
		q.Reason = &f.Reason
	}
	if f.ActorID != "" {
		q.ActorID = &f.ActorID
	}
	if !f.Since.IsZero() {
		q.Since = &f.Since
	}
	return q
}

// GetPriceHistory returns the newest snapshots and audit rows of an item
// owned by orgID.
func (eng *Engine) GetPriceHistory(
	ctx context.Context,
	itemID string,
	orgID string,
	filter HistoryFilter,
) (*domain.PriceHistory, error) {
	if _, err := eng.ownedItem(ctx, itemID, orgID); err != nil {
		return nil, err
	}

	snaps, err := eng.store.ListSnapshots(ctx, itemID, eng.historySnapshots)
	if err != nil {
		return nil, err
	}

	audits, err := eng.store.ListAudits(ctx, filter.auditQuery(itemID, eng.historyAudits))
	if err != nil {
		return nil, err
	}

	if snaps == nil {
		snaps = []domain.PricingSnapshot{}
	}
	if audits == nil {
		audits = []domain.PriceChangeAudit{}
	}

	return &domain.PriceHistory{Snapshots: snaps, Audits: audits}, nil
}
