// Package store defines the datastore abstraction for the dataset pricer.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

// AuditQuery defines filters for price change audit queries.
type AuditQuery struct {
	ItemID  string
	Reason  *string
	ActorID *string
	Since   *time.Time
	Limit   int // default 50
}

// ApplyRequest describes one price change to commit from a snapshot.
type ApplyRequest struct {
	ItemID      string
	SnapshotID  string
	ActorID     string
	Reason      string
	NewPriceUSD decimal.Decimal
	AppliedAt   time.Time
}

// GuardFunc runs inside the apply transaction, after the price plan row is
// locked. cfg is nil when the item has no pricing config. A non-nil error
// aborts the transaction and is returned to the caller unchanged.
type GuardFunc func(currentPrice decimal.Decimal, cfg *domain.PricingConfig) error

// Store defines all data access operations for the dataset pricer.
type Store interface {
	// Catalog
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	GetPricePlan(ctx context.Context, itemID string, planType domain.PlanType) (*domain.PricePlan, error)
	GetPurchaseStats(ctx context.Context, itemID string, since time.Time) (*domain.PurchaseStats, error)
	ListPeerPrices(ctx context.Context, category, excludeItemID string) ([]decimal.Decimal, error)

	// Snapshots
	GetLatestSnapshot(ctx context.Context, itemID string, since time.Time) (*domain.PricingSnapshot, error)
	GetSnapshot(ctx context.Context, id string) (*domain.PricingSnapshot, error)
	InsertSnapshot(ctx context.Context, s *domain.PricingSnapshot) error
	ListSnapshots(ctx context.Context, itemID string, limit int) ([]domain.PricingSnapshot, error)

	// Pricing configs
	GetPricingConfig(ctx context.Context, itemID string) (*domain.PricingConfig, error)
	UpsertPricingConfig(
		ctx context.Context,
		itemID string,
		patch *domain.PricingConfigPatch,
	) (*domain.PricingConfig, error)
	ListAutoPricingItemIDs(ctx context.Context) ([]string, error)

	// Price changes
	ApplyPrice(ctx context.Context, req *ApplyRequest, guard GuardFunc) (*domain.AppliedPrice, error)
	ListAudits(ctx context.Context, q *AuditQuery) ([]domain.PriceChangeAudit, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
