// Package domain defines the core business types for the dataset pricer.
package domain

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus represents the lifecycle state of a catalog item.
type ItemStatus string

// Item status constants.
const (
	ItemDraft     ItemStatus = "draft"
	ItemPublished ItemStatus = "published"
	ItemArchived  ItemStatus = "archived"
)

// ComplexityTag is the ordinal complexity tier of an item, least to most
// complex.
type ComplexityTag string

// Complexity tier constants.
const (
	ComplexityA ComplexityTag = "A"
	ComplexityB ComplexityTag = "B"
	ComplexityC ComplexityTag = "C"
	ComplexityD ComplexityTag = "D"
)

// ComplexityTags lists every known tier in ascending order.
var ComplexityTags = []ComplexityTag{ComplexityA, ComplexityB, ComplexityC, ComplexityD}

// Valid reports whether t is one of the four known tiers.
func (t ComplexityTag) Valid() bool {
	return slices.Contains(ComplexityTags, t)
}

// PlanType distinguishes one-time price plans from recurring ones.
type PlanType string

// Plan type constants.
const (
	PlanOneTime      PlanType = "one_time"
	PlanSubscription PlanType = "subscription"
)

// Item is a sellable catalog entry owned by an organization. The assessment
// fields are nil until an external quality assessment has been recorded.
type Item struct {
	ID         string     `json:"id"          db:"id"`
	OrgID      string     `json:"org_id"      db:"org_id"`
	Title      string     `json:"title"       db:"title"`
	Categories []string   `json:"categories"  db:"categories"`
	Status     ItemStatus `json:"status"      db:"status"`

	QualityPercent  *int             `json:"quality_percent,omitempty"   db:"quality_percent"`
	ComplexityTag   *ComplexityTag   `json:"complexity_tag,omitempty"    db:"complexity_tag"`
	CleaningCostUSD *decimal.Decimal `json:"cleaning_cost_usd,omitempty" db:"cleaning_cost_usd"`

	CreatedAt     time.Time `json:"created_at"      db:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at" db:"last_updated_at"`
}

// Published reports whether the item is in a sellable state.
func (i *Item) Published() bool {
	return i.Status == ItemPublished
}

// PricePlan is the listed price of an item for one plan type.
type PricePlan struct {
	ID        string          `json:"id"         db:"id"`
	ItemID    string          `json:"item_id"    db:"item_id"`
	Type      PlanType        `json:"type"       db:"plan_type"`
	PriceUSD  decimal.Decimal `json:"price_usd"  db:"price_usd"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// PurchaseStats aggregates paid purchases for an item over a window.
type PurchaseStats struct {
	Count      int             `json:"count"`
	RevenueUSD decimal.Decimal `json:"revenue_usd"`
}

// PricingSnapshot is a persisted recommendation. AppliedPriceUSD is set at
// most once, when a price change is applied from this snapshot.
type PricingSnapshot struct {
	ID                  string              `json:"id"                          db:"id"`
	ItemID              string              `json:"item_id"                     db:"item_id"`
	RecommendedPriceUSD decimal.Decimal     `json:"recommended_price_usd"       db:"recommended_price_usd"`
	Inputs              json.RawMessage     `json:"inputs"                      db:"inputs"`
	Explanation         json.RawMessage     `json:"explanation"                 db:"explanation"`
	InputsHash          string              `json:"inputs_hash"                 db:"inputs_hash"`
	ComputedAt          time.Time           `json:"computed_at"                 db:"computed_at"`
	AppliedPriceUSD     decimal.NullDecimal `json:"applied_price_usd"           db:"applied_price_usd"`
}

// Applied reports whether a price change has already been applied from s.
func (s *PricingSnapshot) Applied() bool {
	return s.AppliedPriceUSD.Valid
}

// SnapshotExplanation is the serialized explanation stored with a snapshot.
type SnapshotExplanation struct {
	Factors   []string        `json:"factors"`
	Hash      string          `json:"hash"`
	Breakdown json.RawMessage `json:"breakdown,omitempty"`
}

// PricingConfig holds the seller-defined guardrails for one item.
type PricingConfig struct {
	ItemID             string          `json:"item_id"                   db:"item_id"`
	AutoPricingEnabled bool            `json:"auto_pricing_enabled"      db:"auto_pricing_enabled"`
	MinPriceUSD        decimal.Decimal `json:"min_price_usd"             db:"min_price_usd"`
	MaxPriceUSD        decimal.Decimal `json:"max_price_usd"             db:"max_price_usd"`
	MaxWeeklyChangePct int             `json:"max_weekly_change_pct"     db:"max_weekly_change_pct"`
	LastAppliedAt      *time.Time      `json:"last_applied_at,omitempty" db:"last_applied_at"`
	CreatedAt          time.Time       `json:"created_at"                db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"                db:"updated_at"`
}

// Guardrail defaults used when a config row is created without explicit
// values.
var (
	DefaultMinPriceUSD        = decimal.Zero
	DefaultMaxPriceUSD        = decimal.NewFromInt(100_000)
	DefaultMaxWeeklyChangePct = 10
)

// DefaultPricingConfig returns the config a new item starts with.
func DefaultPricingConfig(itemID string) PricingConfig {
	return PricingConfig{
		ItemID:             itemID,
		AutoPricingEnabled: false,
		MinPriceUSD:        DefaultMinPriceUSD,
		MaxPriceUSD:        DefaultMaxPriceUSD,
		MaxWeeklyChangePct: DefaultMaxWeeklyChangePct,
	}
}

// PricingConfigPatch is a partial update. Nil fields leave the stored value
// unchanged.
type PricingConfigPatch struct {
	AutoPricingEnabled *bool
	MinPriceUSD        *decimal.Decimal
	MaxPriceUSD        *decimal.Decimal
	MaxWeeklyChangePct *int
}

// Merge returns base with every non-nil patch field applied.
func (p *PricingConfigPatch) Merge(base PricingConfig) PricingConfig {
	if p.AutoPricingEnabled != nil {
		base.AutoPricingEnabled = *p.AutoPricingEnabled
	}
	if p.MinPriceUSD != nil {
		base.MinPriceUSD = *p.MinPriceUSD
	}
	if p.MaxPriceUSD != nil {
		base.MaxPriceUSD = *p.MaxPriceUSD
	}
	if p.MaxWeeklyChangePct != nil {
		base.MaxWeeklyChangePct = *p.MaxWeeklyChangePct
	}
	return base
}

// PriceChangeAudit is an append-only record of one applied price change.
type PriceChangeAudit struct {
	ID          string          `json:"id"            db:"id"`
	ItemID      string          `json:"item_id"       db:"item_id"`
	ActorID     string          `json:"actor_id"      db:"actor_id"`
	OldPriceUSD decimal.Decimal `json:"old_price_usd" db:"old_price_usd"`
	NewPriceUSD decimal.Decimal `json:"new_price_usd" db:"new_price_usd"`
	Reason      string          `json:"reason"        db:"reason"`
	SnapshotID  string          `json:"snapshot_id"   db:"snapshot_id"`
	AppliedAt   time.Time       `json:"applied_at"    db:"applied_at"`
}

// Reason codes written to PriceChangeAudit.Reason.
const (
	ReasonManualApply = "manual_apply"
	ReasonAutoReprice = "auto_reprice"
)

// PriceHistory is the recent pricing activity of one item.
type PriceHistory struct {
	Snapshots []PricingSnapshot  `json:"snapshots"`
	Audits    []PriceChangeAudit `json:"audits"`
}

// AppliedPrice is the result of a successful apply.
type AppliedPrice struct {
	OldPriceUSD decimal.Decimal `json:"old_price_usd"`
	NewPriceUSD decimal.Decimal `json:"new_price_usd"`
}

// OutcomeStatus is the per-item result of a batch reprice run.
type OutcomeStatus string

// Outcome status constants.
const (
	OutcomeApplied OutcomeStatus = "applied"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeError   OutcomeStatus = "error"
)

// RepriceOutcome records what happened to one item during a batch run.
type RepriceOutcome struct {
	ItemID string        `json:"item_id"`
	Status OutcomeStatus `json:"status"`
	Detail string        `json:"detail,omitempty"`
}

// RepriceSummary counts batch outcomes by status.
type RepriceSummary struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// Summarize tallies outcomes by status.
func Summarize(outcomes []RepriceOutcome) RepriceSummary {
	var s RepriceSummary
	for i := range outcomes {
		switch outcomes[i].Status {
		case OutcomeApplied:
			s.Applied++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeError:
			s.Errors++
		}
	}
	return s
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// Job run status constants.
const (
	JobRunning   = "running"
	JobSucceeded = "succeeded"
	JobFailed    = "failed"
	JobCrashed   = "crashed"
)
