package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

const defaultPoolSize = 10

// pgCheckViolation is the SQLSTATE for a failed CHECK constraint.
const pgCheckViolation = "23514"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// Its methods are exercised against a real database in postgres_integration_test.go.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // pool size is a small config value
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// GetItem retrieves a catalog item by ID.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	it := &domain.Item{}
	err := s.pool.QueryRow(ctx, queryGetItem, id).Scan(
		&it.ID, &it.OrgID, &it.Title, &it.Categories, &it.Status,
		&it.QualityPercent, &it.ComplexityTag, &it.CleaningCostUSD,
		&it.CreatedAt, &it.LastUpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "getting item")
	}
	return it, nil
}

// GetPricePlan retrieves the price plan of the given type for an item.
func (s *PostgresStore) GetPricePlan(
	ctx context.Context,
	itemID string,
	planType domain.PlanType,
) (*domain.PricePlan, error) {
	p := &domain.PricePlan{}
	err := s.pool.QueryRow(ctx, queryGetPricePlan, itemID, string(planType)).Scan(
		&p.ID, &p.ItemID, &p.Type, &p.PriceUSD, &p.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "getting price plan")
	}
	return p, nil
}

// GetPurchaseStats counts paid purchases of an item since the given time.
func (s *PostgresStore) GetPurchaseStats(
	ctx context.Context,
	itemID string,
	since time.Time,
) (*domain.PurchaseStats, error) {
	st := &domain.PurchaseStats{}
	if err := s.pool.QueryRow(ctx, queryGetPurchaseStats, itemID, since).Scan(
		&st.Count, &st.RevenueUSD,
	); err != nil {
		return nil, fmt.Errorf("getting purchase stats: %w", err)
	}
	return st, nil
}

// ListPeerPrices returns the one-time prices of published items that share
// category, excluding the given item, in ascending order.
func (s *PostgresStore) ListPeerPrices(
	ctx context.Context,
	category string,
	excludeItemID string,
) ([]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, queryListPeerPrices, category, excludeItemID)
	if err != nil {
		return nil, fmt.Errorf("querying peer prices: %w", err)
	}
	defer rows.Close()

	var prices []decimal.Decimal
	for rows.Next() {
		var p decimal.Decimal
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning peer price: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// GetLatestSnapshot returns the newest snapshot for an item computed at or
// after since. Returns domain.ErrNotFound when there is none.
func (s *PostgresStore) GetLatestSnapshot(
	ctx context.Context,
	itemID string,
	since time.Time,
) (*domain.PricingSnapshot, error) {
	snap := &domain.PricingSnapshot{}
	if err := scanSnapshot(s.pool.QueryRow(ctx, queryGetLatestSnapshot, itemID, since), snap); err != nil {
		return nil, notFound(err, "getting latest snapshot")
	}
	return snap, nil
}

// GetSnapshot retrieves a snapshot by ID.
func (s *PostgresStore) GetSnapshot(ctx context.Context, id string) (*domain.PricingSnapshot, error) {
	snap := &domain.PricingSnapshot{}
	if err := scanSnapshot(s.pool.QueryRow(ctx, queryGetSnapshot, id), snap); err != nil {
		return nil, notFound(err, "getting snapshot")
	}
	return snap, nil
}

// InsertSnapshot persists a new snapshot and sets its generated ID.
func (s *PostgresStore) InsertSnapshot(ctx context.Context, snap *domain.PricingSnapshot) error {
	args := pgx.NamedArgs{
		"item_id":               snap.ItemID,
		"recommended_price_usd": snap.RecommendedPriceUSD,
		"inputs":                snap.Inputs,
		"explanation":           snap.Explanation,
		"inputs_hash":           snap.InputsHash,
		"computed_at":           snap.ComputedAt,
	}

	if err := s.pool.QueryRow(ctx, queryInsertSnapshot, args).Scan(&snap.ID); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns the most recent snapshots for an item, newest first.
func (s *PostgresStore) ListSnapshots(
	ctx context.Context,
	itemID string,
	limit int,
) ([]domain.PricingSnapshot, error) {
	rows, err := s.pool.Query(ctx, queryListSnapshots, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.PricingSnapshot
	for rows.Next() {
		var snap domain.PricingSnapshot
		if err := scanSnapshot(rows, &snap); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// GetPricingConfig retrieves the guardrail config of an item.
// Returns domain.ErrNotFound when the item has none.
func (s *PostgresStore) GetPricingConfig(ctx context.Context, itemID string) (*domain.PricingConfig, error) {
	cfg := &domain.PricingConfig{}
	if err := scanConfig(s.pool.QueryRow(ctx, queryGetPricingConfig, itemID), cfg); err != nil {
		return nil, notFound(err, "getting pricing config")
	}
	return cfg, nil
}

// UpsertPricingConfig creates or partially updates the config of an item in
// a single statement and returns the stored row.
func (s *PostgresStore) UpsertPricingConfig(
	ctx context.Context,
	itemID string,
	patch *domain.PricingConfigPatch,
) (*domain.PricingConfig, error) {
	defaults := domain.DefaultPricingConfig(itemID)
	args := pgx.NamedArgs{
		"item_id":                       itemID,
		"auto_pricing_enabled":          patch.AutoPricingEnabled,
		"min_price_usd":                 patch.MinPriceUSD,
		"max_price_usd":                 patch.MaxPriceUSD,
		"max_weekly_change_pct":         patch.MaxWeeklyChangePct,
		"default_auto_pricing_enabled":  defaults.AutoPricingEnabled,
		"default_min_price_usd":         defaults.MinPriceUSD,
		"default_max_price_usd":         defaults.MaxPriceUSD,
		"default_max_weekly_change_pct": defaults.MaxWeeklyChangePct,
	}

	cfg := &domain.PricingConfig{}
	if err := scanConfig(s.pool.QueryRow(ctx, queryUpsertPricingConfig, args), cfg); err != nil {
		return nil, configViolation(err, "upserting pricing config")
	}
	return cfg, nil
}

// ListAutoPricingItemIDs returns the IDs of every item with auto-pricing on.
func (s *PostgresStore) ListAutoPricingItemIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListAutoPricingItemIDs)
	if err != nil {
		return nil, fmt.Errorf("querying auto-pricing items: %w", err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting auto-pricing items: %w", err)
	}
	return ids, nil
}

// ApplyPrice commits a price change as one unit of work: the one-time plan
// row is locked, guard is evaluated against the locked price and current
// config, then the plan price, the snapshot's applied price, the audit row,
// and the config's last-applied time are written together.
func (s *PostgresStore) ApplyPrice(
	ctx context.Context,
	req *ApplyRequest,
	guard GuardFunc,
) (*domain.AppliedPrice, error) {
	var result domain.AppliedPrice

	err := s.runInTx(ctx, func(tx pgx.Tx) error {
		var planID string
		var oldPrice decimal.Decimal
		err := tx.QueryRow(ctx, queryLockPricePlan, req.ItemID).Scan(&planID, &oldPrice)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNoPricePlan
		}
		if err != nil {
			return fmt.Errorf("locking price plan: %w", err)
		}

		var cfg *domain.PricingConfig
		c := &domain.PricingConfig{}
		err = scanConfig(tx.QueryRow(ctx, queryGetPricingConfig, req.ItemID), c)
		switch {
		case err == nil:
			cfg = c
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("reading pricing config: %w", err)
		}

		if guard != nil {
			if err := guard(oldPrice, cfg); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, queryUpdatePlanPrice, planID, req.NewPriceUSD, req.AppliedAt); err != nil {
			return fmt.Errorf("updating plan price: %w", err)
		}

		tag, err := tx.Exec(ctx, queryMarkSnapshotApplied, req.SnapshotID, req.ItemID, req.NewPriceUSD)
		if err != nil {
			return fmt.Errorf("marking snapshot applied: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrSnapshotApplied
		}

		if _, err := tx.Exec(ctx, queryInsertAudit, pgx.NamedArgs{
			"item_id":       req.ItemID,
			"actor_id":      req.ActorID,
			"old_price_usd": oldPrice,
			"new_price_usd": req.NewPriceUSD,
			"reason":        req.Reason,
			"snapshot_id":   req.SnapshotID,
			"applied_at":    req.AppliedAt,
		}); err != nil {
			return fmt.Errorf("inserting audit: %w", err)
		}

		if cfg != nil {
			if _, err := tx.Exec(ctx, queryTouchConfigApplied, req.ItemID, req.AppliedAt); err != nil {
				return fmt.Errorf("updating config last_applied_at: %w", err)
			}
		}

		result = domain.AppliedPrice{OldPriceUSD: oldPrice, NewPriceUSD: req.NewPriceUSD}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListAudits returns price change audits matching q, newest first.
func (s *PostgresStore) ListAudits(ctx context.Context, q *AuditQuery) ([]domain.PriceChangeAudit, error) {
	sql, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audits: %w", err)
	}
	defer rows.Close()

	var audits []domain.PriceChangeAudit
	for rows.Next() {
		var a domain.PriceChangeAudit
		if err := rows.Scan(
			&a.ID, &a.ItemID, &a.ActorID, &a.OldPriceUSD, &a.NewPriceUSD,
			&a.Reason, &a.SnapshotID, &a.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit: %w", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// runInTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (s *PostgresStore) runInTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// notFound maps pgx.ErrNoRows to domain.ErrNotFound and wraps anything else.
func notFound(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// configViolation reports a CHECK failure on the config table as
// domain.ErrInvalidConfig. Concurrent partial updates can merge into a row
// that passed validation on each side but not together.
func configViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
		return fmt.Errorf("%w: violates %s", domain.ErrInvalidConfig, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanSnapshot(row pgx.Row, s *domain.PricingSnapshot) error {
	return row.Scan(
		&s.ID, &s.ItemID, &s.RecommendedPriceUSD, &s.Inputs, &s.Explanation,
		&s.InputsHash, &s.ComputedAt, &s.AppliedPriceUSD,
	)
}

func scanConfig(row pgx.Row, c *domain.PricingConfig) error {
	return row.Scan(
		&c.ItemID, &c.AutoPricingEnabled, &c.MinPriceUSD, &c.MaxPriceUSD,
		&c.MaxWeeklyChangePct, &c.LastAppliedAt, &c.CreatedAt, &c.UpdatedAt,
	)
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
