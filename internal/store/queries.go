package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Catalog queries.
const (
	queryGetItem = `
		SELECT id, org_id, title, categories, status,
			quality_percent, complexity_tag, cleaning_cost_usd,
			created_at, last_updated_at
		FROM items
		WHERE id = $1`

	queryGetPricePlan = `
		SELECT id, item_id, plan_type, price_usd, updated_at
		FROM price_plans
		WHERE item_id = $1 AND plan_type = $2`

	queryGetPurchaseStats = `
		SELECT COUNT(*), COALESCE(SUM(amount_usd), 0)
		FROM purchases
		WHERE item_id = $1
			AND status = 'paid'
			AND purchased_at >= $2`

	queryListPeerPrices = `
		SELECT pp.price_usd
		FROM price_plans pp
		JOIN items i ON i.id = pp.item_id
		WHERE pp.plan_type = 'one_time'
			AND i.status = 'published'
			AND i.id <> $2
			AND $1 = ANY(i.categories)
		ORDER BY pp.price_usd`
)

// Snapshot queries.
const (
	snapshotColumns = `id, item_id, recommended_price_usd, inputs, explanation,
			inputs_hash, computed_at, applied_price_usd`

	queryGetLatestSnapshot = `
		SELECT ` + snapshotColumns + `
		FROM pricing_snapshots
		WHERE item_id = $1 AND computed_at >= $2
		ORDER BY computed_at DESC
		LIMIT 1`

	queryGetSnapshot = `
		SELECT ` + snapshotColumns + `
		FROM pricing_snapshots
		WHERE id = $1`

	queryInsertSnapshot = `
		INSERT INTO pricing_snapshots (
			item_id, recommended_price_usd, inputs, explanation,
			inputs_hash, computed_at
		) VALUES (
			@item_id, @recommended_price_usd, @inputs, @explanation,
			@inputs_hash, @computed_at
		)
		RETURNING id`

	queryListSnapshots = `
		SELECT ` + snapshotColumns + `
		FROM pricing_snapshots
		WHERE item_id = $1
		ORDER BY computed_at DESC
		LIMIT $2`
)

// Pricing config queries.
const (
	configColumns = `item_id, auto_pricing_enabled, min_price_usd, max_price_usd,
			max_weekly_change_pct, last_applied_at, created_at, updated_at`

	queryGetPricingConfig = `
		SELECT ` + configColumns + `
		FROM pricing_configs
		WHERE item_id = $1`

	// Absent patch fields arrive as NULL: defaults on insert, stored value
	// on update.
	queryUpsertPricingConfig = `
		INSERT INTO pricing_configs (
			item_id, auto_pricing_enabled, min_price_usd, max_price_usd,
			max_weekly_change_pct, created_at, updated_at
		) VALUES (
			@item_id,
			COALESCE(@auto_pricing_enabled::boolean, @default_auto_pricing_enabled::boolean),
			COALESCE(@min_price_usd::numeric, @default_min_price_usd::numeric),
			COALESCE(@max_price_usd::numeric, @default_max_price_usd::numeric),
			COALESCE(@max_weekly_change_pct::integer, @default_max_weekly_change_pct::integer),
			now(), now()
		)
		ON CONFLICT (item_id) DO UPDATE SET
			auto_pricing_enabled  = COALESCE(@auto_pricing_enabled::boolean, pricing_configs.auto_pricing_enabled),
			min_price_usd         = COALESCE(@min_price_usd::numeric, pricing_configs.min_price_usd),
			max_price_usd         = COALESCE(@max_price_usd::numeric, pricing_configs.max_price_usd),
			max_weekly_change_pct = COALESCE(@max_weekly_change_pct::integer, pricing_configs.max_weekly_change_pct),
			updated_at            = now()
		RETURNING ` + configColumns

	queryListAutoPricingItemIDs = `
		SELECT item_id
		FROM pricing_configs
		WHERE auto_pricing_enabled
		ORDER BY item_id`
)

// Apply (unit of work) queries.
const (
	queryLockPricePlan = `
		SELECT id, price_usd
		FROM price_plans
		WHERE item_id = $1 AND plan_type = 'one_time'
		FOR UPDATE`

	queryUpdatePlanPrice = `
		UPDATE price_plans SET
			price_usd  = $2,
			updated_at = $3
		WHERE id = $1`

	queryMarkSnapshotApplied = `
		UPDATE pricing_snapshots SET
			applied_price_usd = $3
		WHERE id = $1
			AND item_id = $2
			AND applied_price_usd IS NULL`

	queryInsertAudit = `
		INSERT INTO price_change_audits (
			item_id, actor_id, old_price_usd, new_price_usd,
			reason, snapshot_id, applied_at
		) VALUES (
			@item_id, @actor_id, @old_price_usd, @new_price_usd,
			@reason, @snapshot_id, @applied_at
		)`

	queryTouchConfigApplied = `
		UPDATE pricing_configs SET
			last_applied_at = $2,
			updated_at      = now()
		WHERE item_id = $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
