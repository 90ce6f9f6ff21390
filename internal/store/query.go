package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseAuditsSelect = `SELECT id, item_id, actor_id, old_price_usd, new_price_usd,
	reason, snapshot_id, applied_at
FROM price_change_audits`

// ToSQL builds the audit query with its WHERE clause, ordering, and limit,
// returning the SQL and positional parameters. Results are newest first.
func (q *AuditQuery) ToSQL() (string, []any) {
	conditions := []string{"item_id = $1"}
	args := []any{q.ItemID}
	paramIdx := 2

	if q.Reason != nil {
		conditions = append(conditions, fmt.Sprintf("reason = $%d", paramIdx))
		args = append(args, *q.Reason)
		paramIdx++
	}

	if q.ActorID != nil {
		conditions = append(conditions, fmt.Sprintf("actor_id = $%d", paramIdx))
		args = append(args, *q.ActorID)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("applied_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sql := fmt.Sprintf(
		"%s WHERE %s ORDER BY applied_at DESC, id DESC LIMIT %d",
		baseAuditsSelect, strings.Join(conditions, " AND "), limit,
	)

	return sql, args
}
