package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAuditQuery_ToSQL(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     AuditQuery
		wantHas   []string
		wantNotIn []string
		wantArgs  []any
	}{
		{
			name:  "item only uses defaults",
			query: AuditQuery{ItemID: "item-1"},
			wantHas: []string{
				"FROM price_change_audits",
				"WHERE item_id = $1 ORDER BY",
				"ORDER BY applied_at DESC, id DESC",
				"LIMIT 50",
			},
			wantNotIn: []string{" AND "},
			wantArgs:  []any{"item-1"},
		},
		{
			name:     "reason filter",
			query:    AuditQuery{ItemID: "item-1", Reason: ptr("auto_reprice")},
			wantHas:  []string{"WHERE item_id = $1 AND reason = $2"},
			wantArgs: []any{"item-1", "auto_reprice"},
		},
		{
			name:     "actor filter",
			query:    AuditQuery{ItemID: "item-1", ActorID: ptr("user-9")},
			wantHas:  []string{"WHERE item_id = $1 AND actor_id = $2"},
			wantArgs: []any{"item-1", "user-9"},
		},
		{
			name: "all filters with correct parameter numbering",
			query: AuditQuery{
				ItemID:  "item-1",
				Reason:  ptr("manual_apply"),
				ActorID: ptr("user-9"),
				Since:   &since,
				Limit:   20,
			},
			wantHas: []string{
				"item_id = $1",
				"reason = $2",
				"actor_id = $3",
				"applied_at >= $4",
				"LIMIT 20",
			},
			wantArgs: []any{"item-1", "manual_apply", "user-9", since},
		},
		{
			name:     "negative limit defaults to 50",
			query:    AuditQuery{ItemID: "item-1", Limit: -3},
			wantHas:  []string{"LIMIT 50"},
			wantArgs: []any{"item-1"},
		},
		{
			name:     "limit exceeding max is capped",
			query:    AuditQuery{ItemID: "item-1", Limit: 10_000},
			wantHas:  []string{"LIMIT 500"},
			wantArgs: []any{"item-1"},
		},
		{
			name:      "filter values never reach the SQL text",
			query:     AuditQuery{ItemID: "x'; DROP TABLE items; --", Reason: ptr("' OR 1=1")},
			wantNotIn: []string{"DROP TABLE", "OR 1=1"},
			wantArgs:  []any{"x'; DROP TABLE items; --", "' OR 1=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			sql, args := q.ToSQL()

			for _, s := range tt.wantHas {
				assert.Contains(t, sql, s, "sql should contain %q", s)
			}
			for _, s := range tt.wantNotIn {
				assert.NotContains(t, sql, s, "sql should not contain %q", s)
			}

			require.Len(t, args, len(tt.wantArgs))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
