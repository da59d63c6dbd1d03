package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartQuery_ToSQL(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	firstDue := time.Date(2026, 2, 8, 9, 15, 0, 0, time.UTC)
	secondDue := time.Date(2026, 2, 8, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     CartQuery
		wantHas   []string
		wantNotIn []string
		wantArgs  []any
	}{
		{
			name: "all conditions present",
			query: CartQuery{
				StoreID:         3,
				CreatedAfter:    created,
				UpdatedAfter:    updated,
				MaxTriggerCount: 2,
			},
			wantHas: []string{
				"FROM quote q",
				"LEFT JOIN cart_abandonment_info a ON a.quote_id = q.entity_id",
				"q.is_active = TRUE",
				"q.customer_email IS NOT NULL",
				"q.items_count != 0",
				"(a.event_trigger_count IS NULL OR a.event_trigger_count < $1)",
				"q.created_at > $2",
				"q.store_id = $3",
				"q.updated_at > $4",
				"GROUP BY q.entity_id",
				"ORDER BY q.entity_id ASC",
			},
			wantNotIn: []string{"LIMIT"},
			wantArgs:  []any{2, created, int64(3), updated},
		},
		{
			name: "zero max trigger count uses default",
			query: CartQuery{
				StoreID:      1,
				CreatedAfter: created,
				UpdatedAfter: updated,
			},
			wantArgs: []any{2, created, int64(1), updated},
		},
		{
			name: "limit appended as last parameter",
			query: CartQuery{
				StoreID:         1,
				CreatedAfter:    created,
				UpdatedAfter:    updated,
				MaxTriggerCount: 2,
				Limit:           500,
			},
			wantHas:  []string{"LIMIT $5"},
			wantArgs: []any{2, created, int64(1), updated, 500},
		},
		{
			name: "due window filters by stage before the limit",
			query: CartQuery{
				StoreID:         1,
				CreatedAfter:    created,
				UpdatedAfter:    updated,
				MaxTriggerCount: 2,
				FirstDueBefore:  firstDue,
				SecondDueBefore: secondDue,
				Limit:           500,
			},
			wantHas: []string{
				"((COALESCE(a.event_trigger_count, 0) = 0 AND q.updated_at < $5)" +
					" OR (a.event_trigger_count = 1 AND q.updated_at < $6))",
				"LIMIT $7",
			},
			wantArgs: []any{2, created, int64(1), updated, firstDue, secondDue, 500},
		},
		{
			name: "no due window leaves stage timing to the caller",
			query: CartQuery{
				StoreID:      1,
				CreatedAfter: created,
				UpdatedAfter: updated,
			},
			wantNotIn: []string{"q.updated_at < $"},
			wantArgs:  []any{2, created, int64(1), updated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args := tt.query.ToSQL()

			for _, s := range tt.wantHas {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.wantNotIn {
				assert.NotContains(t, sql, s)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestCartQuery_ToSQL_ClauseOrder(t *testing.T) {
	t.Parallel()

	q := CartQuery{StoreID: 1, Limit: 10}
	sql, _ := q.ToSQL()

	where := strings.Index(sql, "WHERE")
	group := strings.Index(sql, "GROUP BY")
	order := strings.Index(sql, "ORDER BY")
	limit := strings.Index(sql, "LIMIT")

	require.Positive(t, where)
	assert.Less(t, where, group)
	assert.Less(t, group, order)
	assert.Less(t, order, limit)
}

func TestCartQuery_ToSQL_DueWindowInsideWhere(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 8, 9, 30, 0, 0, time.UTC)
	q := CartQuery{
		StoreID:         1,
		FirstDueBefore:  now.Add(-15 * time.Minute),
		SecondDueBefore: now.Add(-time.Hour),
		Limit:           1,
	}
	sql, _ := q.ToSQL()

	due := strings.Index(sql, "q.updated_at < $5")
	group := strings.Index(sql, "GROUP BY")
	limit := strings.Index(sql, "LIMIT $7")

	require.Positive(t, due)
	assert.Less(t, strings.Index(sql, "WHERE"), due)
	assert.Less(t, due, group)
	assert.Less(t, group, limit)
}

func TestPersistenceError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := error(&PersistenceError{Op: "updating", QuoteID: 101, Err: cause})

	assert.Equal(t, "updating abandonment record for quote 101: connection reset", err.Error())
	require.ErrorIs(t, err, cause)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, int64(101), pe.QuoteID)
}

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	versions, err := MigrationVersions()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"001_cart_abandonment_info.sql",
		"002_scope_config.sql",
		"003_job_runs_and_locks.sql",
	}, versions)
}
