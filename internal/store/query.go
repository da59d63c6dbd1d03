package store

import (
	"fmt"
	"strings"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

const baseCandidateSelect = `SELECT q.entity_id, q.store_id, q.customer_id, q.customer_email,
	q.updated_at, COALESCE(MAX(a.event_trigger_count), 0)
FROM quote q
LEFT JOIN cart_abandonment_info a ON a.quote_id = q.entity_id`

// ToSQL builds the abandonment query for one store. The eligibility
// conditions are always present; the due window and the limit are optional.
// It returns the SQL and its positional parameters.
func (q *CartQuery) ToSQL() (string, []any) {
	maxCount := q.MaxTriggerCount
	if maxCount <= 0 {
		maxCount = domain.MaxTriggerCount
	}

	conditions := []string{
		"q.is_active = TRUE",
		"q.customer_email IS NOT NULL",
		"q.items_count != 0",
		"(a.event_trigger_count IS NULL OR a.event_trigger_count < $1)",
		"q.created_at > $2",
		"q.store_id = $3",
		"q.updated_at > $4",
	}
	args := []any{maxCount, q.CreatedAfter, q.StoreID, q.UpdatedAfter}

	if !q.FirstDueBefore.IsZero() || !q.SecondDueBefore.IsZero() {
		conditions = append(conditions, fmt.Sprintf(
			"((COALESCE(a.event_trigger_count, 0) = 0 AND q.updated_at < $%d)"+
				" OR (a.event_trigger_count = 1 AND q.updated_at < $%d))",
			len(args)+1, len(args)+2,
		))
		args = append(args, q.FirstDueBefore, q.SecondDueBefore)
	}

	var b strings.Builder
	b.WriteString(baseCandidateSelect)
	b.WriteString("\nWHERE ")
	b.WriteString(strings.Join(conditions, "\n\tAND "))
	b.WriteString("\nGROUP BY q.entity_id")
	b.WriteString("\nORDER BY q.entity_id ASC")

	if q.Limit > 0 {
		b.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)+1))
		args = append(args, q.Limit)
	}

	return b.String(), args
}
