package engine

import (
	"context"
	"time"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

const day = 24 * time.Hour

// FindCandidates returns the store's carts that are due a notification:
// created after the website's start date, updated within the store's quote
// lifetime, and idle past the delay of their next stage. The cut-offs use
// the same strict comparison as isDue, which still gates each cart.
func (eng *Engine) FindCandidates(
	ctx context.Context,
	websiteID, storeID int64,
	now time.Time,
) ([]domain.CandidateCart, error) {
	q, err := eng.candidateQuery(ctx, websiteID, storeID, now)
	if err != nil {
		return nil, err
	}

	eng.log.Debug("finding abandoned carts",
		"website_id", websiteID,
		"store_id", storeID,
		"created_after", q.CreatedAfter,
		"updated_after", q.UpdatedAfter,
	)

	return eng.store.FindAbandonedCarts(ctx, q)
}

func (eng *Engine) candidateQuery(
	ctx context.Context,
	websiteID, storeID int64,
	now time.Time,
) (*store.CartQuery, error) {
	start, err := eng.settings.StartDate(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	lifetime, err := eng.settings.QuoteLifetimeDays(ctx, storeID, websiteID)
	if err != nil {
		return nil, err
	}

	first, second, err := eng.settings.Delays(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	return &store.CartQuery{
		StoreID:         storeID,
		CreatedAfter:    start,
		UpdatedAfter:    now.Add(-time.Duration(lifetime) * day),
		MaxTriggerCount: domain.MaxTriggerCount,
		FirstDueBefore:  now.Add(-first),
		SecondDueBefore: now.Add(-second),
		Limit:           eng.candidateLimit,
	}, nil
}
