package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/payload"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/tracing"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// isDue reports whether a cart at the given stage has waited long enough for
// its next notification. The comparison is strict: a cart exactly at the
// threshold is not yet due.
func isDue(count int, updatedAt, now time.Time, first, second time.Duration) bool {
	switch count {
	case 0:
		return now.After(updatedAt.Add(first))
	case 1:
		return now.After(updatedAt.Add(second))
	default:
		return false
	}
}

// cartOutcome classifies what happened to one candidate.
type cartOutcome int

const (
	outcomeSkipped cartOutcome = iota
	outcomeNotified
	outcomeFailed
)

// ProcessStore notifies every due cart of one store and reports the totals.
// Carts are handled one at a time. A failed event call leaves the cart's
// state untouched so the next run picks it up again. A persistence failure
// stops the store and is returned after the summary is sent.
func (eng *Engine) ProcessStore(
	ctx context.Context,
	website domain.Website,
	st domain.Store,
) (domain.StoreResult, error) {
	ctx, span := tracing.Tracer().Start(ctx, "engine.ProcessStore",
		trace.WithAttributes(
			attribute.Int64("website.id", website.ID),
			attribute.Int64("store.id", st.ID),
		),
	)
	defer span.End()

	result := domain.StoreResult{WebsiteID: website.ID, StoreID: st.ID}
	log := eng.log.With("website_id", website.ID, "store_id", st.ID)

	first, second, err := eng.settings.Delays(ctx, website.ID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	now := eng.nowFunc()
	carts, err := eng.FindCandidates(ctx, website.ID, st.ID, now)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, fmt.Errorf("finding carts for store %d: %w", st.ID, err)
	}

	result.Candidates = len(carts)
	metrics.CandidatesTotal.Add(float64(len(carts)))
	span.SetAttributes(attribute.Int("candidates", len(carts)))

	if len(carts) == 0 {
		log.Info("no abandonment carts")
		return result, nil
	}

	var storeErr error
	for i := range carts {
		cart := &carts[i]

		if !isDue(cart.EventTriggerCount, cart.UpdatedAt, now, first, second) {
			result.Skipped++
			metrics.CartsSkippedTotal.WithLabelValues("not_due").Inc()
			continue
		}

		outcome, err := eng.processCart(ctx, website.ID, st.ID, cart)
		switch outcome {
		case outcomeNotified:
			result.SuccessCount++
		case outcomeFailed:
			result.FailureCount++
			result.FailedQuoteIDs = append(result.FailedQuoteIDs, cart.QuoteID)
		case outcomeSkipped:
			result.Skipped++
		}

		if err != nil {
			var cfgErr *scope.ConfigError
			if errors.As(err, &cfgErr) || isPersistenceError(err) {
				storeErr = err
				break
			}
		}
	}

	if result.Total() > 0 {
		eng.reporter.Report(ctx, website, &result)
	}

	log.Info("abandonment store processed",
		"candidates", result.Candidates,
		"skipped", result.Skipped,
		"success_count", result.SuccessCount,
		"failure_count", result.FailureCount,
		"failed_quote_ids", result.FailedQuoteIDs,
	)

	span.SetAttributes(
		attribute.Int("success", result.SuccessCount),
		attribute.Int("failure", result.FailureCount),
	)
	if storeErr != nil {
		span.RecordError(storeErr)
		span.SetStatus(codes.Error, storeErr.Error())
	}
	return result, storeErr
}

// processCart builds, sends and records one due cart. The returned error is
// non-nil only for failures the caller must act on: configuration errors,
// persistence errors, and send errors that were also counted as failures.
func (eng *Engine) processCart(
	ctx context.Context,
	websiteID, storeID int64,
	cart *domain.CandidateCart,
) (cartOutcome, error) {
	ctx, span := tracing.Tracer().Start(ctx, "engine.processCart",
		trace.WithAttributes(
			attribute.Int64("quote.id", cart.QuoteID),
			attribute.Int("quote.trigger_count", cart.EventTriggerCount),
		),
	)
	defer span.End()

	log := eng.log.With("quote_id", cart.QuoteID, "store_id", storeID)

	req, err := eng.builder.Build(ctx, cart, websiteID, storeID)
	if err != nil {
		if errors.Is(err, payload.ErrNoPayload) {
			log.Debug("cart skipped", "reason", err)
			metrics.CartsSkippedTotal.WithLabelValues("no_payload").Inc()
			return outcomeSkipped, nil
		}
		log.Error("building event payload", "error", err)
		span.SetStatus(codes.Error, err.Error())
		metrics.CartsSkippedTotal.WithLabelValues("config").Inc()
		return outcomeSkipped, err
	}

	res, err := eng.sender.Send(ctx, req, websiteID)
	if err != nil {
		log.Error("sending abandonment event", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.CartsFailedTotal.Inc()
		var cfgErr *scope.ConfigError
		if errors.As(err, &cfgErr) {
			return outcomeFailed, err
		}
		return outcomeFailed, nil
	}
	if !res.Succeeded() {
		log.Warn("abandonment event rejected",
			"status", res.StatusCode,
			"body", res.Body,
		)
		span.SetStatus(codes.Error, "status "+strconv.Itoa(res.StatusCode))
		metrics.CartsFailedTotal.Inc()
		return outcomeFailed, nil
	}

	// The event is accepted; the count must land even if the run is being
	// canceled, or the next scan sends the same email again.
	count, err := eng.recordTrigger(context.WithoutCancel(ctx), cart.QuoteID)
	if err != nil {
		log.Error("recording trigger count", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return outcomeNotified, err
	}

	metrics.CartsNotifiedTotal.WithLabelValues(strconv.Itoa(count)).Inc()
	log.Info("abandonment event sent", "event_trigger_count", count)
	return outcomeNotified, nil
}

// recordTrigger advances the cart's trigger count after an accepted event. A
// missing record is created at 1; an existing one moves to prior+1.
func (eng *Engine) recordTrigger(ctx context.Context, quoteID int64) (int, error) {
	prior, err := eng.store.GetAbandonmentRecord(ctx, quoteID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		prior = nil
	case err != nil:
		if isPersistenceError(err) {
			return 0, err
		}
		return 0, &store.PersistenceError{Op: "loading", QuoteID: quoteID, Err: err}
	}

	count := 1
	var entityID *int64
	if prior != nil {
		count = prior.EventTriggerCount + 1
		entityID = &prior.EntityID
	}

	rec, err := eng.store.UpsertAbandonmentRecord(ctx, quoteID, count, entityID)
	if err != nil {
		if isPersistenceError(err) {
			return 0, err
		}
		op := "inserting"
		if entityID != nil {
			op = "updating"
		}
		return 0, &store.PersistenceError{Op: op, QuoteID: quoteID, Err: err}
	}
	return rec.EventTriggerCount, nil
}

func isPersistenceError(err error) bool {
	var pe *store.PersistenceError
	return errors.As(err, &pe)
}
