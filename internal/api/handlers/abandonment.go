package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// AbandonmentProvider reads notification state for a quote.
type AbandonmentProvider interface {
	GetAbandonmentRecord(ctx context.Context, quoteID int64) (*domain.AbandonmentRecord, error)
}

// AbandonmentHandler exposes per-quote notification state.
type AbandonmentHandler struct {
	store AbandonmentProvider
}

// NewAbandonmentHandler creates an AbandonmentHandler.
func NewAbandonmentHandler(s AbandonmentProvider) *AbandonmentHandler {
	return &AbandonmentHandler{store: s}
}

// GetAbandonmentInput is the request path for a quote's state.
type GetAbandonmentInput struct {
	QuoteID int64 `path:"quote_id" doc:"Cart (quote) id"`
}

// AbandonmentState is the notification state of one cart.
type AbandonmentState struct {
	QuoteID           int64 `json:"quote_id"            doc:"Cart (quote) id"`
	EventTriggerCount int   `json:"event_trigger_count" doc:"Recovery notifications sent so far (0-2)"`
	Terminal          bool  `json:"terminal"            doc:"True when no further notification will be sent"`
}

// GetAbandonmentOutput is the response body for a quote's state.
type GetAbandonmentOutput struct {
	Body AbandonmentState
}

// GetAbandonment returns the trigger count for a quote. Quotes that were
// never notified report a count of zero.
func (h *AbandonmentHandler) GetAbandonment(
	ctx context.Context,
	input *GetAbandonmentInput,
) (*GetAbandonmentOutput, error) {
	resp := &GetAbandonmentOutput{}
	resp.Body.QuoteID = input.QuoteID

	rec, err := h.store.GetAbandonmentRecord(ctx, input.QuoteID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return resp, nil
	case err != nil:
		return nil, huma.Error500InternalServerError(
			fmt.Sprintf("loading abandonment state for quote %d failed", input.QuoteID),
		)
	}

	resp.Body.EventTriggerCount = rec.EventTriggerCount
	resp.Body.Terminal = rec.Terminal()
	return resp, nil
}

// RegisterAbandonmentRoutes registers the notification state endpoint.
func RegisterAbandonmentRoutes(api huma.API, h *AbandonmentHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-abandonment-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/abandonment/{quote_id}",
		Summary:     "Get cart notification state",
		Description: "Returns how many recovery notifications a cart has received.",
		Tags:        []string{"runs"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetAbandonment)
}
