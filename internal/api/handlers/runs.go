package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// RunTrigger starts an abandonment run on demand.
type RunTrigger interface {
	RunNow(ctx context.Context) (*domain.RunSummary, error)
}

// RunsHandler handles manual abandonment run requests.
type RunsHandler struct {
	trigger    RunTrigger
	inProgress error
}

// NewRunsHandler creates a RunsHandler. inProgress is the error the trigger
// returns when another run holds the lock; it is answered with 409 instead
// of 500.
func NewRunsHandler(t RunTrigger, inProgress error) *RunsHandler {
	return &RunsHandler{trigger: t, inProgress: inProgress}
}

// RunOutput is the response body for a manual run.
type RunOutput struct {
	Body *domain.RunSummary
}

// Run executes one abandonment pass and returns per-store results. The pass
// is detached from the request: a client that disconnects mid-run does not
// cut it short between an accepted event and its state write.
func (h *RunsHandler) Run(ctx context.Context, _ *struct{}) (*RunOutput, error) {
	summary, err := h.trigger.RunNow(context.WithoutCancel(ctx))
	if err != nil {
		if h.inProgress != nil && errors.Is(err, h.inProgress) {
			return nil, huma.Error409Conflict("an abandonment run is already in progress")
		}
		return nil, huma.Error500InternalServerError("abandonment run failed: " + err.Error())
	}

	if summary.Stores == nil {
		summary.Stores = []domain.StoreResult{}
	}
	return &RunOutput{Body: summary}, nil
}

// RegisterRunRoutes registers the manual run endpoint with the Huma API.
func RegisterRunRoutes(api huma.API, h *RunsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-run",
		Method:      http.MethodPost,
		Path:        "/api/v1/runs",
		Summary:     "Trigger an abandonment run",
		Description: "Finds due abandoned carts in every enabled website, triggers the " +
			"recovery event for each and returns the per-store totals.",
		Tags:   []string{"runs"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Run)
}
