package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// QuotaSource reports event API call usage.
type QuotaSource interface {
	MaxDaily() int64
	DailyCount() int64
	Remaining() int64
	ResetAt() time.Time
}

// QuotaHandler provides the event API quota status endpoint.
type QuotaHandler struct {
	rl QuotaSource
}

// NewQuotaHandler creates a new QuotaHandler. A nil source reports zeroes.
func NewQuotaHandler(rl QuotaSource) *QuotaHandler {
	return &QuotaHandler{rl: rl}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64     `json:"daily_limit" example:"10000"                doc:"Configured daily event call limit, 0 when unlimited"`
		DailyUsed  int64     `json:"daily_used"  example:"142"                  doc:"Event calls made in the current 24-hour window"`
		Remaining  int64     `json:"remaining"   example:"9858"                 doc:"Event calls remaining, -1 when unlimited"`
		ResetAt    time.Time `json:"reset_at"    example:"2026-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current event API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.rl == nil {
		return resp, nil
	}

	resp.Body.DailyLimit = h.rl.MaxDaily()
	resp.Body.DailyUsed = h.rl.DailyCount()
	resp.Body.Remaining = h.rl.Remaining()
	resp.Body.ResetAt = h.rl.ResetAt()

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get event API quota status",
		Description: "Returns the current daily event call usage, remaining quota, and window reset time.",
		Tags:        []string{"event-api"},
	}, h.GetQuota)
}
