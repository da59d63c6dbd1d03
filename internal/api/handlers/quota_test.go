package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/api/handlers"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/eventapi"
)

func TestGetQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rl         *eventapi.RateLimiter
		preCalls   int
		wantLimit  int64
		wantUsed   int64
		wantRemain int64
	}{
		{
			name: "nil rate limiter returns zeroes",
		},
		{
			name:       "fresh rate limiter",
			rl:         eventapi.NewRateLimiter(100, 10, 5000),
			wantLimit:  5000,
			wantRemain: 5000,
		},
		{
			name:       "rate limiter with usage",
			rl:         eventapi.NewRateLimiter(100, 10, 100),
			preCalls:   3,
			wantLimit:  100,
			wantUsed:   3,
			wantRemain: 97,
		},
		{
			name:       "unlimited quota",
			rl:         eventapi.NewRateLimiter(100, 10, 0),
			preCalls:   2,
			wantUsed:   2,
			wantRemain: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *handlers.QuotaHandler
			if tt.rl != nil {
				for range tt.preCalls {
					require.NoError(t, tt.rl.Wait(t.Context()))
				}
				h = handlers.NewQuotaHandler(tt.rl)
			} else {
				h = handlers.NewQuotaHandler(nil)
			}

			_, api := humatest.New(t)
			handlers.RegisterQuotaRoutes(api, h)

			resp := api.Get("/api/v1/quota")
			require.Equal(t, http.StatusOK, resp.Code)

			var body struct {
				DailyLimit int64 `json:"daily_limit"`
				DailyUsed  int64 `json:"daily_used"`
				Remaining  int64 `json:"remaining"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantLimit, body.DailyLimit)
			assert.Equal(t, tt.wantUsed, body.DailyUsed)
			assert.Equal(t, tt.wantRemain, body.Remaining)
		})
	}
}

func TestGetQuota_ResetAtValue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := eventapi.NewRateLimiter(
		5, 10, 5000,
		eventapi.WithRateLimiterNowFunc(func() time.Time { return now }),
	)

	h := handlers.NewQuotaHandler(rl)

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, h)

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	// ResetAt should be 24 hours from now.
	assert.Contains(t, resp.Body.String(), "2026-06-16T14:30:00Z")
}
