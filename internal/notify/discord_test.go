package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
)

func testSummary(success, failure int) *Summary {
	return &Summary{
		EventName:    "Cart Abandonment",
		Sender:       "noreply@example.com",
		Recipients:   []string{"ops@example.com"},
		TemplateID:   "cart-abandonment-result",
		WebsiteID:    1,
		WebsiteCode:  "base",
		StoreID:      1,
		SuccessCount: success,
		FailureCount: failure,
	}
}

func TestDiscordNotifier_SendSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		summary    *Summary
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "all succeeded uses green",
			summary:    testSummary(3, 0),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "partial failure uses orange",
			summary:    testSummary(2, 1),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "nothing succeeded uses red",
			summary:    testSummary(0, 4),
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
		},
		{
			name:       "discord returns 429 rate limited",
			summary:    testSummary(1, 0),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			summary:    testSummary(1, 0),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendSummary(context.Background(), tt.summary)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Equal(t, "Cart Abandonment: base", embed.Title)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, "1", fieldMap["Store"])
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	err := d.SendSummary(context.Background(), testSummary(1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.SendSummary(context.Background(), testSummary(1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount(backend string) uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.WithLabelValues(backend).(prometheus.Histogram).Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendSummary_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount("discord")

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendSummary(context.Background(), testSummary(1, 0)))

	after := getNotificationHistogramSampleCount("discord")
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}

func TestSummary_TemplateVars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]string{
		"email_type":    "Cart Abandonment",
		"success_count": "2",
		"failure_count": "1",
		"website_name":  "base",
	}, testSummary(2, 1).TemplateVars())
}
