package engine

import (
	"context"
	"errors"
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	notifyMocks "github.com/donaldgifford/cart-abandonment-notifier/internal/notify/mocks"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

func TestSummaryReporter_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provider func() scope.Provider
		sendErr  error
		wantSend bool
	}{
		{
			name:     "enabled alert is sent",
			provider: func() scope.Provider { return testProvider() },
			wantSend: true,
		},
		{
			name: "disabled alert is not sent",
			provider: func() scope.Provider {
				return testProvider().Set(scope.PathResultAlertEnabled, "0", scope.Website(1))
			},
		},
		{
			name: "enabled without template is not sent",
			provider: func() scope.Provider {
				return testProvider().Set(scope.PathResultAlertTemplate, "", scope.Website(1))
			},
		},
		{
			name:     "delivery failure is swallowed",
			provider: func() scope.Provider { return testProvider() },
			sendErr:  errors.New("ses throttled"),
			wantSend: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := notifyMocks.NewMockNotifier(t)
			if tt.wantSend {
				n.EXPECT().SendSummary(mock.Anything, summaryWith(2, 1)).Return(tt.sendErr).Once()
			}

			r := NewSummaryReporter(scope.NewSettings(tt.provider(), nil), n, quietLogger())
			r.Report(context.Background(), testWebsite, &domain.StoreResult{
				WebsiteID:    1,
				StoreID:      1,
				SuccessCount: 2,
				FailureCount: 1,
			})
		})
	}
}

func TestSummaryReporter_FailureMetric(t *testing.T) {
	t.Parallel()

	n := notifyMocks.NewMockNotifier(t)
	n.EXPECT().SendSummary(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	r := NewSummaryReporter(scope.NewSettings(testProvider(), nil), n, quietLogger())
	r.Report(context.Background(), testWebsite, &domain.StoreResult{StoreID: 1, FailureCount: 1})

	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.NotificationFailuresTotal), before+1)
}
