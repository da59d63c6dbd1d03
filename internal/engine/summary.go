package engine

import (
	"context"
	"log/slog"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/notify"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// EventName labels the operator summary of this job.
const EventName = "Cart Abandonment"

// SummaryReporter sends the per-store result to operators when the website
// has the result alert enabled. Delivery failures are logged and never
// affect the run.
type SummaryReporter struct {
	settings *scope.Settings
	notifier notify.Notifier
	log      *slog.Logger
}

// NewSummaryReporter creates a SummaryReporter.
func NewSummaryReporter(settings *scope.Settings, n notify.Notifier, log *slog.Logger) *SummaryReporter {
	return &SummaryReporter{settings: settings, notifier: n, log: log}
}

// Report delivers the totals of one store.
func (r *SummaryReporter) Report(ctx context.Context, website domain.Website, res *domain.StoreResult) {
	log := r.log.With("website_id", website.ID, "store_id", res.StoreID)

	alert, err := r.settings.ResultAlert(ctx, website.ID)
	if err != nil {
		log.Warn("result alert misconfigured, summary not sent", "error", err)
		return
	}
	if !alert.Enabled {
		return
	}

	s := &notify.Summary{
		EventName:    EventName,
		Sender:       alert.Sender,
		Recipients:   alert.Recipients,
		TemplateID:   alert.TemplateID,
		WebsiteID:    website.ID,
		WebsiteCode:  website.Code,
		StoreID:      res.StoreID,
		SuccessCount: res.SuccessCount,
		FailureCount: res.FailureCount,
	}

	if err := r.notifier.SendSummary(ctx, s); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Error("sending result summary", "error", err)
		return
	}

	metrics.SummariesSentTotal.Inc()
	log.Debug("result summary sent",
		"success_count", res.SuccessCount,
		"failure_count", res.FailureCount,
	)
}
