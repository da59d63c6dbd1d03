package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded summaries. It is used
// when no delivery backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards summaries with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendSummary logs and discards a summary.
func (n *NoOpNotifier) SendSummary(_ context.Context, s *Summary) error {
	n.log.Debug("summary discarded (no backend configured)",
		"website", s.WebsiteCode,
		"store_id", s.StoreID,
		"success_count", s.SuccessCount,
		"failure_count", s.FailureCount,
	)
	return nil
}
