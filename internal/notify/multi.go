package notify

import (
	"context"
	"errors"
)

// MultiNotifier fans a summary out to several backends. Every backend is
// tried; failures are joined.
type MultiNotifier struct {
	backends []Notifier
}

// NewMultiNotifier combines backends into one Notifier.
func NewMultiNotifier(backends ...Notifier) *MultiNotifier {
	return &MultiNotifier{backends: backends}
}

// SendSummary delivers s to every backend.
func (m *MultiNotifier) SendSummary(ctx context.Context, s *Summary) error {
	var errs []error
	for _, b := range m.backends {
		if err := b.SendSummary(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
