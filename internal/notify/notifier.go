// Package notify defines the operator summary interface and its delivery
// backends.
package notify

import (
	"context"
	"strconv"
)

// Summary is the operator report for one processed store.
type Summary struct {
	// EventName labels the run and is used as the sender display name.
	EventName    string
	Sender       string
	Recipients   []string
	TemplateID   string
	WebsiteID    int64
	WebsiteCode  string
	StoreID      int64
	SuccessCount int
	FailureCount int
}

// TemplateVars returns the variables the summary template renders.
func (s *Summary) TemplateVars() map[string]string {
	return map[string]string{
		"email_type":    s.EventName,
		"success_count": strconv.Itoa(s.SuccessCount),
		"failure_count": strconv.Itoa(s.FailureCount),
		"website_name":  s.WebsiteCode,
	}
}

// Notifier delivers operator summaries.
type Notifier interface {
	SendSummary(ctx context.Context, s *Summary) error
}
