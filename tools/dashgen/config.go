package main

import "errors"

// KnownMetrics is the set of metric names exported by cart-abandonment-notifier
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"can_http_request_duration_seconds": true,
	"can_http_requests_total":           true,

	// Health metrics.
	"can_healthz_up": true,
	"can_readyz_up":  true,

	// Run metrics.
	"can_runs_total":                     true,
	"can_run_duration_seconds":           true,
	"can_stores_skipped_total":           true,
	"can_scheduler_next_run_timestamp":   true,
	"can_scheduler_lock_contended_total": true,

	// Cart metrics.
	"can_candidates_total":     true,
	"can_carts_notified_total": true,
	"can_carts_failed_total":   true,
	"can_carts_skipped_total":  true,

	// Event API metrics.
	"can_event_api_calls_total":            true,
	"can_event_api_duration_seconds":       true,
	"can_event_api_daily_usage":            true,
	"can_event_api_daily_limit_hits_total": true,
	"can_circuit_breaker_state":            true,
	"can_token_refresh_total":              true,

	// Summary metrics.
	"can_summaries_sent_total":          true,
	"can_notification_failures_total":   true,
	"can_notification_duration_seconds": true,

	// Recording rules.
	"can:http_requests:rate5m":   true,
	"can:http_errors:rate5m":     true,
	"can:carts_notified:rate5m":  true,
	"can:carts_failed:rate5m":    true,
	"can:event_api_calls:rate5m": true,
	"can:runs_failed:rate1h":     true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
