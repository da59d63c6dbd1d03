package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// cart-abandonment-notifier operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("can-alerts",
		RuleGroup{
			Name: "can-alerts",
			Rules: []Rule{
				{
					Alert: "CanDown",
					Expr:  `absent(up{job="cart-abandonment-notifier"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Cart abandonment notifier is down",
						"description": "The cart-abandonment-notifier job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "CanReadinessDown",
					Expr:  `can_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Storefront database unreachable",
						"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
					},
				},
				{
					Alert: "CanRunsFailing",
					Expr:  `can:runs_failed:rate1h > 0`,
					For:   "30m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Abandonment runs are failing",
						"description": "At least one run in the last hour failed to persist notification state.",
					},
				},
				{
					Alert: "CanNoRecentRun",
					Expr:  `time() - can_scheduler_next_run_timestamp > 3600`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Scheduled run is overdue",
						"description": "The next scheduled run time is more than an hour in the past.",
					},
				},
				{
					Alert: "CanHighCartFailureRate",
					Expr:  `can:carts_failed:rate5m / (can:carts_failed:rate5m + sum(can:carts_notified:rate5m)) > 0.2`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Event API is rejecting carts",
						"description": "More than 20% of event calls did not return 201 over the last 15 minutes.",
					},
				},
				{
					Alert: "CanCircuitBreakerOpen",
					Expr:  `max(can_circuit_breaker_state) == 2`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Event API circuit breaker is open",
						"description": "Event calls are short-circuited after repeated transport errors or 5xx responses.",
					},
				},
				{
					Alert: "CanTokenRefreshFailing",
					Expr:  `increase(can_token_refresh_total{outcome="error"}[15m]) > 0`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Access token refresh is failing",
						"description": "The authentication endpoint has been rejecting client credentials for 15 minutes.",
					},
				},
				{
					Alert: "CanDailyLimitReached",
					Expr:  `increase(can_event_api_daily_limit_hits_total[5m]) > 0`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Event API daily limit has been reached",
						"description": "The configured daily event quota is exhausted. Carts are not notified until the window resets.",
					},
				},
				{
					Alert: "CanNotificationFailures",
					Expr:  `increase(can_notification_failures_total[5m]) > 0`,
					For:   "1m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Operator summary delivery failures detected",
						"description": "One or more summaries (SES or Discord) have failed to send.",
					},
				},
			},
		},
	)
}
