package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("can-recording-rules",
		RuleGroup{
			Name: "can-recording",
			Rules: []Rule{
				{
					Record: "can:http_requests:rate5m",
					Expr:   `sum(rate(can_http_requests_total[5m]))`,
				},
				{
					Record: "can:http_errors:rate5m",
					Expr:   `sum(rate(can_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "can:carts_notified:rate5m",
					Expr:   `sum(rate(can_carts_notified_total[5m])) by (stage)`,
				},
				{
					Record: "can:carts_failed:rate5m",
					Expr:   `sum(rate(can_carts_failed_total[5m]))`,
				},
				{
					Record: "can:event_api_calls:rate5m",
					Expr:   `sum(rate(can_event_api_calls_total[5m])) by (status)`,
				},
				{
					Record: "can:runs_failed:rate1h",
					Expr:   `sum(rate(can_runs_total{outcome="failed"}[1h]))`,
				},
			},
		},
	)
}
