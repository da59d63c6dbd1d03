package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EventCallsByStatus returns a timeseries panel showing event API calls per
// second by status code.
func EventCallsByStatus() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Event Calls by Status").
		Description(`Event API calls per second, by HTTP status or "error"`).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(can:event_api_calls:rate5m) by (status)`, "{{status}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EventLatency returns a timeseries panel showing p50 and p95 event call
// latency.
func EventLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Event Latency").
		Description("Event API call duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P("0.50", "can_event_api_duration_seconds"), "p50", "A")).
		WithTarget(PromQuery(P("0.95", "can_event_api_duration_seconds"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(2, 10)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a gauge panel showing the rolling 24h event call count.
func DailyUsage() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Daily Event Calls").
		Description(fmt.Sprintf("Rolling 24h event API call count (warn at %d)", QuotaWarnCalls)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Sel("can_event_api_daily_usage"), "", "A")).
		Min(0).
		Thresholds(ThresholdsGreenYellowRed(QuotaWarnCalls, QuotaWarnCalls*1.25)).
		ColorScheme(ColorSchemeThresholds())
}

// BreakerState returns a stat panel showing the event circuit breaker state.
func BreakerState() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Circuit Breaker").
		Description("Event API breaker state (0 closed, 1 half-open, 2 open)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(`+Sel("can_circuit_breaker_state")+`)`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 2)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// LimitHits returns a stat panel showing daily limit hits in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the configured daily event limit was reached").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`increase(`+Sel("can_event_api_daily_limit_hits_total")+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// TokenRefreshes returns a timeseries panel showing access token refreshes
// per hour by outcome.
func TokenRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Refreshes / hour").
		Description("Client-credentials token requests, by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("can_token_refresh_total")+`[1h])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
