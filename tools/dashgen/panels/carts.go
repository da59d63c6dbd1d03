package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CartsNotified returns a timeseries panel showing notified carts per hour
// by stage.
func CartsNotified() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Carts Notified / hour").
		Description("Recovery events accepted by the event API, by stage (1 = first, 2 = second)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(can:carts_notified:rate5m) by (stage) * 3600`, "stage {{stage}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CartFailureRate returns a timeseries panel showing failed event calls as a
// percentage of attempted carts.
func CartFailureRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cart Failure %").
		Description("Carts whose event call did not return 201, as percentage of attempts").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`can:carts_failed:rate5m / (can:carts_failed:rate5m + sum(can:carts_notified:rate5m)) * 100`,
			"failure %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CartsSkipped returns a bar gauge panel showing skipped candidates over the
// last 24 hours, by reason.
func CartsSkipped() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Carts Skipped (24h)").
		Description("Candidates not sent, by reason (not_due, no_payload, config)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("can_carts_skipped_total")+`[24h])) by (reason)`,
			"{{reason}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// CandidatesRate returns a timeseries panel showing candidate carts found
// per hour.
func CandidatesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Candidates / hour").
		Description("Carts returned by the abandonment finder").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(rate(`+Sel("can_candidates_total")+`[5m])) * 3600`, "candidates/h", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
