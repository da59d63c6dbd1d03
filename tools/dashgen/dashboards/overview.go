// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/cart-abandonment-notifier/tools/dashgen/panels"
)

// BuildOverview constructs the notifier overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Cart Abandonment Overview").
		Uid("can-overview").
		Tags([]string{"can", "cart-abandonment-notifier"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.NextRunStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("Runs").
		WithPanel(panels.RunsRate()).
		WithPanel(panels.RunDuration()).
		WithPanel(panels.SkippedScopes()).
		WithPanel(panels.LockContention()))

	b.WithRow(dashboard.NewRowBuilder("Carts").
		WithPanel(panels.CartsNotified()).
		WithPanel(panels.CartFailureRate()).
		WithPanel(panels.CartsSkipped()).
		WithPanel(panels.CandidatesRate()))

	b.WithRow(dashboard.NewRowBuilder("Event API").
		WithPanel(panels.EventCallsByStatus()).
		WithPanel(panels.EventLatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.BreakerState()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.TokenRefreshes()))

	b.WithRow(dashboard.NewRowBuilder("Summaries").
		WithPanel(panels.SummariesSent()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
