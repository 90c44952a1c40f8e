package update

import "github.com/sandeepkv93/backalley/internal/views"

func (m Model) renderDashboardView() string {
	metrics := make([]views.MetricData, 0, len(m.Dashboard.Metrics))
	for _, metric := range m.Dashboard.Metrics {
		metrics = append(metrics, views.MetricData{
			Title:    metric.Title,
			Value:    metric.Value,
			Trend:    metric.Trend,
			Arrow:    metric.TrendArrow(),
			Positive: metric.Positive,
		})
	}
	return views.RenderDashboardPanel(views.DashboardPanelData{
		Title:        m.Dashboard.Title,
		Subtitle:     m.Dashboard.Subtitle,
		Metrics:      metrics,
		RevenueTable: m.revenueTable.View(),
		TopExpense:   m.Dashboard.TopExpense,
		NextPayroll:  m.Dashboard.NextPayroll,
	})
}

func (m Model) renderActivityView() string {
	items := make([]views.ActivityData, 0, len(m.Dashboard.Activity))
	for _, a := range m.Dashboard.Activity {
		items = append(items, views.ActivityData{Title: a.Title, Subtitle: a.Subtitle, Timestamp: a.Timestamp})
	}
	return views.RenderActivityPanel(items)
}
