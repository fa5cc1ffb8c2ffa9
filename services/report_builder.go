package services

import (
	"strconv"

	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/utils"
)

var kpiRowLabels = map[models.MetricID]string{
	models.MetricRevenue:        "Total Revenue",
	models.MetricOrders:         "Total Orders",
	models.MetricConversionRate: "Conversion Rate",
	models.MetricAvgOrderValue:  "Avg Order Value",
}

// BuildReport projects a snapshot onto report rows. Rows always follow
// models.ReportMetricOrder; the caller's selection order is ignored.
func BuildReport(snapshot *models.Snapshot, criteria models.ReportCriteria) []models.ReportRow {
	rows := []models.ReportRow{}
	if snapshot == nil {
		return rows
	}

	for _, id := range models.ReportMetricOrder {
		if !criteria.Has(id) {
			continue
		}
		switch id {
		case models.MetricRevenue, models.MetricOrders, models.MetricConversionRate, models.MetricAvgOrderValue:
			kpi := kpiFor(snapshot.KPIs, id)
			rows = append(rows, models.ReportRow{
				Metric: kpiRowLabels[id],
				Value:  kpi.Value,
				Change: utils.FormatSignedPercent(kpi.Change),
				Trend:  kpi.Trend,
			})

		case models.MetricProducts:
			for _, p := range snapshot.TopProducts {
				trend := models.TrendDown
				if p.Trend >= 0 {
					trend = models.TrendUp
				}
				rows = append(rows, models.ReportRow{
					Metric: "Product: " + p.Name,
					Value:  p.Revenue,
					Change: utils.FormatSignedPercent(p.Trend),
					Trend:  trend,
					Orders: p.Orders,
				})
			}

		case models.MetricTraffic:
			for _, src := range snapshot.TrafficSources {
				rows = append(rows, models.ReportRow{
					Metric: "Traffic: " + src.Name,
					Value:  strconv.Itoa(src.Value) + "%",
					Change: "-",
					Trend:  models.TrendNeutral,
				})
			}

		case models.MetricFunnel:
			for _, stage := range snapshot.FunnelData {
				rows = append(rows, models.ReportRow{
					Metric: "Funnel: " + stage.Stage,
					Value:  utils.FormatCount(stage.Value),
					Change: utils.FormatNumber(stage.Percentage) + "%",
					Trend:  models.TrendNeutral,
				})
			}
		}
	}
	return rows
}

func kpiFor(kpis models.KPISet, id models.MetricID) models.KPI {
	switch id {
	case models.MetricOrders:
		return kpis.Orders
	case models.MetricConversionRate:
		return kpis.ConversionRate
	case models.MetricAvgOrderValue:
		return kpis.AvgOrderValue
	default:
		return kpis.Revenue
	}
}
