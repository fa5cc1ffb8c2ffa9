package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mattwilkerson1121/Asinsights/models"
)

func TestBuildReportEmpty(t *testing.T) {
	if rows := BuildReport(DefaultSnapshot(), models.ReportCriteria{}); rows == nil || len(rows) != 0 {
		t.Errorf("empty criteria: got %v, want empty non-nil slice", rows)
	}
	all := models.CriteriaOf(models.ReportMetricOrder...)
	if rows := BuildReport(nil, all); rows == nil || len(rows) != 0 {
		t.Errorf("nil snapshot: got %v, want empty non-nil slice", rows)
	}
}

func TestBuildReportRevenueOnly(t *testing.T) {
	rows := BuildReport(DefaultSnapshot(), models.CriteriaOf(models.MetricRevenue))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	want := models.ReportRow{Metric: "Total Revenue", Value: "$124,583", Change: "+12.5%", Trend: models.TrendUp}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
	if !strings.Contains(rows[0].Metric, "Revenue") {
		t.Errorf("label %q should mention Revenue", rows[0].Metric)
	}
}

func TestBuildReportFixedOrder(t *testing.T) {
	snap := DefaultSnapshot()
	a := BuildReport(snap, models.CriteriaOf(models.MetricFunnel, models.MetricTraffic, models.MetricRevenue))
	b := BuildReport(snap, models.CriteriaOf(models.MetricRevenue, models.MetricFunnel, models.MetricTraffic))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("row order should not depend on selection order")
	}
	if a[0].Metric != "Total Revenue" {
		t.Errorf("first row = %q, want Total Revenue", a[0].Metric)
	}
	if !strings.HasPrefix(a[1].Metric, "Traffic: ") {
		t.Errorf("second row = %q, want a traffic row", a[1].Metric)
	}
	if last := a[len(a)-1]; last.Metric != "Funnel: Purchase" {
		t.Errorf("last row = %q, want Funnel: Purchase", last.Metric)
	}
}

func TestBuildReportRowFormats(t *testing.T) {
	snap := DefaultSnapshot()
	all := models.CriteriaOf(models.ReportMetricOrder...)
	rows := BuildReport(snap, all)

	wantLen := 4 + len(snap.TopProducts) + len(snap.TrafficSources) + len(snap.FunnelData)
	if len(rows) != wantLen {
		t.Fatalf("got %d rows, want %d", len(rows), wantLen)
	}

	byLabel := make(map[string]models.ReportRow, len(rows))
	for _, r := range rows {
		byLabel[r.Metric] = r
	}

	tests := []struct {
		label string
		want  models.ReportRow
	}{
		{"Conversion Rate", models.ReportRow{Metric: "Conversion Rate", Value: "3.24%", Change: "-2.1%", Trend: models.TrendDown}},
		{"Avg Order Value", models.ReportRow{Metric: "Avg Order Value", Value: "$87.23", Change: "+5.6%", Trend: models.TrendUp}},
		{"Product: Laptop Stand Premium", models.ReportRow{Metric: "Product: Laptop Stand Premium", Value: "$7,340", Change: "-3.2%", Trend: models.TrendDown, Orders: 156}},
		{"Product: USB-C Hub Adapter", models.ReportRow{Metric: "Product: USB-C Hub Adapter", Value: "$6,120", Change: "+22.4%", Trend: models.TrendUp, Orders: 204}},
		{"Traffic: Organic Search", models.ReportRow{Metric: "Traffic: Organic Search", Value: "35%", Change: "-", Trend: models.TrendNeutral}},
		{"Funnel: Sessions", models.ReportRow{Metric: "Funnel: Sessions", Value: "44,123", Change: "100%", Trend: models.TrendNeutral}},
		{"Funnel: Purchase", models.ReportRow{Metric: "Funnel: Purchase", Value: "1,428", Change: "3.2%", Trend: models.TrendNeutral}},
	}
	for _, tt := range tests {
		got, ok := byLabel[tt.label]
		if !ok {
			t.Errorf("missing row %q", tt.label)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.label, got, tt.want)
		}
	}
}

func TestBuildReportZeroProductTrendIsUp(t *testing.T) {
	snap := &models.Snapshot{TopProducts: []models.Product{{Name: "Flat", Revenue: "$1", Orders: 1, Trend: 0}}}
	rows := BuildReport(snap, models.CriteriaOf(models.MetricProducts))
	if len(rows) != 1 || rows[0].Trend != models.TrendUp || rows[0].Change != "0%" {
		t.Errorf("got %+v, want trend up with 0%% change", rows)
	}
}

func TestBuildReportIsDeterministic(t *testing.T) {
	snap := DefaultSnapshot()
	criteria := models.CriteriaOf(models.ReportMetricOrder...)
	if !reflect.DeepEqual(BuildReport(snap, criteria), BuildReport(snap, criteria)) {
		t.Error("BuildReport should be deterministic")
	}
}
