package services

import (
	"reflect"
	"testing"

	"github.com/mattwilkerson1121/Asinsights/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text    string
		intent  models.Intent
		metrics []models.MetricID
	}{
		{"What's my conversion rate?", models.IntentConversion, nil},
		{"Show me the bounce RATE", models.IntentConversion, nil},
		{"How are sales doing?", models.IntentRevenue, nil},
		{"revenue and conversion", models.IntentConversion, nil},
		{"Show me top products by revenue", models.IntentRevenue, nil},
		{"which product is best", models.IntentProduct, nil},
		{"Where does my traffic come from?", models.IntentTraffic, nil},
		{"how many orders did we get", models.IntentOrder, nil},
		{"average order value", models.IntentUnknown, nil},
		{"hello there", models.IntentUnknown, nil},
		{"Generate a revenue report", models.IntentReportRevenue,
			[]models.MetricID{models.MetricRevenue, models.MetricOrders, models.MetricAvgOrderValue}},
		{"Generate a sales report", models.IntentReportRevenue,
			[]models.MetricID{models.MetricRevenue, models.MetricOrders, models.MetricAvgOrderValue}},
		{"create a product report", models.IntentReportProduct,
			[]models.MetricID{models.MetricProducts, models.MetricRevenue, models.MetricOrders}},
		{"report on traffic sources", models.IntentReportTraffic, []models.MetricID{models.MetricTraffic}},
		{"generate funnel table", models.IntentReportFunnel,
			[]models.MetricID{models.MetricFunnel, models.MetricConversionRate}},
		{"create table please", models.IntentReportGeneric,
			[]models.MetricID{models.MetricRevenue, models.MetricOrders, models.MetricConversionRate, models.MetricAvgOrderValue}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Classify(tt.text)
			if !ok {
				t.Fatalf("Classify(%q) ok = false", tt.text)
			}
			if got.Intent != tt.intent {
				t.Errorf("intent = %s, want %s", got.Intent, tt.intent)
			}
			if tt.metrics == nil {
				if got.Criteria != nil {
					t.Errorf("criteria = %v, want nil", got.Criteria.Metrics)
				}
				return
			}
			if got.Criteria == nil || !reflect.DeepEqual(got.Criteria.Metrics, tt.metrics) {
				t.Errorf("criteria = %v, want %v", got.Criteria, tt.metrics)
			}
		})
	}
}

func TestClassifyBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := Classify(text); ok {
			t.Errorf("Classify(%q) ok = true, want false", text)
		}
	}
}
