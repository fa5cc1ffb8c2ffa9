package services

import (
	"strings"

	"github.com/mattwilkerson1121/Asinsights/models"
)

// Classification is the outcome of classifying one assistant query.
// Criteria is set only for report intents.
type Classification struct {
	Intent   models.Intent
	Criteria *models.ReportCriteria
}

var reportKeywords = []string{"report", "generate", "create table", "custom report"}

// Classify maps free text to an intent using case-insensitive substring tests,
// first match wins. Blank input yields ok=false and must not produce a reply.
func Classify(text string) (Classification, bool) {
	if strings.TrimSpace(text) == "" {
		return Classification{}, false
	}
	q := strings.ToLower(text)

	if containsAny(q, reportKeywords...) {
		return classifyReport(q), true
	}

	switch {
	case containsAny(q, "conversion", "rate"):
		return Classification{Intent: models.IntentConversion}, true
	case containsAny(q, "revenue", "sales"):
		return Classification{Intent: models.IntentRevenue}, true
	case containsAny(q, "product", "top"):
		return Classification{Intent: models.IntentProduct}, true
	case containsAny(q, "traffic", "source"):
		return Classification{Intent: models.IntentTraffic}, true
	case strings.Contains(q, "order") && !strings.Contains(q, "average"):
		return Classification{Intent: models.IntentOrder}, true
	}
	return Classification{Intent: models.IntentUnknown}, true
}

func classifyReport(q string) Classification {
	var (
		intent   models.Intent
		criteria models.ReportCriteria
	)
	switch {
	case containsAny(q, "revenue", "sales"):
		intent = models.IntentReportRevenue
		criteria = models.CriteriaOf(models.MetricRevenue, models.MetricOrders, models.MetricAvgOrderValue)
	case strings.Contains(q, "product"):
		intent = models.IntentReportProduct
		criteria = models.CriteriaOf(models.MetricProducts, models.MetricRevenue, models.MetricOrders)
	case containsAny(q, "traffic", "source"):
		intent = models.IntentReportTraffic
		criteria = models.CriteriaOf(models.MetricTraffic)
	case containsAny(q, "conversion", "funnel"):
		intent = models.IntentReportFunnel
		criteria = models.CriteriaOf(models.MetricFunnel, models.MetricConversionRate)
	default:
		intent = models.IntentReportGeneric
		criteria = models.CriteriaOf(models.MetricRevenue, models.MetricOrders, models.MetricConversionRate, models.MetricAvgOrderValue)
	}
	return Classification{Intent: intent, Criteria: &criteria}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
