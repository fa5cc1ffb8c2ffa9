package models

import (
	"errors"
	"fmt"
)

// MetricID identifies a metric the report generator can include
type MetricID string

const (
	MetricRevenue        MetricID = "revenue"
	MetricOrders         MetricID = "orders"
	MetricConversionRate MetricID = "conversionRate"
	MetricAvgOrderValue  MetricID = "avgOrderValue"
	MetricProducts       MetricID = "products"
	MetricTraffic        MetricID = "traffic"
	MetricFunnel         MetricID = "funnel"
)

// ReportMetricOrder is the order in which report rows are emitted,
// regardless of the order the metrics were selected in.
var ReportMetricOrder = []MetricID{
	MetricRevenue,
	MetricOrders,
	MetricConversionRate,
	MetricAvgOrderValue,
	MetricProducts,
	MetricTraffic,
	MetricFunnel,
}

// MetricOption describes a selectable metric in the report generator
type MetricOption struct {
	ID       MetricID `json:"id"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
}

var AvailableMetrics = []MetricOption{
	{ID: MetricRevenue, Label: "Revenue", Category: "financial"},
	{ID: MetricOrders, Label: "Orders", Category: "financial"},
	{ID: MetricConversionRate, Label: "Conversion Rate", Category: "performance"},
	{ID: MetricAvgOrderValue, Label: "Avg Order Value", Category: "financial"},
	{ID: MetricProducts, Label: "Top Products", Category: "products"},
	{ID: MetricTraffic, Label: "Traffic Sources", Category: "acquisition"},
	{ID: MetricFunnel, Label: "Conversion Funnel", Category: "performance"},
}

var ErrUnknownMetric = errors.New("unknown metric")

// ParseMetricID validates a raw metric identifier
func ParseMetricID(raw string) (MetricID, error) {
	for _, id := range ReportMetricOrder {
		if string(id) == raw {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, raw)
}

// ReportCriteria is the ordered, duplicate-free set of metrics for a report.
// Selection order is kept for display of the selection only.
type ReportCriteria struct {
	Metrics []MetricID `json:"metrics"`
}

// NewReportCriteria validates and dedupes raw metric ids, keeping first occurrence order
func NewReportCriteria(raw []string) (ReportCriteria, error) {
	metrics := make([]MetricID, 0, len(raw))
	seen := make(map[MetricID]struct{}, len(raw))
	for _, r := range raw {
		id, err := ParseMetricID(r)
		if err != nil {
			return ReportCriteria{}, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		metrics = append(metrics, id)
	}
	return ReportCriteria{Metrics: metrics}, nil
}

// CriteriaOf builds criteria from ids that are already known to be valid
func CriteriaOf(ids ...MetricID) ReportCriteria {
	return ReportCriteria{Metrics: append([]MetricID(nil), ids...)}
}

func (rc ReportCriteria) Has(id MetricID) bool {
	for _, m := range rc.Metrics {
		if m == id {
			return true
		}
	}
	return false
}

func (rc ReportCriteria) IsEmpty() bool {
	return len(rc.Metrics) == 0
}

// ReportRow is a single line of a generated report
type ReportRow struct {
	Metric string `json:"metric"`           // Row label (Total Revenue, Product: X, Funnel: Y)
	Value  string `json:"value"`            // Display value
	Change string `json:"change"`           // Signed change (+12.5%), share or "-"
	Trend  Trend  `json:"trend"`            // up, down or neutral
	Orders int    `json:"orders,omitempty"` // Only set on product rows
}

// BuildReportRequest is the body of the report preview and export endpoints
type BuildReportRequest struct {
	Metrics []string `json:"metrics"`
	Format  string   `json:"format,omitempty" example:"csv"`
}

// ClassifyQueryRequest carries free text from the assistant input
type ClassifyQueryRequest struct {
	Text string `json:"text"`
}

// ClassifyQueryResponse is the classifier output exposed over the API
type ClassifyQueryResponse struct {
	Intent   Intent          `json:"intent"`
	Criteria *ReportCriteria `json:"criteria,omitempty"`
}
