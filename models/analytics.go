package models

// Trend is the direction tag shown next to a metric
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// TrendOf returns up for a strictly positive change, down otherwise
func TrendOf(change float64) Trend {
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

// KPI represents a single headline metric card
type KPI struct {
	Value  string  `json:"value"`  // Display value, already formatted ($124,583, 3.24%)
	Change float64 `json:"change"` // Signed % change from the previous period
	Trend  Trend   `json:"trend"`  // up or down
}

// KPISet groups the four headline metrics of the dashboard
type KPISet struct {
	Revenue        KPI `json:"revenue"`
	Orders         KPI `json:"orders"`
	ConversionRate KPI `json:"conversion_rate"`
	AvgOrderValue  KPI `json:"avg_order_value"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`    // Axis label (Nov 5, Dec 2, etc.)
	Revenue float64 `json:"revenue"` // Revenue for the bucket
	Orders  int     `json:"orders"`  // Order count for the bucket
}

// FunnelStage is one step of the conversion funnel
type FunnelStage struct {
	Stage      string  `json:"stage"`      // Stage name (Sessions, Add to Cart, etc.)
	Value      int     `json:"value"`      // Absolute count at this stage
	Percentage float64 `json:"percentage"` // % of the first stage
}

type Product struct {
	Name    string  `json:"name"`    // Product name
	Revenue string  `json:"revenue"` // Formatted revenue ($12,450)
	Orders  int     `json:"orders"`  // Number of orders
	Trend   float64 `json:"trend"`   // Signed % trend
}

type TrafficSource struct {
	Name  string `json:"name"`  // Channel name
	Value int    `json:"value"` // Share of traffic in %
	Color string `json:"color"` // Display color (hex)
}

// Snapshot is the full analytics payload for one date range.
// FunnelData is ordered by funnel depth and its first stage is always 100%.
type Snapshot struct {
	KPIs           KPISet          `json:"kpis"`
	RevenueData    []RevenuePoint  `json:"revenue_data"`
	FunnelData     []FunnelStage   `json:"funnel_data"`
	TopProducts    []Product       `json:"top_products"`
	TrafficSources []TrafficSource `json:"traffic_sources"`
}

// Clone returns a deep copy. Callers that derive new snapshots work on the
// copy so the fetched snapshot stays untouched for the other views.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{KPIs: s.KPIs}
	if s.RevenueData != nil {
		out.RevenueData = append(make([]RevenuePoint, 0, len(s.RevenueData)), s.RevenueData...)
	}
	if s.FunnelData != nil {
		out.FunnelData = append(make([]FunnelStage, 0, len(s.FunnelData)), s.FunnelData...)
	}
	if s.TopProducts != nil {
		out.TopProducts = append(make([]Product, 0, len(s.TopProducts)), s.TopProducts...)
	}
	if s.TrafficSources != nil {
		out.TrafficSources = append(make([]TrafficSource, 0, len(s.TrafficSources)), s.TrafficSources...)
	}
	return out
}
