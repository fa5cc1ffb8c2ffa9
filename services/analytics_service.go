package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mattwilkerson1121/Asinsights/cache"
	"github.com/mattwilkerson1121/Asinsights/models"
)

// Provider supplies the analytics snapshot for a date range
type Provider interface {
	Fetch(ctx context.Context, dateRange models.DateRange) (*models.Snapshot, error)
}

// ProviderFunc adapts a plain function to Provider
type ProviderFunc func(ctx context.Context, dateRange models.DateRange) (*models.Snapshot, error)

func (f ProviderFunc) Fetch(ctx context.Context, dateRange models.DateRange) (*models.Snapshot, error) {
	return f(ctx, dateRange)
}

// FetchError is the only error a fetch surfaces. Its message is shown to the user as-is.
type FetchError struct {
	DateRange models.DateRange
	Err       error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "Failed to fetch analytics data"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchSnapshot calls the provider and converts every failure, panics included,
// into a *FetchError. A failed fetch never returns partial data.
func FetchSnapshot(ctx context.Context, p Provider, dateRange models.DateRange) (snap *models.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[analytics.fetch] ERROR provider panic range=%s err=%v", dateRange, r)
			snap, err = nil, &FetchError{DateRange: dateRange, Err: fmt.Errorf("%v", r)}
		}
	}()

	snap, err = p.Fetch(ctx, dateRange)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &FetchError{DateRange: dateRange, Err: err}
	}
	if snap == nil {
		return nil, &FetchError{DateRange: dateRange}
	}
	return snap, nil
}

// ════════════════════════════════════════════════════════════
// Mock provider
// ════════════════════════════════════════════════════════════

// MockProvider returns the demo snapshot after a fixed artificial latency.
// Swap it for a real analytics source behind the same interface.
type MockProvider struct {
	Latency time.Duration
}

func NewMockProvider(latency time.Duration) *MockProvider {
	return &MockProvider{Latency: latency}
}

func (p *MockProvider) Fetch(ctx context.Context, dateRange models.DateRange) (*models.Snapshot, error) {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	log.Printf("[analytics.fetch] mock snapshot served range=%s", dateRange)
	return DefaultSnapshot(), nil
}

// ════════════════════════════════════════════════════════════
// Cached provider
// ════════════════════════════════════════════════════════════

// CachedProvider serves repeated fetches of the same range from a TTL cache.
// Failures are never cached.
type CachedProvider struct {
	next  Provider
	cache *cache.SnapshotCache
}

func NewCachedProvider(next Provider, c *cache.SnapshotCache) *CachedProvider {
	return &CachedProvider{next: next, cache: c}
}

func (p *CachedProvider) Fetch(ctx context.Context, dateRange models.DateRange) (*models.Snapshot, error) {
	if snap, ok := p.cache.Get(dateRange); ok {
		log.Printf("[analytics.fetch] cache hit range=%s", dateRange)
		return snap, nil
	}
	snap, err := p.next.Fetch(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	p.cache.Set(dateRange, snap)
	return snap.Clone(), nil
}

// ════════════════════════════════════════════════════════════
// Demo data
// ════════════════════════════════════════════════════════════

// DefaultSnapshot returns a fresh copy of the demo analytics data
func DefaultSnapshot() *models.Snapshot {
	return &models.Snapshot{
		KPIs: models.KPISet{
			Revenue:        models.KPI{Value: "$124,583", Change: 12.5, Trend: models.TrendUp},
			Orders:         models.KPI{Value: "1,428", Change: 8.3, Trend: models.TrendUp},
			ConversionRate: models.KPI{Value: "3.24%", Change: -2.1, Trend: models.TrendDown},
			AvgOrderValue:  models.KPI{Value: "$87.23", Change: 5.6, Trend: models.TrendUp},
		},
		RevenueData: []models.RevenuePoint{
			{Date: "Nov 5", Revenue: 4200, Orders: 52},
			{Date: "Nov 8", Revenue: 5100, Orders: 61},
			{Date: "Nov 11", Revenue: 4800, Orders: 58},
			{Date: "Nov 14", Revenue: 6200, Orders: 74},
			{Date: "Nov 17", Revenue: 5500, Orders: 65},
			{Date: "Nov 20", Revenue: 7100, Orders: 83},
			{Date: "Nov 23", Revenue: 6800, Orders: 79},
			{Date: "Nov 26", Revenue: 8200, Orders: 95},
			{Date: "Nov 29", Revenue: 7500, Orders: 88},
			{Date: "Dec 2", Revenue: 9100, Orders: 102},
			{Date: "Dec 5", Revenue: 8600, Orders: 98},
		},
		FunnelData: []models.FunnelStage{
			{Stage: "Sessions", Value: 44123, Percentage: 100},
			{Stage: "Product Views", Value: 28450, Percentage: 64},
			{Stage: "Add to Cart", Value: 8834, Percentage: 20},
			{Stage: "Checkout", Value: 2210, Percentage: 5},
			{Stage: "Purchase", Value: 1428, Percentage: 3.2},
		},
		TopProducts: []models.Product{
			{Name: "Wireless Headphones Pro", Revenue: "$12,450", Orders: 142, Trend: 15.2},
			{Name: "Smart Watch Series 5", Revenue: "$9,820", Orders: 98, Trend: 8.7},
			{Name: "Laptop Stand Premium", Revenue: "$7,340", Orders: 156, Trend: -3.2},
			{Name: "USB-C Hub Adapter", Revenue: "$6,120", Orders: 204, Trend: 22.4},
			{Name: "Mechanical Keyboard RGB", Revenue: "$5,890", Orders: 67, Trend: 5.1},
		},
		TrafficSources: []models.TrafficSource{
			{Name: "Organic Search", Value: 35, Color: "#3b82f6"},
			{Name: "Direct", Value: 25, Color: "#10b981"},
			{Name: "Social Media", Value: 20, Color: "#8b5cf6"},
			{Name: "Paid Ads", Value: 15, Color: "#f59e0b"},
			{Name: "Referral", Value: 5, Color: "#ef4444"},
		},
	}
}
