package services

import (
	"math"
	"sync"

	"github.com/mattwilkerson1121/Asinsights/models"
)

// Jitter is the random source used to perturb mock data. *rand.Rand satisfies it.
type Jitter interface {
	Float64() float64
}

// Aggregator derives an adjusted snapshot for a query intent
type Aggregator struct {
	mu  sync.Mutex
	rnd Jitter
}

func NewAggregator(rnd Jitter) *Aggregator {
	return &Aggregator{rnd: rnd}
}

// Adjust returns a new snapshot with the rule for intent applied. The input is
// never modified. A nil snapshot yields the default demo snapshot. Intents
// without a rule (report, unknown) return an unchanged copy.
func (a *Aggregator) Adjust(snapshot *models.Snapshot, intent models.Intent) *models.Snapshot {
	if snapshot == nil {
		return DefaultSnapshot()
	}
	out := snapshot.Clone()

	a.mu.Lock()
	defer a.mu.Unlock()

	switch intent {
	case models.IntentRevenue:
		a.adjustRevenue(out)
	case models.IntentConversion:
		a.adjustConversion(out)
	case models.IntentProduct:
		a.adjustProducts(out)
	case models.IntentTraffic:
		a.adjustTraffic(out)
	}
	return out
}

func (a *Aggregator) adjustRevenue(s *models.Snapshot) {
	s.KPIs.Revenue.Change += 2.5
	s.KPIs.Revenue.Trend = models.TrendOf(s.KPIs.Revenue.Change)

	for i := range s.RevenueData {
		s.RevenueData[i].Revenue = math.Round(s.RevenueData[i].Revenue * a.uniform(0.95, 1.05))
	}
}

func (a *Aggregator) adjustConversion(s *models.Snapshot) {
	s.KPIs.ConversionRate.Change = round1(s.KPIs.ConversionRate.Change + a.uniform(-1, 1))
	s.KPIs.ConversionRate.Trend = models.TrendOf(s.KPIs.ConversionRate.Change)

	for i := range s.FunnelData {
		s.FunnelData[i].Value = int(math.Round(float64(s.FunnelData[i].Value) * a.uniform(0.96, 1.04)))
	}
	RecomputeFunnelPercentages(s.FunnelData)
}

func (a *Aggregator) adjustProducts(s *models.Snapshot) {
	for i := range s.TopProducts {
		s.TopProducts[i].Trend = round1(s.TopProducts[i].Trend + a.uniform(-2, 2))
	}
}

// adjustTraffic redraws shares so they sum to 100 before rounding
func (a *Aggregator) adjustTraffic(s *models.Snapshot) {
	n := len(s.TrafficSources)
	if n == 0 {
		return
	}
	draws := make([]float64, n)
	sum := 0.0
	for i := range draws {
		draws[i] = a.rnd.Float64()
		sum += draws[i]
	}
	for i := range s.TrafficSources {
		share := 1.0 / float64(n)
		if sum > 0 {
			share = draws[i] / sum
		}
		s.TrafficSources[i].Value = int(math.Round(share * 100))
	}
}

// RecomputeFunnelPercentages sets each stage to its share of the first stage,
// rounded to one decimal. The first stage is always 100.
func RecomputeFunnelPercentages(stages []models.FunnelStage) {
	if len(stages) == 0 {
		return
	}
	base := float64(stages[0].Value)
	for i := range stages {
		switch {
		case i == 0:
			stages[i].Percentage = 100
		case base == 0:
			stages[i].Percentage = 0
		default:
			stages[i].Percentage = round1(float64(stages[i].Value) / base * 100)
		}
	}
}

func (a *Aggregator) uniform(lo, hi float64) float64 {
	return lo + a.rnd.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
