package services

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/mattwilkerson1121/Asinsights/models"
)

// fixedJitter always returns the same draw
type fixedJitter float64

func (f fixedJitter) Float64() float64 { return float64(f) }

func seeded() *Aggregator {
	return NewAggregator(rand.New(rand.NewSource(42)))
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	agg := seeded()
	intents := []models.Intent{
		models.IntentRevenue, models.IntentConversion, models.IntentProduct,
		models.IntentTraffic, models.IntentOrder, models.IntentReportGeneric, models.IntentUnknown,
	}
	for _, intent := range intents {
		in := DefaultSnapshot()
		before := in.Clone()
		out := agg.Adjust(in, intent)
		if !reflect.DeepEqual(in, before) {
			t.Errorf("Adjust(%s) mutated its input", intent)
		}
		if out == in {
			t.Errorf("Adjust(%s) returned the input pointer", intent)
		}
	}
}

func TestAdjustNilReturnsDefault(t *testing.T) {
	got := seeded().Adjust(nil, models.IntentRevenue)
	if !reflect.DeepEqual(got, DefaultSnapshot()) {
		t.Error("Adjust(nil) should return the default snapshot")
	}
}

func TestAdjustRevenue(t *testing.T) {
	in := DefaultSnapshot()
	out := seeded().Adjust(in, models.IntentRevenue)

	if out.KPIs.Revenue.Change != 15 {
		t.Errorf("revenue change = %v, want 15", out.KPIs.Revenue.Change)
	}
	if out.KPIs.Revenue.Trend != models.TrendUp {
		t.Errorf("revenue trend = %s, want up", out.KPIs.Revenue.Trend)
	}
	for i, p := range out.RevenueData {
		orig := in.RevenueData[i].Revenue
		if p.Revenue < math.Round(orig*0.95)-1 || p.Revenue > math.Round(orig*1.05)+1 {
			t.Errorf("point %d revenue %v outside ±5%% of %v", i, p.Revenue, orig)
		}
		if p.Revenue != math.Round(p.Revenue) {
			t.Errorf("point %d revenue %v not rounded", i, p.Revenue)
		}
	}
	if !reflect.DeepEqual(out.TopProducts, in.TopProducts) {
		t.Error("revenue rule must not touch products")
	}
}

func TestAdjustRevenueTrendFlipsFromNegative(t *testing.T) {
	in := DefaultSnapshot()
	in.KPIs.Revenue.Change = -2
	in.KPIs.Revenue.Trend = models.TrendDown
	out := seeded().Adjust(in, models.IntentRevenue)
	if out.KPIs.Revenue.Change != 0.5 || out.KPIs.Revenue.Trend != models.TrendUp {
		t.Errorf("got change=%v trend=%s, want 0.5 up", out.KPIs.Revenue.Change, out.KPIs.Revenue.Trend)
	}
}

func TestAdjustConversion(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		agg := NewAggregator(rand.New(rand.NewSource(seed)))
		out := agg.Adjust(DefaultSnapshot(), models.IntentConversion)

		change := out.KPIs.ConversionRate.Change
		if change < -3.1 || change > -1.1 {
			t.Fatalf("seed %d: conversion change %v outside -2.1±1", seed, change)
		}
		if out.KPIs.ConversionRate.Trend != models.TrendOf(change) {
			t.Fatalf("seed %d: trend %s inconsistent with change %v", seed, out.KPIs.ConversionRate.Trend, change)
		}
		if out.FunnelData[0].Percentage != 100 {
			t.Fatalf("seed %d: first funnel stage = %v, want 100", seed, out.FunnelData[0].Percentage)
		}
		for i := 1; i < len(out.FunnelData); i++ {
			s := out.FunnelData[i]
			want := math.Round(float64(s.Value)/float64(out.FunnelData[0].Value)*100*10) / 10
			if s.Percentage != want {
				t.Fatalf("seed %d: stage %s percentage = %v, want %v", seed, s.Stage, s.Percentage, want)
			}
		}
	}
}

func TestAdjustProducts(t *testing.T) {
	in := DefaultSnapshot()
	out := NewAggregator(fixedJitter(1)).Adjust(in, models.IntentProduct)
	for i, p := range out.TopProducts {
		want := math.Round((in.TopProducts[i].Trend+2)*10) / 10
		if p.Trend != want {
			t.Errorf("%s trend = %v, want %v", p.Name, p.Trend, want)
		}
		if p.Name != in.TopProducts[i].Name || p.Revenue != in.TopProducts[i].Revenue {
			t.Errorf("product %d identity changed", i)
		}
	}
}

func TestAdjustTraffic(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		out := NewAggregator(rand.New(rand.NewSource(seed))).Adjust(DefaultSnapshot(), models.IntentTraffic)
		sum := 0
		for _, src := range out.TrafficSources {
			if src.Value < 0 || src.Value > 100 {
				t.Fatalf("seed %d: %s share %d out of range", seed, src.Name, src.Value)
			}
			sum += src.Value
		}
		// Rounding each share can drift the total by at most half a point per source
		if sum < 97 || sum > 103 {
			t.Fatalf("seed %d: shares sum to %d", seed, sum)
		}
	}
}

func TestAdjustTrafficZeroDrawsSplitEvenly(t *testing.T) {
	out := NewAggregator(fixedJitter(0)).Adjust(DefaultSnapshot(), models.IntentTraffic)
	for _, src := range out.TrafficSources {
		if src.Value != 20 {
			t.Errorf("%s = %d, want 20", src.Name, src.Value)
		}
	}
}

func TestAdjustUnruledIntentsReturnCopy(t *testing.T) {
	for _, intent := range []models.Intent{models.IntentOrder, models.IntentUnknown, models.IntentReportRevenue} {
		in := DefaultSnapshot()
		if out := seeded().Adjust(in, intent); !reflect.DeepEqual(out, in) {
			t.Errorf("Adjust(%s) changed data", intent)
		}
	}
}

func TestRecomputeFunnelPercentages(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []float64
	}{
		{"typical", []int{1000, 500, 123}, []float64{100, 50, 12.3}},
		{"zero first stage", []int{0, 10, 5}, []float64{100, 0, 0}},
		{"single stage", []int{42}, []float64{100}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := make([]models.FunnelStage, len(tt.values))
			for i, v := range tt.values {
				stages[i] = models.FunnelStage{Value: v, Percentage: -1}
			}
			RecomputeFunnelPercentages(stages)
			for i, s := range stages {
				if s.Percentage != tt.want[i] {
					t.Errorf("stage %d = %v, want %v", i, s.Percentage, tt.want[i])
				}
			}
		})
	}
}
