package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewReportCriteria(t *testing.T) {
	got, err := NewReportCriteria([]string{"traffic", "revenue", "traffic", "funnel"})
	if err != nil {
		t.Fatalf("NewReportCriteria: %v", err)
	}
	want := []MetricID{MetricTraffic, MetricRevenue, MetricFunnel}
	if !reflect.DeepEqual(got.Metrics, want) {
		t.Errorf("metrics = %v, want %v", got.Metrics, want)
	}
	if !got.Has(MetricFunnel) || got.Has(MetricOrders) {
		t.Error("Has mismatch")
	}

	if _, err := NewReportCriteria([]string{"revenue", "profit"}); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("err = %v, want ErrUnknownMetric", err)
	}

	empty, err := NewReportCriteria(nil)
	if err != nil || !empty.IsEmpty() {
		t.Errorf("nil input = %v, %v", empty, err)
	}
}

func TestCriteriaOfCopies(t *testing.T) {
	ids := []MetricID{MetricRevenue}
	c := CriteriaOf(ids...)
	ids[0] = MetricOrders
	if c.Metrics[0] != MetricRevenue {
		t.Error("CriteriaOf should copy its input")
	}
}
