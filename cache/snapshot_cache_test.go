package cache

import (
	"testing"
	"time"

	"github.com/mattwilkerson1121/Asinsights/models"
)

func TestSnapshotCache(t *testing.T) {
	now := time.Date(2024, 12, 5, 12, 0, 0, 0, time.UTC)
	c := NewSnapshotCache(time.Minute)
	c.nowFn = func() time.Time { return now }

	r := models.DateRange{Start: "2024-11-05", End: "2024-12-05"}
	if _, ok := c.Get(r); ok {
		t.Fatal("empty cache returned a hit")
	}

	snap := &models.Snapshot{KPIs: models.KPISet{Revenue: models.KPI{Value: "$1"}}}
	c.Set(r, snap)
	snap.KPIs.Revenue.Value = "mutated after set"

	got, ok := c.Get(r)
	if !ok || got.KPIs.Revenue.Value != "$1" {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	got.KPIs.Revenue.Value = "mutated after get"
	if again, _ := c.Get(r); again.KPIs.Revenue.Value != "$1" {
		t.Error("cached entry was mutated through a returned copy")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get(r); ok {
		t.Error("expired entry returned a hit")
	}

	c.Set(r, snap)
	c.Set(r, nil)
	if len(c.entries) != 1 {
		t.Errorf("entries = %d, want 1", len(c.entries))
	}
}

func TestNewSnapshotCacheDefaultTTL(t *testing.T) {
	if c := NewSnapshotCache(0); c.ttl != DefaultTTL {
		t.Errorf("ttl = %s, want %s", c.ttl, DefaultTTL)
	}
}
