package cache

import (
	"sync"
	"time"

	"github.com/mattwilkerson1121/Asinsights/models"
)

const DefaultTTL = 5 * time.Minute

// ── Snapshot cache ───────────────────────────────────────────────────────────
// Keyed by date range. Entries are stored and handed out as deep copies so a
// cached snapshot can never be changed by a caller.

type snapshotEntry struct {
	data      *models.Snapshot
	fetchedAt time.Time
}

type SnapshotCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[models.DateRange]snapshotEntry
	nowFn   func() time.Time
}

func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{
		ttl:     ttl,
		entries: make(map[models.DateRange]snapshotEntry),
		nowFn:   time.Now,
	}
}

func (c *SnapshotCache) Get(dateRange models.DateRange) (*models.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[dateRange]
	if ok && c.nowFn().Sub(entry.fetchedAt) < c.ttl {
		return entry.data.Clone(), true
	}
	return nil, false
}

func (c *SnapshotCache) Set(dateRange models.DateRange, data *models.Snapshot) {
	if data == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dateRange] = snapshotEntry{data: data.Clone(), fetchedAt: c.nowFn()}
}
