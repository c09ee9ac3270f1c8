package cache

import (
	"context"
	"sync"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"
)

type cachedBill struct {
	bill      entities.Bill
	expiresAt time.Time
}

// DashboardCache is an in-process TTL cache for bill snapshots backing the
// dashboard reads. Entries expire after the configured TTL and are dropped
// eagerly on invalidation; a janitor goroutine sweeps whatever expires
// unread. The tables stay authoritative, so losing the cache costs latency,
// never correctness.
type DashboardCache struct {
	mu    sync.RWMutex
	bills map[string]cachedBill
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

var _ interfaces.IDashboardCache = (*DashboardCache)(nil)

func NewDashboardCache(ttl time.Duration) *DashboardCache {
	c := &DashboardCache{
		bills: make(map[string]cachedBill),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go c.janitor()
	return c
}

func (c *DashboardCache) GetBill(_ context.Context, billID string) (entities.Bill, bool) {
	c.mu.RLock()
	entry, ok := c.bills[billID]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return entities.Bill{}, false
	}
	return entry.bill, true
}

func (c *DashboardCache) SetBill(_ context.Context, b entities.Bill) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.bills[b.ID] = cachedBill{bill: b, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *DashboardCache) InvalidateBill(_ context.Context, billID string) error {
	c.mu.Lock()
	delete(c.bills, billID)
	c.mu.Unlock()
	return nil
}

// Close stops the janitor. Safe to call more than once.
func (c *DashboardCache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *DashboardCache) janitor() {
	interval := c.ttl
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			c.mu.Lock()
			for id, entry := range c.bills {
				if now.After(entry.expiresAt) {
					delete(c.bills, id)
				}
			}
			c.mu.Unlock()
		}
	}
}
