package catalog_cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// DefaultRefreshInterval is how often the storefront polls its source.
const DefaultRefreshInterval = 30 * time.Second

// Source fetches the full, normalized catalog from an upstream.
type Source interface {
	Name() string
	FetchProducts(ctx context.Context) ([]models.Product, error)
}

// ── Catalog snapshot ─────────────────────────────────────────────────────────
// Replaced wholesale on every successful refresh. A failed refresh keeps the
// previous snapshot. Each refresh takes a sequence number and only results
// newer than the last applied one are kept.

type CatalogCache struct {
	source Source

	mu          sync.RWMutex
	products    []models.Product
	index       map[string]int
	refreshedAt time.Time
	lastErr     error
	applied     uint64

	seq atomic.Uint64

	pollMu sync.Mutex
	stop   context.CancelFunc
	done   chan struct{}
}

func New(source Source) *CatalogCache {
	return &CatalogCache{source: source, index: map[string]int{}}
}

// Refresh fetches from the source and swaps in the new snapshot.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	seq := c.seq.Add(1)
	products, err := c.source.FetchProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// an older fetch failing says nothing about the newer snapshot
		if seq > c.applied {
			c.lastErr = err
		}
		log.Printf("❌ [catalog.refresh] %s fetch failed, keeping %d products: %v", c.source.Name(), len(c.products), err)
		return fmt.Errorf("refresh catalog: %w", err)
	}
	if seq <= c.applied {
		log.Printf("⚠️ [catalog.refresh] discarding stale result #%d (applied #%d)", seq, c.applied)
		return nil
	}

	snapshot := make([]models.Product, len(products))
	index := make(map[string]int, len(products)*2)
	for i, p := range products {
		snapshot[i] = p.Clone()
		index[p.ID] = i
		if p.Handle != "" {
			if _, taken := index[p.Handle]; !taken {
				index[p.Handle] = i
			}
		}
	}

	c.products = snapshot
	c.index = index
	c.applied = seq
	c.refreshedAt = time.Now()
	c.lastErr = nil
	log.Printf("✅ [catalog.refresh] %d products from %s", len(snapshot), c.source.Name())
	return nil
}

// Products returns a copy of the current snapshot.
func (c *CatalogCache) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

// Product looks a product up by id or handle.
func (c *CatalogCache) Product(idOrHandle string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[idOrHandle]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i].Clone(), true
}

func (c *CatalogCache) Status() models.CatalogStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := models.CatalogStatus{
		Source:       c.source.Name(),
		ProductCount: len(c.products),
	}
	if !c.refreshedAt.IsZero() {
		st.LastRefreshed = c.refreshedAt.UTC().Format(time.RFC3339)
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}

// ── Polling ──────────────────────────────────────────────────────────────────

// StartPolling refreshes every interval until ctx is done or Stop is called.
// Calling it again replaces the running poller.
func (c *CatalogCache) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	c.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.pollMu.Lock()
	c.stop = cancel
	c.done = done
	c.pollMu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rctx, rcancel := context.WithTimeout(ctx, interval)
				_ = c.Refresh(rctx)
				rcancel()
			}
		}
	}()
}

// Stop halts polling and waits for the poller to exit.
func (c *CatalogCache) Stop() {
	c.pollMu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.pollMu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
}
