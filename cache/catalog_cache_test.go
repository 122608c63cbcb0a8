package catalog_cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	products []models.Product
	err      error
	calls    atomic.Int32
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) FetchProducts(context.Context) ([]models.Product, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeSource) set(products []models.Product, err error) {
	f.mu.Lock()
	f.products, f.err = products, err
	f.mu.Unlock()
}

// gatedSource returns the result for call n only once gate n is released.
type gatedSource struct {
	seq     atomic.Int32
	gates   []chan struct{}
	results [][]models.Product
	errs    []error
}

func (g *gatedSource) Name() string { return "gated" }

func (g *gatedSource) FetchProducts(context.Context) ([]models.Product, error) {
	n := g.seq.Add(1) - 1
	<-g.gates[n]
	if n < int32(len(g.errs)) && g.errs[n] != nil {
		return nil, g.errs[n]
	}
	return g.results[n], nil
}

func TestCatalogCache_RefreshAndLookup(t *testing.T) {
	src := &fakeSource{products: []models.Product{
		{ID: "1", Handle: "sculpt-leggings", Name: "Sculpt Leggings", Sizes: []string{"S"}},
		{ID: "2", Handle: "tee", Name: "Tee"},
	}}
	c := New(src)

	assert.Empty(t, c.Products())
	require.NoError(t, c.Refresh(context.Background()))

	assert.Len(t, c.Products(), 2)

	p, ok := c.Product("sculpt-leggings")
	require.True(t, ok)
	assert.Equal(t, "1", p.ID)

	p, ok = c.Product("2")
	require.True(t, ok)
	assert.Equal(t, "Tee", p.Name)

	_, ok = c.Product("missing")
	assert.False(t, ok)

	st := c.Status()
	assert.Equal(t, "fake", st.Source)
	assert.Equal(t, 2, st.ProductCount)
	assert.NotEmpty(t, st.LastRefreshed)
	assert.Empty(t, st.LastError)
}

func TestCatalogCache_SnapshotIsIsolated(t *testing.T) {
	products := []models.Product{{ID: "1", Sizes: []string{"S"}}}
	c := New(&fakeSource{products: products})
	require.NoError(t, c.Refresh(context.Background()))

	products[0].Sizes[0] = "XL"
	got := c.Products()
	assert.Equal(t, "S", got[0].Sizes[0])

	got[0].Sizes[0] = "XXL"
	p, _ := c.Product("1")
	assert.Equal(t, "S", p.Sizes[0])
}

func TestCatalogCache_FailedRefreshKeepsSnapshot(t *testing.T) {
	src := &fakeSource{products: []models.Product{{ID: "1"}}}
	c := New(src)
	require.NoError(t, c.Refresh(context.Background()))

	src.set(nil, errors.New("shopify down"))
	err := c.Refresh(context.Background())
	require.Error(t, err)

	assert.Len(t, c.Products(), 1)
	st := c.Status()
	assert.Equal(t, 1, st.ProductCount)
	assert.Contains(t, st.LastError, "shopify down")

	src.set([]models.Product{{ID: "1"}, {ID: "2"}}, nil)
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Status().LastError)
	assert.Len(t, c.Products(), 2)
}

func TestCatalogCache_StaleRefreshIsDiscarded(t *testing.T) {
	src := &gatedSource{
		gates:   []chan struct{}{make(chan struct{}), make(chan struct{})},
		results: [][]models.Product{{{ID: "old"}}, {{ID: "new"}}},
	}
	c := New(src)

	first := make(chan error, 1)
	go func() { first <- c.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return src.seq.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	go func() { second <- c.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return src.seq.Load() == 2 }, time.Second, 5*time.Millisecond)

	close(src.gates[1])
	require.NoError(t, <-second)
	close(src.gates[0])
	require.NoError(t, <-first)

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "new", products[0].ID)
}

func TestCatalogCache_StaleFailureDoesNotReportError(t *testing.T) {
	src := &gatedSource{
		gates:   []chan struct{}{make(chan struct{}), make(chan struct{})},
		results: [][]models.Product{nil, {{ID: "new"}}},
		errs:    []error{errors.New("timeout"), nil},
	}
	c := New(src)

	first := make(chan error, 1)
	go func() { first <- c.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return src.seq.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	go func() { second <- c.Refresh(context.Background()) }()
	require.Eventually(t, func() bool { return src.seq.Load() == 2 }, time.Second, 5*time.Millisecond)

	close(src.gates[1])
	require.NoError(t, <-second)
	close(src.gates[0])
	require.Error(t, <-first)

	st := c.Status()
	assert.Empty(t, st.LastError)
	assert.Equal(t, 1, st.ProductCount)
}

func TestCatalogCache_Polling(t *testing.T) {
	src := &fakeSource{products: []models.Product{{ID: "1"}}}
	c := New(src)

	c.StartPolling(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return src.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	c.Stop()

	calls := src.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, src.calls.Load())
	assert.Len(t, c.Products(), 1)

	// a zero interval disables polling
	c.StartPolling(context.Background(), 0)
	c.Stop()
}
