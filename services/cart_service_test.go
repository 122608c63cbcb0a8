package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leggings() models.Product {
	return models.Product{
		ID:     "leggings",
		Name:   "Sculpt Leggings",
		Price:  49.99,
		Sizes:  []string{"S", "M"},
		Colors: []string{"Black"},
		Variants: []models.Variant{
			variant("v-s", "Size", "S"),
			variant("v-m", "Size", "M"),
		},
	}
}

func tee() models.Product {
	return models.Product{ID: "tee", Name: "Everyday Tee", Price: 25, Variants: []models.Variant{variant("v-tee")}}
}

func TestCartStore_AddItemMergesSameLine(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cart, err := LoadCart(ctx, store, CartKey("s1"))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(ctx, leggings(), "M", "Black", 1))
	require.NoError(t, cart.AddItem(ctx, leggings(), "M", "Black", 2))
	require.NoError(t, cart.AddItem(ctx, leggings(), "S", "Black", 1))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "v-m", items[0].VariantID)
	assert.Equal(t, "v-s", items[1].VariantID)
	assert.Equal(t, 4, cart.ItemCount())
	assert.InDelta(t, 199.96, cart.Total(), 0.001)
}

func TestCartStore_AddItemRejectsBadQuantity(t *testing.T) {
	ctx := context.Background()
	cart, err := LoadCart(ctx, NewMemoryStore(), CartKey("s1"))
	require.NoError(t, err)

	assert.ErrorIs(t, cart.AddItem(ctx, tee(), "", "", 0), ErrInvalidQuantity)
	assert.Empty(t, cart.Items())
}

func TestCartStore_PersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := CartKey("s1")

	cart, err := LoadCart(ctx, store, key)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(ctx, tee(), "M", "White", 2))

	reloaded, err := LoadCart(ctx, store, key)
	require.NoError(t, err)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.Items()[0].Quantity)
	assert.Equal(t, "tee", reloaded.Items()[0].Product.ID)
}

func TestCartStore_CorruptRecordIsDiscarded(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := CartKey("s1")
	require.NoError(t, store.Set(ctx, key, "{not json"))

	cart, err := LoadCart(ctx, store, key)
	require.NoError(t, err)
	assert.Empty(t, cart.Items())

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCartStore_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	cart, err := LoadCart(ctx, NewMemoryStore(), CartKey("s1"))
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(ctx, leggings(), "M", "Black", 1))
	require.NoError(t, cart.AddItem(ctx, tee(), "L", "White", 1))

	require.NoError(t, cart.UpdateQuantity(ctx, 1, 5))
	assert.Equal(t, 5, cart.Items()[1].Quantity)

	assert.ErrorIs(t, cart.UpdateQuantity(ctx, 7, 2), ErrLineNotFound)
	assert.ErrorIs(t, cart.RemoveItem(ctx, -1), ErrLineNotFound)

	// zero removes the line
	require.NoError(t, cart.UpdateQuantity(ctx, 0, 0))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "tee", cart.Items()[0].Product.ID)

	// so does a negative quantity
	require.NoError(t, cart.UpdateQuantity(ctx, 0, -5))
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
}

func TestCartStore_TotalKeepsSubCentPrices(t *testing.T) {
	ctx := context.Background()
	cart, err := LoadCart(ctx, NewMemoryStore(), CartKey("s1"))
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(ctx, models.Product{ID: "sample", Price: 1.2345}, "", "", 1))
	assert.InDelta(t, 1.2345, cart.Total(), 0.001)

	require.NoError(t, cart.AddItem(ctx, models.Product{ID: "sample", Price: 1.2345}, "", "", 2))
	assert.InDelta(t, 3.7035, cart.Total(), 0.001)
}

func TestCartStore_ClearRemovesRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	key := CartKey("s1")
	cart, err := LoadCart(ctx, store, key)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(ctx, tee(), "", "", 1))

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCartStore_LinesDoNotAliasCatalog(t *testing.T) {
	ctx := context.Background()
	cart, err := LoadCart(ctx, NewMemoryStore(), CartKey("s1"))
	require.NoError(t, err)

	p := leggings()
	require.NoError(t, cart.AddItem(ctx, p, "M", "Black", 1))
	p.Sizes[0] = "XXL"

	assert.Equal(t, "S", cart.Items()[0].Product.Sizes[0])
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(NewMemoryStore())

	_, err := svc.AddItem(ctx, "a", tee(), "", "", 1)
	require.NoError(t, err)

	b, err := svc.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, b.Items)
	assert.Zero(t, b.ItemCount)

	a, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, a.ItemCount)
}

func TestCartService_ConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewCartService(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "busy", tee(), "M", "White", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	raw, err := store.Get(ctx, CartKey("busy"))
	require.NoError(t, err)
	var items []models.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 20, items[0].Quantity)
}

func TestCartService_LockStripesAreBounded(t *testing.T) {
	assert.Equal(t, lockStripe("session-a"), lockStripe("session-a"))
	for i := 0; i < 1000; i++ {
		n := lockStripe(fmt.Sprintf("session-%d", i))
		assert.True(t, n >= 0 && n < cartLockStripes)
	}
}
