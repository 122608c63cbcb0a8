package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// CartKeyPrefix namespaces persisted carts, one key per session.
const CartKeyPrefix = "salt_soul_cart"

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
)

func CartKey(session string) string {
	return CartKeyPrefix + ":" + session
}

// ════════════════════════════════════════════════════════════
// CartStore
// ════════════════════════════════════════════════════════════

// CartStore is the ordered line list of one cart. Every mutation is
// written back to the KV store before it returns.
type CartStore struct {
	key   string
	store KVStore
	items []models.CartItem
}

// LoadCart reads a persisted cart. A record that fails to parse is
// deleted and the cart starts empty.
func LoadCart(ctx context.Context, store KVStore, key string) (*CartStore, error) {
	c := &CartStore{key: key, store: store, items: []models.CartItem{}}

	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️ [cart.load] corrupt cart %s discarded: %v", key, err)
		if rmErr := store.Remove(ctx, key); rmErr != nil {
			log.Printf("⚠️ [cart.load] failed to remove corrupt cart %s: %v", key, rmErr)
		}
		return c, nil
	}
	if items != nil {
		c.items = items
	}
	return c, nil
}

func (c *CartStore) persist(ctx context.Context) error {
	b, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.store.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Items returns a copy of the cart lines.
func (c *CartStore) Items() []models.CartItem {
	return append([]models.CartItem(nil), c.items...)
}

// AddItem merges into the line with the same product, size and color, or
// appends a new line with the resolved variant.
func (c *CartStore) AddItem(ctx context.Context, product models.Product, size, color string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].Matches(product.ID, size, color) {
			c.items[i].Quantity += quantity
			return c.persist(ctx)
		}
	}

	variantID, _ := ResolveVariant(product, size, color)
	c.items = append(c.items, models.CartItem{
		Product:   product.Clone(),
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		VariantID: variantID,
	})
	return c.persist(ctx)
}

func (c *CartStore) RemoveItem(ctx context.Context, index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrLineNotFound
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return c.persist(ctx)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *CartStore) UpdateQuantity(ctx context.Context, index, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(ctx, index)
	}
	if index < 0 || index >= len(c.items) {
		return ErrLineNotFound
	}
	c.items[index].Quantity = quantity
	return c.persist(ctx)
}

// Clear empties the cart and deletes its persisted record.
func (c *CartStore) Clear(ctx context.Context) error {
	c.items = []models.CartItem{}
	if err := c.store.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (c *CartStore) Total() float64 {
	total := decimal.Zero
	for _, it := range c.items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

func (c *CartStore) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *CartStore) Response() models.CartResponse {
	return models.CartResponse{
		Items:     c.Items(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// ════════════════════════════════════════════════════════════
// CartService
// ════════════════════════════════════════════════════════════

// cartLockStripes bounds lock memory; sessions hash onto a fixed set.
const cartLockStripes = 256

// CartService serializes operations per session so concurrent requests for
// one cart don't lose updates.
type CartService struct {
	store KVStore
	locks [cartLockStripes]sync.Mutex
}

func NewCartService(store KVStore) *CartService {
	return &CartService{store: store}
}

func lockStripe(session string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(session))
	return int(h.Sum32() % cartLockStripes)
}

func (s *CartService) lock(session string) func() {
	mu := &s.locks[lockStripe(session)]
	mu.Lock()
	return mu.Unlock
}

func (s *CartService) with(ctx context.Context, session string, fn func(*CartStore) error) (models.CartResponse, error) {
	unlock := s.lock(session)
	defer unlock()

	cart, err := LoadCart(ctx, s.store, CartKey(session))
	if err != nil {
		return models.CartResponse{}, err
	}
	if fn != nil {
		if err := fn(cart); err != nil {
			return models.CartResponse{}, err
		}
	}
	return cart.Response(), nil
}

func (s *CartService) Get(ctx context.Context, session string) (models.CartResponse, error) {
	return s.with(ctx, session, nil)
}

func (s *CartService) AddItem(ctx context.Context, session string, product models.Product, size, color string, quantity int) (models.CartResponse, error) {
	return s.with(ctx, session, func(c *CartStore) error {
		return c.AddItem(ctx, product, size, color, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, session string, index int) (models.CartResponse, error) {
	return s.with(ctx, session, func(c *CartStore) error {
		return c.RemoveItem(ctx, index)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, session string, index, quantity int) (models.CartResponse, error) {
	return s.with(ctx, session, func(c *CartStore) error {
		return c.UpdateQuantity(ctx, index, quantity)
	})
}

func (s *CartService) Clear(ctx context.Context, session string) (models.CartResponse, error) {
	return s.with(ctx, session, func(c *CartStore) error {
		return c.Clear(ctx)
	})
}
