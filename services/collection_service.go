package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// MappingsKey is where section mappings are persisted.
const MappingsKey = "collectionMappings"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidMapping  = errors.New("invalid collection mapping")
)

// ProductLister is the read side of the catalog.
type ProductLister interface {
	Products() []models.Product
}

// CollectionProductSource resolves a Shopify collection to product ids.
type CollectionProductSource interface {
	CollectionProductIDs(ctx context.Context, collectionID string) ([]string, error)
}

// CollectionService maps storefront sections to products, from curated
// mappings when present and from keyword rules otherwise.
type CollectionService struct {
	store       KVStore
	catalog     ProductLister
	collections CollectionProductSource

	mu sync.Mutex
}

// NewCollectionService builds the mapper. collections may be nil when no
// Shopify Admin credentials are configured.
func NewCollectionService(store KVStore, catalog ProductLister, collections CollectionProductSource) *CollectionService {
	return &CollectionService{store: store, catalog: catalog, collections: collections}
}

// ════════════════════════════════════════════════════════════
// Mappings
// ════════════════════════════════════════════════════════════

// Mappings returns the persisted mappings, or the defaults when none are
// stored. A record that fails to parse is removed.
func (s *CollectionService) Mappings(ctx context.Context) ([]models.CollectionMapping, error) {
	raw, err := s.store.Get(ctx, MappingsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return models.DefaultMappings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load mappings: %w", err)
	}

	var mappings []models.CollectionMapping
	if err := json.Unmarshal([]byte(raw), &mappings); err != nil {
		log.Printf("⚠️ [collections.load] corrupt mappings discarded: %v", err)
		if rmErr := s.store.Remove(ctx, MappingsKey); rmErr != nil {
			log.Printf("⚠️ [collections.load] failed to remove corrupt mappings: %v", rmErr)
		}
		return models.DefaultMappings(), nil
	}
	return mappings, nil
}

func validateMapping(m *models.CollectionMapping) error {
	if m.SectionID == "" {
		return fmt.Errorf("%w: sectionId is required", ErrInvalidMapping)
	}
	if m.Settings.SortBy == "" {
		m.Settings.SortBy = models.SortManual
	}
	if !m.Settings.SortBy.Valid() {
		return fmt.Errorf("%w: unknown sortBy %q", ErrInvalidMapping, m.Settings.SortBy)
	}
	if m.ProductIDs == nil {
		m.ProductIDs = []string{}
	}
	if m.ID == "" {
		m.ID = m.SectionID + "-mapping"
	}
	return nil
}

func (s *CollectionService) save(ctx context.Context, mappings []models.CollectionMapping) error {
	b, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("encode mappings: %w", err)
	}
	if err := s.store.Set(ctx, MappingsKey, string(b)); err != nil {
		return fmt.Errorf("save mappings: %w", err)
	}
	return nil
}

// SaveMappings replaces the whole mapping list.
func (s *CollectionService) SaveMappings(ctx context.Context, mappings []models.CollectionMapping) error {
	for i := range mappings {
		if err := validateMapping(&mappings[i]); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, mappings)
}

// UpdateMapping patches the first mapping of a section, creating it from the
// defaults when the section has none.
func (s *CollectionService) UpdateMapping(ctx context.Context, sectionID string, req models.UpdateMappingRequest) (models.CollectionMapping, error) {
	if _, ok := models.FindSection(sectionID); !ok {
		return models.CollectionMapping{}, ErrSectionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mappings, err := s.Mappings(ctx)
	if err != nil {
		return models.CollectionMapping{}, err
	}

	idx := -1
	for i, m := range mappings {
		if m.SectionID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		for _, d := range models.DefaultMappings() {
			if d.SectionID == sectionID {
				mappings = append(mappings, d)
				idx = len(mappings) - 1
				break
			}
		}
	}

	m := mappings[idx]
	if req.ShopifyCollectionID != nil {
		m.ShopifyCollectionID = *req.ShopifyCollectionID
	}
	if req.ProductIDs != nil {
		m.ProductIDs = append([]string(nil), req.ProductIDs...)
	}
	if req.Settings != nil {
		m.Settings = *req.Settings
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}
	if req.Priority != nil {
		m.Priority = *req.Priority
	}
	if err := validateMapping(&m); err != nil {
		return models.CollectionMapping{}, err
	}
	mappings[idx] = m

	if err := s.save(ctx, mappings); err != nil {
		return models.CollectionMapping{}, err
	}
	return m, nil
}

// ImportShopifyCollection copies a collection's products into a section's mapping.
func (s *CollectionService) ImportShopifyCollection(ctx context.Context, sectionID, collectionID string) (models.CollectionMapping, error) {
	if s.collections == nil {
		return models.CollectionMapping{}, ErrShopifyNotConfigured
	}
	ids, err := s.collections.CollectionProductIDs(ctx, collectionID)
	if err != nil {
		return models.CollectionMapping{}, err
	}
	active := true
	return s.UpdateMapping(ctx, sectionID, models.UpdateMappingRequest{
		ShopifyCollectionID: &collectionID,
		ProductIDs:          ids,
		IsActive:            &active,
	})
}

// ════════════════════════════════════════════════════════════
// Section resolution
// ════════════════════════════════════════════════════════════

// ProductsForSection returns the uncapped products of a section and whether
// they came from a curated mapping.
func (s *CollectionService) ProductsForSection(ctx context.Context, sectionID string) ([]models.Product, bool) {
	products := s.catalog.Products()

	mappings, err := s.Mappings(ctx)
	if err != nil {
		log.Printf("⚠️ [collections.section] %s: using fallback: %v", sectionID, err)
		return FallbackProducts(products, sectionID), false
	}

	for _, m := range mappings {
		if m.SectionID != sectionID || !m.IsActive {
			continue
		}
		if len(m.ProductIDs) == 0 {
			break
		}
		return SortProducts(resolveProductIDs(products, m.ProductIDs), m.Settings.SortBy), true
	}
	return FallbackProducts(products, sectionID), false
}

// resolveProductIDs keeps the mapping order and drops ids missing from the catalog.
func resolveProductIDs(products []models.Product, ids []string) []models.Product {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a sorted copy. Unknown modes keep the input order.
func SortProducts(products []models.Product, by models.SortBy) []models.Product {
	out := append(make([]models.Product, 0, len(products)), products...)
	switch by {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case models.SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case models.SortCreated:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func take(products []models.Product, n int) []models.Product {
	if n < 0 {
		n = 0
	}
	if len(products) > n {
		products = products[:n]
	}
	return append(make([]models.Product, 0, len(products)), products...)
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(s string, words ...string) bool {
	s = strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// FallbackProducts picks section contents when no curated mapping applies.
// Note "men" also matches "women"; the men's section keeps that behaviour.
func FallbackProducts(products []models.Product, sectionID string) []models.Product {
	switch sectionID {
	case "hero", "featured":
		if featured := filterProducts(products, func(p models.Product) bool { return p.Featured }); len(featured) > 0 {
			return take(featured, 4)
		}
		return take(products, 4)

	case "new-arrivals", "bestsellers":
		n := 8
		if sec, ok := models.FindSection(sectionID); ok && sec.MaxProducts != nil {
			n = *sec.MaxProducts
		}
		return take(products, n)

	case "women-collection":
		women := filterProducts(products, func(p models.Product) bool {
			return containsAny(p.Category, "women", "sport bra", "tights", "leggings") || containsAny(p.Name, "women")
		})
		if len(women) > 0 {
			return women
		}
		return take(products, 4)

	case "men-collection":
		men := filterProducts(products, func(p models.Product) bool {
			return containsAny(p.Category, "men", "shorts") || containsAny(p.Name, "men")
		})
		if len(men) > 0 {
			return men
		}
		return take(products, 4)
	}
	return take(products, 8)
}

// ApplySectionCap trims products to the section's maxProducts, if any.
func ApplySectionCap(products []models.Product, section models.WebsiteSection) []models.Product {
	if section.MaxProducts == nil {
		return products
	}
	return take(products, *section.MaxProducts)
}
