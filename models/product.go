package models

// ═══════════════════════════════════════════════════════════
// Catalog Types
// ═══════════════════════════════════════════════════════════

// SelectedOption is one option axis of a variant, e.g. {Size, M}.
type SelectedOption struct {
	Name  string `json:"name" example:"Size"`
	Value string `json:"value" example:"M"`
}

// Variant is a purchasable SKU of a product.
type Variant struct {
	ID                string           `json:"id" example:"gid://shopify/ProductVariant/1"`
	Title             string           `json:"title" example:"M / Black"`
	Price             float64          `json:"price" example:"49.99"`
	CompareAtPrice    *float64         `json:"compareAtPrice,omitempty"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
}

// Product is the normalized catalog entry every source converges on.
// Products held by the catalog are treated as immutable values.
type Product struct {
	ID            string    `json:"id" example:"8123456789"`
	Name          string    `json:"name" example:"Sculpt Leggings"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" example:"49.99"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Category      string    `json:"category" example:"Leggings"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	InStock       bool      `json:"inStock"`
	Featured      bool      `json:"featured"`
	StockQuantity *int      `json:"stockQuantity,omitempty"`
	Handle        string    `json:"handle,omitempty"`
	ShopifyID     string    `json:"shopifyId,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
}

const (
	DefaultSize     = "One Size"
	DefaultColor    = "Default"
	FallbackImage   = "/placeholder.svg"
	DefaultCategory = "Activewear"
)

// Clone returns a deep copy so callers can't alias catalog slices.
func (p Product) Clone() Product {
	out := p
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	out.Tags = append([]string(nil), p.Tags...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	if p.StockQuantity != nil {
		v := *p.StockQuantity
		out.StockQuantity = &v
	}
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		for i, v := range p.Variants {
			v.SelectedOptions = append([]SelectedOption(nil), v.SelectedOptions...)
			out.Variants[i] = v
		}
	}
	return out
}

// ═══════════════════════════════════════════════════════════
// Storefront Query
// ═══════════════════════════════════════════════════════════

// ProductQuery holds the storefront listing filters.
type ProductQuery struct {
	Search       string
	Category     string
	Size         string
	Color        string
	Availability string // in_stock | out_of_stock
	MinPrice     *float64
	MaxPrice     *float64
	SortBy       string // price | name | newest
	SortOrder    string // asc | desc
	Page         int
	Limit        int
}

// CatalogStatus describes the state of the in-memory catalog.
type CatalogStatus struct {
	Source        string `json:"source"`
	ProductCount  int    `json:"product_count"`
	LastRefreshed string `json:"last_refreshed,omitempty"`
	LastError     string `json:"last_error,omitempty"`
}
