package models

// SortBy controls the order of products in a mapped section.
type SortBy string

const (
	SortManual    SortBy = "manual"
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
	SortName      SortBy = "name"
	SortCreated   SortBy = "created"
)

// Valid reports whether s is a known sort mode.
func (s SortBy) Valid() bool {
	switch s {
	case SortManual, SortPriceAsc, SortPriceDesc, SortName, SortCreated:
		return true
	}
	return false
}

// WebsiteSection is a named slot on the storefront.
type WebsiteSection struct {
	ID          string `json:"id" example:"hero"`
	Name        string `json:"name" example:"Hero Section"`
	DisplayName string `json:"displayName" example:"Hero Products"`
	Description string `json:"description"`
	MaxProducts *int   `json:"maxProducts,omitempty" example:"4"`
	Type        string `json:"type" example:"hero"`
}

// MappingSettings holds presentation options for a section.
type MappingSettings struct {
	ShowTitle       bool   `json:"showTitle"`
	ShowDescription bool   `json:"showDescription"`
	Layout          string `json:"layout" example:"grid"`
	ProductsPerRow  int    `json:"productsPerRow" example:"4"`
	SortBy          SortBy `json:"sortBy" example:"manual"`
}

// CollectionMapping binds a section to a curated list of product ids.
type CollectionMapping struct {
	ID                  string          `json:"id" example:"hero-mapping"`
	SectionID           string          `json:"sectionId" example:"hero"`
	ShopifyCollectionID string          `json:"shopifyCollectionId,omitempty"`
	ProductIDs          []string        `json:"productIds"`
	Settings            MappingSettings `json:"settings"`
	IsActive            bool            `json:"isActive"`
	Priority            int             `json:"priority"`
}

// UpdateMappingRequest is a partial mapping update from the CMS.
type UpdateMappingRequest struct {
	ShopifyCollectionID *string          `json:"shopifyCollectionId,omitempty"`
	ProductIDs          []string         `json:"productIds,omitempty"`
	Settings            *MappingSettings `json:"settings,omitempty"`
	IsActive            *bool            `json:"isActive,omitempty"`
	Priority            *int             `json:"priority,omitempty"`
}

// SectionProductsResponse is a section with its resolved products.
type SectionProductsResponse struct {
	Section  WebsiteSection `json:"section"`
	Products []Product      `json:"products"`
	Mapped   bool           `json:"mapped"`
}

func intPtr(v int) *int { return &v }

// DefaultSections is the fixed set of storefront sections.
var DefaultSections = []WebsiteSection{
	{ID: "hero", Name: "Hero Section", DisplayName: "Hero Products", Description: "Featured products in the hero banner", MaxProducts: intPtr(4), Type: "hero"},
	{ID: "featured", Name: "Featured Products", DisplayName: "Featured Collection", Description: "Highlighted products on the homepage", MaxProducts: intPtr(8), Type: "featured"},
	{ID: "new-arrivals", Name: "New Arrivals", DisplayName: "New Arrivals", Description: "Latest products added to the store", MaxProducts: intPtr(12), Type: "new-arrivals"},
	{ID: "bestsellers", Name: "Bestsellers", DisplayName: "Best Sellers", Description: "Top-selling products", MaxProducts: intPtr(8), Type: "bestsellers"},
	{ID: "women-collection", Name: "Women's Collection", DisplayName: "Women's Activewear", Description: "Products for women", Type: "collection"},
	{ID: "men-collection", Name: "Men's Collection", DisplayName: "Men's Activewear", Description: "Products for men", Type: "collection"},
}

// FindSection looks up a section by id.
func FindSection(id string) (WebsiteSection, bool) {
	for _, s := range DefaultSections {
		if s.ID == id {
			return s, true
		}
	}
	return WebsiteSection{}, false
}

// DefaultMappings returns one empty, active, manually sorted mapping per section.
func DefaultMappings() []CollectionMapping {
	out := make([]CollectionMapping, 0, len(DefaultSections))
	for _, s := range DefaultSections {
		out = append(out, CollectionMapping{
			ID:         s.ID + "-mapping",
			SectionID:  s.ID,
			ProductIDs: []string{},
			Settings: MappingSettings{
				ShowTitle:       true,
				ShowDescription: true,
				Layout:          "grid",
				ProductsPerRow:  4,
				SortBy:          SortManual,
			},
			IsActive: true,
			Priority: 1,
		})
	}
	return out
}
