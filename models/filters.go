package models

// FilterMetadata lists the facet values present in the storefront catalog.
type FilterMetadata struct {
	Availability AvailabilityData `json:"availability"`
	Categories   []string         `json:"categories"`
	Sizes        []string         `json:"sizes"`
	Colors       []string         `json:"colors"`
	PriceRange   PriceRangeData   `json:"priceRange"`
}

// AvailabilityData counts products by stock state
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData is the cheapest and most expensive price in the catalog
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
