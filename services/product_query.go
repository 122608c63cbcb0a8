package services

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// QueryProducts filters, sorts and paginates a catalog snapshot for the
// storefront listing. It returns the page and the total match count.
func QueryProducts(products []models.Product, q models.ProductQuery) ([]models.Product, int) {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !containsAny(p.Name, search) && !containsAny(p.Description, search) && !containsAny(p.Category, search) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.Size != "" && !containsFold(p.Sizes, q.Size) {
			continue
		}
		if q.Color != "" && !containsFold(p.Colors, q.Color) {
			continue
		}
		switch q.Availability {
		case "in_stock":
			if !p.InStock {
				continue
			}
		case "out_of_stock":
			if p.InStock {
				continue
			}
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	sortListing(matched, q.SortBy, q.SortOrder)

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start >= total {
		return []models.Product{}, total
	}
	end := int(math.Min(float64(start+q.Limit), float64(total)))
	return matched[start:end], total
}

func sortListing(products []models.Product, sortBy, sortOrder string) {
	asc := strings.EqualFold(sortOrder, "asc")
	switch sortBy {
	case "price":
		sort.SliceStable(products, func(i, j int) bool {
			if asc {
				return products[i].Price < products[j].Price
			}
			return products[i].Price > products[j].Price
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			a, b := strings.ToLower(products[i].Name), strings.ToLower(products[j].Name)
			if asc {
				return a < b
			}
			return a > b
		})
	case "newest":
		// Sources list oldest first.
		if !asc {
			for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
				products[i], products[j] = products[j], products[i]
			}
		}
	}
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

// CollectFilters gathers facet values in first-seen order.
func CollectFilters(products []models.Product) models.FilterMetadata {
	var cats, sizes, colors []string
	f := models.FilterMetadata{}
	for i, p := range products {
		cats = append(cats, p.Category)
		sizes = append(sizes, p.Sizes...)
		colors = append(colors, p.Colors...)
		if p.InStock {
			f.Availability.InStock++
		} else {
			f.Availability.OutOfStock++
		}
		if i == 0 || p.Price < f.PriceRange.Min {
			f.PriceRange.Min = p.Price
		}
		if p.Price > f.PriceRange.Max {
			f.PriceRange.Max = p.Price
		}
	}
	f.Categories = dedupeAll(cats)
	f.Sizes = dedupeAll(sizes)
	f.Colors = dedupeAll(colors)
	return f
}

func dedupeAll(values []string) []string {
	out := dedupe(values, "")
	if len(out) == 1 && out[0] == "" {
		return []string{}
	}
	return out
}

var ErrProductNotFound = errors.New("product not found")
