package services

import (
	"testing"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Sculpt Leggings", Category: "Leggings", Price: 68, Sizes: []string{"S", "M"}, Colors: []string{"Black"}, InStock: true},
		{ID: "2", Name: "Seamless Bra", Category: "Sport Bras", Price: 42, Sizes: []string{"M"}, Colors: []string{"Sage"}, InStock: true},
		{ID: "3", Name: "Training Shorts", Category: "Shorts", Description: "Lined shorts for running", Price: 48, Sizes: []string{"L"}, Colors: []string{"Black"}, InStock: false},
		{ID: "4", Name: "Everyday Tee", Category: "Tops", Price: 32, Sizes: []string{"M"}, Colors: []string{"White"}, InStock: true},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func price(v float64) *float64 { return &v }

func TestQueryProducts_Filters(t *testing.T) {
	tests := []struct {
		name string
		q    models.ProductQuery
		want []string
	}{
		{"search name", models.ProductQuery{Search: "LEGGINGS"}, []string{"1"}},
		{"search description", models.ProductQuery{Search: "running"}, []string{"3"}},
		{"category", models.ProductQuery{Category: "sport bras"}, []string{"2"}},
		{"size", models.ProductQuery{Size: "m"}, []string{"1", "2", "4"}},
		{"color", models.ProductQuery{Color: "black"}, []string{"1", "3"}},
		{"in stock", models.ProductQuery{Availability: "in_stock"}, []string{"1", "2", "4"}},
		{"out of stock", models.ProductQuery{Availability: "out_of_stock"}, []string{"3"}},
		{"price range", models.ProductQuery{MinPrice: price(40), MaxPrice: price(50)}, []string{"2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.Page, tt.q.Limit = 1, 50
			got, total := QueryProducts(queryCatalog(), tt.q)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, len(tt.want), total)
		})
	}
}

func TestQueryProducts_Sorting(t *testing.T) {
	page := func(sortBy, order string) []string {
		got, _ := QueryProducts(queryCatalog(), models.ProductQuery{SortBy: sortBy, SortOrder: order, Page: 1, Limit: 10})
		return ids(got)
	}

	assert.Equal(t, []string{"4", "2", "3", "1"}, page("price", "asc"))
	assert.Equal(t, []string{"1", "3", "2", "4"}, page("price", "desc"))
	assert.Equal(t, []string{"4", "1", "2", "3"}, page("name", "asc"))
	assert.Equal(t, []string{"4", "3", "2", "1"}, page("newest", "desc"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, page("newest", "asc"))
}

func TestQueryProducts_Pagination(t *testing.T) {
	got, total := QueryProducts(queryCatalog(), models.ProductQuery{Page: 2, Limit: 3})
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"4"}, ids(got))

	got, total = QueryProducts(queryCatalog(), models.ProductQuery{Page: 5, Limit: 3})
	assert.Equal(t, 4, total)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueryProducts_DoesNotReorderInput(t *testing.T) {
	catalog := queryCatalog()
	_, _ = QueryProducts(catalog, models.ProductQuery{SortBy: "price", SortOrder: "asc", Page: 1, Limit: 10})
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(catalog))
}

func TestCollectFilters(t *testing.T) {
	f := CollectFilters(queryCatalog())

	assert.Equal(t, []string{"Leggings", "Sport Bras", "Shorts", "Tops"}, f.Categories)
	assert.Equal(t, []string{"S", "M", "L"}, f.Sizes)
	assert.Equal(t, []string{"Black", "Sage", "White"}, f.Colors)
	assert.Equal(t, 3, f.Availability.InStock)
	assert.Equal(t, 1, f.Availability.OutOfStock)
	assert.Equal(t, 32.0, f.PriceRange.Min)
	assert.Equal(t, 68.0, f.PriceRange.Max)
}

func TestCollectFilters_Empty(t *testing.T) {
	f := CollectFilters(nil)
	assert.Empty(t, f.Categories)
	assert.NotNil(t, f.Sizes)
	assert.Zero(t, f.PriceRange.Max)
}
