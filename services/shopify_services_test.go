package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shopifyStub answers every request with the next canned body and records
// the decoded GraphQL variables.
type shopifyStub struct {
	t        *testing.T
	bodies   []string
	paths    []string
	vars     []map[string]any
	tokenHdr string
	token    string
}

func (s *shopifyStub) server() *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.String())
		if s.tokenHdr != "" {
			assert.Equal(s.t, s.token, r.Header.Get(s.tokenHdr))
		}
		if r.Method == http.MethodPost {
			raw, _ := io.ReadAll(r.Body)
			var req gqlReq
			require.NoError(s.t, json.Unmarshal(raw, &req))
			s.vars = append(s.vars, req.Variables)
		}
		if len(s.bodies) == 0 {
			http.Error(w, "unexpected request", http.StatusInternalServerError)
			return
		}
		body := s.bodies[0]
		s.bodies = s.bodies[1:]
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	s.t.Cleanup(srv.Close)
	return srv
}

const adminProductsPage1 = `{"data":{"products":{
  "pageInfo":{"hasNextPage":true,"endCursor":"c1"},
  "edges":[{"node":{
    "id":"gid://shopify/Product/101","title":"Sculpt Leggings","handle":"sculpt-leggings",
    "description":"High rise","productType":"Leggings","tags":["Featured","women"],
    "featuredImage":{"url":"https://cdn.example/leggings.jpg"},
    "images":{"edges":[]},
    "options":[{"name":"Size","values":["S","M","M"]},{"name":"Color","values":["Black"]}],
    "variants":{"edges":[
      {"node":{"id":"gid://shopify/ProductVariant/1","title":"S / Black","price":"49.99","compareAtPrice":"65.00","availableForSale":false,"inventoryQuantity":0,
        "selectedOptions":[{"name":"Size","value":"S"},{"name":"Color","value":"Black"}]}},
      {"node":{"id":"gid://shopify/ProductVariant/2","title":"M / Black","price":"49.99","compareAtPrice":null,"availableForSale":true,"inventoryQuantity":7,
        "selectedOptions":[{"name":"Size","value":"M"},{"name":"Color","value":"Black"}]}}
    ]}
  }}]
}}}`

const adminProductsPage2 = `{"data":{"products":{
  "pageInfo":{"hasNextPage":false,"endCursor":"c2"},
  "edges":[{"node":{
    "id":"gid://shopify/Product/102","title":"Gift Card","handle":"gift-card",
    "description":"","productType":"","tags":[],
    "featuredImage":null,"images":{"edges":[]},"options":[],
    "variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/9","title":"Default","price":{"amount":"abc"},"availableForSale":true,"inventoryQuantity":null,"selectedOptions":[]}}]}
  }}]
}}}`

func TestShopifyAdmin_FetchProductsPagesAndNormalizes(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{adminProductsPage1, adminProductsPage2}, tokenHdr: "X-Shopify-Access-Token", token: "shpat_test"}
	svc := newShopifyAdminService(stub.server().URL, "shpat_test", "2024-01")

	products, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	require.Len(t, stub.vars, 2)
	assert.Nil(t, stub.vars[0]["after"])
	assert.Equal(t, "c1", stub.vars[1]["after"])
	assert.Equal(t, "/admin/api/2024-01/graphql.json", stub.paths[0])

	p := products[0]
	assert.Equal(t, "101", p.ID)
	assert.Equal(t, "gid://shopify/Product/101", p.ShopifyID)
	assert.Equal(t, "sculpt-leggings", p.Handle)
	assert.Equal(t, 49.99, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 65.0, *p.OriginalPrice)
	assert.Equal(t, "https://cdn.example/leggings.jpg", p.Image)
	assert.Equal(t, []string{"S", "M"}, p.Sizes)
	assert.Equal(t, []string{"Black"}, p.Colors)
	assert.True(t, p.Featured)
	assert.True(t, p.InStock)
	require.NotNil(t, p.StockQuantity)
	assert.Equal(t, 7, *p.StockQuantity)
	assert.Len(t, p.Variants, 2)

	gift := products[1]
	assert.Equal(t, models.DefaultCategory, gift.Category)
	assert.Equal(t, []string{models.DefaultSize}, gift.Sizes)
	assert.Equal(t, []string{models.DefaultColor}, gift.Colors)
	assert.Zero(t, gift.Price)
	assert.Nil(t, gift.StockQuantity)
	assert.False(t, gift.Featured)
}

func TestShopifyAdmin_GraphQLErrors(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{`{"errors":[{"message":"Throttled"}]}`}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	_, err := svc.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Throttled")
}

func TestShopifyAdmin_HTTPError(t *testing.T) {
	stub := &shopifyStub{t: t}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	_, err := svc.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestShopifyAdmin_CreateProduct(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{
		`{"data":{"productCreate":{"product":{"id":"gid://shopify/Product/555"},"userErrors":[]}}}`,
		`{"data":{"productCreate":{"product":null,"userErrors":[{"field":["title"],"message":"Title can't be blank"}]}}}`,
	}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	price := 39.5
	id, err := svc.CreateProduct(context.Background(), models.ProductInput{Title: "Tank", Price: &price, Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, "555", id)

	input := stub.vars[0]["input"].(map[string]any)
	assert.Equal(t, "ACTIVE", input["status"])
	assert.Equal(t, "Salt & Soul", input["vendor"])
	variants := input["variants"].([]any)
	assert.Equal(t, "39.50", variants[0].(map[string]any)["price"])

	_, err = svc.CreateProduct(context.Background(), models.ProductInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title can't be blank")
}

func TestShopifyAdmin_UpdateProductWithPrice(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{
		`{"data":{"productUpdate":{"product":{"id":"gid://shopify/Product/7"},"userErrors":[]}}}`,
		`{"data":{"product":{"variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/70"}}]}}}}`,
		`{"data":{"productVariantsBulkUpdate":{"userErrors":[]}}}`,
	}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	price := 20.0
	require.NoError(t, svc.UpdateProduct(context.Background(), "7", models.ProductInput{Title: "Tank", Price: &price}))

	require.Len(t, stub.vars, 3)
	assert.Equal(t, "gid://shopify/Product/7", stub.vars[0]["input"].(map[string]any)["id"])
	assert.Equal(t, "gid://shopify/Product/7", stub.vars[2]["productId"])
}

func TestShopifyAdmin_CollectionProductIDs(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{`{"products":[{"id":11},{"id":12}]}`}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	ids, err := svc.CollectionProductIDs(context.Background(), "gid://shopify/Collection/99")
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "12"}, ids)
	assert.Equal(t, "/admin/api/2024-01/collections/99/products.json?limit=250", stub.paths[0])
}

func TestShopifyAdmin_Collections(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{
		`{"custom_collections":[{"id":1,"title":"Leggings","handle":"leggings"}]}`,
		`{"smart_collections":[{"id":2,"title":"Sale","handle":"sale"}]}`,
	}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	cols, err := svc.Collections(context.Background())
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, models.ShopifyCollection{ID: "1", Title: "Leggings", Handle: "leggings", Type: "custom"}, cols[0])
	assert.Equal(t, "smart", cols[1].Type)
}

func TestShopifyAdmin_Orders(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{`{"data":{"orders":{"edges":[{"node":{
		"id":"gid://shopify/Order/42","name":"#1042","email":"jane@example.com","createdAt":"2024-05-01T10:00:00Z",
		"displayFinancialStatus":"PAID","displayFulfillmentStatus":"UNFULFILLED",
		"totalPriceSet":{"shopMoney":{"amount":"98.50","currencyCode":"USD"}},
		"lineItems":{"edges":[{"node":{"title":"Sculpt Leggings","quantity":2,"variant":{"id":"gid://shopify/ProductVariant/2"}}}]}
	}}]}}}`}}
	svc := newShopifyAdminService(stub.server().URL, "tok", "2024-01")

	orders, err := svc.Orders(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "42", orders[0].ID)
	assert.Equal(t, 98.5, orders[0].TotalPrice)
	require.Len(t, orders[0].LineItems, 1)
	assert.Equal(t, 2, orders[0].LineItems[0].Quantity)
	assert.EqualValues(t, 25, stub.vars[0]["first"])
}

func TestShopifyStorefront_FetchProducts(t *testing.T) {
	body := `{"data":{"products":{"pageInfo":{"hasNextPage":false},"edges":[{"node":{
		"id":"gid://shopify/Product/201","title":"Everyday Tee","handle":"everyday-tee","description":"Soft",
		"productType":"Tops","tags":[],
		"priceRange":{"minVariantPrice":{"amount":"25.0","currencyCode":"USD"}},
		"compareAtPriceRange":{"minVariantPrice":{"amount":"0.0","currencyCode":"USD"}},
		"images":{"edges":[]},
		"options":[{"name":"Colour","values":["White"]}],
		"variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/21","title":"White","availableForSale":false,"quantityAvailable":0,
			"price":{"amount":"25.0"},"compareAtPrice":null,"selectedOptions":[{"name":"Colour","value":"White"}]}}]}
	}}]}}}`
	stub := &shopifyStub{t: t, bodies: []string{body}, tokenHdr: "X-Shopify-Storefront-Access-Token", token: "sf"}
	svc := newShopifyStorefrontService(stub.server().URL, "sf", "2024-01")

	products, err := svc.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "201", p.ID)
	assert.Equal(t, 25.0, p.Price)
	assert.Nil(t, p.OriginalPrice)
	assert.Equal(t, models.FallbackImage, p.Image)
	assert.Equal(t, []string{"White"}, p.Colors)
	assert.Equal(t, []string{models.DefaultSize}, p.Sizes)
	assert.False(t, p.InStock)
	assert.Equal(t, "/api/2024-01/graphql.json", stub.paths[0])
}

func TestShopifyStorefront_CreateCheckout(t *testing.T) {
	stub := &shopifyStub{t: t, bodies: []string{
		`{"data":{"checkoutCreate":{"checkout":{"id":"gid://shopify/Checkout/abc","webUrl":"https://shop.example/c/abc"},"checkoutUserErrors":[]}}}`,
	}}
	svc := newShopifyStorefrontService(stub.server().URL, "sf", "2024-01")

	res, err := svc.CreateCheckout(context.Background(),
		[]models.CheckoutLineItem{{VariantID: "21", Quantity: 2}},
		models.CustomerInfo{Email: "jane@example.com", FirstName: "Jane", State: "CA"})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/c/abc", res.WebURL)

	input := stub.vars[0]["input"].(map[string]any)
	line := input["lineItems"].([]any)[0].(map[string]any)
	assert.Equal(t, "gid://shopify/ProductVariant/21", line["variantId"])
	assert.Equal(t, "CA", input["shippingAddress"].(map[string]any)["province"])

	_, err = svc.CreateCheckout(context.Background(), nil, models.CustomerInfo{})
	assert.Error(t, err)
}

func TestShopifyREST_FetchProducts(t *testing.T) {
	body := `{"products":[{
		"id":301,"title":"Training Shorts","body_html":"<p>Lined</p>","handle":"training-shorts",
		"product_type":"","tags":"featured, men",
		"images":[{"src":"https://cdn.example/shorts.jpg"}],
		"options":[{"name":"Size","position":1,"values":["M","L"]},{"name":"Color","position":2,"values":["Olive"]}],
		"variants":[
			{"id":31,"title":"M / Olive","price":"48.00","compare_at_price":"60.00","inventory_quantity":3,"option1":"M","option2":"Olive","option3":null},
			{"id":32,"title":"L / Olive","price":"48.00","compare_at_price":null,"inventory_quantity":0,"option1":"L","option2":"Olive","option3":null}
		]
	}]}`
	stub := &shopifyStub{t: t, bodies: []string{body}, tokenHdr: "X-Shopify-Access-Token", token: "tok"}
	src := newShopifyRESTSource(stub.server().URL, "tok", "2024-01")

	products, err := src.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "301", p.ID)
	assert.Equal(t, "Uncategorized", p.Category)
	assert.True(t, p.Featured)
	assert.True(t, p.InStock)
	assert.Equal(t, 48.0, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 60.0, *p.OriginalPrice)
	require.NotNil(t, p.StockQuantity)
	assert.Equal(t, 3, *p.StockQuantity)
	require.Len(t, p.Variants, 2)
	assert.False(t, p.Variants[1].AvailableForSale)
	assert.Equal(t, []models.SelectedOption{{Name: "Size", Value: "L"}, {Name: "Color", Value: "Olive"}}, p.Variants[1].SelectedOptions)
	assert.Equal(t, "/admin/api/2024-01/products.json?limit=250&status=active", stub.paths[0])

	// resolver works on REST variants too
	id, ok := ResolveVariant(p, "L", "")
	assert.True(t, ok)
	assert.Equal(t, "gid://shopify/ProductVariant/32", id)
}
