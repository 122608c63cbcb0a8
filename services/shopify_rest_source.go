package services

import (
	"context"
	"fmt"

	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// ShopifyRESTSource reads the catalog from the Admin REST products endpoint.
type ShopifyRESTSource struct {
	http    *shopifyHTTP
	version string
}

func NewShopifyRESTSource(cfg config.ShopifyConfig) *ShopifyRESTSource {
	return newShopifyRESTSource(storeOrigin(cfg.StoreDomain), cfg.AdminToken, cfg.APIVersion)
}

func newShopifyRESTSource(baseURL, token, version string) *ShopifyRESTSource {
	return &ShopifyRESTSource{
		http:    newShopifyHTTP(baseURL, "X-Shopify-Access-Token", token),
		version: version,
	}
}

func (s *ShopifyRESTSource) Name() string { return config.SourceShopifyREST }

type restVariant struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Price             FlexPrice `json:"price"`
	CompareAtPrice    FlexPrice `json:"compare_at_price"`
	InventoryQuantity *int      `json:"inventory_quantity"`
	Option1           *string   `json:"option1"`
	Option2           *string   `json:"option2"`
	Option3           *string   `json:"option3"`
}

type restProduct struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	BodyHTML    string        `json:"body_html"`
	Handle      string        `json:"handle"`
	ProductType string        `json:"product_type"`
	Tags        string        `json:"tags"`
	Variants    []restVariant `json:"variants"`
	Images      []struct {
		Src string `json:"src"`
	} `json:"images"`
	Options []struct {
		Name     string   `json:"name"`
		Position int      `json:"position"`
		Values   []string `json:"values"`
	} `json:"options"`
}

// normalizeRESTProduct converts an Admin REST product.
func normalizeRESTProduct(r restProduct) models.Product {
	tags := splitTags(r.Tags)
	p := models.Product{
		ID:          fmt.Sprint(r.ID),
		ShopifyID:   fmt.Sprintf("gid://shopify/Product/%d", r.ID),
		Name:        r.Title,
		Description: r.BodyHTML,
		Handle:      r.Handle,
		Category:    firstNonEmpty(r.ProductType, "Uncategorized"),
		Tags:        tags,
		Featured:    hasTag(tags, "featured"),
	}
	if len(r.Images) > 0 {
		p.Image = r.Images[0].Src
	}

	optionNames := make([]string, 3)
	var sizes, colors []string
	for i, opt := range r.Options {
		pos := opt.Position - 1
		if pos < 0 || pos > 2 {
			pos = i
		}
		if pos < 3 {
			optionNames[pos] = opt.Name
		}
		switch {
		case isSizeOption(opt.Name):
			sizes = append(sizes, opt.Values...)
		case isColorOption(opt.Name):
			colors = append(colors, opt.Values...)
		}
	}
	p.Sizes = dedupe(sizes, models.DefaultSize)
	p.Colors = dedupe(colors, models.DefaultColor)

	stock, counted := 0, false
	for i, v := range r.Variants {
		if i == 0 {
			p.Price = v.Price.Value
			p.OriginalPrice = v.CompareAtPrice.Ptr()
		}
		available := v.InventoryQuantity == nil || *v.InventoryQuantity > 0
		if available {
			p.InStock = true
		}
		if v.InventoryQuantity != nil {
			stock += *v.InventoryQuantity
			counted = true
		}

		var selected []models.SelectedOption
		for j, val := range []*string{v.Option1, v.Option2, v.Option3} {
			if val == nil || optionNames[j] == "" {
				continue
			}
			selected = append(selected, models.SelectedOption{Name: optionNames[j], Value: *val})
		}
		p.Variants = append(p.Variants, models.Variant{
			ID:                fmt.Sprintf("gid://shopify/ProductVariant/%d", v.ID),
			Title:             v.Title,
			Price:             v.Price.Value,
			CompareAtPrice:    v.CompareAtPrice.Ptr(),
			AvailableForSale:  available,
			QuantityAvailable: derefInt(v.InventoryQuantity),
			SelectedOptions:   selected,
		})
	}
	if counted {
		p.StockQuantity = &stock
	}
	return p
}

func (s *ShopifyRESTSource) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var data struct {
		Products []restProduct `json:"products"`
	}
	path := fmt.Sprintf("/admin/api/%s/products.json?limit=250&status=active", s.version)
	if err := s.http.getJSON(ctx, path, &data); err != nil {
		return nil, fmt.Errorf("fetch rest products: %w", err)
	}
	out := make([]models.Product, 0, len(data.Products))
	for _, r := range data.Products {
		out = append(out, normalizeRESTProduct(r))
	}
	return out, nil
}
