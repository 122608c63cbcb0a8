package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/utils"
)

// ShopifyStorefrontService reads the public catalog and creates checkouts
// through the Storefront GraphQL API.
type ShopifyStorefrontService struct {
	http    *shopifyHTTP
	version string
}

func NewShopifyStorefrontService(cfg config.ShopifyConfig) *ShopifyStorefrontService {
	return newShopifyStorefrontService(storeOrigin(cfg.StoreDomain), cfg.StorefrontToken, cfg.APIVersion)
}

func newShopifyStorefrontService(baseURL, token, version string) *ShopifyStorefrontService {
	return &ShopifyStorefrontService{
		http:    newShopifyHTTP(baseURL, "X-Shopify-Storefront-Access-Token", token),
		version: version,
	}
}

func (s *ShopifyStorefrontService) Name() string { return config.SourceShopifyStorefront }

func (s *ShopifyStorefrontService) path() string {
	return fmt.Sprintf("/api/%s/graphql.json", s.version)
}

type storefrontProductNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Handle      string   `json:"handle"`
	Description string   `json:"description"`
	ProductType string   `json:"productType"`
	Tags        []string `json:"tags"`
	PriceRange  struct {
		MinVariantPrice FlexPrice `json:"minVariantPrice"`
	} `json:"priceRange"`
	CompareAtPriceRange struct {
		MinVariantPrice FlexPrice `json:"minVariantPrice"`
	} `json:"compareAtPriceRange"`
	Images struct {
		Edges []struct {
			Node struct {
				URL         string `json:"url"`
				OriginalSrc string `json:"originalSrc"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Options []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"options"`
	Variants struct {
		Edges []struct {
			Node struct {
				ID                string                  `json:"id"`
				Title             string                  `json:"title"`
				Price             FlexPrice               `json:"price"`
				CompareAtPrice    FlexPrice               `json:"compareAtPrice"`
				AvailableForSale  bool                    `json:"availableForSale"`
				QuantityAvailable *int                    `json:"quantityAvailable"`
				SelectedOptions   []models.SelectedOption `json:"selectedOptions"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

const storefrontProductsQuery = `
query Products($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    pageInfo { hasNextPage endCursor }
    edges {
      node {
        id title handle description productType tags
        priceRange { minVariantPrice { amount currencyCode } }
        compareAtPriceRange { minVariantPrice { amount currencyCode } }
        images(first: 5) { edges { node { url } } }
        options { name values }
        variants(first: 100) {
          edges {
            node {
              id title availableForSale quantityAvailable
              price { amount } compareAtPrice { amount }
              selectedOptions { name value }
            }
          }
        }
      }
    }
  }
}`

// normalizeStorefrontProduct converts a Storefront GraphQL product node.
func normalizeStorefrontProduct(n storefrontProductNode) models.Product {
	p := models.Product{
		ID:            utils.GIDTail(n.ID),
		ShopifyID:     n.ID,
		Name:          n.Title,
		Description:   n.Description,
		Handle:        n.Handle,
		Price:         n.PriceRange.MinVariantPrice.Value,
		OriginalPrice: n.CompareAtPriceRange.MinVariantPrice.Ptr(),
		Image:         models.FallbackImage,
		Category:      firstNonEmpty(n.ProductType, models.DefaultCategory),
		Tags:          n.Tags,
		Featured:      hasTag(n.Tags, "featured"),
	}
	if len(n.Images.Edges) > 0 {
		if src := firstNonEmpty(n.Images.Edges[0].Node.OriginalSrc, n.Images.Edges[0].Node.URL); src != "" {
			p.Image = src
		}
	}

	var sizes, colors []string
	for _, opt := range n.Options {
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
	for _, e := range n.Variants.Edges {
		v := e.Node
		if v.AvailableForSale {
			p.InStock = true
		}
		if v.QuantityAvailable != nil {
			stock += *v.QuantityAvailable
			counted = true
		}
		p.Variants = append(p.Variants, models.Variant{
			ID:                v.ID,
			Title:             v.Title,
			Price:             v.Price.Value,
			CompareAtPrice:    v.CompareAtPrice.Ptr(),
			AvailableForSale:  v.AvailableForSale,
			QuantityAvailable: derefInt(v.QuantityAvailable),
			SelectedOptions:   v.SelectedOptions,
		})
	}
	if counted {
		p.StockQuantity = &stock
	}
	return p
}

func (s *ShopifyStorefrontService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var (
		out   []models.Product
		after *string
	)
	for page := 0; page < adminMaxPages; page++ {
		var data struct {
			Products struct {
				PageInfo pageInfo `json:"pageInfo"`
				Edges    []struct {
					Node storefrontProductNode `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		}
		vars := map[string]any{"first": adminPageSize}
		if after != nil {
			vars["after"] = *after
		}
		if err := s.http.graphQL(ctx, s.path(), gqlReq{Query: storefrontProductsQuery, Variables: vars}, &data); err != nil {
			return nil, fmt.Errorf("fetch storefront products: %w", err)
		}
		for _, e := range data.Products.Edges {
			out = append(out, normalizeStorefrontProduct(e.Node))
		}
		if !data.Products.PageInfo.HasNextPage {
			break
		}
		cursor := data.Products.PageInfo.EndCursor
		after = &cursor
	}
	return out, nil
}

// CheckoutResult is a created Shopify checkout.
type CheckoutResult struct {
	ID     string
	WebURL string
}

// CreateCheckout creates a hosted checkout for the given lines and customer.
func (s *ShopifyStorefrontService) CreateCheckout(ctx context.Context, lines []models.CheckoutLineItem, customer models.CustomerInfo) (CheckoutResult, error) {
	if len(lines) == 0 {
		return CheckoutResult{}, errors.New("checkout has no line items")
	}

	items := make([]map[string]any, 0, len(lines))
	for _, l := range lines {
		items = append(items, map[string]any{
			"variantId": utils.ToGID("ProductVariant", l.VariantID),
			"quantity":  l.Quantity,
		})
	}
	input := map[string]any{
		"lineItems": items,
		"email":     customer.Email,
		"shippingAddress": map[string]any{
			"firstName": customer.FirstName,
			"lastName":  customer.LastName,
			"address1":  customer.Address,
			"address2":  customer.Apartment,
			"city":      customer.City,
			"province":  customer.State,
			"zip":       customer.ZipCode,
			"country":   customer.Country,
			"phone":     customer.Phone,
		},
	}

	var data struct {
		CheckoutCreate struct {
			Checkout *struct {
				ID     string `json:"id"`
				WebURL string `json:"webUrl"`
			} `json:"checkout"`
			CheckoutUserErrors []userError `json:"checkoutUserErrors"`
		} `json:"checkoutCreate"`
	}
	q := `mutation checkoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {
    checkout { id webUrl }
    checkoutUserErrors { field message }
  }
}`
	if err := s.http.graphQL(ctx, s.path(), gqlReq{Query: q, Variables: map[string]any{"input": input}}, &data); err != nil {
		return CheckoutResult{}, err
	}
	if err := userErrorsToErr(data.CheckoutCreate.CheckoutUserErrors); err != nil {
		return CheckoutResult{}, err
	}
	if data.CheckoutCreate.Checkout == nil {
		return CheckoutResult{}, errors.New("shopify returned no checkout")
	}
	return CheckoutResult{ID: data.CheckoutCreate.Checkout.ID, WebURL: data.CheckoutCreate.Checkout.WebURL}, nil
}
