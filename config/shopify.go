package config

import (
	"os"
	"strings"
)

// ShopifyConfig holds store credentials for the Admin and Storefront APIs.
type ShopifyConfig struct {
	StoreDomain     string
	AdminToken      string
	StorefrontToken string
	APIVersion      string
	WebhookSecret   string
}

func LoadShopifyConfig() ShopifyConfig {
	domain := strings.TrimSpace(os.Getenv("SHOPIFY_STORE_DOMAIN"))
	domain = strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://")
	return ShopifyConfig{
		StoreDomain:     strings.TrimSuffix(domain, "/"),
		AdminToken:      os.Getenv("SHOPIFY_ADMIN_ACCESS_TOKEN"),
		StorefrontToken: os.Getenv("SHOPIFY_STOREFRONT_ACCESS_TOKEN"),
		APIVersion:      getEnv("SHOPIFY_API_VERSION", "2024-01"),
		WebhookSecret:   os.Getenv("SHOPIFY_WEBHOOK_SECRET"),
	}
}

// AdminEnabled reports whether Admin API calls can be made.
func (c ShopifyConfig) AdminEnabled() bool {
	return c.StoreDomain != "" && c.AdminToken != ""
}

// StorefrontEnabled reports whether Storefront API calls can be made.
func (c ShopifyConfig) StorefrontEnabled() bool {
	return c.StoreDomain != "" && c.StorefrontToken != ""
}
