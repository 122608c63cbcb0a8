package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources selectable with CATALOG_SOURCE.
const (
	SourceShopifyAdmin      = "shopify-admin"
	SourceShopifyStorefront = "shopify-storefront"
	SourceShopifyREST       = "shopify-rest"
	SourceSupabase          = "supabase"
)

// RefreshTimeout bounds a single catalog refresh, which may page through
// several upstream requests.
const RefreshTimeout = 60 * time.Second

// AppConfig holds the process-wide settings read from the environment.
type AppConfig struct {
	Port            string
	Env             string
	AllowedOrigins  []string
	CatalogSource   string
	RefreshInterval time.Duration
	JWTSecret       string
	AdminEmail      string
	AdminPassHash   string
	SecureCookies   bool
}

// LoadAppConfig reads AppConfig, applying development defaults.
func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		Port:            getEnv("PORT", "8081"),
		Env:             getEnv("APP_ENV", "development"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		CatalogSource:   getEnv("CATALOG_SOURCE", SourceShopifyAdmin),
		RefreshInterval: 30 * time.Second,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminEmail:      strings.ToLower(os.Getenv("ADMIN_EMAIL")),
		AdminPassHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
	}
	cfg.SecureCookies = cfg.Env == "production"

	if raw := os.Getenv("CATALOG_REFRESH_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs < 0 {
			log.Printf("⚠️ invalid CATALOG_REFRESH_SECONDS %q, using 30", raw)
		} else {
			cfg.RefreshInterval = time.Duration(secs) * time.Second
		}
	}

	switch cfg.CatalogSource {
	case SourceShopifyAdmin, SourceShopifyStorefront, SourceShopifyREST, SourceSupabase:
	default:
		log.Printf("⚠️ unknown CATALOG_SOURCE %q, using %s", cfg.CatalogSource, SourceShopifyAdmin)
		cfg.CatalogSource = SourceShopifyAdmin
	}

	return cfg
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
