package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// Catalog is the read side of the catalog cache the storefront serves from.
type Catalog interface {
	Products() []models.Product
	Product(idOrHandle string) (models.Product, bool)
}

var catalog Catalog

// InitProductController wires the catalog the handlers read from.
func InitProductController(c Catalog) {
	catalog = c
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

func parsePrice(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parseProductQuery(c *gin.Context) models.ProductQuery {
	page, limit := parsePagination(c)
	return models.ProductQuery{
		Search:       c.Query("q"),
		Category:     c.Query("category"),
		Size:         c.Query("size"),
		Color:        c.Query("color"),
		Availability: c.Query("availability"),
		MinPrice:     parsePrice(c, "minPrice"),
		MaxPrice:     parsePrice(c, "maxPrice"),
		SortBy:       c.DefaultQuery("sortBy", "newest"),
		SortOrder:    c.DefaultQuery("sortOrder", "desc"),
		Page:         page,
		Limit:        limit,
	}
}
