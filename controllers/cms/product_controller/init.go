package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// ProductWriter edits products in the Shopify Admin.
type ProductWriter interface {
	CreateProduct(ctx context.Context, in models.ProductInput) (string, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error
}

// Catalog is the part of the catalog cache the CMS drives.
type Catalog interface {
	Products() []models.Product
	Refresh(ctx context.Context) error
	Status() models.CatalogStatus
}

var (
	shopifyAdmin ProductWriter
	images       services.ImageUploader
	catalog      Catalog
)

// InitProductController wires the CMS product handlers. writer and uploader
// may be nil when Shopify Admin or Cloudinary are not configured.
func InitProductController(writer ProductWriter, uploader services.ImageUploader, cat Catalog) {
	shopifyAdmin = writer
	images = uploader
	catalog = cat
}

// refreshAfterWrite reloads the catalog so the storefront sees an edit
// without waiting for the next poll.
func refreshAfterWrite(ctx context.Context, action string) {
	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("⚠️ [admin.products.%s] catalog refresh failed: %v", action, err)
	}
}

func requireShopifyAdmin(c *gin.Context) bool {
	if shopifyAdmin == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return false
	}
	return true
}

func respondShopifyError(c *gin.Context, action string, err error) {
	log.Printf("❌ [admin.products.%s] %v", action, err)
	if errors.Is(err, services.ErrShopifyNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}
	c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Shopify request failed: "+err.Error()))
}
