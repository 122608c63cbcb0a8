package collection_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// CollectionLister lists Shopify collections.
type CollectionLister interface {
	Collections(ctx context.Context) ([]models.ShopifyCollection, error)
}

var (
	mapper      *services.CollectionService
	collections CollectionLister
)

// InitCollectionController wires the mapping handlers. lister may be nil
// when Shopify Admin is not configured.
func InitCollectionController(m *services.CollectionService, lister CollectionLister) {
	mapper = m
	collections = lister
}

func respondMappingError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Section not found"))
	case errors.Is(err, services.ErrInvalidMapping):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrShopifyNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
	default:
		log.Printf("❌ [admin.sections.%s] %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update section mappings"))
	}
}
