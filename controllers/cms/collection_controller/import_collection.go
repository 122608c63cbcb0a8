package collection_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// ImportCollection godoc
// @Summary Import a Shopify collection into a section
// @Description Replaces the section's product list with the collection's products and activates the mapping
// @Tags Admin - Sections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Section ID"
// @Param collectionId path string true "Shopify collection ID"
// @Success 200 {object} models.ApiResponse{data=models.CollectionMapping}
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/sections/{id}/import/{collectionId} [post]
func ImportCollection(c *gin.Context) {
	sectionID := c.Param("id")
	if _, ok := models.FindSection(sectionID); !ok {
		respondMappingError(c, "import", services.ErrSectionNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	mapping, err := mapper.ImportShopifyCollection(ctx, sectionID, c.Param("collectionId"))
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) || errors.Is(err, services.ErrInvalidMapping) || errors.Is(err, services.ErrShopifyNotConfigured) {
			respondMappingError(c, "import", err)
			return
		}
		log.Printf("❌ [admin.sections.import] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to import collection from Shopify"))
		return
	}

	log.Printf("✅ [admin.sections.import] %s <- collection %s (%d products)", sectionID, c.Param("collectionId"), len(mapping.ProductIDs))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collection imported", mapping))
}
