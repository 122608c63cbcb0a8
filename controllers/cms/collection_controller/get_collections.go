package collection_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetCollections godoc
// @Summary Get Shopify collections
// @Description Custom and smart collections available for import into a section
// @Tags Admin - Sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ShopifyCollection}
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/collections [get]
func GetCollections(c *gin.Context) {
	if collections == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	list, err := collections.Collections(ctx)
	if err != nil {
		log.Printf("❌ [admin.collections] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to fetch collections from Shopify"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Collections fetched successfully", list))
}
