package inventory_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetInventory godoc
// @Summary Get inventory
// @Description Stock per variant across the catalog
// @Tags Admin - Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.InventoryLevel}
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/inventory [get]
func GetInventory(c *gin.Context) {
	if inventory == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	levels, err := inventory.Inventory(ctx)
	if err != nil {
		log.Printf("❌ [admin.inventory] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to fetch inventory from Shopify"))
		return
	}
	if levels == nil {
		levels = []models.InventoryLevel{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory fetched successfully", levels))
}
