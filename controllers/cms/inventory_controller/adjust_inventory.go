package inventory_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// AdjustInventory godoc
// @Summary Adjust a variant's stock
// @Description Add (positive delta) or remove (negative delta) available units, then refresh the catalog
// @Tags Admin - Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param variantId path string true "Variant ID"
// @Param body body models.UpdateInventoryRequest true "Quantity change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/inventory/{variantId} [patch]
func AdjustInventory(c *gin.Context) {
	if inventory == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}

	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: delta must be a non-zero integer"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	variantID := c.Param("variantId")
	if err := inventory.AdjustInventory(ctx, variantID, req.Delta); err != nil {
		log.Printf("❌ [admin.inventory.adjust] %s: %v", variantID, err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to adjust inventory: "+err.Error()))
		return
	}

	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("⚠️ [admin.inventory.adjust] catalog refresh failed: %v", err)
	}

	log.Printf("✅ [admin.inventory.adjust] %s %+d", variantID, req.Delta)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory adjusted", gin.H{"variantId": variantID, "delta": req.Delta}))
}
