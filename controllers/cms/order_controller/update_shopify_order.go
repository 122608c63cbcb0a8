package order_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// UpdateShopifyOrder godoc
// @Summary Update a Shopify order's note and tags
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shopify order ID"
// @Param body body models.UpdateShopifyOrderRequest true "Note and tags"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/orders/{id} [patch]
func UpdateShopifyOrder(c *gin.Context) {
	if shopifyOrders == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}

	var req models.UpdateShopifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := shopifyOrders.UpdateOrder(ctx, id, req.Note, req.Tags); err != nil {
		log.Printf("❌ [admin.orders.update] %s: %v", id, err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to update order: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", gin.H{"id": id}))
}
