package order_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetShopifyOrders godoc
// @Summary Get Shopify orders
// @Description Most recent orders from the Shopify Admin
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param first query int false "Number of orders (max 250)" default(50)
// @Success 200 {object} models.ApiResponse{data=[]models.ShopifyOrder}
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetShopifyOrders(c *gin.Context) {
	if shopifyOrders == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}
	first := queryInt(c, "first", 50, 250)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	orders, err := shopifyOrders.Orders(ctx, first)
	if err != nil {
		log.Printf("❌ [admin.orders] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to fetch orders from Shopify"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
