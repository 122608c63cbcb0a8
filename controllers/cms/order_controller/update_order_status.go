package order_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// UpdateOrderStatus godoc
// @Summary Update a recorded order's status
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param body body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/recorded/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	if !requireOrderStore(c) {
		return
	}
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !validStatuses[status] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := orderStore.UpdateOrderStatus(ctx, id, status)
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("❌ [admin.orders.status] %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	log.Printf("✅ [admin.orders.status] %s -> %s", id, status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", gin.H{"id": id, "status": status}))
}
