package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetRecordedOrders godoc
// @Summary Get recorded orders
// @Description Orders placed through checkout, newest first
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "pending | paid | fulfilled | cancelled"
// @Success 200 {object} models.ApiResponse{data=[]models.Order,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/orders/recorded [get]
func GetRecordedOrders(c *gin.Context) {
	if !requireOrderStore(c) {
		return
	}
	page := queryInt(c, "page", 1, 1<<20)
	limit := queryInt(c, "limit", 10, 50)

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status != "" && !validStatuses[status] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, total, err := orderStore.ListOrders(ctx, status, page, limit)
	if err != nil {
		log.Printf("❌ [admin.orders.recorded] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders,
		models.NewPagination(page, limit, int(total))))
}
