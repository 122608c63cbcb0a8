package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetOrderStats godoc
// @Summary Recorded order statistics
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStats}
// @Failure 503 {object} models.ApiResponse
// @Router /admin/stats [get]
func GetOrderStats(c *gin.Context) {
	if !requireOrderStore(c) {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := orderStore.OrderStats(ctx)
	if err != nil {
		log.Printf("❌ [admin.stats] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}
