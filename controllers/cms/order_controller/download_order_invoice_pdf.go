package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download an order receipt (CMS)
// @Tags Admin - Orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/recorded/{id}/receipt [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	if !requireOrderStore(c) {
		return
	}
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := orderStore.GetOrder(ctx, id)
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("❌ [admin.orders.receipt] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}

	pdf, err := services.GenerateReceiptPDF(order)
	if err != nil {
		log.Printf("❌ [admin.orders.receipt] render %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}
