package checkout_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// DownloadOrderReceipt godoc
// @Summary Download an order receipt
// @Tags Storefront - Checkout
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/orders/{id}/receipt [get]
func DownloadOrderReceipt(c *gin.Context) {
	ServeReceipt(c, orders)
}

// ServeReceipt renders the receipt of the order in the :id param.
func ServeReceipt(c *gin.Context, reader OrderReader) {
	if reader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Orders are not available"))
		return
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := reader.GetOrder(ctx, id)
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("❌ [receipt] load order %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load order"))
		return
	}

	pdf, err := services.GenerateReceiptPDF(order)
	if err != nil {
		log.Printf("❌ [receipt] render %s: %v", order.OrderNumber, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf.Bytes())
}
