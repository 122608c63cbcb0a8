package product_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	if !requireShopifyAdmin(c) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := shopifyAdmin.DeleteProduct(ctx, id); err != nil {
		respondShopifyError(c, "delete", err)
		return
	}

	refreshAfterWrite(ctx, "delete")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
