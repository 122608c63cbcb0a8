package product_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// UpdateProduct godoc
// @Summary Update a product
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.ProductInput true "Product details"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	if !requireShopifyAdmin(c) {
		return
	}

	var req models.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := shopifyAdmin.UpdateProduct(ctx, id, req); err != nil {
		respondShopifyError(c, "update", err)
		return
	}

	refreshAfterWrite(ctx, "update")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", gin.H{"id": id}))
}
