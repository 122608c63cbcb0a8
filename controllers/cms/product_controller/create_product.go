package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product in Shopify, then refresh the catalog
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductInput true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
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

	start := time.Now()
	id, err := shopifyAdmin.CreateProduct(ctx, req)
	if err != nil {
		respondShopifyError(c, "create", err)
		return
	}
	log.Printf("✅ [admin.products.create] %s (%q) in %v", id, req.Title, time.Since(start))

	refreshAfterWrite(ctx, "create")
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", gin.H{"id": id}))
}
