package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetStorefrontProductByID godoc
// @Summary Get single product
// @Description Get a catalog product by id or handle
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID or handle"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	product, ok := catalog.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
