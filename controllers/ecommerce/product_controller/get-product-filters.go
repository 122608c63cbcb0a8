package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// GetProductFilters godoc
// @Summary Get filter metadata
// @Description Categories, sizes, colours and price range present in the catalog
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/filters [get]
func GetProductFilters(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters fetched successfully",
		services.CollectFilters(catalog.Products())))
}
