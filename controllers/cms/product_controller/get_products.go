package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// GetProducts godoc
// @Summary Get products (CMS)
// @Description List catalog products for the CMS, including out-of-stock ones
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products, total := services.QueryProducts(catalog.Products(), models.ProductQuery{
		Search: c.Query("q"),
		Page:   page,
		Limit:  limit,
	})
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products,
		models.NewPagination(page, limit, total)))
}
