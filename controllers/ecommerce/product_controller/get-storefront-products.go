package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description List catalog products with optional search, category, size, colour, availability, price range and sorting. Served from the in-memory catalog.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name, description or category)"
// @Param category query string false "Category"
// @Param size query string false "Size"
// @Param color query string false "Colour"
// @Param availability query string false "Availability filter (in_stock | out_of_stock)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort by (newest | price | name)" default(newest)
// @Param sortOrder query string false "Sort order (asc | desc)" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	q := parseProductQuery(c)

	products, total := services.QueryProducts(catalog.Products(), q)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products,
		models.NewPagination(q.Page, q.Limit, total)))
}
