package customer_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// CustomerLister lists Shopify customers.
type CustomerLister interface {
	Customers(ctx context.Context, first int) ([]models.ShopifyCustomer, error)
}

var customers CustomerLister

func InitCustomerController(l CustomerLister) {
	customers = l
}

// GetCustomers godoc
// @Summary Get customers
// @Description Customers from the Shopify Admin with order counts and amount spent
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param first query int false "Number of customers (max 250)" default(50)
// @Success 200 {object} models.ApiResponse{data=[]models.ShopifyCustomer}
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	if customers == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Shopify Admin is not configured"))
		return
	}

	first, err := strconv.Atoi(c.DefaultQuery("first", "50"))
	if err != nil || first < 1 || first > 250 {
		first = 50
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	list, err := customers.Customers(ctx, first)
	if err != nil {
		log.Printf("❌ [admin.customers] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Failed to fetch customers from Shopify"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers fetched successfully", list))
}
