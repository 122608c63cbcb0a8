package checkout_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// CreateCheckout godoc
// @Summary Check out the cart
// @Description Validates the customer form, prices the cart (flat shipping, 8% tax) and creates a Shopify checkout or a Stripe PaymentIntent.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param checkout body models.CheckoutRequest true "Customer and shipping details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/checkout [post]
func CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	resp, err := checkout.Checkout(ctx, middleware.GetCartSession(c), req)
	if err != nil {
		respondCheckoutError(c, "create", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout created", resp))
}
