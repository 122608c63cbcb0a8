package checkout_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// CreatePaymentIntent godoc
// @Summary Create a Stripe PaymentIntent
// @Description Amount is in dollars and converted to cents.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param body body models.PaymentIntentRequest true "Amount and currency"
// @Success 200 {object} models.ApiResponse{data=models.PaymentIntentResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /store/payment-intent [post]
func CreatePaymentIntent(c *gin.Context) {
	if payments == nil {
		respondCheckoutError(c, "intent", services.ErrProviderUnavailable)
		return
	}

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	cents := services.ToCents(req.Amount)
	if cents <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Amount must be greater than zero"))
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	pi, err := payments.CreatePaymentIntent(ctx, cents, currency, nil)
	if err != nil {
		respondCheckoutError(c, "intent", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment intent created", models.PaymentIntentResponse{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		Amount:          pi.Amount,
		Currency:        pi.Currency,
	}))
}
