package checkout_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// OrderReader loads recorded orders.
type OrderReader interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

var (
	checkout *services.CheckoutService
	payments services.PaymentIntentCreator
	orders   OrderReader
)

// InitCheckoutController wires checkout. payments and reader may be nil when
// Stripe or the database are not configured.
func InitCheckoutController(cs *services.CheckoutService, pi services.PaymentIntentCreator, reader OrderReader) {
	checkout = cs
	payments = pi
	orders = reader
}

func respondCheckoutError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrCheckoutValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your cart is empty"))
	case errors.Is(err, services.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Payment provider is not available"))
	case errors.Is(err, services.ErrUpstream):
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Checkout is temporarily unavailable, please try again"))
	default:
		log.Printf("❌ [checkout.%s] %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Checkout failed"))
	}
}
