package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/cart_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/checkout_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
)

// SetupCartRoutes registers the session-scoped cart and checkout routes.
// rdb may be nil, which disables rate limiting.
func SetupCartRoutes(router *gin.RouterGroup, rdb *redis.Client, secureCookies bool) {
	store := router.Group("/store")
	store.Use(middleware.CartSession(secureCookies))

	cart := store.Group("/cart")
	cart.Use(middleware.RateLimiter(rdb, 120, time.Minute))
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PATCH("/items/:index", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:index", cart_controller.RemoveCartItem)
	}

	checkout := store.Group("")
	checkout.Use(middleware.RateLimiter(rdb, 20, time.Minute))
	{
		checkout.POST("/checkout", checkout_controller.CreateCheckout)
		checkout.POST("/payment-intent", checkout_controller.CreatePaymentIntent)
	}

	store.GET("/orders/:id/receipt", checkout_controller.DownloadOrderReceipt)
}
