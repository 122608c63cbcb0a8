package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/webhook_controller"
)

func SetupWebhookRoutes(router *gin.RouterGroup) {
	router.POST("/webhooks/shopify", webhook_controller.HandleShopifyWebhook)
}
