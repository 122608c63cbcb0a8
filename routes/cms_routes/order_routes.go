package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/customer_controller"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		// Shopify
		orders.GET("", order_controller.GetShopifyOrders)
		orders.PATCH("/:id", order_controller.UpdateShopifyOrder)

		// Recorded checkouts
		orders.GET("/recorded", order_controller.GetRecordedOrders)
		orders.PATCH("/recorded/:id/status", order_controller.UpdateOrderStatus)
		orders.GET("/recorded/:id/receipt", order_controller.DownloadOrderInvoicePDF)
	}

	rg.GET("/stats", order_controller.GetOrderStats)
}

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", customer_controller.GetCustomers)
}
