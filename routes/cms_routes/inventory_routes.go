package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/inventory_controller"
)

func SetupInventoryRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("", inventory_controller.GetInventory)
		inventory.PATCH("/:variantId", inventory_controller.AdjustInventory)
	}
}
