package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)

		// Images
		product.POST("/images", product_controller.UploadProductImages)
		product.DELETE("/images/:publicId", product_controller.DeleteProductImage)
	}

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/status", product_controller.GetCatalogStatus)
		catalog.POST("/refresh", product_controller.RefreshCatalog)
	}
}
