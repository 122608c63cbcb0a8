package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	store_product "github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/product_controller"
	store_section "github.com/ssaltnsoul-code/SaltnSoul/controllers/ecommerce/section_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}
	store.GET("/filters", store_product.GetProductFilters)

	sections := store.Group("/sections")
	{
		sections.GET("", store_section.GetSections)
		sections.GET("/:id/products", store_section.GetSectionProducts)
	}
}
