package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/collection_controller"
)

func SetupSectionRoutes(rg *gin.RouterGroup) {
	rg.GET("/collections", collection_controller.GetCollections)

	sections := rg.Group("/sections")
	{
		sections.GET("/mappings", collection_controller.GetSectionMappings)
		sections.PUT("/mappings", collection_controller.SaveSectionMappings)
		sections.PATCH("/:id/mapping", collection_controller.UpdateSectionMapping)
		sections.POST("/:id/import/:collectionId", collection_controller.ImportCollection)
	}
}
