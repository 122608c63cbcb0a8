package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// RefreshCatalog godoc
// @Summary Refresh the catalog now
// @Description Fetch the catalog from its source. On failure the previous snapshot keeps serving.
// @Tags CMS - Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CatalogStatus}
// @Failure 502 {object} models.ApiResponse
// @Router /admin/catalog/refresh [post]
func RefreshCatalog(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(config.RefreshTimeout)
	defer cancel()

	if err := catalog.Refresh(ctx); err != nil {
		log.Printf("❌ [admin.catalog.refresh] %v", err)
		resp := models.RetryableErrorResponse(c, "Catalog refresh failed, serving the previous snapshot")
		resp.Data = catalog.Status()
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog refreshed", catalog.Status()))
}

// GetCatalogStatus godoc
// @Summary Catalog status
// @Tags CMS - Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CatalogStatus}
// @Router /admin/catalog/status [get]
func GetCatalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog status fetched successfully", catalog.Status()))
}
