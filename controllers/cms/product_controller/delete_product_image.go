package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// DeleteProductImage godoc
// @Summary Delete a product image
// @Description Remove an uploaded image by its Cloudinary public id (without the folder prefix)
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param publicId path string true "Public ID"
// @Success 200 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/products/images/{publicId} [delete]
func DeleteProductImage(c *gin.Context) {
	if images == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	publicID := strings.TrimSpace(c.Param("publicId"))
	if publicID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Public ID is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := images.DeleteImage(ctx, services.ProductImageFolder+"/"+publicID); err != nil {
		log.Printf("❌ [admin.products.images] delete %s: %v", publicID, err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Image delete failed"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image deleted successfully", nil))
}
