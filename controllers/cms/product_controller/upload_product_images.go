package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

const maxImagesPerUpload = 10

// UploadProductImages godoc
// @Summary Upload product images
// @Description Upload up to 10 images to Cloudinary. Returns their secure URLs for use as imageUrl.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Images"
// @Success 201 {object} models.ApiResponse{data=models.ImageUploadResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/products/images [post]
func UploadProductImages(c *gin.Context) {
	if images == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 || len(files) > maxImagesPerUpload {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Provide between 1 and 10 images"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	urls, err := images.UploadImages(ctx, files, services.ProductImageFolder)
	if err != nil {
		log.Printf("❌ [admin.products.images] %v", err)
		c.JSON(http.StatusBadGateway, models.RetryableErrorResponse(c, "Image upload failed"))
		return
	}

	log.Printf("✅ [admin.products.images] uploaded %d images", len(urls))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Images uploaded successfully", models.ImageUploadResponse{URLs: urls}))
}
