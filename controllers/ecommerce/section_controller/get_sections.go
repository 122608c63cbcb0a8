package section_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetSections godoc
// @Summary List storefront sections
// @Tags Storefront - Sections
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/sections [get]
func GetSections(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sections fetched successfully", models.DefaultSections))
}
