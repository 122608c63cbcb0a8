package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetAdminMe godoc
// @Summary Get the signed-in admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched successfully", gin.H{
		"id":    c.GetString(middleware.AdminIDKey),
		"email": c.GetString(middleware.AdminEmailKey),
	}))
}
