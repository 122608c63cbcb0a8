package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/config"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Revoke the current token and clear the cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if token, ok := middleware.AdminToken(c); ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := authService.Logout(ctx, token); err != nil {
			// The cookie is still cleared below.
			log.Printf("[admin.logout] failed to revoke token: %v", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", secureCookies, true)
	log.Printf("[admin.logout] token cleared from cookie")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
