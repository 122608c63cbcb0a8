package admin_auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate the store admin with email and password. Returns a JWT and sets the admin_token cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	resp, err := authService.Login(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Printf("[admin.login] rejected: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if err != nil {
		log.Printf("[admin.login] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, resp.Token, int(services.AdminTokenTTL.Seconds()), "/", "", secureCookies, true)

	log.Printf("✅ [admin.login] success: %s", resp.Admin.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", resp))
}
