package admin_auth_controller

import "github.com/ssaltnsoul-code/SaltnSoul/services"

var (
	authService   *services.AdminAuthService
	secureCookies bool
)

func InitAdminAuthController(auth *services.AdminAuthService, secure bool) {
	authService = auth
	secureCookies = secure
}
