package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	admin_auth "github.com/ssaltnsoul-code/SaltnSoul/controllers/cms/admin_controller/auth"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// Per-IP request budgets for the admin surface.
const (
	AdminLoginLimit = 10
	AdminAPILimit   = 100
)

// SetupAdminRoutes registers the admin auth routes and returns the group
// every other CMS route hangs off (Rate Limit + Auth + Activity Logging).
func SetupAdminRoutes(rg *gin.RouterGroup, auth *services.AdminAuthService, rdb *redis.Client) *gin.RouterGroup {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/login", middleware.RateLimiter(rdb, AdminLoginLimit, time.Minute), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.RateLimiter(rdb, AdminAPILimit, time.Minute))
	protected.Use(middleware.AdminAuthMiddleware(auth))
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)
	}
	return protected
}
