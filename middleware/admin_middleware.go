package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

const (
	AdminTokenCookie = "admin_token"
	AdminIDKey       = "adminID"
	AdminEmailKey    = "adminEmail"
	adminTokenKey    = "adminToken"
)

// AdminToken reads the admin JWT from the cookie, then the Bearer header.
func AdminToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token, true
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
		return parts[1], true
	}
	return "", false
}

// AdminAuthMiddleware validates the admin token and sets adminID and adminEmail.
func AdminAuthMiddleware(auth *services.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := AdminToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			msg := "Unauthorized - invalid token"
			if errors.Is(err, services.ErrTokenRevoked) {
				msg = "Unauthorized - session ended"
			}
			log.Printf("[auth] rejected admin token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, msg))
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)
		c.Set(adminTokenKey, token)
		c.Next()
	}
}
