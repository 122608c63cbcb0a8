package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionCookie = "cart_session"
	CartSessionHeader = "X-Cart-Session"
	CartSessionKey    = "cartSession"

	cartSessionMaxAge = 60 * 60 * 24 * 30
)

// CartSession resolves the shopper's cart session from the header or cookie,
// issuing a new UUID v7 cookie on first visit. The session is echoed in the
// X-Cart-Session response header for clients that can't hold cookies.
func CartSession(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.GetHeader(CartSessionHeader)
		if !validSession(session) {
			if cookie, err := c.Cookie(CartSessionCookie); err == nil && validSession(cookie) {
				session = cookie
			} else {
				session = uuid.Must(uuid.NewV7()).String()
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(CartSessionCookie, session, cartSessionMaxAge, "/", "", secure, true)
			}
		}

		c.Set(CartSessionKey, session)
		c.Header(CartSessionHeader, session)
		c.Next()
	}
}

func validSession(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// GetCartSession returns the session set by CartSession.
func GetCartSession(c *gin.Context) string {
	return c.GetString(CartSessionKey)
}
