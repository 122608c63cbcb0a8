package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps admin URL segments to resource types
var pathToResourceType = map[string]string{
	"products":    "product",
	"images":      "image",
	"orders":      "order",
	"recorded":    "order",
	"customers":   "customer",
	"inventory":   "inventory",
	"collections": "collection",
	"sections":    "section_mapping",
	"catalog":     "catalog",
}

var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware writes one log line per admin mutation.
// Must run after AdminAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, ok := methodToActionVerb[c.Request.Method]
		if !ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		adminEmail := c.GetString(AdminEmailKey)
		if adminEmail == "" {
			log.Printf("[activity] warning: admin info not in context for %s", c.FullPath())
			return
		}

		action := verb + "_" + extractResourceType(c.FullPath())
		resourceID := firstParam(c, "id", "variantId", "publicId")
		status := c.Writer.Status()

		if status >= 200 && status < 300 {
			log.Printf("✅ [activity] %s %s by %s (%s)", action, resourceID, adminEmail, time.Since(start).Round(time.Millisecond))
			return
		}
		log.Printf("❌ [activity] %s %s by %s failed with status %d", action, resourceID, adminEmail, status)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType walks a route pattern from the end,
// e.g. "/api/v1/admin/inventory/:variantId" → "inventory".
func extractResourceType(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" || strings.HasPrefix(parts[i], ":") {
			continue
		}
		if rt, ok := pathToResourceType[parts[i]]; ok {
			return rt
		}
	}
	return "resource"
}

func firstParam(c *gin.Context, names ...string) string {
	for _, n := range names {
		if v := c.Param(n); v != "" {
			return v
		}
	}
	return "-"
}
