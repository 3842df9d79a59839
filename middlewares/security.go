package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// halaman memakai style & script inline kecil, live feed lewat websocket
const contentSecurityPolicy = "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; connect-src 'self' ws: wss:"

// SecurityHeaders sets the browser hardening headers. Admin pages, the cart and the status page
// carry per-visitor data and are never cached.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", contentSecurityPolicy)

		if private(c.Request.URL.Path) {
			h.Set("Cache-Control", "no-store")
		}
		c.Next()
	}
}

func private(path string) bool {
	for _, prefix := range []string{"/admin", "/api/admin", "/api/cart", "/order", "/status"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
