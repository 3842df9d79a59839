package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/services"
)

// WebSocketAuthMiddleware guards the live feed. Browsers send the session cookie,
// a kitchen screen without cookies can pass ?token=.
func WebSocketAuthMiddleware(admin *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Validasi token
		if err := admin.Authenticate(token); err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ctxAdminToken, token)
		c.Next()
	}
}
