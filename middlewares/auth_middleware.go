package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

const (
	AdminCookieName = "admin_session"
	ctxAdminToken   = "admin_token"
)

// SessionToken reads the admin token from the session cookie or the Authorization header.
func SessionToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(AdminCookieName); err == nil {
		return cookie
	}
	return ""
}

// IsAdmin reports whether the request carries a valid admin session.
func IsAdmin(c *gin.Context, admin *services.AdminService) bool {
	return admin.Authenticate(SessionToken(c)) == nil
}

// AdminAuthMiddleware guards the JSON admin API.
func AdminAuthMiddleware(admin *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if err := admin.Authenticate(token); err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}
		c.Set(ctxAdminToken, token)
		c.Next()
	}
}

// AdminPageMiddleware sends visitors without a session back to the login page.
func AdminPageMiddleware(admin *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if err := admin.Authenticate(token); err != nil {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}
		c.Set(ctxAdminToken, token)
		c.Next()
	}
}
