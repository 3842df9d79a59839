package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartCookieName = "coffee_cart"
	CartHeader     = "X-Cart-ID"
	ctxCartID      = "cart_id"
	cartCookieAge  = 30 * 24 * 60 * 60
)

// CartSession makes sure every request has a cart ID. API clients may send X-Cart-ID,
// browsers get a coffee_cart cookie holding a random UUID.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := strings.TrimSpace(c.GetHeader(CartHeader))
		if _, err := uuid.Parse(cartID); err != nil {
			cartID = ""
		}
		if cartID == "" {
			if cookie, err := c.Cookie(CartCookieName); err == nil {
				if _, err := uuid.Parse(cookie); err == nil {
					cartID = cookie
				}
			}
		}
		if cartID == "" {
			cartID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CartCookieName, cartID, cartCookieAge, "/", "", false, true)
		c.Header(CartHeader, cartID)
		c.Set(ctxCartID, cartID)
		c.Next()
	}
}

// CartID returns the cart ID set by CartSession.
func CartID(c *gin.Context) string {
	return c.GetString(ctxCartID)
}
