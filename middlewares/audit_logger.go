package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// OrderAuditMiddleware logs every admin status change attempt together with its outcome.
func OrderAuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{
			"sn":        c.Param("sn"),
			"client_ip": c.ClientIP(),
		}
		// Sebelum request
		utils.InfoLogger.WithFields(fields).Info("Updating order status")

		c.Next()

		// Setelah request
		fields["status_code"] = c.Writer.Status()
		if c.Writer.Status() < 400 {
			utils.InfoLogger.WithFields(fields).Info("Order status update finished")
		} else {
			utils.ErrorLogger.WithFields(fields).Error("Order status update rejected")
		}
	}
}
