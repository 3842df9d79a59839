package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInternal = errors.New("internal server error")

// JSONResponse is the envelope of every /api response.
type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a failed envelope. Detail of a 5xx stays in the request log, the client only sees "internal server error".
func RespondError(c *gin.Context, code int, err error) {
	if code >= http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		err = errInternal
	}
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
	})
}
