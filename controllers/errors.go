package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/pidey-coffee/services"
	"github.com/yeremiapane/pidey-coffee/utils"
)

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidProduct),
		errors.Is(err, services.ErrInvalidStock),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrSNRequired),
		errors.Is(err, services.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredential),
		errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCartItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrDuplicateMenuItem):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondServiceError writes the envelope for err.
func respondServiceError(c *gin.Context, err error) {
	utils.RespondError(c, errorStatus(err), err)
}
