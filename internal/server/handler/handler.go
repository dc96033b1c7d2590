// Package handler wires HTTP requests to the service layer. Handlers own
// request binding and shape validation; business rules live in services.
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/addiskitchen/platform/internal/server/domain"
	"github.com/addiskitchen/platform/internal/server/service"
	"github.com/addiskitchen/platform/pkg/response"
)

// respondError translates service errors into the HTTP envelope
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrDietaryTagNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrPackageNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrUserAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrUserInactive):
		response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrImageTooLarge),
		errors.Is(err, service.ErrPageLimitRequired):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
