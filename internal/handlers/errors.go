package handlers

import (
	"errors"
	"net/http"

	"voyago/internal/repositories/interfaces"
	"voyago/internal/services"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service-layer failures onto the response
// envelope. Unrecognized errors become a generic 500 without leaking
// internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		utils.NotFoundResponse(c, "resource")
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
	case errors.Is(err, services.ErrPhoneTaken):
		utils.ConflictResponse(c, services.ErrPhoneTaken.Error())
	case errors.Is(err, services.ErrVehicleExists):
		utils.ConflictResponse(c, services.ErrVehicleExists.Error())
	case errors.Is(err, services.ErrVehicleNotFound):
		utils.NotFoundResponse(c, "vehicle")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.BadRequestResponse(c, services.ErrInvalidStatus.Error())
	case errors.Is(err, services.ErrTripImmutable):
		utils.ConflictResponse(c, services.ErrTripImmutable.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
