package handlers

import (
	"voyago/internal/middleware"
	"voyago/internal/services"
	"voyago/internal/utils"
	"voyago/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedRouteHandler struct {
	routeService services.SavedRouteService
}

func NewSavedRouteHandler(routeService services.SavedRouteService) *SavedRouteHandler {
	return &SavedRouteHandler{
		routeService: routeService,
	}
}

func (h *SavedRouteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	routes, err := h.routeService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Saved routes fetched", routes)
}

// Toggle saves the (origin, destination) pair, or removes it when already
// saved. Posting the same pair twice is a round trip.
func (h *SavedRouteHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request services.ToggleRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateToggleRoute(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	result, err := h.routeService.Toggle(c.Request.Context(), userID, &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result.Saved {
		utils.CreatedResponse(c, "Route saved", result)
		return
	}
	utils.SuccessResponse(c, "Route removed", result)
}

func (h *SavedRouteHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	routeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid route ID")
		return
	}

	if err := h.routeService.Delete(c.Request.Context(), userID, routeID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Route deleted", nil)
}
