package handlers

import (
	"voyago/internal/middleware"
	"voyago/internal/utils"
	"voyago/pkg/logger"
	"voyago/pkg/ws"

	"github.com/gin-gonic/gin"
)

type WSHandler struct {
	hub *ws.Hub
	log *logger.Logger
}

func NewWSHandler(hub *ws.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		log: log,
	}
}

// WatchTrip subscribes the caller to a trip's live navigation progress.
func (h *WSHandler) WatchTrip(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	tripID := c.Param("id")
	if tripID == "" {
		utils.BadRequestResponse(c, "trip ID is required")
		return
	}

	if err := h.hub.Serve(c.Writer, c.Request, userID, tripID); err != nil {
		h.log.WithError(err).Warn("Websocket upgrade failed")
	}
}
