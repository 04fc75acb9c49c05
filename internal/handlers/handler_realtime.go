package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/middleware"
	"github.com/sazonapp/pos_backend/internal/realtime"
	"github.com/sazonapp/pos_backend/internal/utils"
)

// realtimeHandler upgrades websocket subscriptions for kitchen displays and
// admin dashboards.
type realtimeHandler struct {
	hub         *realtime.Hub
	userService portssvc.UserSvcFacade
	jwtSecret   string
}

// registerRealtimeRoutes registers the websocket endpoint. Browsers cannot
// set an Authorization header on websocket upgrades, so the access token
// travels as a query parameter instead.
func registerRealtimeRoutes(r *gin.Engine, hub *realtime.Hub, us portssvc.UserSvcFacade, jwtSecret string) {
	h := &realtimeHandler{hub: hub, userService: us, jwtSecret: jwtSecret}
	r.GET("/ws", h.serveWS)
}

// serveWS godoc
// @Summary Subscribe to restaurant change events
// @Description Upgrades to a websocket scoped to the caller's restaurant. Every write to orders, cash movements or reservations is pushed as a JSON change event.
// @Tags realtime
// @Param token query string true "JWT access token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /ws [get]
func (h *realtimeHandler) serveWS(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token required"})
		return
	}

	claims, err := utils.ParseAndValidateJWT(tokenString, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid token"})
		return
	}
	if user.RestaurantID == nil {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "No tienes un restaurante asignado"})
		return
	}

	if err := realtime.ServeWS(h.hub, c.Writer, c.Request, *user.RestaurantID); err != nil {
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
	}
}
