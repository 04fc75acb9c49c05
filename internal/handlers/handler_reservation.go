package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// reservationHandler handles HTTP requests for table reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
	userService        portssvc.UserSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade, us portssvc.UserSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs, userService: us}
}

// registerReservationRoutes registers the staff-facing reservation routes.
func registerReservationRoutes(rg *gin.RouterGroup, rs portssvc.ReservationSvcFacade, us portssvc.UserSvcFacade) {
	h := newReservationHandler(rs, us)

	reservations := rg.Group("/reservations")
	{
		reservations.GET("", h.listReservations)
		reservations.PATCH("/:id/status", h.updateReservationStatus)
	}
}

// registerPublicReservationRoutes registers the customer booking route.
func registerPublicReservationRoutes(rg *gin.RouterGroup, rs portssvc.ReservationSvcFacade) {
	h := newReservationHandler(rs, nil)
	rg.POST("/:slug/reservations", h.createReservation)
}

// createReservation godoc
// @Summary Book a table
// @Description Creates a reservation for a customer via the public site. New reservations start in PENDING.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown or inactive restaurant"
// @Router /public/{slug}/reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create reservation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listReservations godoc
// @Summary List reservations for a day
// @Tags reservations
// @Produce json
// @Param day query string false "Day as 2006-01-02, defaults to today"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	day := time.Now()
	if raw := c.Query("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid day, expected 2006-01-02"})
			return
		}
		day = parsed
	}

	reservations, err := h.reservationService.ListReservations(c.Request.Context(), restaurantID, day)
	if err != nil {
		respondWithError(c, err, "Failed to list reservations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations))
}

// updateReservationStatus godoc
// @Summary Confirm, cancel or seat a reservation
// @Description Confirmations queue a WhatsApp notification to the customer.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param status body dto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Concurrent change"
// @Security BearerAuth
// @Router /reservations/{id}/status [patch]
func (h *reservationHandler) updateReservationStatus(c *gin.Context) {
	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	reservation, err := h.reservationService.UpdateReservationStatus(c.Request.Context(), user, c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		respondWithError(c, err, "Failed to update reservation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}
