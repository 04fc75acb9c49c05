package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// shiftHandler handles HTTP requests related to worker shifts.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
	userService  portssvc.UserSvcFacade
}

func newShiftHandler(ss portssvc.ShiftSvcFacade, us portssvc.UserSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: ss, userService: us}
}

// registerShiftRoutes registers the shift lifecycle routes.
func registerShiftRoutes(rg *gin.RouterGroup, ss portssvc.ShiftSvcFacade, us portssvc.UserSvcFacade) {
	h := newShiftHandler(ss, us)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.startShift)
		shifts.GET("/active", h.getActiveShift)
		shifts.GET("", h.listShifts)
	}
}

// startShift godoc
// @Summary Clock into a shift
// @Description Opens a shift for the caller against one of the restaurant's work schedules. A user can only hold one open shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body dto.OpenShiftRequest true "Shift definition"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} ErrorResponse "Already has an open shift"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) startShift(c *gin.Context) {
	var req dto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), user, req.ShiftDefinitionID)
	if err != nil {
		respondWithError(c, err, "Failed to start shift")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// getActiveShift godoc
// @Summary Get own open shift
// @Tags shifts
// @Produce json
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} ErrorResponse "No open shift"
// @Security BearerAuth
// @Router /shifts/active [get]
func (h *shiftHandler) getActiveShift(c *gin.Context) {
	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), user.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve active shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shift history
// @Tags shifts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), restaurantID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list shifts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftsResponse(shifts))
}
