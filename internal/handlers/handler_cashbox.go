package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// cashboxHandler handles HTTP requests for the till and its sessions.
type cashboxHandler struct {
	cashboxService portssvc.CashboxSvcFacade
	userService    portssvc.UserSvcFacade
}

func newCashboxHandler(cs portssvc.CashboxSvcFacade, us portssvc.UserSvcFacade) *cashboxHandler {
	return &cashboxHandler{cashboxService: cs, userService: us}
}

// registerCashboxRoutes registers the cashbox lifecycle routes.
func registerCashboxRoutes(rg *gin.RouterGroup, cs portssvc.CashboxSvcFacade, us portssvc.UserSvcFacade) {
	h := newCashboxHandler(cs, us)

	cashbox := rg.Group("/cashbox")
	{
		cashbox.POST("/open", h.openCashbox)
		cashbox.GET("/status", h.getStatus)
		cashbox.GET("/sessions", h.listSessions)
		cashbox.POST("/sessions/:id/close", h.closeCashbox)
		cashbox.POST("/sessions/:id/movements", h.registerMovement)
		cashbox.GET("/sessions/:id/movements", h.listMovements)
		cashbox.POST("/sessions/:id/audits", h.auditCashbox)
		cashbox.GET("/sessions/:id/audits", h.listAudits)
	}
}

// openCashbox godoc
// @Summary Open the till
// @Description Opens a cashbox session on the restaurant's default till against the caller's open shift. The opening amount becomes the first ledger entry.
// @Tags cashbox
// @Accept json
// @Produce json
// @Param opening body dto.OpenCashboxRequest true "Opening count"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse "No open shift or till already open"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbox/open [post]
func (h *cashboxHandler) openCashbox(c *gin.Context) {
	var req dto.OpenCashboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	session, err := h.cashboxService.OpenCashbox(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to open cashbox")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// closeCashbox godoc
// @Summary Close the till
// @Description Closes the session. The system amount is replayed from the ledger inside one transaction and the caller's shift is closed in cascade. The response reports the difference between counted and system cash.
// @Tags cashbox
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param closing body dto.CloseCashboxRequest true "Closing count"
// @Success 200 {object} dto.SessionResponse
// @Failure 403 {object} ErrorResponse "Closing another user's session requires the audit permission"
// @Failure 409 {object} ErrorResponse "Session already closed"
// @Security BearerAuth
// @Router /cashbox/sessions/{id}/close [post]
func (h *cashboxHandler) closeCashbox(c *gin.Context) {
	var req dto.CloseCashboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	session, err := h.cashboxService.CloseCashbox(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to close cashbox")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// getStatus godoc
// @Summary Get till status
// @Description Describes the restaurant's default till and its open session, if any.
// @Tags cashbox
// @Produce json
// @Success 200 {object} dto.CashboxStatusResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbox/status [get]
func (h *cashboxHandler) getStatus(c *gin.Context) {
	user, restaurantID := currentUserRestaurant(c, h.userService)
	if user == nil {
		return
	}

	box, session, err := h.cashboxService.GetCashboxStatus(c.Request.Context(), restaurantID, user.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve cashbox status")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashboxStatusResponse(box, session))
}

// listSessions godoc
// @Summary List session history
// @Tags cashbox
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.SessionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbox/sessions [get]
func (h *cashboxHandler) listSessions(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	sessions, err := h.cashboxService.ListSessions(c.Request.Context(), restaurantID, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list sessions")
		return
	}

	out := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = dto.ToSessionResponse(&sessions[i])
	}
	c.JSON(http.StatusOK, out)
}

// registerMovement godoc
// @Summary Register a manual cash movement
// @Description Appends a DEPOSIT, WITHDRAWAL, or REFUND to an open session's ledger. SALE and OPENING entries are system generated and rejected here.
// @Tags cashbox
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param movement body dto.MovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session is closed"
// @Security BearerAuth
// @Router /cashbox/sessions/{id}/movements [post]
func (h *cashboxHandler) registerMovement(c *gin.Context) {
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	movement, err := h.cashboxService.RegisterMovement(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to register movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List session ledger
// @Tags cashbox
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbox/sessions/{id}/movements [get]
func (h *cashboxHandler) listMovements(c *gin.Context) {
	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	movements, err := h.cashboxService.ListMovements(c.Request.Context(), c.Param("id"), user.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}

// auditCashbox godoc
// @Summary Audit the till
// @Description Records a partial cash count against the live ledger without closing the session. Requires the cashbox:audit permission.
// @Tags cashbox
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param audit body dto.AuditRequest true "Counted amount"
// @Success 201 {object} dto.AuditResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session is closed"
// @Security BearerAuth
// @Router /cashbox/sessions/{id}/audits [post]
func (h *cashboxHandler) auditCashbox(c *gin.Context) {
	var req dto.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	audit, err := h.cashboxService.AuditCashbox(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to audit cashbox")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuditResponse(audit))
}

// listAudits godoc
// @Summary List session audits
// @Tags cashbox
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {array} dto.AuditResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbox/sessions/{id}/audits [get]
func (h *cashboxHandler) listAudits(c *gin.Context) {
	audits, err := h.cashboxService.ListAudits(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to list audits")
		return
	}

	out := make([]dto.AuditResponse, len(audits))
	for i := range audits {
		out[i] = dto.ToAuditResponse(&audits[i])
	}
	c.JSON(http.StatusOK, out)
}
