package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// paymentHandler handles HTTP requests for counter payments and loyalty.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	loyaltyService portssvc.LoyaltySvcFacade
	userService    portssvc.UserSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade, ls portssvc.LoyaltySvcFacade, us portssvc.UserSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps, loyaltyService: ls, userService: us}
}

// registerPaymentRoutes registers payment and loyalty routes.
func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentSvcFacade, ls portssvc.LoyaltySvcFacade, us portssvc.UserSvcFacade) {
	h := newPaymentHandler(ps, ls, us)

	rg.POST("/orders/:id/pay", h.payOrder)

	loyalty := rg.Group("/loyalty")
	{
		loyalty.GET("/accounts/:phone", h.getLoyaltyAccount)
		loyalty.GET("/top", h.listTopLoyaltyAccounts)
	}
}

// payOrder godoc
// @Summary Settle an order at the counter
// @Description Records a CASH, CARD or TRANSFER payment and flips the order to paid. Cash payments require the caller to have an open cashbox session; the sale is appended to its ledger in the same transaction.
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payment body dto.PayOrderRequest true "Payment method"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Cash payment without an open session"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order already paid"
// @Security BearerAuth
// @Router /orders/{id}/pay [post]
func (h *paymentHandler) payOrder(c *gin.Context) {
	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	_, payment, err := h.paymentService.ProcessOrderPayment(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to process payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// getLoyaltyAccount godoc
// @Summary Get a customer's loyalty account
// @Tags loyalty
// @Produce json
// @Param phone path string true "Customer phone"
// @Success 200 {object} dto.LoyaltyAccountResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loyalty/accounts/{phone} [get]
func (h *paymentHandler) getLoyaltyAccount(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	account, err := h.loyaltyService.GetAccount(c.Request.Context(), restaurantID, c.Param("phone"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve loyalty account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoyaltyAccountResponse(account))
}

// listTopLoyaltyAccounts godoc
// @Summary List the restaurant's top loyalty accounts
// @Tags loyalty
// @Produce json
// @Param limit query int false "Number of accounts" default(10)
// @Success 200 {object} dto.ListLoyaltyAccountsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /loyalty/top [get]
func (h *paymentHandler) listTopLoyaltyAccounts(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	accounts, err := h.loyaltyService.ListTopAccounts(c.Request.Context(), restaurantID, limit)
	if err != nil {
		respondWithError(c, err, "Failed to list loyalty accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoyaltyAccountsResponse(accounts))
}
