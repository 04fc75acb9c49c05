package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// orderHandler handles HTTP requests for the order lifecycle.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
	userService  portssvc.UserSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade, us portssvc.UserSvcFacade) *orderHandler {
	return &orderHandler{orderService: os, userService: us}
}

// registerOrderRoutes registers the staff-facing order routes.
func registerOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade, us portssvc.UserSvcFacade) {
	h := newOrderHandler(os, us)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/kitchen", h.listKitchenOrders)
		orders.GET("/:id", h.getOrder)
		orders.PATCH("/:id/status", h.advanceOrder)
	}
}

// registerPublicOrderRoutes registers the customer-facing order routes,
// reached without authentication.
func registerPublicOrderRoutes(rg *gin.RouterGroup, os portssvc.OrderSvcFacade, cs portssvc.CatalogSvcFacade) {
	h := newOrderHandler(os, nil)

	rg.GET("/:slug/menu", func(c *gin.Context) { getPublicMenu(c, cs) })
	rg.POST("/:slug/orders", h.createOnlineOrder)
	rg.POST("/table-orders", h.createTableOrder)
}

// getPublicMenu godoc
// @Summary Get the public menu
// @Description Returns the customer-facing menu for a restaurant: active categories with their active products.
// @Tags public
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Success 200 {object} dto.MenuResponse
// @Failure 404 {object} ErrorResponse
// @Router /public/{slug}/menu [get]
func getPublicMenu(c *gin.Context, catalogService portssvc.CatalogSvcFacade) {
	menu, err := catalogService.GetPublicMenu(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve menu")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// createOrder godoc
// @Summary Create a POS order
// @Description Creates a staff order at the counter. Prices are snapshotted from the catalog; the order starts in pending for the kitchen.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order lines"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Inactive or unknown product"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// createOnlineOrder godoc
// @Summary Create an online order
// @Description Creates a customer order against the restaurant slug. The order starts in pending_payment and awaits the payment gateway webhook.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Restaurant slug"
// @Param order body dto.CreateOnlineOrderRequest true "Order lines and customer contact"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown or inactive restaurant"
// @Router /public/{slug}/orders [post]
func (h *orderHandler) createOnlineOrder(c *gin.Context) {
	var req dto.CreateOnlineOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOnlineOrder(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// createTableOrder godoc
// @Summary Create a dine-in order from a QR code
// @Description Creates an order tied to the table resolved from the QR token.
// @Tags public
// @Accept json
// @Produce json
// @Param order body dto.CreateTableOrderRequest true "QR token and order lines"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown table token"
// @Router /public/table-orders [post]
func (h *orderHandler) createTableOrder(c *gin.Context) {
	var req dto.CreateTableOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateTableOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List order history
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), restaurantID, domain.OrderStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// listKitchenOrders godoc
// @Summary List the active kitchen board
// @Description Returns pending, preparing and ready orders, oldest first.
// @Tags orders
// @Produce json
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/kitchen [get]
func (h *orderHandler) listKitchenOrders(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	orders, err := h.orderService.ListKitchenOrders(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithError(c, err, "Failed to list kitchen orders")
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// advanceOrder godoc
// @Summary Advance an order's status
// @Description Moves the order along its status machine (pending, preparing, ready, delivered). Illegal transitions return 409.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body dto.AdvanceOrderRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Illegal transition or concurrent change"
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *orderHandler) advanceOrder(c *gin.Context) {
	var req dto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	order, err := h.orderService.AdvanceOrder(c.Request.Context(), user, c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		respondWithError(c, err, "Failed to advance order")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
