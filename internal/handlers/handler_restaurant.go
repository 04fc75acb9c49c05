package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// restaurantHandler handles HTTP requests for tenants and their fixtures.
type restaurantHandler struct {
	restaurantService portssvc.RestaurantSvcFacade
	userService       portssvc.UserSvcFacade
}

func newRestaurantHandler(rs portssvc.RestaurantSvcFacade, us portssvc.UserSvcFacade) *restaurantHandler {
	return &restaurantHandler{restaurantService: rs, userService: us}
}

// registerRestaurantRoutes registers tenant management routes.
func registerRestaurantRoutes(rg *gin.RouterGroup, rs portssvc.RestaurantSvcFacade, us portssvc.UserSvcFacade) {
	h := newRestaurantHandler(rs, us)

	restaurants := rg.Group("/restaurants")
	{
		restaurants.POST("", h.createRestaurant)
		restaurants.GET("/:id", h.getRestaurant)
		restaurants.PUT("/:id", h.updateRestaurant)
	}

	definitions := rg.Group("/shift-definitions")
	{
		definitions.POST("", h.createShiftDefinition)
		definitions.GET("", h.listShiftDefinitions)
	}

	tables := rg.Group("/tables")
	{
		tables.POST("", h.createTable)
		tables.GET("", h.listTables)
	}
}

// createRestaurant godoc
// @Summary Create a restaurant
// @Description Provisions a new tenant with its default cashbox. Owner only.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body dto.CreateRestaurantRequest true "Restaurant details"
// @Success 201 {object} dto.RestaurantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already in use"
// @Security BearerAuth
// @Router /restaurants [post]
func (h *restaurantHandler) createRestaurant(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	restaurant, err := h.restaurantService.CreateRestaurant(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create restaurant")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRestaurantResponse(restaurant))
}

// getRestaurant godoc
// @Summary Get a restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [get]
func (h *restaurantHandler) getRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantService.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve restaurant")
		return
	}
	c.JSON(http.StatusOK, dto.ToRestaurantResponse(restaurant))
}

// updateRestaurant godoc
// @Summary Update a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param restaurant body dto.UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} dto.RestaurantResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [put]
func (h *restaurantHandler) updateRestaurant(c *gin.Context) {
	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	restaurant, err := h.restaurantService.UpdateRestaurant(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update restaurant")
		return
	}

	c.JSON(http.StatusOK, dto.ToRestaurantResponse(restaurant))
}

// createShiftDefinition godoc
// @Summary Create a work schedule
// @Description Adds a named shift window (e.g. morning, evening) to the caller's restaurant.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param definition body dto.ShiftDefinitionRequest true "Schedule details"
// @Success 201 {object} dto.ShiftDefinitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-definitions [post]
func (h *restaurantHandler) createShiftDefinition(c *gin.Context) {
	var req dto.ShiftDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	definition, err := h.restaurantService.CreateShiftDefinition(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create shift definition")
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftDefinitionResponse(definition))
}

// listShiftDefinitions godoc
// @Summary List work schedules
// @Tags restaurants
// @Produce json
// @Success 200 {object} dto.ListShiftDefinitionsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /shift-definitions [get]
func (h *restaurantHandler) listShiftDefinitions(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	definitions, err := h.restaurantService.ListShiftDefinitions(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithError(c, err, "Failed to list shift definitions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListShiftDefinitionsResponse(definitions))
}

// createTable godoc
// @Summary Register a table
// @Description Registers a physical table and mints its QR token for dine-in orders.
// @Tags restaurants
// @Accept json
// @Produce json
// @Param table body dto.CreateTableRequest true "Table details"
// @Success 201 {object} dto.TableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tables [post]
func (h *restaurantHandler) createTable(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	table, err := h.restaurantService.CreateTable(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create table")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTableResponse(table))
}

// listTables godoc
// @Summary List tables
// @Tags restaurants
// @Produce json
// @Success 200 {object} dto.ListTablesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tables [get]
func (h *restaurantHandler) listTables(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	tables, err := h.restaurantService.ListTables(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithError(c, err, "Failed to list tables")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTablesResponse(tables))
}
