package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// catalogHandler handles HTTP requests for menu categories and products.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	userService    portssvc.UserSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, us portssvc.UserSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs, userService: us}
}

// registerCatalogRoutes registers menu management routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade, us portssvc.UserSvcFacade) {
	h := newCatalogHandler(cs, us)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.PUT("/:id", h.updateCategory)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
	}
}

// createCategory godoc
// @Summary Create a menu category
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *catalogHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List menu categories
// @Tags catalog
// @Produce json
// @Param activeOnly query bool false "Only active categories"
// @Success 200 {array} dto.CategoryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	activeOnly := c.Query("activeOnly") == "true"
	categories, err := h.catalogService.ListCategories(c.Request.Context(), restaurantID, activeOnly)
	if err != nil {
		respondWithError(c, err, "Failed to list categories")
		return
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		out[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, out)
}

// updateCategory godoc
// @Summary Update a menu category
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *catalogHandler) updateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// createProduct godoc
// @Summary Create a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce json
// @Param activeOnly query bool false "Only active products"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	_, restaurantID := currentUserRestaurant(c, h.userService)
	if restaurantID == "" {
		return
	}

	activeOnly := c.Query("activeOnly") == "true"
	products, err := h.catalogService.ListProducts(c.Request.Context(), restaurantID, activeOnly)
	if err != nil {
		respondWithError(c, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// updateProduct godoc
// @Summary Update a product
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *catalogHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user := currentUser(c, h.userService)
	if user == nil {
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), user, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
