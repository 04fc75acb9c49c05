package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// reportingHandler handles HTTP requests for the owner dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	userService      portssvc.UserSvcFacade
}

func newReportingHandler(rs portssvc.ReportingService, us portssvc.UserSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, userService: us}
}

// registerReportingRoutes registers the dashboard report routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService, us portssvc.UserSvcFacade) {
	h := newReportingHandler(rs, us)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/sales-daily", h.getSalesDaily)
		reports.GET("/top-products", h.getTopProducts)
	}
}

// requireReportAccess resolves the caller and enforces the reports:view
// permission, which the reporting service itself does not check.
func (h *reportingHandler) requireReportAccess(c *gin.Context) (restaurantID string, ok bool) {
	user, restaurantID := currentUserRestaurant(c, h.userService)
	if user == nil {
		return "", false
	}
	if !user.Role.Can(domain.PermViewReports) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "No tienes permiso para ver reportes"})
		return "", false
	}
	return restaurantID, true
}

// getDashboard godoc
// @Summary Get today's headline numbers
// @Description Returns sales, order count, average ticket and open orders for today.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	restaurantID, ok := h.requireReportAccess(c)
	if !ok {
		return
	}

	kpis, err := h.reportingService.GetDashboardKPIs(c.Request.Context(), restaurantID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(kpis))
}

// getSalesDaily godoc
// @Summary Get per-day sales totals
// @Tags reports
// @Produce json
// @Param from query string false "Range start as 2006-01-02, defaults to 30 days ago"
// @Param to query string false "Range end as 2006-01-02, defaults to today"
// @Success 200 {object} dto.SalesDailyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales-daily [get]
func (h *reportingHandler) getSalesDaily(c *gin.Context) {
	restaurantID, ok := h.requireReportAccess(c)
	if !ok {
		return
	}

	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.GetSalesDaily(c.Request.Context(), restaurantID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve daily sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesDailyResponse(rows, from, to))
}

// getTopProducts godoc
// @Summary Get the best sellers for a date range
// @Tags reports
// @Produce json
// @Param from query string false "Range start as 2006-01-02, defaults to 30 days ago"
// @Param to query string false "Range end as 2006-01-02, defaults to today"
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} dto.TopProductsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-products [get]
func (h *reportingHandler) getTopProducts(c *gin.Context) {
	restaurantID, ok := h.requireReportAccess(c)
	if !ok {
		return
	}

	from, to, ok := parseReportRange(c)
	if !ok {
		return
	}

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	rows, err := h.reportingService.GetTopProducts(c.Request.Context(), restaurantID, from, to, params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve top products")
		return
	}

	c.JSON(http.StatusOK, dto.ToTopProductsResponse(rows, from, to))
}

// parseReportRange parses the from/to query params, defaulting to the last
// 30 days. On bad input it writes the response itself.
func parseReportRange(c *gin.Context) (from, to time.Time, ok bool) {
	to = time.Now()
	from = to.AddDate(0, 0, -30)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from, expected 2006-01-02"})
			return from, to, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to, expected 2006-01-02"})
			return from, to, false
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Range end precedes range start"})
		return from, to, false
	}
	return from, to, true
}
