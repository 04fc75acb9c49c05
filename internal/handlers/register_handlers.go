package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/sazonapp/pos_backend/cmd/docs"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/middleware"
	"github.com/sazonapp/pos_backend/internal/platform/config"
	"github.com/sazonapp/pos_backend/internal/realtime"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *realtime.Hub,
) {
	registerCustomValidators()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	registerAuthRoutes(r, cfg, services)
	registerPublicRoutes(r, services)
	registerWebhookRoutes(r, services.Payment)
	registerRealtimeRoutes(r, hub, services.User, cfg.JWTSecret)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited per IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
	registerGoogleOAuthRoutes(auth, services)
}

// registerPublicRoutes sets up the customer-facing routes reached without a
// session: the menu, online and QR orders, and reservations.
func registerPublicRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	public := r.Group("/public")
	registerPublicOrderRoutes(public, services.Order, services.Catalog)
	registerPublicReservationRoutes(public, services.Reservation)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerRestaurantRoutes(v1, services.Restaurant, services.User)
	registerShiftRoutes(v1, services.Shift, services.User)
	registerCashboxRoutes(v1, services.Cashbox, services.User)
	registerCatalogRoutes(v1, services.Catalog, services.User)
	registerOrderRoutes(v1, services.Order, services.User)
	registerPaymentRoutes(v1, services.Payment, services.Loyalty, services.User)
	registerReservationRoutes(v1, services.Reservation, services.User)
	registerReportingRoutes(v1, services.Reporting, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
