package services

import (
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/platform/cache"
	"github.com/sazonapp/pos_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher, broadcaster, and reportCache may be nil; the affected features degrade quietly.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	publisher portssvc.NotificationPublisher,
	broadcaster portssvc.ChangeBroadcaster,
	reportCache *cache.Cache,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Restaurant = NewRestaurantService(repos.RestaurantRepo)
	container.Shift = NewShiftService(repos.ShiftRepo, repos.RestaurantRepo)
	container.Cashbox = NewCashboxService(repos.CashboxRepo, repos.ShiftRepo, broadcaster)
	container.Catalog = NewCatalogService(repos.CatalogRepo, repos.RestaurantRepo)
	container.Loyalty = NewLoyaltyService(repos.LoyaltyRepo, cfg.LoyaltyPointsDivisor)
	container.Order = NewOrderService(repos.OrderRepo, repos.CatalogRepo, repos.RestaurantRepo, container.Loyalty, publisher, broadcaster)
	container.Payment = NewPaymentService(repos.OrderRepo, repos.PaymentRepo, container.Cashbox, container.Order, cfg.WompiEventsSecret)
	container.Reservation = NewReservationService(repos.ReservationRepo, repos.RestaurantRepo, publisher, broadcaster)
	container.Reporting = NewReportingService(repos.ReportingRepo, reportCache)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.ShiftSvcFacade   = (*shiftService)(nil)
	_ portssvc.CashboxSvcFacade = (*cashboxService)(nil)
	_ portssvc.OrderSvcFacade   = (*orderService)(nil)
	_ portssvc.PaymentSvcFacade = (*paymentService)(nil)
)
