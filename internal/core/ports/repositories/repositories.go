package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	RestaurantRepo  RestaurantRepositoryFacade
	ShiftRepo       ShiftRepositoryFacade
	CashboxRepo     CashboxRepositoryFacade
	CatalogRepo     CatalogRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
	LoyaltyRepo     LoyaltyRepository
	ReportingRepo   ReportingRepository
}
