package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	restaurantRepo := newPgxRestaurantRepository(dbPool)
	shiftRepo := newPgxShiftRepository(dbPool)
	cashboxRepo := newPgxCashboxRepository(dbPool)
	catalogRepo := newPgxCatalogRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	reservationRepo := newPgxReservationRepository(dbPool)
	loyaltyRepo := newPgxLoyaltyRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		RestaurantRepo:  restaurantRepo,
		ShiftRepo:       shiftRepo,
		CashboxRepo:     cashboxRepo,
		CatalogRepo:     catalogRepo,
		OrderRepo:       orderRepo,
		PaymentRepo:     paymentRepo,
		ReservationRepo: reservationRepo,
		LoyaltyRepo:     loyaltyRepo,
		ReportingRepo:   reportingRepo,
	}
}
