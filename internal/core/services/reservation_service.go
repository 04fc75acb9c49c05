package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sazonapp/pos_backend/internal/apperrors"
	"github.com/sazonapp/pos_backend/internal/core/domain"
	portsrepo "github.com/sazonapp/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/sazonapp/pos_backend/internal/core/ports/services"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// reservationTransitions defines the legal reservation status machine.
var reservationTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationPending:   {domain.ReservationConfirmed, domain.ReservationCancelled},
	domain.ReservationConfirmed: {domain.ReservationSeated, domain.ReservationCancelled},
}

func reservationCanTransition(from, to domain.ReservationStatus) bool {
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// reservationService implements the ReservationSvcFacade interface
type reservationService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepositoryFacade
	restaurantRepo  portsrepo.RestaurantRepositoryFacade
	publisher       portssvc.NotificationPublisher
	broadcaster     portssvc.ChangeBroadcaster
}

// NewReservationService creates a new reservation service with the provided
// dependencies. publisher and broadcaster may be nil.
func NewReservationService(
	reservationRepo portsrepo.ReservationRepositoryFacade,
	restaurantRepo portsrepo.RestaurantRepositoryFacade,
	publisher portssvc.NotificationPublisher,
	broadcaster portssvc.ChangeBroadcaster,
) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		publisher:       publisher,
		broadcaster:     broadcaster,
	}
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// CreateReservation books a table for a customer via the public site.
func (s *reservationService) CreateReservation(ctx context.Context, slug string, req dto.CreateReservationRequest) (*domain.Reservation, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, apperrors.ErrNotFound
	}
	if req.ReservedFor.Before(time.Now()) {
		return nil, fmt.Errorf("%w: reservation time is in the past", apperrors.ErrValidation)
	}

	now := time.Now()
	reservation := domain.Reservation{
		ReservationID: uuid.NewString(),
		RestaurantID:  restaurant.RestaurantID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		ReservedFor:   req.ReservedFor,
		Status:        domain.ReservationPending,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "online",
			LastUpdatedAt: now,
			LastUpdatedBy: "online",
		},
	}
	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		s.LogError(ctx, err, "Failed to save reservation")
		return nil, err
	}

	s.LogInfo(ctx, "Reservation created",
		slog.String("reservation_id", reservation.ReservationID),
		slog.Int("party_size", req.PartySize))
	s.broadcast(domain.ChangeEvent{
		Table:        "reservations",
		Op:           domain.ChangeInsert,
		RestaurantID: restaurant.RestaurantID,
		RecordID:     reservation.ReservationID,
		Payload:      reservation,
		OccurredAt:   now,
	})
	return &reservation, nil
}

// ListReservations retrieves a restaurant's reservations for one day.
func (s *reservationService) ListReservations(ctx context.Context, restaurantID string, day time.Time) ([]domain.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	reservations, err := s.reservationRepo.ListReservationsByDay(ctx, restaurantID, dayStart, dayEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if reservations == nil {
		return []domain.Reservation{}, nil
	}
	return reservations, nil
}

// UpdateReservationStatus confirms, cancels, or seats a reservation.
func (s *reservationService) UpdateReservationStatus(ctx context.Context, user *domain.User, reservationID string, next domain.ReservationStatus) (*domain.Reservation, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermTakeOrders); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.RestaurantID != restaurantID {
		return nil, apperrors.ErrNotFound
	}
	if !reservationCanTransition(reservation.Status, next) {
		return nil, fmt.Errorf("%w: cannot move reservation from %s to %s", apperrors.ErrConflict, reservation.Status, next)
	}

	now := time.Now()
	if err := s.reservationRepo.UpdateReservationStatus(ctx, reservationID, reservation.Status, next, user.UserID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("%w: reservation status changed concurrently", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "Failed to update reservation", slog.String("reservation_id", reservationID))
		return nil, err
	}
	reservation.Status = next
	reservation.LastUpdatedAt = now
	reservation.LastUpdatedBy = user.UserID

	s.LogInfo(ctx, "Reservation updated",
		slog.String("reservation_id", reservationID),
		slog.String("status", string(next)))
	s.broadcast(domain.ChangeEvent{
		Table:        "reservations",
		Op:           domain.ChangeUpdate,
		RestaurantID: restaurantID,
		RecordID:     reservationID,
		Payload:      reservation,
		OccurredAt:   now,
	})

	if next == domain.ReservationConfirmed && reservation.CustomerPhone != "" {
		s.publish(ctx, domain.NotificationEvent{
			Kind:          domain.NotifyReservationConfirmed,
			RestaurantID:  restaurantID,
			CustomerName:  reservation.CustomerName,
			CustomerPhone: reservation.CustomerPhone,
			ReservationID: reservationID,
			OccurredAt:    now,
		})
	}
	return reservation, nil
}

func (s *reservationService) broadcast(event domain.ChangeEvent) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastChange(event)
	}
}

func (s *reservationService) publish(ctx context.Context, event domain.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotification(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish notification",
			slog.String("kind", string(event.Kind)))
	}
}
