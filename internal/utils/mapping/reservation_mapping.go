package mapping

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToDomainReservation converts a model Reservation to its domain form.
func ToDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		RestaurantID:  m.RestaurantID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		PartySize:     m.PartySize,
		ReservedFor:   m.ReservedFor,
		Status:        domain.ReservationStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelReservation converts a domain Reservation to its model form.
func ToModelReservation(d domain.Reservation) models.Reservation {
	return models.Reservation{
		ReservationID: d.ReservationID,
		RestaurantID:  d.RestaurantID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		PartySize:     d.PartySize,
		ReservedFor:   d.ReservedFor,
		Status:        string(d.Status),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReservationSlice converts model Reservations to domain Reservations.
func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	ds := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}

// ToDomainLoyaltyAccount converts a model LoyaltyAccount to its domain form.
func ToDomainLoyaltyAccount(m models.LoyaltyAccount) domain.LoyaltyAccount {
	return domain.LoyaltyAccount{
		AccountID:     m.AccountID,
		RestaurantID:  m.RestaurantID,
		CustomerPhone: m.CustomerPhone,
		CustomerName:  m.CustomerName,
		Points:        m.Points,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoyaltyAccountSlice converts model accounts to domain accounts.
func ToDomainLoyaltyAccountSlice(ms []models.LoyaltyAccount) []domain.LoyaltyAccount {
	ds := make([]domain.LoyaltyAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoyaltyAccount(m)
	}
	return ds
}
