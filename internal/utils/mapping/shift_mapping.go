package mapping

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift.
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:           d.ShiftID,
		UserID:            d.UserID,
		RestaurantID:      d.RestaurantID,
		ShiftType:         d.ShiftType,
		ShiftDefinitionID: d.ShiftDefinitionID,
		Status:            string(d.Status),
		StartedAt:         d.StartedAt,
		EndedAt:           d.EndedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift.
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:           m.ShiftID,
		UserID:            m.UserID,
		RestaurantID:      m.RestaurantID,
		ShiftType:         m.ShiftType,
		ShiftDefinitionID: m.ShiftDefinitionID,
		Status:            domain.ShiftStatus(m.Status),
		StartedAt:         m.StartedAt,
		EndedAt:           m.EndedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShiftSlice converts model Shifts to domain Shifts.
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}

// ToDomainShiftDefinition converts a model ShiftDefinition to its domain form.
func ToDomainShiftDefinition(m models.ShiftDefinition) domain.ShiftDefinition {
	return domain.ShiftDefinition{
		DefinitionID: m.DefinitionID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelShiftDefinition converts a domain ShiftDefinition to its model form.
func ToModelShiftDefinition(d domain.ShiftDefinition) models.ShiftDefinition {
	return models.ShiftDefinition{
		DefinitionID: d.DefinitionID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShiftDefinitionSlice converts model definitions to domain definitions.
func ToDomainShiftDefinitionSlice(ms []models.ShiftDefinition) []domain.ShiftDefinition {
	ds := make([]domain.ShiftDefinition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShiftDefinition(m)
	}
	return ds
}
