package mapping

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToDomainRestaurant converts a model Restaurant to its domain form.
func ToDomainRestaurant(m models.Restaurant) domain.Restaurant {
	return domain.Restaurant{
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Slug:         m.Slug,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRestaurant converts a domain Restaurant to its model form.
func ToModelRestaurant(d domain.Restaurant) models.Restaurant {
	return models.Restaurant{
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		Slug:         d.Slug,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTable converts a model Table to its domain form.
func ToDomainTable(m models.Table) domain.Table {
	return domain.Table{
		TableID:      m.TableID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		QRToken:      m.QRToken,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTable converts a domain Table to its model form.
func ToModelTable(d domain.Table) models.Table {
	return models.Table{
		TableID:      d.TableID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		QRToken:      d.QRToken,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTableSlice converts model Tables to domain Tables.
func ToDomainTableSlice(ms []models.Table) []domain.Table {
	ds := make([]domain.Table, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTable(m)
	}
	return ds
}
