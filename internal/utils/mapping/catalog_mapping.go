package mapping

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/models"
)

// ToDomainCategory converts a model Category to its domain form.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		SortOrder:    m.SortOrder,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to its model form.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		RestaurantID: d.RestaurantID,
		Name:         d.Name,
		SortOrder:    d.SortOrder,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategorySlice converts model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToDomainProduct converts a model Product to its domain form.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		RestaurantID: m.RestaurantID,
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		ImageURL:     m.ImageURL,
		SortOrder:    m.SortOrder,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProduct converts a domain Product to its model form.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		RestaurantID: d.RestaurantID,
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		ImageURL:     d.ImageURL,
		SortOrder:    d.SortOrder,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProductSlice converts model Products to domain Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
