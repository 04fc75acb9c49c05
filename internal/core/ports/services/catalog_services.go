package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// CatalogSvcFacade defines operations for menu categories and products.
type CatalogSvcFacade interface {
	// CreateCategory creates a menu category.
	CreateCategory(ctx context.Context, user *domain.User, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies a partial update to a category.
	UpdateCategory(ctx context.Context, user *domain.User, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// ListCategories retrieves the restaurant's categories in sort order.
	ListCategories(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Category, error)

	// CreateProduct creates a product under an existing category.
	CreateProduct(ctx context.Context, user *domain.User, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies a partial update to a product.
	UpdateProduct(ctx context.Context, user *domain.User, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves the restaurant's products in sort order.
	ListProducts(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Product, error)

	// GetPublicMenu builds the customer-facing menu for a restaurant slug:
	// active categories with their active products.
	GetPublicMenu(ctx context.Context, slug string) (*dto.MenuResponse, error)
}
