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

// catalogService implements the CatalogSvcFacade interface
type catalogService struct {
	BaseService
	catalogRepo    portsrepo.CatalogRepositoryFacade
	restaurantRepo portsrepo.RestaurantRepositoryFacade
}

// NewCatalogService creates a new catalog service with the provided dependencies
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, restaurantRepo portsrepo.RestaurantRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{
		catalogRepo:    catalogRepo,
		restaurantRepo: restaurantRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// CreateCategory creates a menu category.
func (s *catalogService) CreateCategory(ctx context.Context, user *domain.User, req dto.CreateCategoryRequest) (*domain.Category, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageCatalog); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         req.Name,
		SortOrder:    req.SortOrder,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.catalogRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// UpdateCategory applies a partial update to a category.
func (s *catalogService) UpdateCategory(ctx context.Context, user *domain.User, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageCatalog); err != nil {
		return nil, err
	}

	category, err := s.catalogRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.RestaurantID != restaurantID {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = user.UserID

	if err := s.catalogRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves the restaurant's categories in sort order.
func (s *catalogService) ListCategories(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx, restaurantID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// CreateProduct creates a product under an existing category.
func (s *catalogService) CreateProduct(ctx context.Context, user *domain.User, req dto.CreateProductRequest) (*domain.Product, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageCatalog); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	category, err := s.catalogRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category not found", apperrors.ErrValidation)
		}
		return nil, err
	}
	if category.RestaurantID != restaurantID {
		return nil, fmt.Errorf("%w: category not found", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:    uuid.NewString(),
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		SortOrder:    req.SortOrder,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     user.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: user.UserID,
		},
	}
	if err := s.catalogRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, err
	}
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// UpdateProduct applies a partial update to a product.
func (s *catalogService) UpdateProduct(ctx context.Context, user *domain.User, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	restaurantID, err := s.RequireRestaurant(user)
	if err != nil {
		return nil, err
	}
	if err := s.RequirePermission(ctx, user, domain.PermManageCatalog); err != nil {
		return nil, err
	}

	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.RestaurantID != restaurantID {
		return nil, apperrors.ErrNotFound
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = user.UserID

	if err := s.catalogRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a single product.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.catalogRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves the restaurant's products in sort order.
func (s *catalogService) ListProducts(ctx context.Context, restaurantID string, activeOnly bool) ([]domain.Product, error) {
	products, err := s.catalogRepo.ListProducts(ctx, restaurantID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("restaurant_id", restaurantID))
		return nil, err
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// GetPublicMenu builds the customer-facing menu for a restaurant slug.
func (s *catalogService) GetPublicMenu(ctx context.Context, slug string) (*dto.MenuResponse, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, apperrors.ErrNotFound
	}

	categories, err := s.catalogRepo.ListCategories(ctx, restaurant.RestaurantID, true)
	if err != nil {
		return nil, err
	}
	products, err := s.catalogRepo.ListProducts(ctx, restaurant.RestaurantID, true)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.ProductResponse, len(categories))
	for i := range products {
		p := dto.ToProductResponse(&products[i])
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	menu := &dto.MenuResponse{
		RestaurantID: restaurant.RestaurantID,
		Name:         restaurant.Name,
		Slug:         restaurant.Slug,
		Sections:     make([]dto.MenuSection, 0, len(categories)),
	}
	for i := range categories {
		menu.Sections = append(menu.Sections, dto.MenuSection{
			Category: dto.ToCategoryResponse(&categories[i]),
			Products: byCategory[categories[i].CategoryID],
		})
	}
	return menu, nil
}
