package services

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
	"github.com/sazonapp/pos_backend/internal/dto"
)

// RestaurantSvcFacade defines operations for tenants and their fixtures.
type RestaurantSvcFacade interface {
	// CreateRestaurant provisions a new tenant with its default cashbox.
	CreateRestaurant(ctx context.Context, user *domain.User, req dto.CreateRestaurantRequest) (*domain.Restaurant, error)

	// UpdateRestaurant applies a partial update to a restaurant.
	UpdateRestaurant(ctx context.Context, user *domain.User, restaurantID string, req dto.UpdateRestaurantRequest) (*domain.Restaurant, error)

	// GetRestaurant retrieves a restaurant by ID.
	GetRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error)

	// GetRestaurantBySlug retrieves a restaurant by its public slug.
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)

	// CreateShiftDefinition adds a named work schedule.
	CreateShiftDefinition(ctx context.Context, user *domain.User, req dto.ShiftDefinitionRequest) (*domain.ShiftDefinition, error)

	// ListShiftDefinitions retrieves the restaurant's active work schedules.
	ListShiftDefinitions(ctx context.Context, restaurantID string) ([]domain.ShiftDefinition, error)

	// CreateTable registers a physical table and mints its QR token.
	CreateTable(ctx context.Context, user *domain.User, req dto.CreateTableRequest) (*domain.Table, error)

	// ListTables retrieves the restaurant's tables.
	ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error)
}
