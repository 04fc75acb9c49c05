package repositories

import (
	"context"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// LoyaltyRepository defines operations for customer loyalty accounts
type LoyaltyRepository interface {
	// FindAccountByPhone retrieves a customer's loyalty account within a tenant.
	FindAccountByPhone(ctx context.Context, restaurantID string, customerPhone string) (*domain.LoyaltyAccount, error)

	// AccruePoints upserts the account and adds points, returning the account
	// with its new balance.
	AccruePoints(ctx context.Context, restaurantID string, customerPhone string, customerName string, points int64, updatedBy string) (*domain.LoyaltyAccount, error)

	// ListTopAccounts retrieves the restaurant's highest-point accounts.
	ListTopAccounts(ctx context.Context, restaurantID string, limit int) ([]domain.LoyaltyAccount, error)
}
