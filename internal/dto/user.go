package dto

import (
	"time"

	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// CreateUserRequest defines the data required to register a staff member.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required,oneof=UNRESTRICTED MANAGER CASHIER WAITER KITCHEN"`
	RestaurantID string `json:"restaurantID"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role" binding:"omitempty,oneof=UNRESTRICTED MANAGER CASHIER WAITER KITCHEN"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID       string      `json:"userID"`
	RestaurantID *string     `json:"restaurantID,omitempty"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		RestaurantID: u.RestaurantID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{Users: userResponses}
}
