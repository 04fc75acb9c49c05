package domain

import "time"

// Role is the explicit set of roles a user can hold.
// RoleUnrestricted replaces the scattered "admin bypasses everything" boolean:
// its permission check always succeeds, and that is the only place the bypass lives.
type Role string

const (
	RoleUnrestricted Role = "UNRESTRICTED" // Owner/admin: every permission granted
	RoleManager      Role = "MANAGER"
	RoleCashier      Role = "CASHIER"
	RoleWaiter       Role = "WAITER"
	RoleKitchen      Role = "KITCHEN"
)

// Permission names a single guarded capability.
type Permission string

const (
	PermManageCatalog    Permission = "catalog:manage"
	PermManageUsers      Permission = "users:manage"
	PermOpenCashbox      Permission = "cashbox:open"
	PermAuditCashbox     Permission = "cashbox:audit"
	PermTakeOrders       Permission = "orders:take"
	PermAdvanceKitchen   Permission = "orders:kitchen"
	PermProcessPayments  Permission = "payments:process"
	PermViewReports      Permission = "reports:view"
	PermManageRestaurant Permission = "restaurant:manage"
)

// rolePermissions maps each restricted role to its granted permissions.
var rolePermissions = map[Role]map[Permission]bool{
	RoleManager: {
		PermManageCatalog:   true,
		PermManageUsers:     true,
		PermOpenCashbox:     true,
		PermAuditCashbox:    true,
		PermTakeOrders:      true,
		PermAdvanceKitchen:  true,
		PermProcessPayments: true,
		PermViewReports:     true,
	},
	RoleCashier: {
		PermOpenCashbox:     true,
		PermTakeOrders:      true,
		PermProcessPayments: true,
	},
	RoleWaiter: {
		PermTakeOrders: true,
	},
	RoleKitchen: {
		PermAdvanceKitchen: true,
	},
}

// Can reports whether the role grants the permission.
func (r Role) Can(p Permission) bool {
	if r == RoleUnrestricted {
		return true
	}
	return rolePermissions[r][p]
}

// IsValid reports whether the role is one of the known variants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUnrestricted, RoleManager, RoleCashier, RoleWaiter, RoleKitchen:
		return true
	}
	return false
}

// User represents a staff profile. RestaurantID is nil until the user has been
// assigned to a tenant; most operations require an assignment.
type User struct {
	UserID                 string     `json:"userID"` // Primary Key (UUID)
	RestaurantID           *string    `json:"restaurantID"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	PasswordHash           string     `json:"-"`
	Role                   Role       `json:"role"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
