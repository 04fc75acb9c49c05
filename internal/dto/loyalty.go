package dto

import (
	"github.com/sazonapp/pos_backend/internal/core/domain"
)

// LoyaltyAccountResponse defines data returned for a loyalty account.
type LoyaltyAccountResponse struct {
	AccountID     string `json:"accountID"`
	CustomerPhone string `json:"customerPhone"`
	CustomerName  string `json:"customerName"`
	Points        int64  `json:"points"`
}

// ToLoyaltyAccountResponse converts domain.LoyaltyAccount to DTO.
func ToLoyaltyAccountResponse(a *domain.LoyaltyAccount) LoyaltyAccountResponse {
	return LoyaltyAccountResponse{
		AccountID:     a.AccountID,
		CustomerPhone: a.CustomerPhone,
		CustomerName:  a.CustomerName,
		Points:        a.Points,
	}
}

// ListLoyaltyAccountsResponse wraps the top accounts listing.
type ListLoyaltyAccountsResponse struct {
	Accounts []LoyaltyAccountResponse `json:"accounts"`
}

// ToListLoyaltyAccountsResponse converts a slice of domain.LoyaltyAccount to DTO.
func ToListLoyaltyAccountsResponse(as []domain.LoyaltyAccount) ListLoyaltyAccountsResponse {
	out := make([]LoyaltyAccountResponse, len(as))
	for i, a := range as {
		out[i] = ToLoyaltyAccountResponse(&a)
	}
	return ListLoyaltyAccountsResponse{Accounts: out}
}
