package dto

import (
	"time"

	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The ownerId is assigned by the store and never client-supplied.
type CreateAccountRequest struct {
	OwnerName    string          `json:"ownerName" binding:"required"`
	CurrencyCode string          `json:"currency" binding:"required,currencycode"`
	Balance      decimal.Decimal `json:"balance"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	OwnerName    *string          `json:"ownerName"`
	CurrencyCode *string          `json:"currency" binding:"omitempty,currencycode"`
	Balance      *decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	OwnerID       string          `json:"ownerId"`
	OwnerName     string          `json:"ownerName"`
	CurrencyCode  string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		OwnerID:       acc.OwnerID,
		OwnerName:     acc.OwnerName,
		CurrencyCode:  acc.CurrencyCode,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// DeleteAccountResponse confirms a completed deletion.
type DeleteAccountResponse struct {
	Message string `json:"message"`
}
