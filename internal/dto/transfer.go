package dto

import (
	"github.com/shopspring/decimal"
)

// TransferRequest defines a fund transfer between two accounts.
// Amount is expressed in the source account's currency.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse returns the outcome of a committed transfer along with
// both updated account snapshots.
type TransferResponse struct {
	Message     string          `json:"message"`
	FromAccount AccountResponse `json:"fromAccount"`
	ToAccount   AccountResponse `json:"toAccount"`
}
