package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	OwnerID      string          `json:"ownerId"`  // Primary Key (UUID, assigned at creation)
	OwnerName    string          `json:"ownerName"`
	CurrencyCode string          `json:"currency"` // FK -> currency registry (NON-NULL)
	Balance      decimal.Decimal `json:"balance"`  // Major currency units, never negative
	AuditFields
}
