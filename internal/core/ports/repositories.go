package ports

import (
	"context"

	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Note: the store is in-memory today, but interfaces take a context so a real
// persistence adapter can slot in without touching the services.

// AccountRepository defines the persistence operations for Accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, ownerID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, ownerID string) error

	// ApplyTransfer debits the source account and credits the destination
	// account as a single atomic operation. The sufficient-funds check is
	// performed inside the same critical section as the mutation, so two
	// concurrent transfers cannot both pass the check and over-withdraw.
	// Returns the updated snapshots of both accounts.
	ApplyTransfer(ctx context.Context, fromID, toID string, debit, credit decimal.Decimal) (*domain.Account, *domain.Account, error)
}

// CurrencyRepository defines persistence operations for Currencies.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error // Primarily for initial seeding
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateRepository defines persistence operations for ExchangeRates.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error // Primarily for initial seeding
	FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
