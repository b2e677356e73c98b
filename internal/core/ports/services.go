package ports

import (
	"context"

	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountSvc exposes account CRUD to the HTTP boundary.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, ownerID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, ownerID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, ownerID string) error
}

// CurrencySvc exposes the currency registry.
type CurrencySvc interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateSvc exposes the static rate table and conversion between
// registered currencies.
type ExchangeRateSvc interface {
	GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// TransferSvc executes fund transfers between two accounts.
type TransferSvc interface {
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Account, *domain.Account, error)
}
