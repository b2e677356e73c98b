package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides lookups into the static rate table and
// conversion between registered currencies. All rates are expressed against
// the base currency (EUR).
type ExchangeRateService struct {
	rateRepo ports.ExchangeRateRepository
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo ports.ExchangeRateRepository) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// Ensure ExchangeRateService implements the ports.ExchangeRateSvc interface
var _ ports.ExchangeRateSvc = (*ExchangeRateService)(nil)

// GetRate returns the rate of a currency against the base currency.
// An unrecognized currency is a validation failure, not a missing resource:
// the table is fixed and the caller supplied a code outside the supported set.
func (s *ExchangeRateService) GetRate(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate for currency '%s'", apperrors.ErrValidation, currencyCode)
		}
		return decimal.Zero, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate.Rate, nil
}

// Convert translates an amount from one currency to another via the base
// currency: amount * rate(to) / rate(from).
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	// Identity conversion must be exact; a no-op multiply/divide could drift.
	if strings.EqualFold(fromCode, toCode) {
		return amount, nil
	}

	rateFrom, err := s.GetRate(ctx, fromCode)
	if err != nil {
		return decimal.Zero, err
	}
	rateTo, err := s.GetRate(ctx, toCode)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rateTo).Div(rateFrom), nil
}

// ListRates returns the whole rate table.
func (s *ExchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
