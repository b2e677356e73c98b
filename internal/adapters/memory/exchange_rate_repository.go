package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
)

// exchangeRateRepository holds the static rate table. The table is written
// once during startup seeding and read-only afterwards, but the mutex keeps
// the adapter safe for any caller regardless.
type exchangeRateRepository struct {
	mu    sync.RWMutex
	rates map[string]domain.ExchangeRate
}

// NewExchangeRateRepository creates an empty in-memory exchange rate repository.
func NewExchangeRateRepository() ports.ExchangeRateRepository {
	return &exchangeRateRepository{
		rates: make(map[string]domain.ExchangeRate),
	}
}

// SaveExchangeRate stores the rate for a currency. Used during startup seeding.
func (r *exchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[rate.CurrencyCode]; exists {
		return fmt.Errorf("failed to save exchange rate for %s: %w", rate.CurrencyCode, apperrors.ErrDuplicate)
	}
	r.rates[rate.CurrencyCode] = rate
	return nil
}

// FindExchangeRate retrieves the rate for a currency against the base currency.
func (r *exchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rate, ok := r.rates[currencyCode]
	if !ok {
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", currencyCode, apperrors.ErrNotFound)
	}
	return &rate, nil
}

// ListExchangeRates returns the whole table sorted by currency code.
func (r *exchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ExchangeRate, 0, len(r.rates))
	for _, rate := range r.rates {
		out = append(out, rate)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}
