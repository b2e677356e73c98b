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

// currencyRepository is the in-memory currency registry.
type currencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

// NewCurrencyRepository creates an empty in-memory currency repository.
func NewCurrencyRepository() ports.CurrencyRepository {
	return &currencyRepository{
		currencies: make(map[string]domain.Currency),
	}
}

// SaveCurrency registers a currency. Used during startup seeding.
func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[currency.CurrencyCode]; exists {
		return fmt.Errorf("failed to save currency %s: %w", currency.CurrencyCode, apperrors.ErrDuplicate)
	}
	r.currencies[currency.CurrencyCode] = currency
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.currencies[currencyCode]
	if !ok {
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyCode, apperrors.ErrNotFound)
	}
	return &c, nil
}

// ListCurrencies returns all registered currencies sorted by code.
func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}
