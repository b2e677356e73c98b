package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// accountRepository is the in-memory account store. A single mutex serializes
// every read and write so cross-account operations (transfers) complete
// atomically; insertion order is tracked separately for listing.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() ports.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// SaveAccount stores a new account.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.OwnerID]; exists {
		return fmt.Errorf("failed to save account %s: %w", account.OwnerID, apperrors.ErrDuplicate)
	}

	cp := account
	r.accounts[account.OwnerID] = &cp
	r.order = append(r.order, account.OwnerID)
	return nil
}

// FindAccountByID retrieves a snapshot of an account by its ID.
func (r *accountRepository) FindAccountByID(ctx context.Context, ownerID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[ownerID]
	if !ok {
		return nil, fmt.Errorf("failed to find account by ID %s: %w", ownerID, apperrors.ErrNotFound)
	}
	cp := *acc
	return &cp, nil
}

// ListAccounts returns snapshots of all accounts in insertion order.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		if acc, ok := r.accounts[id]; ok {
			out = append(out, *acc)
		}
	}
	return out, nil
}

// UpdateAccount replaces the stored record for an existing account.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.OwnerID]; !ok {
		return fmt.Errorf("failed to update account %s: %w", account.OwnerID, apperrors.ErrNotFound)
	}
	cp := account
	r.accounts[account.OwnerID] = &cp
	return nil
}

// DeleteAccount removes an account permanently.
func (r *accountRepository) DeleteAccount(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[ownerID]; !ok {
		return fmt.Errorf("failed to delete account %s: %w", ownerID, apperrors.ErrNotFound)
	}
	delete(r.accounts, ownerID)
	for i, id := range r.order {
		if id == ownerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ApplyTransfer debits the source and credits the destination under one lock.
// The sufficient-funds check runs inside the critical section, so concurrent
// transfers against the same source cannot both pass it. Both mutations commit
// together or not at all.
func (r *accountRepository) ApplyTransfer(ctx context.Context, fromID, toID string, debit, credit decimal.Decimal) (*domain.Account, *domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromID]
	if !ok {
		return nil, nil, fmt.Errorf("failed to find account by ID %s: %w", fromID, apperrors.ErrNotFound)
	}
	to, ok := r.accounts[toID]
	if !ok {
		return nil, nil, fmt.Errorf("failed to find account by ID %s: %w", toID, apperrors.ErrNotFound)
	}

	if from.Balance.LessThan(debit) {
		return nil, nil, fmt.Errorf("%w: balance %s is less than transfer amount %s",
			apperrors.ErrInsufficientFunds, from.Balance.String(), debit.String())
	}

	from.Balance = from.Balance.Sub(debit)
	to.Balance = to.Balance.Add(credit)

	fromCp := *from
	toCp := *to
	return &fromCp, &toCp, nil
}
