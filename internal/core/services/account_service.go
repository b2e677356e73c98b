package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/middleware"
	"github.com/google/uuid"
)

// AccountService provides business logic for accounts backed by the account
// repository. It validates currency codes against the currency registry.
type AccountService struct {
	accountRepo  ports.AccountRepository
	currencyRepo ports.CurrencyRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo ports.AccountRepository, currencyRepo ports.CurrencyRepository) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure AccountService implements the ports.AccountSvc interface
var _ ports.AccountSvc = (*AccountService)(nil)

// validateCurrency checks the code against the currency registry.
func (s *AccountService) validateCurrency(ctx context.Context, currencyCode string) error {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown currency '%s'", apperrors.ErrValidation, currencyCode)
		}
		return fmt.Errorf("failed to validate currency '%s': %w", currencyCode, err)
	}
	return nil
}

// CreateAccount assigns a fresh identifier and stores the new account.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateCurrency(ctx, req.CurrencyCode); err != nil {
		return nil, err
	}
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		OwnerID:      uuid.NewString(),
		OwnerName:    req.OwnerName,
		CurrencyCode: req.CurrencyCode,
		Balance:      req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("owner_id", account.OwnerID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created successfully", slog.String("owner_id", account.OwnerID), slog.String("currency_code", account.CurrencyCode))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *AccountService) GetAccountByID(ctx context.Context, ownerID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by ID",
				slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		}
		return nil, err // Propagate error (including NotFound)
	}
	return account, nil
}

// ListAccounts returns all accounts in insertion order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil // Return empty slice if repo returns nil
	}
	return accounts, nil
}

// UpdateAccount replaces the mutable fields of an existing account.
func (s *AccountService) UpdateAccount(ctx context.Context, ownerID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccountByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.OwnerName != nil {
		account.OwnerName = *req.OwnerName
		updated = true
	}
	if req.CurrencyCode != nil {
		if err := s.validateCurrency(ctx, *req.CurrencyCode); err != nil {
			return nil, err
		}
		account.CurrencyCode = *req.CurrencyCode
		updated = true
	}
	if req.Balance != nil {
		if req.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance must not be negative", apperrors.ErrValidation)
		}
		account.Balance = *req.Balance
		updated = true
	}
	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account updated successfully", slog.String("owner_id", ownerID))
	return account, nil
}

// DeleteAccount removes an account permanently. No history is retained.
func (s *AccountService) DeleteAccount(ctx context.Context, ownerID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, ownerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete account", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Account deleted successfully", slog.String("owner_id", ownerID))
	return nil
}
