package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// TransferService moves funds between two accounts, converting currency when
// the accounts are denominated differently. The destination receives the
// converted amount; the source is debited the original amount.
type TransferService struct {
	accountRepo ports.AccountRepository
	rateSvc     ports.ExchangeRateSvc
}

// NewTransferService creates a new TransferService.
func NewTransferService(accountRepo ports.AccountRepository, rateSvc ports.ExchangeRateSvc) *TransferService {
	return &TransferService{
		accountRepo: accountRepo,
		rateSvc:     rateSvc,
	}
}

// Ensure TransferService implements the ports.TransferSvc interface
var _ ports.TransferSvc = (*TransferService)(nil)

// Transfer validates and executes a transfer, returning both updated accounts.
// Preconditions are checked in order: positive amount, both accounts resolve,
// distinct accounts, sufficient funds (in the source currency, before
// conversion). The debit and credit commit atomically in the repository.
func (s *TransferService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Account, *domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	from, err := s.accountRepo.FindAccountByID(ctx, req.FromAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("invalid accounts: %w", apperrors.ErrNotFound)
		}
		return nil, nil, err
	}
	to, err := s.accountRepo.FindAccountByID(ctx, req.ToAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("invalid accounts: %w", apperrors.ErrNotFound)
		}
		return nil, nil, err
	}

	if from.OwnerID == to.OwnerID {
		return nil, nil, fmt.Errorf("%w: cannot transfer to the same account", apperrors.ErrValidation)
	}

	// Checked in the source currency, before any conversion. The repository
	// re-checks inside its critical section; this early check only exists to
	// fail fast with the precise balance in the error message.
	if from.Balance.LessThan(req.Amount) {
		return nil, nil, fmt.Errorf("%w: balance %s is less than transfer amount %s",
			apperrors.ErrInsufficientFunds, from.Balance.String(), req.Amount.String())
	}

	credit := req.Amount
	if from.CurrencyCode != to.CurrencyCode {
		credit, err = s.rateSvc.Convert(ctx, req.Amount, from.CurrencyCode, to.CurrencyCode)
		if err != nil {
			return nil, nil, err
		}
	}

	updatedFrom, updatedTo, err := s.accountRepo.ApplyTransfer(ctx, from.OwnerID, to.OwnerID, req.Amount, credit)
	if err != nil {
		logger.Warn("Transfer failed to apply",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID),
			slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger.Info("Transfer completed",
		slog.String("from_account_id", updatedFrom.OwnerID),
		slog.String("to_account_id", updatedTo.OwnerID),
		slog.String("debit", req.Amount.String()),
		slog.String("credit", credit.String()))
	return updatedFrom, updatedTo, nil
}
