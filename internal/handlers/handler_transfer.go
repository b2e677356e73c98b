package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests for fund transfers.
type transferHandler struct {
	transferService ports.TransferSvc
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts ports.TransferSvc) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, transferService ports.TransferSvc) {
	h := newTransferHandler(transferService)
	rg.POST("/transfer", h.makeTransfer)
}

// makeTransfer validates and executes a transfer between two accounts.
// All precondition failures surface as 400: malformed input, unknown accounts
// ("invalid accounts") and insufficient funds are caller errors the UI
// resubmits after correction.
func (h *transferHandler) makeTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fromAccount, toAccount, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrNotFound),
			errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Transfer rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to execute transfer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute transfer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		Message:     "Transfer completed successfully",
		FromAccount: dto.ToAccountResponse(fromAccount),
		ToAccount:   dto.ToAccountResponse(toAccount),
	})
}
