package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler serves the static exchange-rate table.
type exchangeRateHandler struct {
	rateService ports.ExchangeRateSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rs ports.ExchangeRateSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService: rs,
	}
}

// registerExchangeRateRoutes registers the rate table route.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService ports.ExchangeRateSvc) {
	h := newExchangeRateHandler(rateService)
	rg.GET("/rates", h.listRates)
}

func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
