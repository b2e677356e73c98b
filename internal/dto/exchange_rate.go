package dto

import (
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the data returned for an exchange rate.
// Rates are expressed against the base currency (EUR).
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: r.CurrencyCode,
		Rate:         r.Rate,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToExchangeRateResponse(&r)
	}
	return res
}
