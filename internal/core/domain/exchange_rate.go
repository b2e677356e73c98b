package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is the conversion rate of one currency against the base
// currency (EUR). The table is fixed at process start and read-only afterwards.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // FK -> currency registry
	Rate         decimal.Decimal `json:"rate"`         // Positive, relative to the base currency
	AuditFields
}
