package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the value of 1 DASH in CurrencyCode.
// swagger:model ExchangeRate
type ExchangeRate struct {
	// Currency the rate is expressed in
	// example: USD
	CurrencyCode string `json:"currency_code"`

	// Value of 1 DASH in the currency
	// example: 50.00
	Rate decimal.Decimal `json:"rate"`

	// Time the rate was observed
	UpdatedAt time.Time `json:"updated_at"`
}

// Valid reports whether the rate can be used for conversion.
func (r ExchangeRate) Valid() bool {
	return r.CurrencyCode != "" && r.Rate.IsPositive()
}

// ExchangeRateErrorResponse represents an error response when fetching an exchange rate
// swagger:model ExchangeRateErrorResponse
type ExchangeRateErrorResponse struct {
	// Error message
	// example: Failed to retrieve exchange rate
	Error string `json:"error"`
}
