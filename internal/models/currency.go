package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// InputType tells which kind of currency an amount is expressed in.
type InputType string

// Supported input types
const (
	InputDash   InputType = "dash"
	InputFiat   InputType = "fiat"
	InputCrypto InputType = "crypto"
)

// Valid reports whether t is one of the known input types.
func (t InputType) Valid() bool {
	switch t {
	case InputDash, InputFiat, InputCrypto:
		return true
	}
	return false
}

// Currency codes used across the service
const (
	DASH = "DASH"
	USD  = "USD"
)

// CryptoScale is the internal scale of every DASH and crypto amount, and of
// every intermediate conversion result.
const CryptoScale int32 = 8

// Amount is a decimal value tagged with the currency it is expressed in.
type Amount struct {
	Value    decimal.Decimal // Value rounded to Scale
	Type     InputType       // Kind of currency
	Currency string          // Currency code, e.g. DASH, USD, BTC
	Scale    int32           // Display scale of Currency
}

// String renders the value with exactly Scale fractional digits.
func (a Amount) String() string {
	return a.Value.StringFixed(a.Scale)
}

// IsZero reports whether the amount holds no value.
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// MarshalJSON renders the value at its display scale.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    string    `json:"value"`
		Type     InputType `json:"type"`
		Currency string    `json:"currency"`
	}{
		Value:    a.String(),
		Type:     a.Type,
		Currency: a.Currency,
	})
}
