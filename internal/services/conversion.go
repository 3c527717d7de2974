package services

import (
	"regexp"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
)

// defaultFiatDigits is the display scale of fiat currencies missing from fiatDigits.
const defaultFiatDigits int32 = 2

// fiatDigits lists fiat currencies whose minor unit differs from cents.
var fiatDigits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// amountPattern accepts plain digits with at most one decimal separator.
// Exponents, signs and grouping separators are rejected.
var amountPattern = regexp.MustCompile(`^\d*([.,]\d*)?$`)

// Converter converts amounts between DASH, a custodial crypto asset and the
// user's fiat currency. It never fails: unusable input or rates give zero.
type Converter struct {
	mu        sync.RWMutex
	overrides map[string]int32
}

// NewConverter creates a Converter with the built-in fiat scale table.
func NewConverter() *Converter {
	return &Converter{overrides: make(map[string]int32)}
}

// SetFiatDigits overrides the display scale of a fiat currency, e.g. from
// the provider's min_size for that currency.
func (c *Converter) SetFiatDigits(code string, digits int32) {
	if digits < 0 || digits > models.CryptoScale {
		return
	}
	c.mu.Lock()
	c.overrides[strings.ToUpper(code)] = digits
	c.mu.Unlock()
}

// FiatDigits returns the display scale of a fiat currency.
func (c *Converter) FiatDigits(code string) int32 {
	code = strings.ToUpper(code)
	c.mu.RLock()
	d, ok := c.overrides[code]
	c.mu.RUnlock()
	if ok {
		return d
	}
	if d, ok := fiatDigits[code]; ok {
		return d
	}
	return defaultFiatDigits
}

// ParseAmount parses user-typed text. Malformed text coerces to zero.
func (c *Converter) ParseAmount(text string) decimal.Decimal {
	s := strings.TrimSpace(text)
	if s == "" || !amountPattern.MatchString(s) {
		return decimal.Zero
	}
	s = strings.Replace(s, ",", ".", 1)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(models.CryptoScale)
}

// Convert converts amount from one input type to another using the rates
// carried by account.
func (c *Converter) Convert(amount decimal.Decimal, from, to models.InputType, account models.Account) models.Amount {
	result := c.zero(to, account)
	if !from.Valid() || !to.Valid() || amount.IsNegative() {
		return result
	}

	value := amount.Round(models.CryptoScale)
	var out decimal.Decimal
	switch {
	case from == to:
		out = value
	case from == models.InputDash && to == models.InputFiat:
		out = multiply(value, account.DashRate)
	case from == models.InputFiat && to == models.InputDash:
		out = divide(value, account.DashRate)
	case from == models.InputCrypto && to == models.InputDash:
		out = multiply(value, account.CryptoToDashRate)
	case from == models.InputDash && to == models.InputCrypto:
		out = divide(value, account.CryptoToDashRate)
	case from == models.InputFiat && to == models.InputCrypto:
		out = multiply(value, account.CurrencyToCryptoRate)
	case from == models.InputCrypto && to == models.InputFiat:
		out = divide(value, account.CurrencyToCryptoRate)
	}

	result.Value = out.Round(result.Scale)
	return result
}

// ConvertText parses text and converts it.
func (c *Converter) ConvertText(text string, from, to models.InputType, account models.Account) models.Amount {
	return c.Convert(c.ParseAmount(text), from, to, account)
}

// MaxAmount returns the largest amount that can be converted out of
// balance, expressed in the display input type.
func (c *Converter) MaxAmount(balance decimal.Decimal, balanceType, display models.InputType, account models.Account) models.Amount {
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return c.Convert(balance, balanceType, display, account)
}

// Amount tags value with t and renders it at the display scale.
func (c *Converter) Amount(value decimal.Decimal, t models.InputType, account models.Account) models.Amount {
	result := c.zero(t, account)
	result.Value = value.Round(models.CryptoScale).Round(result.Scale)
	return result
}

// zero returns a zero amount of type t with its currency and scale set.
func (c *Converter) zero(t models.InputType, account models.Account) models.Amount {
	a := models.Amount{Value: decimal.Zero, Type: t, Scale: models.CryptoScale}
	switch t {
	case models.InputDash:
		a.Currency = models.DASH
	case models.InputCrypto:
		a.Currency = account.Currency
	case models.InputFiat:
		a.Currency = account.FiatCurrency
		a.Scale = c.FiatDigits(account.FiatCurrency)
	}
	return a
}

// multiply returns value*rate at the internal scale, or zero for an unusable rate.
func multiply(value, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return value.Mul(rate).Round(models.CryptoScale)
}

// divide returns value/rate at the internal scale, or zero for an unusable rate.
func divide(value, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return value.DivRound(rate, models.CryptoScale)
}
