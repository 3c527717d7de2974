package models

import "github.com/shopspring/decimal"

// Account is one custodial account of the user at the provider, with the
// exchange rates precomputed for the account currency.
type Account struct {
	ID       string          `json:"id"`       // Provider account id
	Currency string          `json:"currency"` // Account currency code, e.g. DASH, BTC, USD
	Name     string          `json:"name"`     // Display name
	Balance  decimal.Decimal `json:"balance"`  // Available balance in Currency

	// Fiat currency the rates below are expressed against.
	FiatCurrency string `json:"fiat_currency"`
	// DASH received for 1 unit of the account currency.
	CryptoToDashRate decimal.Decimal `json:"crypto_to_dash_rate"`
	// DASH received for 1 unit of fiat.
	CurrencyToDashRate decimal.Decimal `json:"currency_to_dash_rate"`
	// Account currency units received for 1 unit of fiat.
	CurrencyToCryptoRate decimal.Decimal `json:"currency_to_crypto_rate"`
	// Value of 1 DASH in fiat, snapshot of the exchange rate source.
	DashRate decimal.Decimal `json:"dash_rate"`
}

// ProviderAccount is an account record as returned by the provider.
type ProviderAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Type     string          `json:"type"` // wallet, fiat, vault
}
