package models

import "github.com/shopspring/decimal"

// PlaceOrderParams is a buy order request. It is consumed exactly once by
// order placement; every new placement gets a fresh IdempotencyKey.
type PlaceOrderParams struct {
	IdempotencyKey  string          `json:"idem"`
	AccountID       string          `json:"-"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentMethodID string          `json:"payment_method"`
	Commit          bool            `json:"commit"`
}

// SwapTradeOrder is a convert request between two custodial assets.
type SwapTradeOrder struct {
	IdempotencyKey string          `json:"idem"`
	Amount         decimal.Decimal `json:"amount"`
	AmountAsset    string          `json:"amount_asset"`
	AmountFrom     string          `json:"amount_from"` // input or output
	SourceAssetID  string          `json:"source_asset"`
	TargetAssetID  string          `json:"target_asset"`
}

// Order is a placed or committed buy order or swap trade.
type Order struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`   // DASH bought or received
	Currency  string          `json:"currency"` // currency of Amount
	Subtotal  decimal.Decimal `json:"subtotal"` // fiat spent before fee
	Fee       decimal.Decimal `json:"fee"`
	Total     decimal.Decimal `json:"total"` // fiat charged including fee
	TotalCode string          `json:"total_currency"`
}
