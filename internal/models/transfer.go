package models

import "github.com/shopspring/decimal"

// TransactionTypeSend is the provider transaction type for payouts.
const TransactionTypeSend = "send"

// SendTransactionToWalletParams is a custody-to-wallet payout request.
// The IdempotencyKey stays fixed when the request is resubmitted with a
// two-factor code.
type SendTransactionToWalletParams struct {
	AccountID      string          `json:"-"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	IdempotencyKey string          `json:"idem"`
	To             string          `json:"to"`
	Type           string          `json:"type"`
}

// SendTransactionToWalletResult is the provider answer to a payout.
type SendTransactionToWalletResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TransactionDetails is a network fee estimate for an on-chain send.
type TransactionDetails struct {
	Fee          decimal.Decimal `json:"fee"`
	AmountToSend decimal.Decimal `json:"amount_to_send"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// DepositParams moves fiat from a bank payment method into the custody
// fiat account.
type DepositParams struct {
	AccountID       string          `json:"-"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentMethodID string          `json:"payment_method"`
	Commit          bool            `json:"commit"`
}

// Deposit is the provider answer to a fiat deposit.
type Deposit struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
	Fee    decimal.Decimal `json:"fee"`
}
