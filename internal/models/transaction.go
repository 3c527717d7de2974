package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlowRecord is the terminal outcome of a flow, stored in the history table
// and published to Kafka.
type FlowRecord struct {
	FlowID        uuid.UUID       `json:"flow_id" db:"flow_id"`               // FlowID identifies the flow.
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`               // UserID is the wallet user who ran the flow.
	Kind          FlowKind        `json:"kind" db:"kind"`                     // Kind is the direction of funds.
	State         FlowState       `json:"state" db:"state"`                   // State is the terminal state.
	DashAmount    decimal.Decimal `json:"dash_amount" db:"dash_amount"`       // DashAmount is the DASH moved.
	FiatAmount    decimal.Decimal `json:"fiat_amount" db:"fiat_amount"`       // FiatAmount is the fiat equivalent.
	FiatCurrency  string          `json:"fiat_currency" db:"fiat_currency"`   // FiatCurrency is the fiat code.
	OrderID       string          `json:"order_id" db:"order_id"`             // OrderID is the provider order or trade id, if any.
	TransactionID string          `json:"transaction_id" db:"transaction_id"` // TransactionID is the payout id or on-chain tx id.
	FailureKind   string          `json:"failure_kind" db:"failure_kind"`     // FailureKind is set for failed flows.
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // CreatedAt is when the flow started.
	FinishedAt    time.Time       `json:"finished_at" db:"finished_at"`       // FinishedAt is when the flow reached its terminal state.
}
