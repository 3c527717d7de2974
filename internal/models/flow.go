package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlowKind is the direction of funds moved by a flow.
type FlowKind string

// Supported flow kinds
const (
	FlowBuy               FlowKind = "buy"                 // payment method -> DASH in custody -> wallet
	FlowConvert           FlowKind = "convert"             // custody crypto -> DASH -> wallet
	FlowTransferToWallet  FlowKind = "transfer_to_wallet"  // custody DASH -> wallet
	FlowTransferToCustody FlowKind = "transfer_to_custody" // wallet DASH -> custody
)

// Valid reports whether k is a known flow kind.
func (k FlowKind) Valid() bool {
	switch k {
	case FlowBuy, FlowConvert, FlowTransferToWallet, FlowTransferToCustody:
		return true
	}
	return false
}

// PlacesOrder reports whether the flow places and commits a provider order
// before moving funds.
func (k FlowKind) PlacesOrder() bool {
	return k == FlowBuy || k == FlowConvert
}

// FlowState is the state of the orchestration state machine.
type FlowState string

// Flow states
const (
	StateIdle                 FlowState = "idle"
	StateQuotePreview         FlowState = "quote_preview"
	StateAwaitingConfirmation FlowState = "awaiting_confirmation"
	StateOrderPlaced          FlowState = "order_placed"
	StateOrderCommitted       FlowState = "order_committed"
	StateAwaitingTransfer     FlowState = "awaiting_transfer"
	StateAwaitingTwoFactor    FlowState = "awaiting_two_factor"
	StateCompleted            FlowState = "completed"
	StateFailed               FlowState = "failed"
	StateCancelled            FlowState = "cancelled"
)

// Terminal reports whether s ends an attempt and produces a flow record.
// Failed is terminal but can still be left by a retry.
func (s FlowState) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// Final reports whether no further transition can leave s.
func (s FlowState) Final() bool {
	return s == StateCompleted || s == StateCancelled
}

// SwapValueErrorType is the result of validating an entered amount.
type SwapValueErrorType string

// Amount validation results
const (
	SwapValueNoError          SwapValueErrorType = ""
	SwapValueLessThanMin      SwapValueErrorType = "less_than_min"
	SwapValueMoreThanMax      SwapValueErrorType = "more_than_max"
	SwapValueNotEnoughBalance SwapValueErrorType = "not_enough_balance"
)

// FailureKind classifies why a flow step did not succeed.
type FailureKind string

// Failure kinds
const (
	FailureQuoteUnavailable        FailureKind = "quote_unavailable"
	FailureQuoteExpired            FailureKind = "quote_expired"
	FailureInsufficientBalance     FailureKind = "insufficient_balance"
	FailureBelowMinimum            FailureKind = "below_minimum"
	FailureAboveMaximum            FailureKind = "above_maximum"
	FailureTwoFactorRequired       FailureKind = "two_factor_required"
	FailureInvalidTwoFactorCode    FailureKind = "invalid_two_factor_code"
	FailureProviderUnauthorized    FailureKind = "provider_unauthorized"
	FailureProviderHard            FailureKind = "provider_failure"
	FailureDustySend               FailureKind = "dusty_send"
	FailureCouldNotAdjustDownwards FailureKind = "could_not_adjust_downwards"
	FailureNetworkFeeEstimation    FailureKind = "network_fee_estimation"
	FailureSend                    FailureKind = "send_failure"
	FailureInvalidTransition       FailureKind = "invalid_transition"
	FailureInvalidPaymentMethod    FailureKind = "invalid_payment_method"
	FailureAccountNotFound         FailureKind = "account_not_found"
)

var failureMessages = map[FailureKind]string{
	FailureQuoteUnavailable:        "Exchange rate is not available right now. Please try again later.",
	FailureQuoteExpired:            "The quote has expired. Please review the updated quote.",
	FailureInsufficientBalance:     "Insufficient balance to complete this transaction.",
	FailureBelowMinimum:            "The amount is below the minimum allowed.",
	FailureAboveMaximum:            "The amount is above the maximum allowed.",
	FailureTwoFactorRequired:       "Enter the two-factor authentication code to continue.",
	FailureInvalidTwoFactorCode:    "That code was invalid. Please try again.",
	FailureProviderUnauthorized:    "Your session with the provider has expired. Please log in again.",
	FailureProviderHard:            "Something went wrong. Please try again later.",
	FailureDustySend:               "The amount is too small to be sent.",
	FailureCouldNotAdjustDownwards: "The amount is too small to pay the network fee.",
	FailureNetworkFeeEstimation:    "Could not estimate the network fee.",
	FailureSend:                    "Could not send the transaction.",
	FailureInvalidTransition:       "This action is not available at this step.",
	FailureInvalidPaymentMethod:    "The selected payment method cannot be used.",
	FailureAccountNotFound:         "The provider account was not found.",
}

// Message returns the user-facing message for the kind.
func (k FailureKind) Message() string {
	if msg, ok := failureMessages[k]; ok {
		return msg
	}
	return failureMessages[FailureProviderHard]
}

// Quote is a time-bounded preview of a conversion or order.
type Quote struct {
	Fiat       Amount          `json:"fiat"`
	Dash       Amount          `json:"dash"`
	Crypto     *Amount         `json:"crypto,omitempty"`
	Fee        decimal.Decimal `json:"fee"`         // provider fee in fiat, known after placement
	NetworkFee decimal.Decimal `json:"network_fee"` // on-chain fee in DASH for wallet sends
	Total      decimal.Decimal `json:"total"`       // fiat total including fee, known after placement
}

// FlowFailure is the failure surfaced to the user.
type FlowFailure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// FlowSnapshot is the renderable view of a flow.
// swagger:model FlowSnapshot
type FlowSnapshot struct {
	ID               uuid.UUID          `json:"id"`
	Kind             FlowKind           `json:"kind"`
	State            FlowState          `json:"state"`
	InputType        InputType          `json:"input_type,omitempty"`
	Account          *Account           `json:"account,omitempty"`
	Quote            *Quote             `json:"quote,omitempty"`
	ValueError       SwapValueErrorType `json:"value_error,omitempty"`
	ValueErrorBound  *Amount            `json:"value_error_bound,omitempty"`
	Expired          bool               `json:"expired"`
	ExpiresAt        *time.Time         `json:"expires_at,omitempty"`
	OrderID          string             `json:"order_id,omitempty"`
	TransactionID    string             `json:"transaction_id,omitempty"`
	TwoFactorPending bool               `json:"two_factor_pending"`
	Failure          *FlowFailure       `json:"failure,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
