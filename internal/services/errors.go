package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// Flow operation errors
var (
	ErrFlowNotFound         = errors.New("flow not found")
	ErrFlowBusy             = errors.New("flow has a step in progress")
	ErrInvalidTransition    = errors.New("operation not allowed in current state")
	ErrQuoteExpired         = errors.New("quote expired")
	ErrFlowInterrupted      = errors.New("flow changed while the step was in progress")
	ErrNoTwoFactorPending   = errors.New("no request is waiting for a two-factor code")
	ErrTwoFactorInFlight    = errors.New("two-factor code already being submitted")
	ErrInvalidInput         = errors.New("invalid input")
	ErrAmountNotConfirmable = errors.New("amount cannot be confirmed")
)

// FlowError carries the failure kind surfaced to the user.
type FlowError struct {
	Kind models.FailureKind
	Err  error
}

func newFlowError(kind models.FailureKind, err error) *FlowError {
	return &FlowError{Kind: kind, Err: err}
}

func (e *FlowError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message.
func (e *FlowError) Message() string {
	return e.Kind.Message()
}

// classify maps a collaborator error to a failure kind.
func classify(err error) models.FailureKind {
	var flowErr *FlowError
	switch {
	case errors.As(err, &flowErr):
		return flowErr.Kind
	case errors.Is(err, models.ErrProviderTwoFactorRequired):
		return models.FailureTwoFactorRequired
	case errors.Is(err, models.ErrProviderInvalidTwoFactorCode):
		return models.FailureInvalidTwoFactorCode
	case errors.Is(err, models.ErrProviderUnauthorized):
		return models.FailureProviderUnauthorized
	case errors.Is(err, models.ErrProviderInsufficientFunds),
		errors.Is(err, models.ErrWalletInsufficientMoney):
		return models.FailureInsufficientBalance
	case errors.Is(err, models.ErrWalletDustySend):
		return models.FailureDustySend
	case errors.Is(err, models.ErrWalletCouldNotAdjustDownwards):
		return models.FailureCouldNotAdjustDownwards
	case errors.Is(err, models.ErrWalletFeeEstimation):
		return models.FailureNetworkFeeEstimation
	case errors.Is(err, models.ErrWalletSend):
		return models.FailureSend
	case errors.Is(err, ErrQuoteUnavailable):
		return models.FailureQuoteUnavailable
	case errors.Is(err, ErrQuoteExpired):
		return models.FailureQuoteExpired
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrFlowBusy):
		return models.FailureInvalidTransition
	default:
		return models.FailureProviderHard
	}
}
