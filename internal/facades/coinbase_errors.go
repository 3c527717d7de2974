package facades

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// Coinbase error ids
const (
	errIDTwoFactorRequired = "two_factor_required"
	errIDInvalidRequest    = "invalid_request"
	errIDAuthentication    = "authentication_error"
	errIDExpiredToken      = "expired_token"
	errIDRevokedToken      = "revoked_token"
	errIDInvalidToken      = "invalid_token"
	errIDNotFound          = "not_found"
	errIDInsufficientFunds = "insufficient_funds"
	errIDValidationError   = "validation_error"
)

// Message fragments that qualify an invalid_request error. Coinbase answers
// 400, 402 and 429 with the two-factor challenge, so the status alone is
// not enough.
var (
	twoFactorRequiredMarkers = []string{"two-step verification code required", "2fa token required", "two factor"}
	invalidTwoFactorMarkers  = []string{"that code was invalid", "invalid two-step verification code", "invalid 2fa"}
	insufficientFundsMarkers = []string{"insufficient funds", "not enough funds"}
)

// coinbaseError is one entry of a Coinbase error body.
type coinbaseError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// coinbaseErrorResponse is the Coinbase error body.
type coinbaseErrorResponse struct {
	Errors []coinbaseError `json:"errors"`
}

// ProviderError is an HTTP error answered by Coinbase. errors.Is matches it
// against the provider errors in models.
type ProviderError struct {
	Status  int
	ID      string
	Message string
}

func (e *ProviderError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("coinbase: status %d", e.Status)
	}
	return fmt.Sprintf("coinbase: status %d: %s: %s", e.Status, e.ID, e.Message)
}

// Is reports whether target is the provider error e stands for.
func (e *ProviderError) Is(target error) bool {
	return e.kind() == target
}

func (e *ProviderError) kind() error {
	msg := strings.ToLower(e.Message)

	switch e.ID {
	case errIDTwoFactorRequired:
		return models.ErrProviderTwoFactorRequired
	case errIDInvalidRequest:
		switch {
		case containsAny(msg, invalidTwoFactorMarkers):
			return models.ErrProviderInvalidTwoFactorCode
		case containsAny(msg, twoFactorRequiredMarkers):
			return models.ErrProviderTwoFactorRequired
		case containsAny(msg, insufficientFundsMarkers):
			return models.ErrProviderInsufficientFunds
		}
	case errIDAuthentication, errIDExpiredToken, errIDRevokedToken, errIDInvalidToken:
		return models.ErrProviderUnauthorized
	case errIDInsufficientFunds:
		return models.ErrProviderInsufficientFunds
	case errIDNotFound:
		return models.ErrProviderNotFound
	case errIDValidationError:
		if containsAny(msg, insufficientFundsMarkers) {
			return models.ErrProviderInsufficientFunds
		}
	}

	switch e.Status {
	case http.StatusUnauthorized:
		return models.ErrProviderUnauthorized
	case http.StatusNotFound:
		return models.ErrProviderNotFound
	}
	return models.ErrProviderFailure
}

// newProviderError builds a ProviderError from a parsed error body. A nil or
// empty body gives an error that only matches ErrProviderFailure, unless the
// status says more.
func newProviderError(status int, body *coinbaseErrorResponse) *ProviderError {
	pe := &ProviderError{Status: status}
	if body == nil || len(body.Errors) == 0 {
		return pe
	}

	// the most specific entry wins when Coinbase returns several
	pe.ID, pe.Message = body.Errors[0].ID, body.Errors[0].Message
	for _, e := range body.Errors {
		candidate := &ProviderError{Status: status, ID: e.ID, Message: e.Message}
		if candidate.kind() != models.ErrProviderFailure {
			return candidate
		}
	}
	return pe
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
