package models

import "errors"

// Errors reported by the custodial provider. Facades wrap their transport
// errors so that errors.Is matches one of these.
var (
	ErrProviderTwoFactorRequired    = errors.New("provider requires two-factor authentication")
	ErrProviderInvalidTwoFactorCode = errors.New("provider rejected the two-factor code")
	ErrProviderUnauthorized         = errors.New("provider session is not authorized")
	ErrProviderInsufficientFunds    = errors.New("provider account has insufficient funds")
	ErrProviderNotFound             = errors.New("provider resource not found")
	ErrProviderFailure              = errors.New("provider request failed")
)

// Errors reported by the local wallet.
var (
	ErrWalletInsufficientMoney       = errors.New("wallet has insufficient money")
	ErrWalletDustySend               = errors.New("amount is too small to send")
	ErrWalletCouldNotAdjustDownwards = errors.New("amount is too small to pay the network fee")
	ErrWalletFeeEstimation           = errors.New("network fee estimation failed")
	ErrWalletSend                    = errors.New("wallet send failed")
)
