package models

// StartFlowRequest represents the JSON body for starting a flow
// swagger:model StartFlowRequest
type StartFlowRequest struct {
	// Direction of funds
	// required: true
	// example: buy
	Kind FlowKind `json:"kind"`

	// Provider OAuth access token of the user
	// required: true
	// example: 6f1f6d1c0b5c4fb6
	ProviderToken string `json:"provider_token"`

	// Local fiat currency
	// required: true
	// example: USD
	FiatCurrency string `json:"fiat_currency"`

	// Source custody account currency for convert flows
	// example: BTC
	SourceCurrency string `json:"source_currency,omitempty"`

	// Payment method id for buy flows
	// example: 83562370-3e5c-51db-87da-752af5ab9559
	PaymentMethodID string `json:"payment_method_id,omitempty"`
}

// EnterAmountRequest represents the JSON body for entering an amount
// swagger:model EnterAmountRequest
type EnterAmountRequest struct {
	// Amount as typed by the user
	// required: true
	// example: 100
	Amount string `json:"amount"`

	// Currency kind the amount is typed in
	// required: true
	// example: fiat
	InputType InputType `json:"input_type"`
}

// TwoFactorRequest represents the JSON body for submitting a two-factor code
// swagger:model TwoFactorRequest
type TwoFactorRequest struct {
	// Code from the authenticator app or SMS
	// required: true
	// example: 123456
	Code string `json:"code"`
}

// DepositRequest represents the JSON body for depositing fiat into custody
// swagger:model DepositRequest
type DepositRequest struct {
	// Provider OAuth access token of the user
	// required: true
	ProviderToken string `json:"provider_token"`

	// Amount to deposit
	// required: true
	// example: 100.00
	Amount string `json:"amount"`

	// Fiat currency
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Bank payment method id
	// required: true
	PaymentMethodID string `json:"payment_method_id"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// example: Deposit created
	Message string `json:"message"`

	Deposit Deposit `json:"deposit"`
}

// FlowErrorResponse represents an error response for flow operations
// swagger:model FlowErrorResponse
type FlowErrorResponse struct {
	// Error kind
	// example: quote_expired
	Kind FailureKind `json:"kind,omitempty"`

	// Error message
	// example: The quote has expired. Please review the updated quote.
	Error string `json:"error"`

	// Flow state after the failed operation, if the flow exists
	Flow *FlowSnapshot `json:"flow,omitempty"`
}

// FlowHistoryResponse represents the finished flows of the user
// swagger:model FlowHistoryResponse
type FlowHistoryResponse struct {
	Flows []FlowRecord `json:"flows"`
}

// CurrenciesResponse represents the fiat currencies that can be quoted
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Currency codes
	// example: ["EUR","RUB","USD"]
	Currencies []string `json:"currencies"`
}
