package models

// PaymentMethodType is the normalized kind of a provider payment method.
type PaymentMethodType string

// Known payment method types. Anything else resolves to PaymentMethodUnknown.
const (
	PaymentMethodUnknown      PaymentMethodType = "unknown"
	PaymentMethodCard         PaymentMethodType = "card"
	PaymentMethodBankAccount  PaymentMethodType = "bank_account"
	PaymentMethodWireTransfer PaymentMethodType = "wire_transfer"
	PaymentMethodPayPal       PaymentMethodType = "paypal"
	PaymentMethodFiatAccount  PaymentMethodType = "fiat_account"
	PaymentMethodApplePay     PaymentMethodType = "apple_pay"
	PaymentMethodGooglePay    PaymentMethodType = "google_pay"
)

// PaymentMethod is a payment instrument ready for display and ordering.
// swagger:model PaymentMethod
type PaymentMethod struct {
	// Provider id of the payment method
	// example: 83562370-3e5c-51db-87da-752af5ab9559
	ID string `json:"id"`

	// Name without the account suffix
	// example: Visa Debit
	DisplayName string `json:"display_name"`

	// Masked account suffix
	// example: ****1234
	Account string `json:"account"`

	// Normalized type
	// example: card
	Type PaymentMethodType `json:"type"`

	// Currency of the instrument
	// example: USD
	Currency string `json:"currency"`

	// Whether the instrument can be used to buy
	AllowBuy bool `json:"allow_buy"`
}

// ProviderPaymentMethod is a payment method record as returned by the provider.
type ProviderPaymentMethod struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	AllowBuy     bool   `json:"allow_buy"`
	AllowSell    bool   `json:"allow_sell"`
	AllowDeposit bool   `json:"allow_deposit"`
	Verified     bool   `json:"verified"`
}

// PaymentMethodsResponse represents the list of active payment methods
// swagger:model PaymentMethodsResponse
type PaymentMethodsResponse struct {
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}
