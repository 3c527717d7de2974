package services

import (
	"regexp"
	"strings"

	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// paymentMethodTypes maps provider payment method types to normalized ones.
var paymentMethodTypes = map[string]models.PaymentMethodType{
	"fiat_account":       models.PaymentMethodFiatAccount,
	"secure3d_card":      models.PaymentMethodCard,
	"worldpay_card":      models.PaymentMethodCard,
	"credit_card":        models.PaymentMethodCard,
	"debit_card":         models.PaymentMethodCard,
	"ach_bank_account":   models.PaymentMethodBankAccount,
	"sepa_bank_account":  models.PaymentMethodBankAccount,
	"ideal_bank_account": models.PaymentMethodBankAccount,
	"eft_bank_account":   models.PaymentMethodBankAccount,
	"interac":            models.PaymentMethodBankAccount,
	"bank_wire":          models.PaymentMethodWireTransfer,
	"paypal_account":     models.PaymentMethodPayPal,
	"apple_pay":          models.PaymentMethodApplePay,
	"google_pay":         models.PaymentMethodGooglePay,
}

var (
	// "Visa Debit ****1234", "Chase Bank - 1234 ****"
	maskedAccountPattern = regexp.MustCompile(`(\d+)?\s?[a-z]?\*+`)
	// "USD Wallet (Coinbase)"
	fiatAccountPattern = regexp.MustCompile(`\(.*\)`)
)

// PaymentMethodResolver normalizes provider payment method records.
type PaymentMethodResolver struct{}

// NewPaymentMethodResolver creates a new resolver.
func NewPaymentMethodResolver() *PaymentMethodResolver {
	return &PaymentMethodResolver{}
}

// Classify maps a raw provider type to a PaymentMethodType.
func (r *PaymentMethodResolver) Classify(rawType string) models.PaymentMethodType {
	if t, ok := paymentMethodTypes[strings.ToLower(strings.TrimSpace(rawType))]; ok {
		return t
	}
	return models.PaymentMethodUnknown
}

// SplitNameAndAccount splits "Name ****1234" into a display name and an
// account suffix. Unmatched input is returned whole as the name.
func (r *PaymentMethodResolver) SplitNameAndAccount(nameAccount string, t models.PaymentMethodType) (name, account string) {
	var pattern *regexp.Regexp
	switch t {
	case models.PaymentMethodBankAccount, models.PaymentMethodCard, models.PaymentMethodPayPal:
		pattern = maskedAccountPattern
	case models.PaymentMethodFiatAccount:
		pattern = fiatAccountPattern
	}
	if pattern == nil {
		return nameAccount, ""
	}

	loc := pattern.FindStringIndex(nameAccount)
	if loc == nil {
		return nameAccount, ""
	}
	name = strings.Trim(nameAccount[:loc[0]], " -,:")
	account = strings.TrimSpace(nameAccount[loc[0]:])
	return name, account
}

// Resolve normalizes one provider record.
func (r *PaymentMethodResolver) Resolve(raw models.ProviderPaymentMethod) models.PaymentMethod {
	t := r.Classify(raw.Type)
	name, account := r.SplitNameAndAccount(raw.Name, t)
	return models.PaymentMethod{
		ID:          raw.ID,
		DisplayName: name,
		Account:     account,
		Type:        t,
		Currency:    raw.Currency,
		AllowBuy:    raw.AllowBuy,
	}
}

// ResolveActive normalizes the records that can be used to buy.
func (r *PaymentMethodResolver) ResolveActive(raws []models.ProviderPaymentMethod) []models.PaymentMethod {
	methods := make([]models.PaymentMethod, 0, len(raws))
	for _, raw := range raws {
		if !raw.AllowBuy {
			continue
		}
		methods = append(methods, r.Resolve(raw))
	}
	return methods
}
