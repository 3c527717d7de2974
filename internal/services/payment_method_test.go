package services

import (
	"testing"

	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodResolver_Classify(t *testing.T) {
	r := NewPaymentMethodResolver()

	tests := map[string]models.PaymentMethodType{
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
		"Debit_Card ":        models.PaymentMethodCard,
		"xpay":               models.PaymentMethodUnknown,
		"":                   models.PaymentMethodUnknown,
	}

	for raw, want := range tests {
		assert.Equal(t, want, r.Classify(raw), "raw type %q", raw)
	}
}

func TestPaymentMethodResolver_SplitNameAndAccount(t *testing.T) {
	r := NewPaymentMethodResolver()

	tests := []struct {
		name        string
		input       string
		typ         models.PaymentMethodType
		wantName    string
		wantAccount string
	}{
		{"card", "Visa Debit ****1234", models.PaymentMethodCard, "Visa Debit", "****1234"},
		{"bank_digits_before_mask", "Chase Bank - 1234 ****", models.PaymentMethodBankAccount, "Chase Bank", "1234 ****"},
		{"paypal", "PayPal: j*****@mail.com", models.PaymentMethodPayPal, "PayPal", "j*****@mail.com"},
		{"fiat", "USD Wallet (Coinbase)", models.PaymentMethodFiatAccount, "USD Wallet", "(Coinbase)"},
		{"card_unmatched", "Visa Debit", models.PaymentMethodCard, "Visa Debit", ""},
		{"wire_not_split", "Wire ****1234", models.PaymentMethodWireTransfer, "Wire ****1234", ""},
		{"unknown_not_split", "Something ****9", models.PaymentMethodUnknown, "Something ****9", ""},
		{"empty", "", models.PaymentMethodCard, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, account := r.SplitNameAndAccount(tt.input, tt.typ)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantAccount, account)
		})
	}
}

func TestPaymentMethodResolver_ResolveActive(t *testing.T) {
	r := NewPaymentMethodResolver()

	raws := []models.ProviderPaymentMethod{
		{ID: "1", Type: "debit_card", Name: "Visa ****4242", Currency: "USD", AllowBuy: true},
		{ID: "2", Type: "bank_wire", Name: "Wire", Currency: "USD", AllowBuy: false},
		{ID: "3", Type: "fiat_account", Name: "USD Wallet (Coinbase)", Currency: "USD", AllowBuy: true},
	}

	got := r.ResolveActive(raws)

	assert.Equal(t, []models.PaymentMethod{
		{ID: "1", DisplayName: "Visa", Account: "****4242", Type: models.PaymentMethodCard, Currency: "USD", AllowBuy: true},
		{ID: "3", DisplayName: "USD Wallet", Account: "(Coinbase)", Type: models.PaymentMethodFiatAccount, Currency: "USD", AllowBuy: true},
	}, got)
}
