package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "provider-token"

var testUserID = uuid.MustParse("6a1a1e4e-3f3b-4a2e-9a43-5d1f0b1c2d3e")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

type swapFixture struct {
	provider *MockProvider
	wallet   *MockWallet
	rates    *MockExchangeRateSource
	history  *MockFlowRecorder
	svc      *SwapService

	mu   sync.Mutex
	keys []string
}

func newSwapFixture(t *testing.T, quoteTTL time.Duration) *swapFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &swapFixture{
		provider: NewMockProvider(ctrl),
		wallet:   NewMockWallet(ctrl),
		rates:    NewMockExchangeRateSource(ctrl),
		history:  NewMockFlowRecorder(ctrl),
	}

	providers := NewMockProviderFactory(ctrl)
	providers.EXPECT().Provider(testToken).Return(f.provider).AnyTimes()

	f.svc = NewSwapService(providers, f.wallet, f.rates, f.history, NewConverter(), NewPaymentMethodResolver(), SwapConfig{
		QuoteTTL: quoteTTL,
		FlowTTL:  time.Minute,
	})
	f.svc.newKey = func() string {
		f.mu.Lock()
		defer f.mu.Unlock()
		key := fmt.Sprintf("key-%d", len(f.keys)+1)
		f.keys = append(f.keys, key)
		return key
	}
	return f
}

// expectMarket sets up the accounts and rates every flow reads: 1 DASH is
// 50 USD and 1 BTC is 100000 USD.
func (f *swapFixture) expectMarket() {
	f.provider.EXPECT().GetUserAccounts(gomock.Any()).Return([]models.ProviderAccount{
		{ID: "dash-acc", Name: "DASH Wallet", Currency: "DASH", Balance: dec("3"), Type: "wallet"},
		{ID: "btc-acc", Name: "BTC Wallet", Currency: "BTC", Balance: dec("0.01"), Type: "wallet"},
		{ID: "usd-acc", Name: "USD Wallet", Currency: "USD", Balance: dec("100"), Type: "fiat"},
	}, nil).AnyTimes()
	f.provider.EXPECT().GetExchangeRates(gomock.Any(), "USD").Return(map[string]decimal.Decimal{
		"DASH": dec("0.02"),
		"BTC":  dec("0.00001"),
		"USD":  dec("1"),
	}, nil).AnyTimes()
	f.rates.EXPECT().GetExchangeRate(gomock.Any(), "USD").
		Return(models.ExchangeRate{CurrencyCode: "USD", Rate: dec("50"), UpdatedAt: time.Now()}, nil).AnyTimes()
	f.rates.EXPECT().ConvertFiat(gomock.Any(), gomock.Any(), models.USD, "USD").
		DoAndReturn(func(_ context.Context, amount decimal.Decimal, _, _ string) (decimal.Decimal, error) {
			return amount, nil
		}).AnyTimes()
}

func (f *swapFixture) expectPaymentMethods() {
	f.provider.EXPECT().GetActivePaymentMethods(gomock.Any()).Return([]models.ProviderPaymentMethod{
		{ID: "pm-card", Type: "debit_card", Name: "Visa ****4242", Currency: "USD", AllowBuy: true},
		{ID: "pm-fiat", Type: "fiat_account", Name: "USD Wallet (Coinbase)", Currency: "USD", AllowBuy: true},
		{ID: "pm-bank", Type: "ach_bank_account", Name: "Chase ****1111", Currency: "USD", AllowBuy: false, AllowDeposit: true},
	}, nil).AnyTimes()
}

func (f *swapFixture) start(t *testing.T, req models.StartFlowRequest) uuid.UUID {
	t.Helper()
	req.ProviderToken = testToken
	req.FiatCurrency = "USD"
	snap, err := f.svc.StartFlow(context.Background(), testUserID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, snap.State)
	return snap.ID
}

// quote enters amount and moves the flow to confirmation.
func (f *swapFixture) quote(t *testing.T, id uuid.UUID, amount string, input models.InputType) models.FlowSnapshot {
	t.Helper()
	ctx := context.Background()
	snap, err := f.svc.EnterAmount(ctx, testUserID, id, models.EnterAmountRequest{Amount: amount, InputType: input})
	require.NoError(t, err)
	require.Equal(t, models.StateQuotePreview, snap.State)
	require.Equal(t, models.SwapValueNoError, snap.ValueError)

	snap, err = f.svc.Continue(ctx, testUserID, id)
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingConfirmation, snap.State)
	return snap
}

func (f *swapFixture) expectRecord(t *testing.T, state models.FlowState, failure models.FailureKind) {
	f.history.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec models.FlowRecord) {
			assert.Equal(t, testUserID, rec.UserID)
			assert.Equal(t, state, rec.State)
			assert.Equal(t, string(failure), rec.FailureKind)
		})
}

func TestSwapService_Buy_Completes(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})

	snap, err := f.svc.EnterAmount(ctx, testUserID, id, models.EnterAmountRequest{Amount: "100", InputType: models.InputFiat})
	require.NoError(t, err)
	assert.Equal(t, "100.00", snap.Quote.Fiat.String())
	assert.Equal(t, "2.00000000", snap.Quote.Dash.String())

	snap, err = f.svc.Continue(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingConfirmation, snap.State)
	require.NotNil(t, snap.ExpiresAt)

	f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p models.PlaceOrderParams, _ string) (models.Order, error) {
			assert.Equal(t, "key-1", p.IdempotencyKey)
			assert.Equal(t, "dash-acc", p.AccountID)
			assert.Equal(t, models.DASH, p.Currency)
			assert.Equal(t, "pm-card", p.PaymentMethodID)
			assert.False(t, p.Commit)
			assertDec(t, "2", p.Amount)
			return models.Order{ID: "order-1", Status: "created", Amount: dec("2"), Currency: "DASH", Fee: dec("1.99"), Total: dec("101.99")}, nil
		})

	snap, err = f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateOrderPlaced, snap.State)
	assert.Equal(t, "order-1", snap.OrderID)
	assertDec(t, "1.99", snap.Quote.Fee)

	f.provider.EXPECT().CommitBuyOrder(gomock.Any(), "dash-acc", "order-1", "").
		Return(models.Order{ID: "order-1", Status: "completed", Amount: dec("2"), Currency: "DASH"}, nil)
	f.wallet.EXPECT().FreshReceiveAddress(gomock.Any()).Return("XwalletAddress", nil)
	f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p models.SendTransactionToWalletParams, _ string) (models.SendTransactionToWalletResult, error) {
			assert.Equal(t, "key-2", p.IdempotencyKey)
			assert.Equal(t, "XwalletAddress", p.To)
			assert.Equal(t, models.TransactionTypeSend, p.Type)
			assertDec(t, "2", p.Amount)
			return models.SendTransactionToWalletResult{ID: "tx-1", Status: "pending"}, nil
		})
	f.expectRecord(t, models.StateCompleted, "")

	snap, err = f.svc.Commit(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
	assert.Equal(t, "tx-1", snap.TransactionID)
}

func TestSwapService_TransferToWallet_TwoFactorKeepsKey(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})
	f.quote(t, id, "1", models.InputDash)

	var seen []string
	capture := func(_ context.Context, p models.SendTransactionToWalletParams, code string) {
		seen = append(seen, p.IdempotencyKey)
	}

	f.wallet.EXPECT().FreshReceiveAddress(gomock.Any()).Return("XwalletAddress", nil)
	gomock.InOrder(
		f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").Do(capture).
			Return(models.SendTransactionToWalletResult{}, fmt.Errorf("status 402: %w", models.ErrProviderTwoFactorRequired)),
		f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "000000").Do(capture).
			Return(models.SendTransactionToWalletResult{}, fmt.Errorf("status 400: %w", models.ErrProviderInvalidTwoFactorCode)),
		f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "123456").Do(capture).
			Return(models.SendTransactionToWalletResult{ID: "tx-9"}, nil),
	)

	snap, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingTwoFactor, snap.State)
	assert.True(t, snap.TwoFactorPending)

	snap, err = f.svc.SubmitTwoFactorCode(ctx, testUserID, id, "000000")
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureInvalidTwoFactorCode, flowErr.Kind)
	assert.Equal(t, models.StateAwaitingTwoFactor, snap.State)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, models.FailureInvalidTwoFactorCode, snap.Failure.Kind)

	f.expectRecord(t, models.StateCompleted, "")
	snap, err = f.svc.SubmitTwoFactorCode(ctx, testUserID, id, "123456")
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
	assert.False(t, snap.TwoFactorPending)

	assert.Equal(t, []string{"key-1", "key-1", "key-1"}, seen)
}

func TestSwapService_Buy_TwoFactorOnCommit(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
		Return(models.Order{ID: "order-1", Amount: dec("2"), Currency: "DASH"}, nil)
	_, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)

	gomock.InOrder(
		f.provider.EXPECT().CommitBuyOrder(gomock.Any(), "dash-acc", "order-1", "").
			Return(models.Order{}, models.ErrProviderTwoFactorRequired),
		f.provider.EXPECT().CommitBuyOrder(gomock.Any(), "dash-acc", "order-1", "654321").
			Return(models.Order{ID: "order-1", Status: "completed", Amount: dec("2"), Currency: "DASH"}, nil),
	)
	f.wallet.EXPECT().FreshReceiveAddress(gomock.Any()).Return("XwalletAddress", nil)
	f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").
		Return(models.SendTransactionToWalletResult{ID: "tx-2"}, nil)
	f.expectRecord(t, models.StateCompleted, "")

	snap, err := f.svc.Commit(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingTwoFactor, snap.State)

	snap, err = f.svc.SubmitTwoFactorCode(ctx, testUserID, id, "654321")
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
}

func TestSwapService_Buy_FailureThenRetryUsesNewKey(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	var keys []string
	gomock.InOrder(
		f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
			Do(func(_ context.Context, p models.PlaceOrderParams, _ string) { keys = append(keys, p.IdempotencyKey) }).
			Return(models.Order{}, fmt.Errorf("status 400: %w", models.ErrProviderInsufficientFunds)),
		f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
			Do(func(_ context.Context, p models.PlaceOrderParams, _ string) { keys = append(keys, p.IdempotencyKey) }).
			Return(models.Order{ID: "order-2"}, nil),
	)
	f.expectRecord(t, models.StateFailed, models.FailureInsufficientBalance)

	snap, err := f.svc.Confirm(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureInsufficientBalance, flowErr.Kind)
	assert.Equal(t, models.StateFailed, snap.State)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, models.FailureInsufficientBalance.Message(), snap.Failure.Message)

	snap, err = f.svc.Retry(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateQuotePreview, snap.State)
	assert.Nil(t, snap.Failure)

	_, err = f.svc.Continue(ctx, testUserID, id)
	require.NoError(t, err)
	snap, err = f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateOrderPlaced, snap.State)

	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestSwapService_QuoteExpiryBlocksConfirm(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, 20*time.Millisecond)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	assert.Eventually(t, func() bool {
		snap, err := f.svc.GetFlow(ctx, testUserID, id)
		return err == nil && snap.State == models.StateQuotePreview && snap.Expired
	}, time.Second, 5*time.Millisecond)

	_, err := f.svc.Confirm(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureQuoteExpired, flowErr.Kind)

	_, err = f.svc.Continue(ctx, testUserID, id)
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureQuoteExpired, flowErr.Kind)

	snap, err := f.svc.Retry(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateQuotePreview, snap.State)
	assert.False(t, snap.Expired)
}

func TestSwapService_QuoteExpiryAbandonsPlacedOrder(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, 30*time.Millisecond)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").Return(models.Order{ID: "order-1"}, nil)
	snap, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	require.Equal(t, models.StateOrderPlaced, snap.State)

	assert.Eventually(t, func() bool {
		snap, err := f.svc.GetFlow(ctx, testUserID, id)
		return err == nil && snap.State == models.StateQuotePreview && snap.Expired && snap.OrderID == ""
	}, time.Second, 5*time.Millisecond)

	_, err = f.svc.Commit(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureQuoteExpired, flowErr.Kind)
}

func TestSwapService_EnterAmount_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		start     models.StartFlowRequest
		amount    string
		input     models.InputType
		wantError models.SwapValueErrorType
		wantBound string
		wantKind  models.FailureKind
	}{
		{
			name:      "convert_more_than_max",
			start:     models.StartFlowRequest{Kind: models.FlowConvert, SourceCurrency: "BTC"},
			amount:    "0.02",
			input:     models.InputCrypto,
			wantError: models.SwapValueMoreThanMax,
			wantBound: "0.01000000",
			wantKind:  models.FailureAboveMaximum,
		},
		{
			name:      "transfer_more_than_max_in_fiat",
			start:     models.StartFlowRequest{Kind: models.FlowTransferToWallet},
			amount:    "150.01",
			input:     models.InputFiat,
			wantError: models.SwapValueMoreThanMax,
			wantBound: "150.00",
			wantKind:  models.FailureAboveMaximum,
		},
		{
			name:      "buy_less_than_min",
			start:     models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"},
			amount:    "1",
			input:     models.InputFiat,
			wantError: models.SwapValueLessThanMin,
			wantBound: "2.00",
			wantKind:  models.FailureBelowMinimum,
		},
		{
			name:      "buy_from_fiat_account_more_than_balance",
			start:     models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-fiat"},
			amount:    "2.5",
			input:     models.InputDash,
			wantError: models.SwapValueMoreThanMax,
			wantBound: "2.00000000",
			wantKind:  models.FailureAboveMaximum,
		},
		{
			name:     "malformed_amount_is_zero",
			start:    models.StartFlowRequest{Kind: models.FlowTransferToWallet},
			amount:   "1e3",
			input:    models.InputDash,
			wantKind: models.FailureBelowMinimum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture(t, time.Hour)
			f.expectMarket()
			f.expectPaymentMethods()

			id := f.start(t, tt.start)

			snap, err := f.svc.EnterAmount(ctx, testUserID, id, models.EnterAmountRequest{Amount: tt.amount, InputType: tt.input})
			require.NoError(t, err)
			assert.Equal(t, models.StateQuotePreview, snap.State)
			assert.Equal(t, tt.wantError, snap.ValueError)
			if tt.wantBound != "" {
				require.NotNil(t, snap.ValueErrorBound)
				assert.Equal(t, tt.wantBound, snap.ValueErrorBound.String())
			} else {
				assert.Nil(t, snap.ValueErrorBound)
			}

			snap, err = f.svc.Continue(ctx, testUserID, id)
			var flowErr *FlowError
			require.ErrorAs(t, err, &flowErr)
			assert.Equal(t, tt.wantKind, flowErr.Kind)
			assert.ErrorIs(t, err, ErrAmountNotConfirmable)
			assert.Equal(t, models.StateQuotePreview, snap.State)
		})
	}
}

func TestSwapService_EnterAmount_InvalidInputType(t *testing.T) {
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})

	_, err := f.svc.EnterAmount(context.Background(), testUserID, id, models.EnterAmountRequest{Amount: "1", InputType: models.InputCrypto})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.EnterAmount(context.Background(), testUserID, id, models.EnterAmountRequest{Amount: "1", InputType: "gold"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSwapService_Convert_SendAllUsesExactBalance(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowConvert, SourceCurrency: "btc"})
	snap := f.quote(t, id, "0.01", models.InputCrypto)
	assert.Equal(t, "20.00000000", snap.Quote.Dash.String())
	assert.Equal(t, "1000.00", snap.Quote.Fiat.String())

	f.provider.EXPECT().PlaceSwapTrade(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, trade models.SwapTradeOrder, _ string) (models.Order, error) {
			assert.Equal(t, "key-1", trade.IdempotencyKey)
			assert.Equal(t, "btc-acc", trade.SourceAssetID)
			assert.Equal(t, "dash-acc", trade.TargetAssetID)
			assert.Equal(t, "BTC", trade.AmountAsset)
			assertDec(t, "0.01", trade.Amount)
			return models.Order{ID: "trade-1", Amount: dec("19.9"), Currency: "DASH"}, nil
		})
	f.provider.EXPECT().CommitSwapTrade(gomock.Any(), "trade-1", "").
		Return(models.Order{ID: "trade-1", Status: "completed"}, nil)
	f.wallet.EXPECT().FreshReceiveAddress(gomock.Any()).Return("XwalletAddress", nil)
	f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p models.SendTransactionToWalletParams, _ string) (models.SendTransactionToWalletResult, error) {
			assertDec(t, "19.9", p.Amount)
			return models.SendTransactionToWalletResult{ID: "tx-3"}, nil
		})
	f.expectRecord(t, models.StateCompleted, "")

	_, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	snap, err = f.svc.Commit(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
}

func TestSwapService_TransferToCustody(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	f.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(dec("1.5"), nil)
	f.provider.EXPECT().CreateAddress(gomock.Any(), "dash-acc").Return("XcustodyAddress", nil)

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToCustody})

	f.wallet.EXPECT().EstimateNetworkFee(gomock.Any(), "XcustodyAddress", gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ bool) (models.TransactionDetails, error) {
			assertDec(t, "1.5", amount)
			return models.TransactionDetails{Fee: dec("0.0001"), AmountToSend: dec("1.4999"), TotalAmount: dec("1.5")}, nil
		})
	snap := f.quote(t, id, "1.5", models.InputDash)
	assertDec(t, "0.0001", snap.Quote.NetworkFee)

	f.wallet.EXPECT().SendCoins(gomock.Any(), "XcustodyAddress", gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ bool) (string, error) {
			assertDec(t, "1.4999", amount)
			return "onchain-txid", nil
		})
	f.expectRecord(t, models.StateCompleted, "")

	snap, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
	assert.Equal(t, "onchain-txid", snap.TransactionID)
}

func TestSwapService_TransferToCustody_FeeErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		amount    string
		details   models.TransactionDetails
		feeErr    error
		wantValue models.SwapValueErrorType
		wantKind  models.FailureKind
	}{
		{
			name:      "fee_exceeds_balance",
			amount:    "1.49999",
			details:   models.TransactionDetails{Fee: dec("0.0001")},
			wantValue: models.SwapValueNotEnoughBalance,
		},
		{
			name:      "wallet_insufficient_money",
			amount:    "1",
			feeErr:    fmt.Errorf("code -6: %w", models.ErrWalletInsufficientMoney),
			wantValue: models.SwapValueNotEnoughBalance,
		},
		{
			name:     "estimation_failure",
			amount:   "1",
			feeErr:   fmt.Errorf("rpc: %w", models.ErrWalletFeeEstimation),
			wantKind: models.FailureNetworkFeeEstimation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture(t, time.Hour)
			f.expectMarket()
			f.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(dec("1.5"), nil)
			f.provider.EXPECT().CreateAddress(gomock.Any(), "dash-acc").Return("XcustodyAddress", nil)

			id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToCustody})

			f.wallet.EXPECT().EstimateNetworkFee(gomock.Any(), "XcustodyAddress", gomock.Any(), false).Return(tt.details, tt.feeErr)

			snap, err := f.svc.EnterAmount(ctx, testUserID, id, models.EnterAmountRequest{Amount: tt.amount, InputType: models.InputDash})
			assert.Equal(t, models.StateQuotePreview, snap.State)
			if tt.wantKind != "" {
				var flowErr *FlowError
				require.ErrorAs(t, err, &flowErr)
				assert.Equal(t, tt.wantKind, flowErr.Kind)
				assert.Nil(t, snap.Quote)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantValue, snap.ValueError)
			}

			_, err = f.svc.Continue(ctx, testUserID, id)
			assert.Error(t, err)
		})
	}
}

func TestSwapService_TransferToCustody_SendFailure(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(dec("1.5"), nil)
	f.provider.EXPECT().CreateAddress(gomock.Any(), "dash-acc").Return("XcustodyAddress", nil)

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToCustody})

	f.wallet.EXPECT().EstimateNetworkFee(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(models.TransactionDetails{Fee: dec("0.0001")}, nil)
	f.quote(t, id, "0.00001", models.InputDash)

	f.wallet.EXPECT().SendCoins(gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return("", fmt.Errorf("rpc: %w", models.ErrWalletDustySend))
	f.expectRecord(t, models.StateFailed, models.FailureDustySend)

	snap, err := f.svc.Confirm(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureDustySend, flowErr.Kind)
	assert.Equal(t, models.StateFailed, snap.State)

	_, err = f.svc.Cancel(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	snap, err = f.svc.GetFlow(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateFailed, snap.State)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, models.FailureDustySend, snap.Failure.Kind)
}

func TestSwapService_TransferToCustody_InsufficientMoneyThenRetry(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.wallet.EXPECT().GetWalletBalance(gomock.Any()).Return(dec("1.5"), nil)
	f.provider.EXPECT().CreateAddress(gomock.Any(), "dash-acc").Return("XcustodyAddress", nil)

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToCustody})

	f.wallet.EXPECT().EstimateNetworkFee(gomock.Any(), "XcustodyAddress", gomock.Any(), false).
		Return(models.TransactionDetails{Fee: dec("0.0001")}, nil).Times(2)
	f.quote(t, id, "1", models.InputDash)

	gomock.InOrder(
		f.wallet.EXPECT().SendCoins(gomock.Any(), "XcustodyAddress", gomock.Any(), false).
			Return("", fmt.Errorf("code -6: %w", models.ErrWalletInsufficientMoney)),
		f.wallet.EXPECT().SendCoins(gomock.Any(), "XcustodyAddress", gomock.Any(), false).
			Return("onchain-txid", nil),
	)
	f.expectRecord(t, models.StateFailed, models.FailureInsufficientBalance)

	snap, err := f.svc.Confirm(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureInsufficientBalance, flowErr.Kind)
	assert.Equal(t, models.StateFailed, snap.State)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, models.FailureInsufficientBalance.Message(), snap.Failure.Message)

	snap, err = f.svc.Retry(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateQuotePreview, snap.State)
	assert.Nil(t, snap.Failure)

	_, err = f.svc.Continue(ctx, testUserID, id)
	require.NoError(t, err)

	f.expectRecord(t, models.StateCompleted, "")
	snap, err = f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
	assert.Equal(t, "onchain-txid", snap.TransactionID)

	assert.Empty(t, f.keys)
}

func TestSwapService_Buy_PayoutInsufficientMoneyThenRetryMintsNewKeys(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	var placeKeys, payoutKeys []string
	f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p models.PlaceOrderParams, _ string) (models.Order, error) {
			placeKeys = append(placeKeys, p.IdempotencyKey)
			return models.Order{ID: fmt.Sprintf("order-%d", len(placeKeys)), Amount: dec("2"), Currency: "DASH"}, nil
		}).Times(2)
	f.provider.EXPECT().CommitBuyOrder(gomock.Any(), "dash-acc", gomock.Any(), "").
		Return(models.Order{Status: "completed"}, nil).Times(2)
	f.wallet.EXPECT().FreshReceiveAddress(gomock.Any()).Return("XwalletAddress", nil).Times(2)
	gomock.InOrder(
		f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").
			Do(func(_ context.Context, p models.SendTransactionToWalletParams, _ string) {
				payoutKeys = append(payoutKeys, p.IdempotencyKey)
			}).
			Return(models.SendTransactionToWalletResult{}, fmt.Errorf("status 400: %w", models.ErrProviderInsufficientFunds)),
		f.provider.EXPECT().SendFundsToWallet(gomock.Any(), gomock.Any(), "").
			Do(func(_ context.Context, p models.SendTransactionToWalletParams, _ string) {
				payoutKeys = append(payoutKeys, p.IdempotencyKey)
			}).
			Return(models.SendTransactionToWalletResult{ID: "tx-5"}, nil),
	)

	_, err := f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)

	f.expectRecord(t, models.StateFailed, models.FailureInsufficientBalance)
	snap, err := f.svc.Commit(ctx, testUserID, id)
	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, models.FailureInsufficientBalance, flowErr.Kind)
	assert.Equal(t, models.StateFailed, snap.State)

	_, err = f.svc.Retry(ctx, testUserID, id)
	require.NoError(t, err)
	_, err = f.svc.Continue(ctx, testUserID, id)
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, testUserID, id)
	require.NoError(t, err)

	f.expectRecord(t, models.StateCompleted, "")
	snap, err = f.svc.Commit(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, snap.State)
	assert.Equal(t, "tx-5", snap.TransactionID)

	require.Len(t, placeKeys, 2)
	require.Len(t, payoutKeys, 2)
	assert.NotEqual(t, placeKeys[0], placeKeys[1])
	assert.NotEqual(t, payoutKeys[0], payoutKeys[1])
	assert.Equal(t, []string{"key-1", "key-2", "key-3", "key-4"}, f.keys)
}

func TestSwapService_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})
	f.quote(t, id, "1", models.InputDash)

	f.expectRecord(t, models.StateCancelled, "")
	snap, err := f.svc.Cancel(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, snap.State)
	assert.Nil(t, snap.ExpiresAt)

	_, err = f.svc.Cancel(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.Confirm(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSwapService_CancelDuringStepDiscardsResult(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()
	f.expectPaymentMethods()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowBuy, PaymentMethodID: "pm-card"})
	f.quote(t, id, "100", models.InputFiat)

	started := make(chan struct{})
	release := make(chan struct{})
	f.provider.EXPECT().PlaceBuyOrder(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, _ models.PlaceOrderParams, _ string) (models.Order, error) {
			close(started)
			<-release
			return models.Order{ID: "order-late"}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Confirm(ctx, testUserID, id)
		done <- err
	}()

	<-started
	_, err := f.svc.Confirm(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrFlowBusy)

	f.expectRecord(t, models.StateCancelled, "")
	snap, err := f.svc.Cancel(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, snap.State)

	close(release)
	assert.ErrorIs(t, <-done, ErrFlowInterrupted)

	snap, err = f.svc.GetFlow(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, snap.State)
	assert.Empty(t, snap.OrderID)
}

func TestSwapService_InvalidTransitions(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})

	_, err := f.svc.Continue(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.Commit(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.SubmitTwoFactorCode(ctx, testUserID, id, "123456")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.Retry(ctx, testUserID, id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	snap, err := f.svc.GetFlow(ctx, testUserID, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, snap.State)
}

func TestSwapService_FlowOwnership(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})

	_, err := f.svc.GetFlow(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, ErrFlowNotFound)
	_, err = f.svc.Confirm(ctx, testUserID, uuid.New())
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestSwapService_StartFlow_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		req      models.StartFlowRequest
		setup    func(f *swapFixture)
		wantErr  error
		wantKind models.FailureKind
	}{
		{
			name:    "unknown_kind",
			req:     models.StartFlowRequest{Kind: "sell", ProviderToken: testToken, FiatCurrency: "USD"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing_token",
			req:     models.StartFlowRequest{Kind: models.FlowTransferToWallet, FiatCurrency: "USD"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad_fiat",
			req:     models.StartFlowRequest{Kind: models.FlowTransferToWallet, ProviderToken: testToken, FiatCurrency: "DOLLARS"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "convert_from_dash",
			req:     models.StartFlowRequest{Kind: models.FlowConvert, ProviderToken: testToken, FiatCurrency: "USD", SourceCurrency: "DASH"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "buy_without_payment_method",
			req:     models.StartFlowRequest{Kind: models.FlowBuy, ProviderToken: testToken, FiatCurrency: "USD"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "provider_unauthorized",
			req:  models.StartFlowRequest{Kind: models.FlowTransferToWallet, ProviderToken: testToken, FiatCurrency: "USD"},
			setup: func(f *swapFixture) {
				f.provider.EXPECT().GetUserAccounts(gomock.Any()).Return(nil, fmt.Errorf("status 401: %w", models.ErrProviderUnauthorized))
			},
			wantKind: models.FailureProviderUnauthorized,
		},
		{
			name: "no_dash_account",
			req:  models.StartFlowRequest{Kind: models.FlowTransferToWallet, ProviderToken: testToken, FiatCurrency: "USD"},
			setup: func(f *swapFixture) {
				f.provider.EXPECT().GetUserAccounts(gomock.Any()).Return([]models.ProviderAccount{{ID: "btc", Currency: "BTC"}}, nil)
			},
			wantKind: models.FailureAccountNotFound,
		},
		{
			name: "convert_source_missing",
			req:  models.StartFlowRequest{Kind: models.FlowConvert, ProviderToken: testToken, FiatCurrency: "USD", SourceCurrency: "ETH"},
			setup: func(f *swapFixture) {
				f.expectMarket()
			},
			wantKind: models.FailureAccountNotFound,
		},
		{
			name: "payment_method_cannot_buy",
			req:  models.StartFlowRequest{Kind: models.FlowBuy, ProviderToken: testToken, FiatCurrency: "USD", PaymentMethodID: "pm-bank"},
			setup: func(f *swapFixture) {
				f.expectMarket()
				f.expectPaymentMethods()
			},
			wantKind: models.FailureInvalidPaymentMethod,
		},
		{
			name: "rates_unavailable",
			req:  models.StartFlowRequest{Kind: models.FlowTransferToWallet, ProviderToken: testToken, FiatCurrency: "USD"},
			setup: func(f *swapFixture) {
				f.provider.EXPECT().GetUserAccounts(gomock.Any()).Return([]models.ProviderAccount{{ID: "dash-acc", Currency: "DASH"}}, nil)
				f.provider.EXPECT().GetExchangeRates(gomock.Any(), "USD").Return(nil, errors.New("timeout"))
			},
			wantKind: models.FailureQuoteUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture(t, time.Hour)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.svc.StartFlow(ctx, testUserID, tt.req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantKind != "" {
				var flowErr *FlowError
				require.ErrorAs(t, err, &flowErr)
				assert.Equal(t, tt.wantKind, flowErr.Kind)
			}
		})
	}
}

func TestSwapService_StartFlow_ProviderRateFallback(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)

	f.provider.EXPECT().GetUserAccounts(gomock.Any()).Return([]models.ProviderAccount{{ID: "dash-acc", Currency: "DASH", Balance: dec("1")}}, nil)
	f.provider.EXPECT().GetExchangeRates(gomock.Any(), "EUR").Return(map[string]decimal.Decimal{"DASH": dec("0.025")}, nil)
	f.rates.EXPECT().GetExchangeRate(gomock.Any(), "EUR").Return(models.ExchangeRate{}, ErrQuoteUnavailable)

	snap, err := f.svc.StartFlow(ctx, testUserID, models.StartFlowRequest{
		Kind:          models.FlowTransferToWallet,
		ProviderToken: testToken,
		FiatCurrency:  "eur",
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", snap.Account.FiatCurrency)
	assertDec(t, "40", snap.Account.DashRate)
	assertDec(t, "1", snap.Account.CryptoToDashRate)
}

func TestSwapService_Subscribe(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})

	updates, cancel, err := f.svc.Subscribe(ctx, testUserID, id)
	require.NoError(t, err)
	defer cancel()

	first := <-updates
	assert.Equal(t, models.StateIdle, first.State)

	_, err = f.svc.EnterAmount(ctx, testUserID, id, models.EnterAmountRequest{Amount: "1", InputType: models.InputDash})
	require.NoError(t, err)

	second := <-updates
	assert.Equal(t, models.StateQuotePreview, second.State)
	assert.Equal(t, "50.00", second.Quote.Fiat.String())

	cancel()
	_, ok := <-updates
	assert.False(t, ok)

	_, _, err = f.svc.Subscribe(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestSwapService_Evict(t *testing.T) {
	f := newSwapFixture(t, time.Hour)
	f.expectMarket()

	id := f.start(t, models.StartFlowRequest{Kind: models.FlowTransferToWallet})

	assert.Equal(t, 0, f.svc.Evict(time.Now()))
	assert.Equal(t, 1, f.svc.Evict(time.Now().Add(2*time.Minute)))

	_, err := f.svc.GetFlow(context.Background(), testUserID, id)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestSwapService_GetPaymentMethods(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture(t, time.Hour)
	f.expectPaymentMethods()

	methods, err := f.svc.GetPaymentMethods(ctx, testToken)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "Visa", methods[0].DisplayName)
	assert.Equal(t, "****4242", methods[0].Account)
	assert.Equal(t, models.PaymentMethodFiatAccount, methods[1].Type)

	_, err = f.svc.GetPaymentMethods(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSwapService_DepositToFiatAccount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		req      models.DepositRequest
		wantErr  error
		wantKind models.FailureKind
	}{
		{
			name: "success",
			req:  models.DepositRequest{ProviderToken: testToken, Amount: "100,5", Currency: "usd", PaymentMethodID: "pm-bank"},
		},
		{
			name:     "zero_amount",
			req:      models.DepositRequest{ProviderToken: testToken, Amount: "abc", Currency: "USD", PaymentMethodID: "pm-bank"},
			wantKind: models.FailureBelowMinimum,
		},
		{
			name:     "no_fiat_account",
			req:      models.DepositRequest{ProviderToken: testToken, Amount: "10", Currency: "EUR", PaymentMethodID: "pm-bank"},
			wantKind: models.FailureAccountNotFound,
		},
		{
			name:     "method_cannot_deposit",
			req:      models.DepositRequest{ProviderToken: testToken, Amount: "10", Currency: "USD", PaymentMethodID: "pm-card"},
			wantKind: models.FailureInvalidPaymentMethod,
		},
		{
			name:    "missing_payment_method",
			req:     models.DepositRequest{ProviderToken: testToken, Amount: "10", Currency: "USD"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSwapFixture(t, time.Hour)
			f.expectMarket()
			f.expectPaymentMethods()

			if tt.wantErr == nil && tt.wantKind == "" {
				f.provider.EXPECT().DepositToFiatAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p models.DepositParams) (models.Deposit, error) {
						assert.Equal(t, "usd-acc", p.AccountID)
						assert.Equal(t, "USD", p.Currency)
						assert.Equal(t, "pm-bank", p.PaymentMethodID)
						assert.True(t, p.Commit)
						assertDec(t, "100.5", p.Amount)
						return models.Deposit{ID: "dep-1", Status: "created", Amount: p.Amount}, nil
					})
			}

			deposit, err := f.svc.DepositToFiatAccount(ctx, testUserID, tt.req)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != "":
				var flowErr *FlowError
				require.ErrorAs(t, err, &flowErr)
				assert.Equal(t, tt.wantKind, flowErr.Kind)
			default:
				require.NoError(t, err)
				assert.Equal(t, "dep-1", deposit.ID)
			}
		})
	}
}
