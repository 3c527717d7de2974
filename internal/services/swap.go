package services

//go:generate mockgen -source=swap.go -destination=swap_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
)

// Provider is the custodial exchange acting for one user.
type Provider interface {
	GetUserAccounts(ctx context.Context) ([]models.ProviderAccount, error)                                                                                  // Lists custody accounts
	GetExchangeRates(ctx context.Context, currency string) (map[string]decimal.Decimal, error)                                                              // Units of every currency for 1 currency
	GetActivePaymentMethods(ctx context.Context) ([]models.ProviderPaymentMethod, error)                                                                    // Lists payment methods
	PlaceBuyOrder(ctx context.Context, params models.PlaceOrderParams, twoFactorCode string) (models.Order, error)                                          // Places an uncommitted buy
	CommitBuyOrder(ctx context.Context, accountID, orderID, twoFactorCode string) (models.Order, error)                                                     // Commits a placed buy
	PlaceSwapTrade(ctx context.Context, trade models.SwapTradeOrder, twoFactorCode string) (models.Order, error)                                            // Places an uncommitted trade
	CommitSwapTrade(ctx context.Context, tradeID, twoFactorCode string) (models.Order, error)                                                               // Commits a placed trade
	SendFundsToWallet(ctx context.Context, params models.SendTransactionToWalletParams, twoFactorCode string) (models.SendTransactionToWalletResult, error) // Pays out to an address
	CreateAddress(ctx context.Context, accountID string) (string, error)                                                                                    // Creates a deposit address
	DepositToFiatAccount(ctx context.Context, params models.DepositParams) (models.Deposit, error)                                                          // Deposits fiat from a bank
}

// ProviderFactory creates a Provider for a user access token.
type ProviderFactory interface {
	Provider(accessToken string) Provider
}

// ProviderFactoryFunc adapts a function to ProviderFactory.
type ProviderFactoryFunc func(accessToken string) Provider

// Provider calls f(accessToken).
func (f ProviderFactoryFunc) Provider(accessToken string) Provider {
	return f(accessToken)
}

// Wallet is the user's local DASH wallet.
type Wallet interface {
	GetWalletBalance(ctx context.Context) (decimal.Decimal, error)                                                                       // Spendable balance
	FreshReceiveAddress(ctx context.Context) (string, error)                                                                             // Unused receive address
	EstimateNetworkFee(ctx context.Context, address string, amount decimal.Decimal, emptyWallet bool) (models.TransactionDetails, error) // Fee for a send
	SendCoins(ctx context.Context, address string, amount decimal.Decimal, emptyWallet bool) (string, error)                             // Sends and returns the tx id
}

// ExchangeRateSource supplies DASH and fiat exchange rates.
type ExchangeRateSource interface {
	GetExchangeRate(ctx context.Context, currencyCode string) (models.ExchangeRate, error)
	ConvertFiat(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// FlowRecorder stores terminal flow outcomes.
type FlowRecorder interface {
	Record(ctx context.Context, record models.FlowRecord)
}

// SwapConfig tunes the flows created by SwapService.
type SwapConfig struct {
	QuoteTTL    time.Duration   // How long a confirmed quote or placed order stays valid
	FlowTTL     time.Duration   // How long an untouched flow is kept
	MinOrderUSD decimal.Decimal // Provider minimum for buys and converts
}

// Defaults
const (
	DefaultQuoteTTL = 10 * time.Second
	DefaultFlowTTL  = 30 * time.Minute
)

// DefaultMinOrderUSD is the provider minimum for orders.
var DefaultMinOrderUSD = decimal.NewFromInt(2)

// SwapService runs buy, convert and transfer flows.
type SwapService struct {
	providers ProviderFactory
	wallet    Wallet
	rates     ExchangeRateSource
	history   FlowRecorder
	converter *Converter
	resolver  *PaymentMethodResolver
	cfg       SwapConfig

	mu    sync.RWMutex
	flows map[uuid.UUID]*Flow

	now    func() time.Time
	newKey func() string
}

// NewSwapService creates a new SwapService. Zero config values fall back
// to the defaults.
func NewSwapService(
	providers ProviderFactory,
	wallet Wallet,
	rates ExchangeRateSource,
	history FlowRecorder,
	converter *Converter,
	resolver *PaymentMethodResolver,
	cfg SwapConfig,
) *SwapService {
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = DefaultQuoteTTL
	}
	if cfg.FlowTTL <= 0 {
		cfg.FlowTTL = DefaultFlowTTL
	}
	if !cfg.MinOrderUSD.IsPositive() {
		cfg.MinOrderUSD = DefaultMinOrderUSD
	}
	return &SwapService{
		providers: providers,
		wallet:    wallet,
		rates:     rates,
		history:   history,
		converter: converter,
		resolver:  resolver,
		cfg:       cfg,
		flows:     make(map[uuid.UUID]*Flow),
		now:       time.Now,
		newKey:    uuid.NewString,
	}
}

// StartFlow opens a flow of req.Kind for userID.
func (s *SwapService) StartFlow(ctx context.Context, userID uuid.UUID, req models.StartFlowRequest) (models.FlowSnapshot, error) {
	fiat := strings.ToUpper(strings.TrimSpace(req.FiatCurrency))
	source := strings.ToUpper(strings.TrimSpace(req.SourceCurrency))

	switch {
	case !req.Kind.Valid():
		return models.FlowSnapshot{}, fmt.Errorf("%w: kind %q", ErrInvalidInput, req.Kind)
	case req.ProviderToken == "":
		return models.FlowSnapshot{}, fmt.Errorf("%w: provider token is required", ErrInvalidInput)
	case len(fiat) != 3:
		return models.FlowSnapshot{}, fmt.Errorf("%w: fiat currency %q", ErrInvalidInput, req.FiatCurrency)
	case req.Kind == models.FlowConvert && (source == "" || source == models.DASH):
		return models.FlowSnapshot{}, fmt.Errorf("%w: source currency %q", ErrInvalidInput, req.SourceCurrency)
	case req.Kind == models.FlowBuy && req.PaymentMethodID == "":
		return models.FlowSnapshot{}, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	provider := s.providers.Provider(req.ProviderToken)

	accounts, err := provider.GetUserAccounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get provider accounts", "userID", userID, "error", err)
		return models.FlowSnapshot{}, newFlowError(classify(err), err)
	}

	dashAccount, ok := findAccount(accounts, models.DASH)
	if !ok {
		return models.FlowSnapshot{}, newFlowError(models.FailureAccountNotFound, fmt.Errorf("no %s account", models.DASH))
	}
	sourceAccount := dashAccount
	if req.Kind == models.FlowConvert {
		if sourceAccount, ok = findAccount(accounts, source); !ok {
			return models.FlowSnapshot{}, newFlowError(models.FailureAccountNotFound, fmt.Errorf("no %s account", source))
		}
	}

	account, err := s.buildAccount(ctx, provider, sourceAccount, fiat)
	if err != nil {
		return models.FlowSnapshot{}, newFlowError(classify(err), err)
	}

	data := flowContext{
		account:       account,
		dashAccountID: dashAccount.ID,
	}

	switch req.Kind {
	case models.FlowBuy:
		method, err := s.findPaymentMethod(ctx, provider, req.PaymentMethodID)
		if err != nil {
			return models.FlowSnapshot{}, err
		}
		data.paymentMethod = &method
		if method.Type == models.PaymentMethodFiatAccount && strings.EqualFold(method.Currency, fiat) {
			if fiatAccount, ok := findAccount(accounts, fiat); ok {
				data.hasMax = true
				data.balance = fiatAccount.Balance
				data.balanceType = models.InputFiat
			}
		}
		data.minFiat = s.minimumFiat(ctx, fiat)

	case models.FlowConvert:
		data.hasMax = true
		data.balance = sourceAccount.Balance
		data.balanceType = models.InputCrypto
		data.minFiat = s.minimumFiat(ctx, fiat)

	case models.FlowTransferToWallet:
		data.hasMax = true
		data.balance = dashAccount.Balance
		data.balanceType = models.InputDash

	case models.FlowTransferToCustody:
		balance, err := s.wallet.GetWalletBalance(ctx)
		if err != nil {
			logger.Log.Errorw("failed to get wallet balance", "userID", userID, "error", err)
			return models.FlowSnapshot{}, newFlowError(classify(err), err)
		}
		address, err := provider.CreateAddress(ctx, dashAccount.ID)
		if err != nil {
			logger.Log.Errorw("failed to create custody deposit address", "userID", userID, "error", err)
			return models.FlowSnapshot{}, newFlowError(classify(err), err)
		}
		data.hasMax = true
		data.balance = balance
		data.balanceType = models.InputDash
		data.depositAddress = address
	}

	flow := newFlow(userID, req.Kind, data, flowDeps{
		provider:  provider,
		wallet:    s.wallet,
		converter: s.converter,
		quoteTTL:  s.cfg.QuoteTTL,
		now:       s.now,
		newKey:    s.newKey,
		reload: func(ctx context.Context, current models.Account) (models.Account, error) {
			src := models.ProviderAccount{
				ID:       current.ID,
				Name:     current.Name,
				Currency: current.Currency,
				Balance:  current.Balance,
			}
			return s.buildAccount(ctx, provider, src, current.FiatCurrency)
		},
	})

	s.mu.Lock()
	s.flows[flow.ID()] = flow
	s.mu.Unlock()

	logger.Log.Infow("flow started", "flow_id", flow.ID(), "userID", userID, "kind", req.Kind, "fiat", fiat)
	return flow.Snapshot(), nil
}

// EnterAmount sets the amount of a flow and refreshes its quote.
func (s *SwapService) EnterAmount(ctx context.Context, userID, flowID uuid.UUID, req models.EnterAmountRequest) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.enterAmount(ctx, req.Amount, req.InputType)
	})
}

// Continue moves a valid quote preview to confirmation.
func (s *SwapService) Continue(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.proceed()
	})
}

// Confirm places the order, or starts the transfer for transfer flows.
func (s *SwapService) Confirm(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.confirm(ctx)
	})
}

// Commit commits the placed order and pays the result out to the wallet.
func (s *SwapService) Commit(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.commit(ctx)
	})
}

// Retry refreshes the rates of an expired or failed flow and re-quotes it.
func (s *SwapService) Retry(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.retry(ctx)
	})
}

// SubmitTwoFactorCode resubmits the request waiting for a two-factor code.
func (s *SwapService) SubmitTwoFactorCode(ctx context.Context, userID, flowID uuid.UUID, code string) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.submitTwoFactor(ctx, code)
	})
}

// Cancel ends a flow.
func (s *SwapService) Cancel(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	return s.run(ctx, userID, flowID, func(f *Flow) error {
		return f.cancel()
	})
}

// GetFlow returns the current snapshot of a flow.
func (s *SwapService) GetFlow(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error) {
	f, err := s.lookup(userID, flowID)
	if err != nil {
		return models.FlowSnapshot{}, err
	}
	return f.Snapshot(), nil
}

// Subscribe streams the snapshots of a flow until cancel is called.
func (s *SwapService) Subscribe(ctx context.Context, userID, flowID uuid.UUID) (<-chan models.FlowSnapshot, func(), error) {
	f, err := s.lookup(userID, flowID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := f.subscribe()
	return ch, cancel, nil
}

// GetPaymentMethods returns the payment methods that can be used to buy.
func (s *SwapService) GetPaymentMethods(ctx context.Context, providerToken string) ([]models.PaymentMethod, error) {
	if providerToken == "" {
		return nil, fmt.Errorf("%w: provider token is required", ErrInvalidInput)
	}
	raws, err := s.providers.Provider(providerToken).GetActivePaymentMethods(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get payment methods", "error", err)
		return nil, newFlowError(classify(err), err)
	}
	return s.resolver.ResolveActive(raws), nil
}

// DepositToFiatAccount moves fiat from a bank payment method into the
// custody fiat account of req.Currency.
func (s *SwapService) DepositToFiatAccount(ctx context.Context, userID uuid.UUID, req models.DepositRequest) (models.Deposit, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	switch {
	case req.ProviderToken == "":
		return models.Deposit{}, fmt.Errorf("%w: provider token is required", ErrInvalidInput)
	case len(currency) != 3:
		return models.Deposit{}, fmt.Errorf("%w: currency %q", ErrInvalidInput, req.Currency)
	case req.PaymentMethodID == "":
		return models.Deposit{}, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	amount := s.converter.ParseAmount(req.Amount).Round(s.converter.FiatDigits(currency))
	if !amount.IsPositive() {
		return models.Deposit{}, newFlowError(models.FailureBelowMinimum, fmt.Errorf("%w: amount %q", ErrInvalidInput, req.Amount))
	}

	provider := s.providers.Provider(req.ProviderToken)

	accounts, err := provider.GetUserAccounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get provider accounts", "userID", userID, "error", err)
		return models.Deposit{}, newFlowError(classify(err), err)
	}
	fiatAccount, ok := findAccount(accounts, currency)
	if !ok {
		return models.Deposit{}, newFlowError(models.FailureAccountNotFound, fmt.Errorf("no %s account", currency))
	}

	raws, err := provider.GetActivePaymentMethods(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get payment methods", "userID", userID, "error", err)
		return models.Deposit{}, newFlowError(classify(err), err)
	}
	if !canDeposit(raws, req.PaymentMethodID) {
		return models.Deposit{}, newFlowError(models.FailureInvalidPaymentMethod, fmt.Errorf("payment method %s cannot deposit", req.PaymentMethodID))
	}

	deposit, err := provider.DepositToFiatAccount(ctx, models.DepositParams{
		AccountID:       fiatAccount.ID,
		Amount:          amount,
		Currency:        currency,
		PaymentMethodID: req.PaymentMethodID,
		Commit:          true,
	})
	if err != nil {
		logger.Log.Errorw("failed to deposit to fiat account", "userID", userID, "amount", amount, "currency", currency, "error", err)
		return models.Deposit{}, newFlowError(classify(err), err)
	}

	logger.Log.Infow("fiat deposit created", "userID", userID, "deposit_id", deposit.ID, "amount", amount, "currency", currency)
	return deposit, nil
}

// Evict drops flows untouched since before now minus the flow TTL and
// returns how many were dropped.
func (s *SwapService) Evict(now time.Time) int {
	cutoff := now.Add(-s.cfg.FlowTTL)

	s.mu.Lock()
	var evicted []*Flow
	for id, f := range s.flows {
		if f.idleSince(cutoff) {
			delete(s.flows, id)
			evicted = append(evicted, f)
		}
	}
	s.mu.Unlock()

	for _, f := range evicted {
		f.close()
	}
	if len(evicted) > 0 {
		logger.Log.Infow("evicted idle flows", "count", len(evicted))
	}
	return len(evicted)
}

// RunJanitor calls Evict every interval until ctx is done.
func (s *SwapService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			s.Evict(t)
		}
	}
}

// run performs op on a flow and records a terminal outcome.
func (s *SwapService) run(ctx context.Context, userID, flowID uuid.UUID, op func(f *Flow) error) (models.FlowSnapshot, error) {
	f, err := s.lookup(userID, flowID)
	if err != nil {
		return models.FlowSnapshot{}, err
	}

	opErr := op(f)
	if rec, ok := f.takeRecord(); ok && s.history != nil {
		s.history.Record(context.WithoutCancel(ctx), rec)
	}
	return f.Snapshot(), opErr
}

func (s *SwapService) lookup(userID, flowID uuid.UUID) (*Flow, error) {
	s.mu.RLock()
	f, ok := s.flows[flowID]
	s.mu.RUnlock()
	if !ok || f.userID != userID {
		return nil, ErrFlowNotFound
	}
	return f, nil
}

// buildAccount attaches the conversion rates for fiat to src.
func (s *SwapService) buildAccount(ctx context.Context, provider Provider, src models.ProviderAccount, fiat string) (models.Account, error) {
	rates, err := provider.GetExchangeRates(ctx, fiat)
	if err != nil {
		logger.Log.Errorw("failed to get provider exchange rates", "currency", fiat, "error", err)
		return models.Account{}, fmt.Errorf("%w: %v", ErrQuoteUnavailable, err)
	}

	currencyToDash := rates[models.DASH]
	currencyToCrypto := rates[strings.ToUpper(src.Currency)]
	if !currencyToDash.IsPositive() || !currencyToCrypto.IsPositive() {
		return models.Account{}, fmt.Errorf("%w: no provider rate for %s", ErrQuoteUnavailable, src.Currency)
	}

	dashRate := decimal.NewFromInt(1).DivRound(currencyToDash, models.CryptoScale)
	if rate, err := s.rates.GetExchangeRate(ctx, fiat); err == nil && rate.Valid() {
		dashRate = rate.Rate
	} else {
		logger.Log.Warnw("using provider rate for DASH", "currency", fiat, "error", err)
	}

	return models.Account{
		ID:                   src.ID,
		Currency:             strings.ToUpper(src.Currency),
		Name:                 src.Name,
		Balance:              src.Balance,
		FiatCurrency:         fiat,
		CryptoToDashRate:     divide(currencyToDash, currencyToCrypto),
		CurrencyToDashRate:   currencyToDash,
		CurrencyToCryptoRate: currencyToCrypto,
		DashRate:             dashRate,
	}, nil
}

// minimumFiat returns the order minimum in fiat. The USD value is used when
// no conversion is available.
func (s *SwapService) minimumFiat(ctx context.Context, fiat string) decimal.Decimal {
	amount, err := s.rates.ConvertFiat(ctx, s.cfg.MinOrderUSD, models.USD, fiat)
	if err != nil || !amount.IsPositive() {
		logger.Log.Warnw("using USD order minimum", "currency", fiat, "error", err)
		amount = s.cfg.MinOrderUSD
	}
	return amount.RoundCeil(s.converter.FiatDigits(fiat))
}

func (s *SwapService) findPaymentMethod(ctx context.Context, provider Provider, id string) (models.PaymentMethod, error) {
	raws, err := provider.GetActivePaymentMethods(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get payment methods", "error", err)
		return models.PaymentMethod{}, newFlowError(classify(err), err)
	}
	for _, m := range s.resolver.ResolveActive(raws) {
		if m.ID == id {
			return m, nil
		}
	}
	return models.PaymentMethod{}, newFlowError(models.FailureInvalidPaymentMethod, fmt.Errorf("payment method %s cannot buy", id))
}

func findAccount(accounts []models.ProviderAccount, currency string) (models.ProviderAccount, bool) {
	for _, a := range accounts {
		if strings.EqualFold(a.Currency, currency) {
			return a, true
		}
	}
	return models.ProviderAccount{}, false
}

func canDeposit(raws []models.ProviderPaymentMethod, id string) bool {
	for _, raw := range raws {
		if raw.ID == id && raw.AllowDeposit {
			return true
		}
	}
	return false
}
