package facades

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
)

// Coinbase request headers
const (
	headerVersion   = "CB-VERSION"
	headerTwoFactor = "CB-2FA-TOKEN"
)

// CoinbaseFacade talks to the Coinbase v2 API. It serves the public DASH
// rates itself and hands out per-user clients with WithToken.
type CoinbaseFacade struct {
	client *resty.Client
}

// NewCoinbaseFacade creates a facade for baseURL.
func NewCoinbaseFacade(baseURL, apiVersion string, timeout time.Duration) *CoinbaseFacade {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader(headerVersion, apiVersion)
	return &CoinbaseFacade{client: client}
}

// WithToken returns a client acting with the user's OAuth access token.
func (f *CoinbaseFacade) WithToken(accessToken string) *CoinbaseClient {
	return &CoinbaseClient{client: f.client, token: accessToken}
}

// GetDashExchangeRates returns the value of 1 DASH in every currency Coinbase quotes.
func (f *CoinbaseFacade) GetDashExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	var out envelope[exchangeRatesDTO]
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("currency", models.DASH).
		SetResult(&out).
		SetError(&coinbaseErrorResponse{}).
		Get("/v2/exchange-rates")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to fetch DASH exchange rates", "error", err)
		return nil, err
	}
	return out.Data.Rates, nil
}

// CoinbaseClient is the Coinbase API acting for one user.
type CoinbaseClient struct {
	client *resty.Client
	token  string
}

// money is a Coinbase amount with its currency.
type money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type accountDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency struct {
		Code string `json:"code"`
	} `json:"currency"`
	Balance money `json:"balance"`
}

type exchangeRatesDTO struct {
	Currency string                     `json:"currency"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

type orderDTO struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       money  `json:"amount"`
	Subtotal     money  `json:"subtotal"`
	Fee          money  `json:"fee"`
	Total        money  `json:"total"`
	OutputAmount money  `json:"output_amount"`
}

type transactionDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type addressDTO struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type depositDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount money  `json:"amount"`
	Fee    money  `json:"fee"`
}

func (o orderDTO) toModel() models.Order {
	order := models.Order{
		ID:        o.ID,
		Status:    o.Status,
		Amount:    o.Amount.Amount,
		Currency:  o.Amount.Currency,
		Subtotal:  o.Subtotal.Amount,
		Fee:       o.Fee.Amount,
		Total:     o.Total.Amount,
		TotalCode: o.Total.Currency,
	}
	// trades report what they deliver as output_amount
	if o.OutputAmount.Currency != "" {
		order.Amount = o.OutputAmount.Amount
		order.Currency = o.OutputAmount.Currency
	}
	return order
}

// request starts an authenticated request. twoFactorCode is attached when set.
func (c *CoinbaseClient) request(ctx context.Context, twoFactorCode string) *resty.Request {
	r := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetError(&coinbaseErrorResponse{})
	if twoFactorCode != "" {
		r.SetHeader(headerTwoFactor, twoFactorCode)
	}
	return r
}

// GetUserAccounts lists the custody accounts of the user.
func (c *CoinbaseClient) GetUserAccounts(ctx context.Context) ([]models.ProviderAccount, error) {
	var out envelope[[]accountDTO]
	resp, err := c.request(ctx, "").
		SetQueryParam("limit", "300").
		SetResult(&out).
		Get("/v2/accounts")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to fetch accounts", "error", err)
		return nil, err
	}

	accounts := make([]models.ProviderAccount, 0, len(out.Data))
	for _, a := range out.Data {
		currency := a.Currency.Code
		if currency == "" {
			currency = a.Balance.Currency
		}
		accounts = append(accounts, models.ProviderAccount{
			ID:       a.ID,
			Name:     a.Name,
			Currency: strings.ToUpper(currency),
			Balance:  a.Balance.Amount,
			Type:     a.Type,
		})
	}
	return accounts, nil
}

// GetExchangeRates returns how many units of every currency 1 currency buys.
func (c *CoinbaseClient) GetExchangeRates(ctx context.Context, currency string) (map[string]decimal.Decimal, error) {
	var out envelope[exchangeRatesDTO]
	resp, err := c.request(ctx, "").
		SetQueryParam("currency", strings.ToUpper(currency)).
		SetResult(&out).
		Get("/v2/exchange-rates")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "currency", currency, "error", err)
		return nil, err
	}
	return out.Data.Rates, nil
}

// GetActivePaymentMethods lists the payment methods of the user.
func (c *CoinbaseClient) GetActivePaymentMethods(ctx context.Context) ([]models.ProviderPaymentMethod, error) {
	var out envelope[[]models.ProviderPaymentMethod]
	resp, err := c.request(ctx, "").
		SetResult(&out).
		Get("/v2/payment-methods")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to fetch payment methods", "error", err)
		return nil, err
	}
	return out.Data, nil
}

// PlaceBuyOrder places a buy of DASH into params.AccountID.
func (c *CoinbaseClient) PlaceBuyOrder(ctx context.Context, params models.PlaceOrderParams, twoFactorCode string) (models.Order, error) {
	var out envelope[orderDTO]
	resp, err := c.request(ctx, twoFactorCode).
		SetBody(params).
		SetResult(&out).
		SetPathParam("account", params.AccountID).
		Post("/v2/accounts/{account}/buys")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to place buy order", "idem", params.IdempotencyKey, "amount", params.Amount, "error", err)
		return models.Order{}, err
	}
	return out.Data.toModel(), nil
}

// CommitBuyOrder commits a placed buy.
func (c *CoinbaseClient) CommitBuyOrder(ctx context.Context, accountID, orderID, twoFactorCode string) (models.Order, error) {
	var out envelope[orderDTO]
	resp, err := c.request(ctx, twoFactorCode).
		SetResult(&out).
		SetPathParams(map[string]string{"account": accountID, "buy": orderID}).
		Post("/v2/accounts/{account}/buys/{buy}/commit")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to commit buy order", "order_id", orderID, "error", err)
		return models.Order{}, err
	}
	return out.Data.toModel(), nil
}

// PlaceSwapTrade places a trade between two custody assets.
func (c *CoinbaseClient) PlaceSwapTrade(ctx context.Context, trade models.SwapTradeOrder, twoFactorCode string) (models.Order, error) {
	var out envelope[orderDTO]
	resp, err := c.request(ctx, twoFactorCode).
		SetBody(trade).
		SetResult(&out).
		Post("/v2/trades")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to place trade", "idem", trade.IdempotencyKey, "amount", trade.Amount, "error", err)
		return models.Order{}, err
	}
	return out.Data.toModel(), nil
}

// CommitSwapTrade commits a placed trade.
func (c *CoinbaseClient) CommitSwapTrade(ctx context.Context, tradeID, twoFactorCode string) (models.Order, error) {
	var out envelope[orderDTO]
	resp, err := c.request(ctx, twoFactorCode).
		SetResult(&out).
		SetPathParam("trade", tradeID).
		Post("/v2/trades/{trade}/commit")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to commit trade", "trade_id", tradeID, "error", err)
		return models.Order{}, err
	}
	return out.Data.toModel(), nil
}

// SendFundsToWallet sends custody funds to an on-chain address.
func (c *CoinbaseClient) SendFundsToWallet(ctx context.Context, params models.SendTransactionToWalletParams, twoFactorCode string) (models.SendTransactionToWalletResult, error) {
	var out envelope[transactionDTO]
	resp, err := c.request(ctx, twoFactorCode).
		SetBody(params).
		SetResult(&out).
		SetPathParam("account", params.AccountID).
		Post("/v2/accounts/{account}/transactions")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to send funds to wallet", "idem", params.IdempotencyKey, "amount", params.Amount, "error", err)
		return models.SendTransactionToWalletResult{}, err
	}
	return models.SendTransactionToWalletResult{ID: out.Data.ID, Status: out.Data.Status}, nil
}

// CreateAddress creates a deposit address for accountID.
func (c *CoinbaseClient) CreateAddress(ctx context.Context, accountID string) (string, error) {
	var out envelope[addressDTO]
	resp, err := c.request(ctx, "").
		SetResult(&out).
		SetPathParam("account", accountID).
		Post("/v2/accounts/{account}/addresses")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to create deposit address", "account_id", accountID, "error", err)
		return "", err
	}
	if out.Data.Address == "" {
		return "", fmt.Errorf("%w: empty deposit address", models.ErrProviderFailure)
	}
	return out.Data.Address, nil
}

// DepositToFiatAccount deposits fiat from a bank payment method.
func (c *CoinbaseClient) DepositToFiatAccount(ctx context.Context, params models.DepositParams) (models.Deposit, error) {
	var out envelope[depositDTO]
	resp, err := c.request(ctx, "").
		SetBody(params).
		SetResult(&out).
		SetPathParam("account", params.AccountID).
		Post("/v2/accounts/{account}/deposits")
	if err := checkResponse(resp, err); err != nil {
		logger.Log.Errorw("failed to deposit", "amount", params.Amount, "currency", params.Currency, "error", err)
		return models.Deposit{}, err
	}
	return models.Deposit{
		ID:     out.Data.ID,
		Status: out.Data.Status,
		Amount: out.Data.Amount.Amount,
		Fee:    out.Data.Fee.Amount,
	}, nil
}

// checkResponse turns a transport error or an HTTP error into an error
// matching the provider errors in models.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrProviderFailure, err)
	}
	if !resp.IsError() {
		return nil
	}
	body, _ := resp.Error().(*coinbaseErrorResponse)
	return newProviderError(resp.StatusCode(), body)
}
