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

// dashd RPC error code for a wallet without enough funds
const rpcWalletInsufficientFunds = -6

// Smallest amount dashd relays without treating the output as dust.
var dustThreshold = decimal.New(546, -models.CryptoScale)

// Assumed sizes in kB of a P2PKH send with change and without it.
var (
	sendSizeKB        = decimal.New(226, -3)
	emptyWalletSizeKB = decimal.New(192, -3)
)

// DashdConfig configures the dashd wallet RPC.
type DashdConfig struct {
	URL         string
	User        string
	Password    string
	ConfTarget  int             // Blocks for estimatesmartfee
	FallbackFee decimal.Decimal // DASH/kB used when dashd has no estimate; zero disables
	Timeout     time.Duration
}

// DashdFacade is the local DASH wallet, backed by dashd JSON-RPC.
type DashdFacade struct {
	client      *resty.Client
	confTarget  int
	fallbackFee decimal.Decimal
}

// NewDashdFacade creates a wallet facade for the dashd RPC at cfg.URL.
func NewDashdFacade(cfg DashdConfig) *DashdFacade {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.User, cfg.Password).
		SetHeader("Content-Type", "application/json")

	confTarget := cfg.ConfTarget
	if confTarget <= 0 {
		confTarget = 6
	}
	return &DashdFacade{client: client, confTarget: confTarget, fallbackFee: cfg.FallbackFee}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse[T any] struct {
	Result T         `json:"result"`
	Error  *RPCError `json:"error"`
}

// RPCError is an error answered by dashd. errors.Is matches it against the
// wallet errors in models.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("dashd: %d: %s", e.Code, e.Message)
}

// Is reports whether target is the wallet error e stands for.
func (e *RPCError) Is(target error) bool {
	return e.kind() == target
}

func (e *RPCError) kind() error {
	msg := strings.ToLower(e.Message)
	switch {
	case e.Code == rpcWalletInsufficientFunds, strings.Contains(msg, "insufficient funds"):
		return models.ErrWalletInsufficientMoney
	case strings.Contains(msg, "too small to pay the fee"), strings.Contains(msg, "too small after applying the fee"):
		return models.ErrWalletCouldNotAdjustDownwards
	case strings.Contains(msg, "dust"), strings.Contains(msg, "amount too small"):
		return models.ErrWalletDustySend
	case strings.Contains(msg, "fee estimation failed"):
		return models.ErrWalletFeeEstimation
	}
	return models.ErrWalletSend
}

// call invokes method on dashd and returns its result.
func call[T any](ctx context.Context, client *resty.Client, method string, params ...any) (T, error) {
	var out rpcResponse[T]
	if params == nil {
		params = []any{}
	}
	resp, err := client.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "1.0", ID: "gw-dash-swap", Method: method, Params: params}).
		SetResult(&out).
		SetError(&out).
		Post("/")
	if err != nil {
		return out.Result, fmt.Errorf("%w: %s: %v", models.ErrWalletSend, method, err)
	}
	if out.Error != nil {
		return out.Result, out.Error
	}
	if resp.IsError() {
		return out.Result, fmt.Errorf("%w: %s: status %d", models.ErrWalletSend, method, resp.StatusCode())
	}
	return out.Result, nil
}

// GetWalletBalance returns the spendable wallet balance.
func (d *DashdFacade) GetWalletBalance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := call[decimal.Decimal](ctx, d.client, "getbalance")
	if err != nil {
		logger.Log.Errorw("failed to get wallet balance", "error", err)
		return decimal.Zero, err
	}
	return balance, nil
}

// FreshReceiveAddress returns a new receive address of the wallet.
func (d *DashdFacade) FreshReceiveAddress(ctx context.Context) (string, error) {
	address, err := call[string](ctx, d.client, "getnewaddress")
	if err != nil {
		logger.Log.Errorw("failed to get new address", "error", err)
		return "", err
	}
	return address, nil
}

type smartFee struct {
	FeeRate *decimal.Decimal `json:"feerate"`
	Errors  []string         `json:"errors"`
	Blocks  int              `json:"blocks"`
}

// EstimateNetworkFee estimates the fee of sending amount to address. With
// emptyWallet the fee is taken out of amount.
func (d *DashdFacade) EstimateNetworkFee(ctx context.Context, address string, amount decimal.Decimal, emptyWallet bool) (models.TransactionDetails, error) {
	if amount.LessThan(dustThreshold) {
		return models.TransactionDetails{}, fmt.Errorf("%w: %s DASH", models.ErrWalletDustySend, amount)
	}

	estimate, err := call[smartFee](ctx, d.client, "estimatesmartfee", d.confTarget)
	if err != nil {
		logger.Log.Errorw("failed to estimate fee", "address", address, "error", err)
		return models.TransactionDetails{}, fmt.Errorf("%w: %w", models.ErrWalletFeeEstimation, err)
	}

	rate := d.fallbackFee
	if estimate.FeeRate != nil && estimate.FeeRate.IsPositive() {
		rate = *estimate.FeeRate
	}
	if !rate.IsPositive() {
		logger.Log.Errorw("no fee rate available", "errors", estimate.Errors)
		return models.TransactionDetails{}, fmt.Errorf("%w: %s", models.ErrWalletFeeEstimation, strings.Join(estimate.Errors, "; "))
	}

	size := sendSizeKB
	if emptyWallet {
		size = emptyWalletSizeKB
	}
	fee := rate.Mul(size).RoundCeil(models.CryptoScale)

	if !emptyWallet {
		return models.TransactionDetails{Fee: fee, AmountToSend: amount, TotalAmount: amount.Add(fee)}, nil
	}

	toSend := amount.Sub(fee)
	if toSend.LessThan(dustThreshold) {
		return models.TransactionDetails{}, fmt.Errorf("%w: %s DASH after a %s fee", models.ErrWalletCouldNotAdjustDownwards, amount, fee)
	}
	return models.TransactionDetails{Fee: fee, AmountToSend: toSend, TotalAmount: amount}, nil
}

// SendCoins sends amount to address and returns the transaction id. With
// emptyWallet the whole balance is sent and the fee is taken out of it.
func (d *DashdFacade) SendCoins(ctx context.Context, address string, amount decimal.Decimal, emptyWallet bool) (string, error) {
	if emptyWallet {
		balance, err := d.GetWalletBalance(ctx)
		if err != nil {
			return "", err
		}
		amount = balance
	}

	txID, err := call[string](ctx, d.client, "sendtoaddress",
		address, amount.StringFixed(models.CryptoScale), "", "", emptyWallet)
	if err != nil {
		logger.Log.Errorw("failed to send coins", "address", address, "amount", amount, "empty_wallet", emptyWallet, "error", err)
		return "", err
	}

	logger.Log.Infow("coins sent", "address", address, "amount", amount, "txid", txID)
	return txID, nil
}
