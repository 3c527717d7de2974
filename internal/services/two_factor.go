package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// pendingStep is the provider call a pendingRequest performs.
type pendingStep int

const (
	stepPlaceBuy pendingStep = iota + 1
	stepCommitBuy
	stepPlaceTrade
	stepCommitTrade
	stepSendToWallet
)

func (s pendingStep) String() string {
	switch s {
	case stepPlaceBuy:
		return "place_buy"
	case stepCommitBuy:
		return "commit_buy"
	case stepPlaceTrade:
		return "place_trade"
	case stepCommitTrade:
		return "commit_trade"
	case stepSendToWallet:
		return "send_to_wallet"
	}
	return "unknown"
}

// pendingRequest is one provider request with all of its parameters. The
// same value is used for the first submission and for every two-factor
// resubmission, so the idempotency key never changes between them.
type pendingRequest struct {
	step      pendingStep
	placeBuy  models.PlaceOrderParams
	trade     models.SwapTradeOrder
	accountID string
	orderID   string
	send      models.SendTransactionToWalletParams
}

// pendingResult is what a successful pendingRequest returns.
type pendingResult struct {
	order models.Order
	sent  models.SendTransactionToWalletResult
}

func (p pendingRequest) idempotencyKey() string {
	switch p.step {
	case stepPlaceBuy:
		return p.placeBuy.IdempotencyKey
	case stepPlaceTrade:
		return p.trade.IdempotencyKey
	case stepSendToWallet:
		return p.send.IdempotencyKey
	}
	return ""
}

// execute performs the request, attaching twoFactorCode when it is not empty.
func (p pendingRequest) execute(ctx context.Context, provider Provider, twoFactorCode string) (pendingResult, error) {
	var (
		res pendingResult
		err error
	)
	switch p.step {
	case stepPlaceBuy:
		res.order, err = provider.PlaceBuyOrder(ctx, p.placeBuy, twoFactorCode)
	case stepCommitBuy:
		res.order, err = provider.CommitBuyOrder(ctx, p.accountID, p.orderID, twoFactorCode)
	case stepPlaceTrade:
		res.order, err = provider.PlaceSwapTrade(ctx, p.trade, twoFactorCode)
	case stepCommitTrade:
		res.order, err = provider.CommitSwapTrade(ctx, p.orderID, twoFactorCode)
	case stepSendToWallet:
		res.sent, err = provider.SendFundsToWallet(ctx, p.send, twoFactorCode)
	default:
		err = fmt.Errorf("%w: unknown step %d", ErrInvalidTransition, p.step)
	}
	return res, err
}

// TwoFactorRetry holds a provider request that was answered with a
// two-factor challenge and resubmits it with the user's code.
type TwoFactorRetry struct {
	mu       sync.Mutex
	request  pendingRequest
	inFlight bool
	attempts int
}

func newTwoFactorRetry(request pendingRequest) *TwoFactorRetry {
	return &TwoFactorRetry{request: request}
}

// IdempotencyKey returns the key of the held request.
func (r *TwoFactorRetry) IdempotencyKey() string {
	return r.request.idempotencyKey()
}

// Attempts returns how many codes have been submitted.
func (r *TwoFactorRetry) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

// Submit resubmits the held request once with code. A second Submit while
// the first is in flight fails with ErrTwoFactorInFlight.
func (r *TwoFactorRetry) Submit(ctx context.Context, provider Provider, code string) (pendingResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return pendingResult{}, fmt.Errorf("%w: empty two-factor code", ErrInvalidInput)
	}

	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return pendingResult{}, ErrTwoFactorInFlight
	}
	r.inFlight = true
	r.attempts++
	attempt := r.attempts
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inFlight = false
		r.mu.Unlock()
	}()

	res, err := r.request.execute(ctx, provider, code)
	if err != nil {
		logger.Log.Warnw("two-factor resubmission failed",
			"step", r.request.step.String(),
			"idem", r.request.idempotencyKey(),
			"attempt", attempt,
			"error", err,
		)
		return res, err
	}

	logger.Log.Infow("two-factor resubmission succeeded",
		"step", r.request.step.String(),
		"idem", r.request.idempotencyKey(),
		"attempt", attempt,
	)
	return res, nil
}
