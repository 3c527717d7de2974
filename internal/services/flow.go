package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// flowDeps are the collaborators of one flow.
type flowDeps struct {
	provider  Provider
	wallet    Wallet
	converter *Converter
	quoteTTL  time.Duration
	now       func() time.Time
	newKey    func() string
	// reload refreshes the rates of account before a retry.
	reload func(ctx context.Context, account models.Account) (models.Account, error)
}

// flowContext is the data carried through the transitions of one flow.
type flowContext struct {
	account        models.Account
	dashAccountID  string
	paymentMethod  *models.PaymentMethod
	depositAddress string

	// amount bounds
	hasMax      bool
	balance     decimal.Decimal
	balanceType models.InputType
	minFiat     decimal.Decimal

	amountText   string
	inputType    models.InputType
	quote        *models.Quote
	dashAmount   decimal.Decimal
	cryptoAmount decimal.Decimal
	sendAll      bool
	valueError   models.SwapValueErrorType
	valueBound   *models.Amount

	order     *models.Order
	transfer  *models.SendTransactionToWalletParams
	txID      string
	twoFactor *TwoFactorRetry
	failure   *models.FlowFailure

	expired   bool
	expiresAt time.Time
}

// Flow is one buy, convert or transfer session. Every exported operation
// is serialized by mu; network calls run with mu released and their results
// are dropped if the flow moved on in the meantime.
type Flow struct {
	mu sync.Mutex

	id        uuid.UUID
	userID    uuid.UUID
	kind      models.FlowKind
	createdAt time.Time
	updatedAt time.Time

	state models.FlowState
	seq   uint64
	busy  bool
	data  flowContext
	deps  flowDeps

	timer       *time.Timer
	subscribers map[int]chan models.FlowSnapshot
	nextSubID   int
	record      *models.FlowRecord

	log *zap.SugaredLogger
}

func newFlow(userID uuid.UUID, kind models.FlowKind, data flowContext, deps flowDeps) *Flow {
	id := uuid.New()
	now := deps.now()
	return &Flow{
		id:          id,
		userID:      userID,
		kind:        kind,
		createdAt:   now,
		updatedAt:   now,
		state:       models.StateIdle,
		data:        data,
		deps:        deps,
		subscribers: make(map[int]chan models.FlowSnapshot),
		log:         logger.ForFlow(id.String(), string(kind)),
	}
}

// ID returns the flow id.
func (f *Flow) ID() uuid.UUID {
	return f.id
}

// State returns the current state.
func (f *Flow) State() models.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot returns the renderable view of the flow.
func (f *Flow) Snapshot() models.FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() models.FlowSnapshot {
	snap := models.FlowSnapshot{
		ID:               f.id,
		Kind:             f.kind,
		State:            f.state,
		InputType:        f.data.inputType,
		ValueError:       f.data.valueError,
		Expired:          f.data.expired,
		TransactionID:    f.data.txID,
		TwoFactorPending: f.data.twoFactor != nil,
		UpdatedAt:        f.updatedAt,
	}

	account := f.data.account
	snap.Account = &account
	if f.data.quote != nil {
		quote := *f.data.quote
		snap.Quote = &quote
	}
	if f.data.valueBound != nil {
		bound := *f.data.valueBound
		snap.ValueErrorBound = &bound
	}
	if !f.data.expiresAt.IsZero() && (f.state == models.StateAwaitingConfirmation || f.state == models.StateOrderPlaced) {
		expiresAt := f.data.expiresAt
		snap.ExpiresAt = &expiresAt
	}
	if f.data.order != nil {
		snap.OrderID = f.data.order.ID
	}
	if f.data.failure != nil {
		failure := *f.data.failure
		snap.Failure = &failure
	}
	return snap
}

// subscribe returns a channel that receives the current snapshot and every
// later one. Slow readers only see the latest snapshot.
func (f *Flow) subscribe() (<-chan models.FlowSnapshot, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan models.FlowSnapshot, 1)
	ch <- f.snapshotLocked()

	id := f.nextSubID
	f.nextSubID++
	f.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.subscribers[id]; ok {
				delete(f.subscribers, id)
				close(ch)
			}
		})
	}
}

// publish sends the current snapshot to subscribers. f.mu must be held.
func (f *Flow) publish() {
	snap := f.snapshotLocked()
	for _, ch := range f.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// takeRecord returns the terminal record produced since the last call.
func (f *Flow) takeRecord() (models.FlowRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return models.FlowRecord{}, false
	}
	rec := *f.record
	f.record = nil
	return rec, true
}

// idleSince reports whether the flow has not changed since t and has no
// step in progress.
func (f *Flow) idleSince(t time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.busy && f.updatedAt.Before(t)
}

// close stops the timer and ends every subscription.
func (f *Flow) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimer()
	for id, ch := range f.subscribers {
		delete(f.subscribers, id)
		close(ch)
	}
}

// acquire locks the flow for an operation allowed in one of states. The
// lock is held on success and released on error.
func (f *Flow) acquire(states ...models.FlowState) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrFlowBusy
	}
	for _, s := range states {
		if f.state == s {
			return nil
		}
	}
	current := f.state
	f.mu.Unlock()
	return fmt.Errorf("%w: %s", ErrInvalidTransition, current)
}

// startCall releases the lock for a network call and returns the sequence
// number its result must match.
func (f *Flow) startCall() uint64 {
	f.busy = true
	seq := f.seq
	f.mu.Unlock()
	return seq
}

// finishCall reacquires the lock after a network call. It reports false
// when the flow changed while the call was in flight.
func (f *Flow) finishCall(seq uint64) bool {
	f.mu.Lock()
	f.busy = false
	return f.seq == seq
}

// transition moves the flow to state to. f.mu must be held.
func (f *Flow) transition(to models.FlowState) {
	from := f.state
	f.state = to
	f.seq++
	f.updatedAt = f.deps.now()

	f.log.Infow("flow transition", "from", from, "to", to)

	if to.Terminal() {
		f.stopTimer()
		f.record = f.recordLocked()
	}
	f.publish()
}

func (f *Flow) recordLocked() *models.FlowRecord {
	rec := &models.FlowRecord{
		FlowID:        f.id,
		UserID:        f.userID,
		Kind:          f.kind,
		State:         f.state,
		DashAmount:    f.data.dashAmount,
		FiatCurrency:  f.data.account.FiatCurrency,
		TransactionID: f.data.txID,
		CreatedAt:     f.createdAt,
		FinishedAt:    f.updatedAt,
	}
	if f.data.quote != nil {
		rec.FiatAmount = f.data.quote.Fiat.Value
	}
	if f.data.order != nil {
		rec.OrderID = f.data.order.ID
	}
	if f.data.failure != nil {
		rec.FailureKind = string(f.data.failure.Kind)
	}
	return rec
}

// startTimer arms quote expiry for the current state. f.mu must be held.
func (f *Flow) startTimer() {
	f.stopTimer()
	f.data.expired = false
	f.data.expiresAt = f.deps.now().Add(f.deps.quoteTTL)
	seq := f.seq
	f.timer = time.AfterFunc(f.deps.quoteTTL, func() {
		f.expireQuote(seq)
	})
}

func (f *Flow) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// expireQuote returns a stale quote to the preview. A placed but
// uncommitted order is abandoned.
func (f *Flow) expireQuote(seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq != seq || f.busy {
		return
	}
	if f.state != models.StateAwaitingConfirmation && f.state != models.StateOrderPlaced {
		return
	}

	f.log.Infow("quote expired", "state", f.state)
	if f.data.order != nil {
		f.log.Warnw("abandoning uncommitted order", "order_id", f.data.order.ID)
	}
	f.timer = nil
	f.data.expired = true
	f.data.order = nil
	f.transition(models.StateQuotePreview)
}

// enterAmount validates text typed in inputType and moves to the preview.
func (f *Flow) enterAmount(ctx context.Context, text string, inputType models.InputType) error {
	if err := f.acquire(models.StateIdle, models.StateQuotePreview); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if !inputType.Valid() || (inputType == models.InputCrypto && f.kind != models.FlowConvert) {
		return fmt.Errorf("%w: input type %q", ErrInvalidInput, inputType)
	}

	f.data.amountText = text
	f.data.inputType = inputType
	return f.requote(ctx)
}

// requote computes the quote for the entered amount, validates it against
// the bounds and moves to the preview. f.mu must be held.
func (f *Flow) requote(ctx context.Context) error {
	c := f.deps.converter
	account := f.data.account
	input := f.data.inputType

	value := c.ParseAmount(f.data.amountText)
	entered := c.Amount(value, input, account)

	quote := &models.Quote{
		Fiat: c.Convert(value, input, models.InputFiat, account),
		Dash: c.Convert(value, input, models.InputDash, account),
	}
	cryptoAmount := decimal.Zero
	if f.kind == models.FlowConvert {
		crypto := c.Convert(value, input, models.InputCrypto, account)
		quote.Crypto = &crypto
		cryptoAmount = crypto.Value
	}
	dashAmount := quote.Dash.Value

	valueError := models.SwapValueNoError
	var bound *models.Amount
	sendAll := false

	if f.data.hasMax && entered.Value.IsPositive() {
		maxAmount := c.MaxAmount(f.data.balance, f.data.balanceType, input, account)
		switch entered.Value.Cmp(maxAmount.Value) {
		case 1:
			valueError = models.SwapValueMoreThanMax
			bound = &maxAmount
		case 0:
			// the whole balance, not its rounded display
			sendAll = true
			switch f.data.balanceType {
			case models.InputDash:
				dashAmount = f.data.balance
			case models.InputCrypto:
				cryptoAmount = f.data.balance
				dashAmount = c.Convert(f.data.balance, models.InputCrypto, models.InputDash, account).Value
			}
		}
	}

	if valueError == models.SwapValueNoError && f.kind.PlacesOrder() && f.data.minFiat.IsPositive() &&
		quote.Fiat.Value.LessThan(f.data.minFiat) {
		valueError = models.SwapValueLessThanMin
		minAmount := c.Amount(f.data.minFiat, models.InputFiat, account)
		bound = &minAmount
	}

	if valueError == models.SwapValueNoError && f.kind == models.FlowTransferToCustody && dashAmount.IsPositive() {
		seq := f.startCall()
		details, err := f.deps.wallet.EstimateNetworkFee(context.WithoutCancel(ctx), f.data.depositAddress, dashAmount, sendAll)
		if !f.finishCall(seq) {
			return ErrFlowInterrupted
		}
		switch kind := classify(err); {
		case err == nil:
			quote.NetworkFee = details.Fee
			if sendAll {
				dashAmount = details.AmountToSend
			} else if dashAmount.Add(details.Fee).GreaterThan(f.data.balance) {
				valueError = models.SwapValueNotEnoughBalance
			}
		case kind == models.FailureInsufficientBalance:
			valueError = models.SwapValueNotEnoughBalance
		default:
			f.log.Errorw("network fee estimation failed", "amount", dashAmount, "error", err)
			f.data.quote = nil
			f.data.valueError = models.SwapValueNoError
			f.data.valueBound = nil
			f.data.failure = &models.FlowFailure{Kind: kind, Message: kind.Message()}
			f.transition(models.StateQuotePreview)
			return newFlowError(kind, err)
		}
	}

	f.data.quote = quote
	f.data.dashAmount = dashAmount
	f.data.cryptoAmount = cryptoAmount
	f.data.sendAll = sendAll
	f.data.valueError = valueError
	f.data.valueBound = bound
	f.data.expired = false
	f.data.failure = nil
	f.transition(models.StateQuotePreview)
	return nil
}

// proceed moves a valid preview to confirmation and arms quote expiry.
func (f *Flow) proceed() error {
	if err := f.acquire(models.StateQuotePreview); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if f.data.expired {
		return newFlowError(models.FailureQuoteExpired, ErrQuoteExpired)
	}
	if err := f.confirmableLocked(); err != nil {
		return err
	}

	f.transition(models.StateAwaitingConfirmation)
	f.startTimer()
	f.publish()
	return nil
}

func (f *Flow) confirmableLocked() error {
	switch f.data.valueError {
	case models.SwapValueLessThanMin:
		return newFlowError(models.FailureBelowMinimum, ErrAmountNotConfirmable)
	case models.SwapValueMoreThanMax:
		return newFlowError(models.FailureAboveMaximum, ErrAmountNotConfirmable)
	case models.SwapValueNotEnoughBalance:
		return newFlowError(models.FailureInsufficientBalance, ErrAmountNotConfirmable)
	}
	if f.data.quote == nil {
		return newFlowError(models.FailureQuoteUnavailable, ErrAmountNotConfirmable)
	}
	if !f.data.dashAmount.IsPositive() {
		return newFlowError(models.FailureBelowMinimum, ErrAmountNotConfirmable)
	}
	return nil
}

// staleQuoteLocked returns the error for an operation attempted on the
// preview: an expired quote must be refreshed first.
func (f *Flow) staleQuoteLocked() error {
	if f.data.expired {
		return newFlowError(models.FailureQuoteExpired, ErrQuoteExpired)
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, f.state)
}

// confirm places the order, or starts the transfer for transfer flows.
func (f *Flow) confirm(ctx context.Context) error {
	if err := f.acquire(models.StateAwaitingConfirmation, models.StateQuotePreview); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if f.state == models.StateQuotePreview {
		return f.staleQuoteLocked()
	}
	f.stopTimer()

	switch f.kind {
	case models.FlowBuy:
		req := pendingRequest{
			step: stepPlaceBuy,
			placeBuy: models.PlaceOrderParams{
				IdempotencyKey:  f.deps.newKey(),
				AccountID:       f.data.dashAccountID,
				Amount:          f.data.dashAmount,
				Currency:        models.DASH,
				PaymentMethodID: f.data.paymentMethod.ID,
				Commit:          false,
			},
		}
		return f.runStep(ctx, req)
	case models.FlowConvert:
		req := pendingRequest{
			step: stepPlaceTrade,
			trade: models.SwapTradeOrder{
				IdempotencyKey: f.deps.newKey(),
				Amount:         f.data.cryptoAmount,
				AmountAsset:    f.data.account.Currency,
				AmountFrom:     "input",
				SourceAssetID:  f.data.account.ID,
				TargetAssetID:  f.data.dashAccountID,
			},
		}
		return f.runStep(ctx, req)
	case models.FlowTransferToWallet:
		return f.payoutToWallet(ctx, f.data.dashAmount)
	case models.FlowTransferToCustody:
		return f.sendToCustody(ctx)
	}
	return fmt.Errorf("%w: kind %s", ErrInvalidTransition, f.kind)
}

// commit commits the placed order and pays the result out to the wallet.
func (f *Flow) commit(ctx context.Context) error {
	if err := f.acquire(models.StateOrderPlaced, models.StateQuotePreview); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if f.state == models.StateQuotePreview {
		return f.staleQuoteLocked()
	}
	f.stopTimer()

	req := pendingRequest{
		step:      stepCommitBuy,
		accountID: f.data.dashAccountID,
		orderID:   f.data.order.ID,
	}
	if f.kind == models.FlowConvert {
		req.step = stepCommitTrade
	}
	return f.runStep(ctx, req)
}

// submitTwoFactor resubmits the parked request with code.
func (f *Flow) submitTwoFactor(ctx context.Context, code string) error {
	if err := f.acquire(models.StateAwaitingTwoFactor); err != nil {
		return err
	}
	defer f.mu.Unlock()

	retry := f.data.twoFactor
	if retry == nil {
		return ErrNoTwoFactorPending
	}

	seq := f.startCall()
	res, err := retry.Submit(context.WithoutCancel(ctx), f.deps.provider, code)
	if !f.finishCall(seq) {
		f.log.Warnw("discarding two-factor result of interrupted flow", "idem", retry.IdempotencyKey())
		return ErrFlowInterrupted
	}

	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return err
		}
		switch kind := classify(err); kind {
		case models.FailureInvalidTwoFactorCode, models.FailureTwoFactorRequired:
			f.data.failure = &models.FlowFailure{Kind: kind, Message: kind.Message()}
			f.updatedAt = f.deps.now()
			f.publish()
			return newFlowError(kind, err)
		default:
			f.data.twoFactor = nil
			return f.fail(kind, err)
		}
	}

	f.data.twoFactor = nil
	f.data.failure = nil
	return f.advance(ctx, retry.request, res)
}

// retry refreshes the rates and re-quotes an expired or failed flow. It
// never confirms on its own.
func (f *Flow) retry(ctx context.Context) error {
	if err := f.acquire(models.StateQuotePreview, models.StateFailed); err != nil {
		return err
	}
	defer f.mu.Unlock()

	if f.data.inputType == "" {
		return fmt.Errorf("%w: no amount entered", ErrInvalidTransition)
	}

	seq := f.startCall()
	account, err := f.deps.reload(context.WithoutCancel(ctx), f.data.account)
	if !f.finishCall(seq) {
		return ErrFlowInterrupted
	}
	if err != nil {
		f.log.Errorw("failed to refresh rates", "error", err)
		return newFlowError(classify(err), err)
	}

	f.data.account = account
	f.data.order = nil
	f.data.transfer = nil
	f.data.twoFactor = nil
	f.data.txID = ""
	return f.requote(ctx)
}

// cancel ends the flow. A step in flight finishes but its result is dropped.
// A failed flow is already stopped and keeps its failure record.
func (f *Flow) cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Terminal() {
		return fmt.Errorf("%w: %s", ErrInvalidTransition, f.state)
	}

	f.stopTimer()
	f.data.twoFactor = nil
	f.transition(models.StateCancelled)
	return nil
}

// runStep performs req and continues the flow with its result. f.mu must be held.
func (f *Flow) runStep(ctx context.Context, req pendingRequest) error {
	seq := f.startCall()
	res, err := req.execute(context.WithoutCancel(ctx), f.deps.provider, "")
	if !f.finishCall(seq) {
		f.log.Warnw("discarding result of interrupted step", "step", req.step.String(), "idem", req.idempotencyKey())
		return ErrFlowInterrupted
	}
	if err != nil {
		return f.stepFailed(req, err)
	}
	return f.advance(ctx, req, res)
}

// stepFailed parks req on a two-factor challenge and fails the flow on
// anything else. f.mu must be held.
func (f *Flow) stepFailed(req pendingRequest, err error) error {
	kind := classify(err)
	if kind == models.FailureTwoFactorRequired {
		f.log.Infow("two-factor code required", "step", req.step.String(), "idem", req.idempotencyKey())
		f.data.twoFactor = newTwoFactorRetry(req)
		f.data.failure = nil
		f.transition(models.StateAwaitingTwoFactor)
		return nil
	}
	return f.fail(kind, err)
}

// fail moves the flow to Failed. f.mu must be held.
func (f *Flow) fail(kind models.FailureKind, err error) error {
	f.log.Errorw("flow step failed", "state", f.state, "kind", kind, "error", err)
	f.data.failure = &models.FlowFailure{Kind: kind, Message: kind.Message()}
	f.transition(models.StateFailed)
	return newFlowError(kind, err)
}

// advance continues the flow after req succeeded. f.mu must be held.
func (f *Flow) advance(ctx context.Context, req pendingRequest, res pendingResult) error {
	switch req.step {
	case stepPlaceBuy, stepPlaceTrade:
		order := res.order
		f.data.order = &order
		if f.data.quote != nil {
			f.data.quote.Fee = order.Fee
			f.data.quote.Total = order.Total
		}
		f.transition(models.StateOrderPlaced)
		f.startTimer()
		f.publish()
		return nil

	case stepCommitBuy, stepCommitTrade:
		amount := f.data.dashAmount
		if f.data.order != nil {
			merged := *f.data.order
			if res.order.Status != "" {
				merged.Status = res.order.Status
			}
			if res.order.Amount.IsPositive() {
				merged.Amount = res.order.Amount
			}
			f.data.order = &merged
			if merged.Amount.IsPositive() && merged.Currency == models.DASH {
				amount = merged.Amount
			}
		}
		f.data.dashAmount = amount
		f.transition(models.StateOrderCommitted)
		return f.payoutToWallet(ctx, amount)

	case stepSendToWallet:
		f.data.txID = res.sent.ID
		f.transition(models.StateCompleted)
		return nil
	}
	return fmt.Errorf("%w: step %s", ErrInvalidTransition, req.step)
}

// payoutToWallet sends amount from custody to a fresh wallet address.
// f.mu must be held.
func (f *Flow) payoutToWallet(ctx context.Context, amount decimal.Decimal) error {
	f.transition(models.StateAwaitingTransfer)

	seq := f.startCall()
	address, err := f.deps.wallet.FreshReceiveAddress(context.WithoutCancel(ctx))
	if !f.finishCall(seq) {
		return ErrFlowInterrupted
	}
	if err != nil {
		return f.fail(classify(err), err)
	}

	req := pendingRequest{
		step: stepSendToWallet,
		send: models.SendTransactionToWalletParams{
			AccountID:      f.data.dashAccountID,
			Amount:         amount,
			Currency:       models.DASH,
			IdempotencyKey: f.deps.newKey(),
			To:             address,
			Type:           models.TransactionTypeSend,
		},
	}
	f.data.transfer = &req.send
	return f.runStep(ctx, req)
}

// sendToCustody sends the quoted amount from the wallet to the custody
// deposit address. f.mu must be held.
func (f *Flow) sendToCustody(ctx context.Context) error {
	f.transition(models.StateAwaitingTransfer)

	seq := f.startCall()
	txID, err := f.deps.wallet.SendCoins(context.WithoutCancel(ctx), f.data.depositAddress, f.data.dashAmount, f.data.sendAll)
	if !f.finishCall(seq) {
		return ErrFlowInterrupted
	}
	if err != nil {
		return f.fail(classify(err), err)
	}

	f.data.txID = txID
	f.transition(models.StateCompleted)
	return nil
}
