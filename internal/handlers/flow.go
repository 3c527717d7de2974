package handlers

//go:generate mockgen -source=flow.go -destination=flow_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// FlowStarter defines the interface that the service must implement.
type FlowStarter interface {
	StartFlow(ctx context.Context, userID uuid.UUID, req models.StartFlowRequest) (models.FlowSnapshot, error)
}

// FlowGetter returns the current snapshot of a flow.
type FlowGetter interface {
	GetFlow(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// AmountEnterer sets the amount of a flow.
type AmountEnterer interface {
	EnterAmount(ctx context.Context, userID, flowID uuid.UUID, req models.EnterAmountRequest) (models.FlowSnapshot, error)
}

// FlowContinuer moves a quote preview to confirmation.
type FlowContinuer interface {
	Continue(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// FlowConfirmer places the order or starts the transfer.
type FlowConfirmer interface {
	Confirm(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// FlowCommitter commits a placed order.
type FlowCommitter interface {
	Commit(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// FlowRetrier re-quotes an expired or failed flow.
type FlowRetrier interface {
	Retry(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// TwoFactorSubmitter resubmits a request with a two-factor code.
type TwoFactorSubmitter interface {
	SubmitTwoFactorCode(ctx context.Context, userID, flowID uuid.UUID, code string) (models.FlowSnapshot, error)
}

// FlowCanceller ends a flow.
type FlowCanceller interface {
	Cancel(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)
}

// NewStartFlowHandler returns an HTTP handler for starting a flow.
// @Summary Start a flow
// @Description Opens a buy, convert or transfer flow. Reads the custody accounts and rates of the user and returns the idle flow.
// @Tags flows
// @Accept json
// @Produce json
// @Param request body models.StartFlowRequest true "Start Flow Request"
// @Success 201 {object} models.FlowSnapshot "Flow started"
// @Failure 400 {object} models.FlowErrorResponse "Invalid request"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 403 {object} models.FlowErrorResponse "Provider session expired"
// @Failure 404 {object} models.FlowErrorResponse "Provider account not found"
// @Failure 503 {object} models.FlowErrorResponse "Exchange rate unavailable"
// @Router /flows [post]
// @Security BearerAuth
func NewStartFlowHandler(svc FlowStarter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req models.StartFlowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode start flow request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		snap, err := svc.StartFlow(r.Context(), userID, req)
		if err != nil {
			logger.Log.Errorw("failed to start flow", "userID", userID, "kind", req.Kind, "error", err)
			writeFlowResult(w, snap, err)
			return
		}

		writeJSON(w, http.StatusCreated, snap)
	}
}

// NewGetFlowHandler returns an HTTP handler for reading a flow.
// @Summary Get a flow
// @Description Returns the current snapshot of a flow of the user
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot
// @Failure 400 {object} models.FlowErrorResponse "Invalid flow id"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Router /flows/{id} [get]
// @Security BearerAuth
func NewGetFlowHandler(svc FlowGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, flowID, ok := requestFlow(w, r, userIDGetter)
		if !ok {
			return
		}

		snap, err := svc.GetFlow(r.Context(), userID, flowID)
		writeFlowResult(w, snap, err)
	}
}

// NewEnterAmountHandler returns an HTTP handler for entering an amount.
// @Summary Enter an amount
// @Description Sets the amount in fiat, DASH or the source crypto and refreshes the quote. Out of range amounts are reported in value_error.
// @Tags flows
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body models.EnterAmountRequest true "Enter Amount Request"
// @Success 200 {object} models.FlowSnapshot "Quote preview"
// @Failure 400 {object} models.FlowErrorResponse "Invalid request"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Not allowed at this step"
// @Failure 503 {object} models.FlowErrorResponse "Exchange rate unavailable"
// @Router /flows/{id}/amount [post]
// @Security BearerAuth
func NewEnterAmountHandler(svc AmountEnterer, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, flowID, ok := requestFlow(w, r, userIDGetter)
		if !ok {
			return
		}

		var req models.EnterAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode amount request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		snap, err := svc.EnterAmount(r.Context(), userID, flowID, req)
		writeFlowResult(w, snap, err)
	}
}

// flowStep is a flow operation that takes no input.
type flowStep func(ctx context.Context, userID, flowID uuid.UUID) (models.FlowSnapshot, error)

func newFlowStepHandler(name string, step flowStep, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, flowID, ok := requestFlow(w, r, userIDGetter)
		if !ok {
			return
		}

		snap, err := step(r.Context(), userID, flowID)
		if err != nil {
			logger.Log.Warnw("flow step failed", "step", name, "flow_id", flowID, "error", err)
		}
		writeFlowResult(w, snap, err)
	}
}

// NewContinueHandler returns an HTTP handler for moving a quote to confirmation.
// @Summary Continue to confirmation
// @Description Validates the quote and starts the quote timer
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot "Awaiting confirmation"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Quote expired or not allowed at this step"
// @Failure 422 {object} models.FlowErrorResponse "Amount out of range"
// @Router /flows/{id}/continue [post]
// @Security BearerAuth
func NewContinueHandler(svc FlowContinuer, userIDGetter UserIDGetter) http.HandlerFunc {
	return newFlowStepHandler("continue", svc.Continue, userIDGetter)
}

// NewConfirmHandler returns an HTTP handler for confirming a quote.
// @Summary Confirm
// @Description Places the buy order or trade, or starts the transfer. A two-factor challenge moves the flow to awaiting_two_factor.
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Quote expired or not allowed at this step"
// @Failure 422 {object} models.FlowErrorResponse "Insufficient balance"
// @Failure 502 {object} models.FlowErrorResponse "Provider failure"
// @Router /flows/{id}/confirm [post]
// @Security BearerAuth
func NewConfirmHandler(svc FlowConfirmer, userIDGetter UserIDGetter) http.HandlerFunc {
	return newFlowStepHandler("confirm", svc.Confirm, userIDGetter)
}

// NewCommitHandler returns an HTTP handler for committing a placed order.
// @Summary Commit
// @Description Commits the placed order and pays the DASH out to the wallet
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Quote expired or not allowed at this step"
// @Failure 502 {object} models.FlowErrorResponse "Provider failure"
// @Router /flows/{id}/commit [post]
// @Security BearerAuth
func NewCommitHandler(svc FlowCommitter, userIDGetter UserIDGetter) http.HandlerFunc {
	return newFlowStepHandler("commit", svc.Commit, userIDGetter)
}

// NewRetryHandler returns an HTTP handler for retrying a flow.
// @Summary Retry
// @Description Reloads the rates of an expired or failed flow and re-quotes the entered amount
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot "Quote preview"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Not allowed at this step"
// @Failure 503 {object} models.FlowErrorResponse "Exchange rate unavailable"
// @Router /flows/{id}/retry [post]
// @Security BearerAuth
func NewRetryHandler(svc FlowRetrier, userIDGetter UserIDGetter) http.HandlerFunc {
	return newFlowStepHandler("retry", svc.Retry, userIDGetter)
}

// NewCancelHandler returns an HTTP handler for cancelling a flow.
// @Summary Cancel
// @Description Ends the flow. A step in progress is discarded when it returns. A completed, failed or cancelled flow cannot be cancelled.
// @Tags flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} models.FlowSnapshot "Cancelled"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "Flow already completed, failed or cancelled"
// @Router /flows/{id}/cancel [post]
// @Security BearerAuth
func NewCancelHandler(svc FlowCanceller, userIDGetter UserIDGetter) http.HandlerFunc {
	return newFlowStepHandler("cancel", svc.Cancel, userIDGetter)
}

// NewTwoFactorHandler returns an HTTP handler for submitting a two-factor code.
// @Summary Submit two-factor code
// @Description Resubmits the request waiting for a two-factor code with the same idempotency key
// @Tags flows
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body models.TwoFactorRequest true "Two-Factor Request"
// @Success 200 {object} models.FlowSnapshot
// @Failure 400 {object} models.FlowErrorResponse "Invalid request"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 404 {object} models.FlowErrorResponse "Flow not found"
// @Failure 409 {object} models.FlowErrorResponse "No code is awaited"
// @Failure 422 {object} models.FlowErrorResponse "Invalid code"
// @Router /flows/{id}/two-factor [post]
// @Security BearerAuth
func NewTwoFactorHandler(svc TwoFactorSubmitter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, flowID, ok := requestFlow(w, r, userIDGetter)
		if !ok {
			return
		}

		var req models.TwoFactorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode two-factor request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		snap, err := svc.SubmitTwoFactorCode(r.Context(), userID, flowID, req.Code)
		writeFlowResult(w, snap, err)
	}
}
