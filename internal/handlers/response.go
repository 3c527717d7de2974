package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/sbilibin2017/gw-dash-swap/internal/services"
)

// UserIDGetter returns the authenticated wallet user of a request context.
type UserIDGetter func(ctx context.Context) (uuid.UUID, bool)

// ProviderTokenHeader carries the provider OAuth access token on requests
// that have no body.
const ProviderTokenHeader = "X-Provider-Token"

var failureStatus = map[models.FailureKind]int{
	models.FailureQuoteUnavailable:        http.StatusServiceUnavailable,
	models.FailureQuoteExpired:            http.StatusConflict,
	models.FailureInsufficientBalance:     http.StatusUnprocessableEntity,
	models.FailureBelowMinimum:            http.StatusUnprocessableEntity,
	models.FailureAboveMaximum:            http.StatusUnprocessableEntity,
	models.FailureTwoFactorRequired:       http.StatusAccepted,
	models.FailureInvalidTwoFactorCode:    http.StatusUnprocessableEntity,
	models.FailureProviderUnauthorized:    http.StatusForbidden,
	models.FailureProviderHard:            http.StatusBadGateway,
	models.FailureDustySend:               http.StatusUnprocessableEntity,
	models.FailureCouldNotAdjustDownwards: http.StatusUnprocessableEntity,
	models.FailureNetworkFeeEstimation:    http.StatusBadGateway,
	models.FailureSend:                    http.StatusBadGateway,
	models.FailureInvalidTransition:       http.StatusConflict,
	models.FailureInvalidPaymentMethod:    http.StatusBadRequest,
	models.FailureAccountNotFound:         http.StatusNotFound,
}

// errorStatus maps a service error to an HTTP status, a failure kind and a
// message that is safe to show.
func errorStatus(err error) (int, models.FailureKind, string) {
	var flowErr *services.FlowError
	switch {
	case errors.As(err, &flowErr):
		status, ok := failureStatus[flowErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		return status, flowErr.Kind, flowErr.Message()
	case errors.Is(err, services.ErrFlowNotFound):
		return http.StatusNotFound, "", "Flow not found"
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, "", err.Error()
	case errors.Is(err, services.ErrFlowBusy),
		errors.Is(err, services.ErrFlowInterrupted),
		errors.Is(err, services.ErrTwoFactorInFlight):
		return http.StatusConflict, models.FailureInvalidTransition, err.Error()
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNoTwoFactorPending):
		return http.StatusConflict, models.FailureInvalidTransition, models.FailureInvalidTransition.Message()
	case errors.Is(err, services.ErrQuoteUnavailable):
		return http.StatusServiceUnavailable, models.FailureQuoteUnavailable, models.FailureQuoteUnavailable.Message()
	}
	return http.StatusInternalServerError, "", "Internal server error"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.FlowErrorResponse{Error: msg})
}

// writeFlowResult writes the snapshot, or the error together with the
// snapshot when the flow exists.
func writeFlowResult(w http.ResponseWriter, snap models.FlowSnapshot, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, snap)
		return
	}

	status, kind, msg := errorStatus(err)
	resp := models.FlowErrorResponse{Kind: kind, Error: msg}
	if snap.ID != uuid.Nil {
		resp.Flow = &snap
	}
	writeJSON(w, status, resp)
}

// requestUser returns the authenticated user. It writes 401 and returns
// false when there is none.
func requestUser(w http.ResponseWriter, r *http.Request, userIDGetter UserIDGetter) (uuid.UUID, bool) {
	userID, ok := userIDGetter(r.Context())
	if !ok || userID == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// requestFlow returns the user and the flow id of a flow route.
func requestFlow(w http.ResponseWriter, r *http.Request, userIDGetter UserIDGetter) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := requestUser(w, r, userIDGetter)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	flowID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Log.Warnw("invalid flow id", "id", chi.URLParam(r, "id"), "error", err)
		writeError(w, http.StatusBadRequest, "Invalid flow id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, flowID, true
}
