package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// FiatDepositor defines the interface that the service must implement.
type FiatDepositor interface {
	DepositToFiatAccount(ctx context.Context, userID uuid.UUID, req models.DepositRequest) (models.Deposit, error)
}

// NewDepositHandler returns an HTTP handler for depositing fiat into custody.
// @Summary Deposit fiat
// @Description Moves fiat from a bank payment method into the custody fiat account of the user
// @Tags custody
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 201 {object} models.DepositResponse "Deposit created"
// @Failure 400 {object} models.FlowErrorResponse "Invalid amount, currency or payment method"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 403 {object} models.FlowErrorResponse "Provider session expired"
// @Failure 422 {object} models.FlowErrorResponse "Amount below minimum"
// @Failure 502 {object} models.FlowErrorResponse "Provider failure"
// @Router /deposits [post]
// @Security BearerAuth
func NewDepositHandler(svc FiatDepositor, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r, userIDGetter)
		if !ok {
			return
		}

		var req models.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		deposit, err := svc.DepositToFiatAccount(r.Context(), userID, req)
		if err != nil {
			logger.Log.Errorw("failed to deposit", "userID", userID, "amount", req.Amount, "currency", req.Currency, "error", err)
			writeFlowResult(w, models.FlowSnapshot{}, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.DepositResponse{
			Message: "Deposit created",
			Deposit: deposit,
		})
	}
}
