package handlers

//go:generate mockgen -source=payment_method.go -destination=payment_method_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
)

// PaymentMethodsGetter defines the interface that the service must implement.
type PaymentMethodsGetter interface {
	GetPaymentMethods(ctx context.Context, providerToken string) ([]models.PaymentMethod, error)
}

// NewGetPaymentMethodsHandler returns an HTTP handler listing payment methods.
// @Summary Get payment methods
// @Description Lists the active payment methods of the user at the provider, ready for display
// @Tags custody
// @Produce json
// @Param X-Provider-Token header string true "Provider OAuth access token"
// @Success 200 {object} models.PaymentMethodsResponse "Payment methods"
// @Failure 400 {object} models.FlowErrorResponse "Missing provider token"
// @Failure 401 {object} models.FlowErrorResponse "Unauthorized"
// @Failure 403 {object} models.FlowErrorResponse "Provider session expired"
// @Failure 502 {object} models.FlowErrorResponse "Provider failure"
// @Router /payment-methods [get]
// @Security BearerAuth
func NewGetPaymentMethodsHandler(svc PaymentMethodsGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r, userIDGetter)
		if !ok {
			return
		}

		token := r.Header.Get(ProviderTokenHeader)
		if token == "" {
			writeError(w, http.StatusBadRequest, "Missing provider token")
			return
		}

		methods, err := svc.GetPaymentMethods(r.Context(), token)
		if err != nil {
			logger.Log.Errorw("failed to get payment methods", "userID", userID, "error", err)
			writeFlowResult(w, models.FlowSnapshot{}, err)
			return
		}

		writeJSON(w, http.StatusOK, models.PaymentMethodsResponse{PaymentMethods: methods})
	}
}
