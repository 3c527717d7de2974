package handlers

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/sbilibin2017/gw-dash-swap/internal/services"
)

// ExchangeRateGetter defines the interface that the service must implement.
type ExchangeRateGetter interface {
	GetExchangeRate(ctx context.Context, currencyCode string) (models.ExchangeRate, error)
}

// FiatCurrencyLister lists the fiat currencies that can be quoted.
type FiatCurrencyLister interface {
	GetFiatCurrencies(ctx context.Context) ([]string, error)
}

// NewGetExchangeRateHandler returns an HTTP handler for fetching the DASH exchange rate.
// @Summary Get exchange rate
// @Description Returns the value of 1 DASH in the currency
// @Tags rates
// @Produce json
// @Param currency path string true "Currency code"
// @Success 200 {object} models.ExchangeRate "Exchange rate"
// @Failure 400 {object} models.ExchangeRateErrorResponse "Invalid currency"
// @Failure 401 {object} models.ExchangeRateErrorResponse "Unauthorized"
// @Failure 503 {object} models.ExchangeRateErrorResponse "Failed to retrieve exchange rate"
// @Router /rates/{currency} [get]
// @Security BearerAuth
func NewGetExchangeRateHandler(svc ExchangeRateGetter, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestUser(w, r, userIDGetter); !ok {
			return
		}

		code := strings.ToUpper(chi.URLParam(r, "currency"))
		if len(code) != 3 {
			writeJSON(w, http.StatusBadRequest, models.ExchangeRateErrorResponse{Error: "Invalid currency"})
			return
		}

		rate, err := svc.GetExchangeRate(r.Context(), code)
		if err != nil {
			logger.Log.Errorw("failed to get exchange rate", "currency", code, "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrQuoteUnavailable) {
				status = http.StatusServiceUnavailable
			}
			writeJSON(w, status, models.ExchangeRateErrorResponse{Error: "Failed to retrieve exchange rate"})
			return
		}

		writeJSON(w, http.StatusOK, rate)
	}
}

// NewGetCurrenciesHandler returns an HTTP handler listing the fiat currencies.
// @Summary Get fiat currencies
// @Description Lists the fiat currencies DASH can be quoted in
// @Tags rates
// @Produce json
// @Success 200 {object} models.CurrenciesResponse "Currencies"
// @Failure 401 {object} models.ExchangeRateErrorResponse "Unauthorized"
// @Failure 502 {object} models.ExchangeRateErrorResponse "Failed to retrieve currencies"
// @Router /currencies [get]
// @Security BearerAuth
func NewGetCurrenciesHandler(svc FiatCurrencyLister, userIDGetter UserIDGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestUser(w, r, userIDGetter); !ok {
			return
		}

		codes, err := svc.GetFiatCurrencies(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list fiat currencies", "error", err)
			writeJSON(w, http.StatusBadGateway, models.ExchangeRateErrorResponse{Error: "Failed to retrieve currencies"})
			return
		}

		writeJSON(w, http.StatusOK, models.CurrenciesResponse{Currencies: codes})
	}
}
