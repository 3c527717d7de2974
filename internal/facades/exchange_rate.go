package facades

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// FiatRatesGRPCFacade reads fiat-to-fiat rates from the exchanger service.
type FiatRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewFiatRatesGRPCFacade creates a new facade with a gRPC client.
func NewFiatRatesGRPCFacade(client pb.ExchangeServiceClient) *FiatRatesGRPCFacade {
	return &FiatRatesGRPCFacade{client: client}
}

// GetExchangeRateForCurrency returns how many toCurrency units 1 fromCurrency buys.
func (f *FiatRatesGRPCFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: strings.ToUpper(fromCurrency),
		ToCurrency:   strings.ToUpper(toCurrency),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch fiat rate via gRPC",
			"from", req.FromCurrency, "to", req.ToCurrency, "error", err)
		return 0, fmt.Errorf("fiat rate %s/%s: %w", req.FromCurrency, req.ToCurrency, err)
	}

	return resp.Rate, nil
}

// GetFiatCurrencies lists the currency codes the exchanger quotes, sorted.
func (f *FiatRatesGRPCFacade) GetFiatCurrencies(ctx context.Context) ([]string, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch fiat currencies via gRPC", "error", err)
		return nil, err
	}

	codes := make([]string, 0, len(resp.Rates))
	for code := range resp.Rates {
		codes = append(codes, strings.ToUpper(code))
	}
	slices.Sort(codes)
	return codes, nil
}
