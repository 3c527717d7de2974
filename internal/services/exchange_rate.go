package services

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// ErrQuoteUnavailable is returned when no usable exchange rate can be found.
var ErrQuoteUnavailable = errors.New("exchange rate unavailable")

// defaultFetchTimeout bounds a shared source fetch.
const defaultFetchTimeout = 10 * time.Second

// DashRateReader fetches the value of 1 DASH in every currency the source knows.
type DashRateReader interface {
	GetDashExchangeRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// FiatRateReader fetches fiat-to-fiat exchange rates.
type FiatRateReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (float32, error)
}

// ExchangeRateCache caches exchange rates.
type ExchangeRateCache interface {
	GetExchangeRate(ctx context.Context, base, currency string) (decimal.Decimal, error)
	SetExchangeRate(ctx context.Context, base, currency string, rate decimal.Decimal) error
}

// ExchangeRateService supplies DASH exchange rates: cache first, then the
// DASH rate source, then a cross rate through USD using the fiat exchanger.
type ExchangeRateService struct {
	dash  DashRateReader
	fiat  FiatRateReader
	cache ExchangeRateCache
	group singleflight.Group
	now   func() time.Time

	fetchTimeout time.Duration
}

// NewExchangeRateService creates a new service instance.
func NewExchangeRateService(dash DashRateReader, fiat FiatRateReader, cache ExchangeRateCache) *ExchangeRateService {
	return &ExchangeRateService{
		dash:  dash,
		fiat:  fiat,
		cache: cache,
		now:   time.Now,

		fetchTimeout: defaultFetchTimeout,
	}
}

// GetExchangeRate returns the value of 1 DASH in currencyCode. A failed
// lookup is retried once before ErrQuoteUnavailable is returned.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, currencyCode string) (models.ExchangeRate, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))

	rate, err := s.lookup(ctx, code)
	if err != nil {
		logger.Log.Warnw("exchange rate lookup failed, retrying", "currency", code, "error", err)
		rate, err = s.lookup(ctx, code)
	}
	if err != nil {
		logger.Log.Errorw("exchange rate unavailable", "currency", code, "error", err)
		if errors.Is(err, ErrQuoteUnavailable) {
			return models.ExchangeRate{}, err
		}
		return models.ExchangeRate{}, fmt.Errorf("%w: %s: %v", ErrQuoteUnavailable, code, err)
	}

	return models.ExchangeRate{CurrencyCode: code, Rate: rate, UpdatedAt: s.now()}, nil
}

// ObserveExchangeRate emits the rate for currencyCode every time it changes,
// polling at interval. The channel is closed when ctx is done.
func (s *ExchangeRateService) ObserveExchangeRate(ctx context.Context, currencyCode string, interval time.Duration) <-chan models.ExchangeRate {
	out := make(chan models.ExchangeRate, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last decimal.Decimal
		for {
			rate, err := s.GetExchangeRate(ctx, currencyCode)
			if err == nil && !rate.Rate.Equal(last) {
				last = rate.Rate
				select {
				case out <- rate:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// ConvertFiat converts a fiat amount between two fiat currencies.
func (s *ExchangeRateService) ConvertFiat(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	from, to := strings.ToUpper(fromCurrency), strings.ToUpper(toCurrency)
	if from == to {
		return amount, nil
	}

	rate, err := s.fiat.GetExchangeRateForCurrency(ctx, from, to)
	if err != nil {
		logger.Log.Errorw("failed to get fiat exchange rate", "from", from, "to", to, "error", err)
		return decimal.Zero, err
	}
	if rate <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrQuoteUnavailable, from, to)
	}

	return amount.Mul(decimal.NewFromFloat32(rate)).Round(models.CryptoScale), nil
}

// lookup reads the cache and falls back to the sources. Concurrent misses
// for one currency share a single fetch. The fetch is detached from the
// caller that started it, so a cancelled request does not fail the others.
func (s *ExchangeRateService) lookup(ctx context.Context, code string) (decimal.Decimal, error) {
	if rate, err := s.cache.GetExchangeRate(ctx, models.DASH, code); err == nil && rate.IsPositive() {
		return rate, nil
	}

	ch := s.group.DoChan(code, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.fetch(fetchCtx, code)
	})

	select {
	case <-ctx.Done():
		return decimal.Zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return decimal.Zero, res.Err
		}
		return res.Val.(decimal.Decimal), nil
	}
}

func (s *ExchangeRateService) fetch(ctx context.Context, code string) (decimal.Decimal, error) {
	rates, err := s.dash.GetDashExchangeRates(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := rates[code]
	if !ok || !rate.IsPositive() {
		rate, err = s.crossRate(ctx, rates, code)
		if err != nil {
			return decimal.Zero, err
		}
	}

	if err := s.cache.SetExchangeRate(ctx, models.DASH, code, rate); err != nil {
		logger.Log.Errorw("failed to cache exchange rate", "currency", code, "rate", rate, "error", err)
	}
	return rate, nil
}

// crossRate derives DASH/code as DASH/USD * USD/code.
func (s *ExchangeRateService) crossRate(ctx context.Context, rates map[string]decimal.Decimal, code string) (decimal.Decimal, error) {
	usd, ok := rates[models.USD]
	if !ok || !usd.IsPositive() || s.fiat == nil {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s", ErrQuoteUnavailable, code)
	}

	fiatRate, err := s.fiat.GetExchangeRateForCurrency(ctx, models.USD, code)
	if err != nil {
		return decimal.Zero, err
	}
	if fiatRate <= 0 {
		return decimal.Zero, fmt.Errorf("%w: no fiat rate USD->%s", ErrQuoteUnavailable, code)
	}

	return usd.Mul(decimal.NewFromFloat32(fiatRate)).Round(models.CryptoScale), nil
}
