package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrExchangeRateNotCached is returned when no live rate is cached for a pair.
var ErrExchangeRateNotCached = errors.New("exchange rate not cached")

// ExchangeRateCacheRepository caches exchange rates in Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func exchangeRateKey(base, currency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", strings.ToUpper(base), strings.ToUpper(currency))
}

// GetExchangeRate returns the cached value of 1 base in currency
func (r *ExchangeRateCacheRepository) GetExchangeRate(ctx context.Context, base, currency string) (decimal.Decimal, error) {
	key := exchangeRateKey(base, currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrExchangeRateNotCached, base, currency)
		}
		logger.Log.Errorw("failed to read cached exchange rate", "key", key, "error", err)
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Errorw("malformed cached exchange rate", "key", key, "value", val, "error", err)
		return decimal.Zero, err
	}

	logger.Log.Debugw("cached exchange rate", "key", key, "rate", val)
	return rate, nil
}

// SetExchangeRate caches the value of 1 base in currency with expiration
func (r *ExchangeRateCacheRepository) SetExchangeRate(ctx context.Context, base, currency string, rate decimal.Decimal) error {
	key := exchangeRateKey(base, currency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Debugw("cache exchange rate", "key", key, "rate", rate, "ttl", r.exp, "error", err)

	return err
}
