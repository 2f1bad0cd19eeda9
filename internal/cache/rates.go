package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/models"
)

const ratesKey = "market:rates"

// RatesProvider is anything that can produce a fresh rate table.
type RatesProvider interface {
	GetMarketRates() (models.MarketRates, error)
}

// RatesCache fronts a rates provider with a Redis cache so the TCMB
// bulletin is not fetched on every request. A cache failure falls
// through to the provider; the cache is an optimization, not a
// dependency.
type RatesCache struct {
	client   *redis.Client
	provider RatesProvider
	ttl      time.Duration
	log      *logrus.Logger
}

// NewRatesCache creates a rates cache backed by Redis at addr
func NewRatesCache(addr string, provider RatesProvider, ttl time.Duration, log *logrus.Logger) *RatesCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RatesCache{client: rdb, provider: provider, ttl: ttl, log: log}
}

// GetMarketRates returns cached rates when fresh, otherwise fetches
// from the provider and repopulates the cache.
func (c *RatesCache) GetMarketRates(ctx context.Context) (models.MarketRates, error) {
	if cached, err := c.client.Get(ctx, ratesKey).Result(); err == nil {
		var rates models.MarketRates
		if err := json.Unmarshal([]byte(cached), &rates); err == nil {
			return rates, nil
		}
		c.log.Warnf("Discarding unreadable cached rates: %s", cached)
	}

	rates, err := c.provider.GetMarketRates()
	if err != nil {
		return models.MarketRates{}, fmt.Errorf("failed to fetch market rates: %w", err)
	}

	payload, err := json.Marshal(rates)
	if err != nil {
		return rates, nil
	}
	if err := c.client.Set(ctx, ratesKey, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to cache market rates: %v", err)
	}

	return rates, nil
}

// Refresh forces a provider fetch and cache update, used by the hourly
// cron job.
func (c *RatesCache) Refresh(ctx context.Context) error {
	rates, err := c.provider.GetMarketRates()
	if err != nil {
		return fmt.Errorf("failed to refresh market rates: %w", err)
	}
	payload, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to encode market rates: %w", err)
	}
	if err := c.client.Set(ctx, ratesKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store market rates: %w", err)
	}
	c.log.Infof("Market rates refreshed: USD=%.4f EUR=%.4f", rates.USD, rates.EUR)
	return nil
}
