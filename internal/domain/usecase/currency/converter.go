package currency

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// BaseCurrency is the currency every cached rate is quoted against
const BaseCurrency = "USD"

// DefaultTTL is how long fetched rates are reused
const DefaultTTL = time.Hour

const refreshKey = "rates"

var errEmptyRates = errors.New("rate provider returned no rates")

// fallbackRates are served while the rate provider is unavailable
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"NGN": decimal.NewFromInt(1550),
	"GHS": decimal.RequireFromString("15.5"),
	"KES": decimal.NewFromInt(129),
	"ZAR": decimal.RequireFromString("18.5"),
	"CAD": decimal.RequireFromString("1.36"),
	"AUD": decimal.RequireFromString("1.52"),
	"INR": decimal.RequireFromString("83.5"),
	"JPY": decimal.NewFromInt(150),
	"CNY": decimal.RequireFromString("7.24"),
	"BRL": decimal.NewFromInt(5),
	"MXN": decimal.RequireFromString("17.1"),
	"EGP": decimal.RequireFromString("48.5"),
	"XOF": decimal.NewFromInt(605),
	"XAF": decimal.NewFromInt(605),
	"UGX": decimal.NewFromInt(3750),
	"TZS": decimal.NewFromInt(2600),
}

// Converter converts amounts with a cached USD rate table
type Converter struct {
	fetcher      external.RateFetcher
	ttl          time.Duration
	timeProvider core.TimeProvider
	logger       core.Logger

	refreshes singleflight.Group

	mu        sync.RWMutex
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// NewConverter creates a converter. A non-positive ttl uses DefaultTTL.
func NewConverter(
	fetcher external.RateFetcher,
	ttl time.Duration,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Converter {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Converter{
		fetcher:      fetcher,
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Convert converts amount from one currency to another through USD.
// Unknown currency codes are treated as rate 1.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) usecase.Conversion {
	from = normalizeCode(from)
	to = normalizeCode(to)

	if from == to {
		return usecase.Conversion{ConvertedAmount: amount, ExchangeRate: decimal.NewFromInt(1)}
	}

	snapshot := c.snapshot(ctx)
	fromRate := c.rateFor(snapshot.Rates, from)
	toRate := c.rateFor(snapshot.Rates, to)

	amountInUSD := amount.Div(fromRate)
	return usecase.Conversion{
		ConvertedAmount: amountInUSD.Mul(toRate),
		ExchangeRate:    toRate.Div(fromRate),
	}
}

// Rates returns a copy of the rate table in use
func (c *Converter) Rates(ctx context.Context) usecase.RateSnapshot {
	snapshot := c.snapshot(ctx)

	rates := make(map[string]decimal.Decimal, len(snapshot.Rates))
	for code, rate := range snapshot.Rates {
		rates[code] = rate
	}
	snapshot.Rates = rates
	return snapshot
}

// snapshot returns cached rates, refreshing them when stale. Concurrent
// callers that find the table stale share a single provider call.
func (c *Converter) snapshot(ctx context.Context) usecase.RateSnapshot {
	if snapshot, ok := c.cached(); ok {
		return snapshot
	}

	result, _, _ := c.refreshes.Do(refreshKey, func() (any, error) {
		return c.refresh(ctx), nil
	})
	return result.(usecase.RateSnapshot)
}

func (c *Converter) cached() (usecase.RateSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.rates) == 0 || c.timeProvider.Since(c.fetchedAt) >= c.ttl {
		return usecase.RateSnapshot{}, false
	}
	return usecase.RateSnapshot{Base: BaseCurrency, Rates: c.rates, FetchedAt: c.fetchedAt}, true
}

// refresh fetches a new table. Fallback rates are returned but never stored,
// so the next caller after an outage tries the provider again.
func (c *Converter) refresh(ctx context.Context) usecase.RateSnapshot {
	if snapshot, ok := c.cached(); ok {
		return snapshot
	}

	rates, err := c.fetcher.Latest(ctx, BaseCurrency)
	if err == nil && len(rates) == 0 {
		err = errEmptyRates
	}
	if err != nil {
		c.logger.Warn("Exchange rate fetch failed, using fallback rates", map[string]any{
			"error": err.Error(),
		})
		return usecase.RateSnapshot{Base: BaseCurrency, Rates: fallbackRates, Fallback: true}
	}

	table := make(map[string]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		table[normalizeCode(code)] = rate
	}
	table[BaseCurrency] = decimal.NewFromInt(1)
	fetchedAt := c.timeProvider.Now()

	c.mu.Lock()
	c.rates = table
	c.fetchedAt = fetchedAt
	c.mu.Unlock()

	c.logger.Debug("Exchange rates refreshed", map[string]any{
		"currencies": len(table),
	})
	return usecase.RateSnapshot{Base: BaseCurrency, Rates: table, FetchedAt: fetchedAt}
}

func (c *Converter) rateFor(rates map[string]decimal.Decimal, code string) decimal.Decimal {
	if rate, ok := rates[code]; ok && rate.IsPositive() {
		return rate
	}

	c.logger.Warn("Unknown currency, assuming rate 1", map[string]any{
		"currency": code,
	})
	return decimal.NewFromInt(1)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
