package currency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	coremocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/core"
	externalmocks "github.com/johnjerry8749/Affiliate-Academy-sub000/mocks/port/external"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced clock
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *testClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func liveRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"EUR": dec("0.9"),
		"NGN": dec("1600"),
		"GHS": dec("16"),
	}
}

func TestConverter_Convert(t *testing.T) {
	ctx := context.Background()

	t.Run("Same currency never calls the provider", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t))

		result := c.Convert(ctx, dec("42.5"), "ngn", "NGN")

		assert.True(t, result.ConvertedAmount.Equal(dec("42.5")))
		assert.True(t, result.ExchangeRate.Equal(decimal.NewFromInt(1)))
		fetcher.AssertNotCalled(t, "Latest", mock.Anything, mock.Anything)
	})

	t.Run("Uses fetched rates through USD", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(liveRates(), nil).Once()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

		result := c.Convert(ctx, dec("100"), "USD", "NGN")
		assert.True(t, result.ConvertedAmount.Equal(dec("160000")), result.ConvertedAmount.String())
		assert.True(t, result.ExchangeRate.Equal(dec("1600")))

		result = c.Convert(ctx, dec("3200"), "NGN", "GHS")
		assert.True(t, result.ConvertedAmount.Equal(dec("32")), result.ConvertedAmount.String())
		assert.True(t, result.ExchangeRate.Equal(dec("0.01")))
	})

	t.Run("Provider outage serves fallback rates", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(nil, errors.New("connection refused")).Twice()
		logger := coremocks.NewMockLogger(t)
		logger.On("Warn", "Exchange rate fetch failed, using fallback rates", mock.Anything).Twice()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, logger)

		result := c.Convert(ctx, dec("10"), "USD", "NGN")
		assert.True(t, result.ConvertedAmount.Equal(dec("15500")))

		// Fallback results are not cached, so the next call retries the provider
		result = c.Convert(ctx, dec("1"), "USD", "EUR")
		assert.True(t, result.ExchangeRate.Equal(dec("0.92")))
	})

	t.Run("Empty provider response is treated as an outage", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(map[string]decimal.Decimal{}, nil).Once()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

		snapshot := c.Rates(ctx)

		assert.True(t, snapshot.Fallback)
		assert.True(t, snapshot.Rates["KES"].Equal(dec("129")))
	})

	t.Run("Unknown currency defaults to rate 1", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(liveRates(), nil).Once()
		logger := coremocks.NewMockLogger(t).AllowAll()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, logger)

		result := c.Convert(ctx, dec("5"), "USD", "XYZ")

		assert.True(t, result.ConvertedAmount.Equal(dec("5")))
		logger.AssertCalled(t, "Warn", "Unknown currency, assuming rate 1", map[string]any{"currency": "XYZ"})
	})

	t.Run("Round trip returns the original amount", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(map[string]decimal.Decimal{
			"EUR": dec("0.9137"),
			"NGN": dec("1583.27"),
		}, nil).Once()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

		for _, amount := range []string{"1", "99.99", "12345.67"} {
			there := c.Convert(ctx, dec(amount), "EUR", "NGN")
			back := c.Convert(ctx, there.ConvertedAmount, "NGN", "EUR")

			diff := back.ConvertedAmount.Sub(dec(amount)).Abs()
			assert.True(t, diff.LessThan(dec("0.0001")), "amount %s came back as %s", amount, back.ConvertedAmount)
		}
	})
}

func TestConverter_FallbackRoundTrip(t *testing.T) {
	ctx := context.Background()
	fetcher := externalmocks.NewMockRateFetcher(t)
	fetcher.On("Latest", mock.Anything, "USD").Return(nil, errors.New("connection refused"))
	c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

	amount := dec("1234.56")
	for from := range fallbackRates {
		for to := range fallbackRates {
			there := c.Convert(ctx, amount, from, to)
			back := c.Convert(ctx, there.ConvertedAmount, to, from)

			diff := back.ConvertedAmount.Sub(amount).Abs()
			assert.True(t, diff.LessThan(dec("0.0001")), "%s -> %s -> %s gave %s", from, to, from, back.ConvertedAmount)
		}
	}
}

func TestConverter_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("Reuses rates within the ttl and refreshes after", func(t *testing.T) {
		clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(liveRates(), nil).Once()
		c := NewConverter(fetcher, time.Hour, clock, coremocks.NewMockLogger(t).AllowAll())

		c.Convert(ctx, dec("1"), "USD", "EUR")
		clock.Advance(59 * time.Minute)
		c.Convert(ctx, dec("1"), "USD", "EUR")
		fetcher.AssertNumberOfCalls(t, "Latest", 1)

		fetcher.On("Latest", mock.Anything, "USD").Return(map[string]decimal.Decimal{"EUR": dec("0.95")}, nil).Once()
		clock.Advance(2 * time.Minute)
		result := c.Convert(ctx, dec("1"), "USD", "EUR")

		fetcher.AssertNumberOfCalls(t, "Latest", 2)
		assert.True(t, result.ExchangeRate.Equal(dec("0.95")))
	})

	t.Run("Concurrent callers share one refresh", func(t *testing.T) {
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").Return(liveRates(), nil).Once()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Convert(ctx, dec("1"), "USD", "NGN")
			}()
		}
		wg.Wait()

		snapshot := c.Rates(ctx)
		require.False(t, snapshot.Fallback)
		assert.True(t, snapshot.Rates["USD"].Equal(decimal.NewFromInt(1)))
	})

	t.Run("Concurrent callers during an outage share one fetch", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		fetcher := externalmocks.NewMockRateFetcher(t)
		fetcher.On("Latest", mock.Anything, "USD").
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return(nil, errors.New("i/o timeout")).Once()
		c := NewConverter(fetcher, time.Hour, &testClock{now: time.Now()}, coremocks.NewMockLogger(t).AllowAll())

		results := make(chan bool, 10)
		go func() { results <- c.Rates(ctx).Fallback }()
		<-started

		var wg sync.WaitGroup
		for i := 0; i < 9; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- c.Rates(ctx).Fallback
			}()
		}
		// Let the waiting callers join the in-flight fetch
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		for i := 0; i < 10; i++ {
			assert.True(t, <-results)
		}
		fetcher.AssertNumberOfCalls(t, "Latest", 1)
	})
}
