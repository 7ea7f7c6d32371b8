package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is the result of converting an amount between currencies
type Conversion struct {
	ConvertedAmount decimal.Decimal
	ExchangeRate    decimal.Decimal
}

// RateSnapshot is the USD-based rate table currently in use
type RateSnapshot struct {
	Base      string
	Rates     map[string]decimal.Decimal
	FetchedAt time.Time
	Fallback  bool // True when the built-in table is served
}

// CurrencyConverter converts amounts using cached exchange rates
type CurrencyConverter interface {
	// Convert never fails; provider outages fall back to built-in rates
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) Conversion

	// Rates returns the current rate table
	Rates(ctx context.Context) RateSnapshot
}
