package external

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateFetcher reads the latest exchange rates relative to a base currency
type RateFetcher interface {
	Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}
