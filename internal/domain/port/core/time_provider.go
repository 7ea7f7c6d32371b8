package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock access so domain code can be tested with fixed times
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
