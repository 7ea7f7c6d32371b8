package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// BalanceRepository stores the per-account ledger
type BalanceRepository interface {
	// Create inserts the ledger row for a new account
	Create(ctx context.Context, balance *entity.Balance) error

	// GetByUserID retrieves a ledger
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account has no ledger
	GetByUserID(ctx context.Context, userID string) (*entity.Balance, error)

	// GetForUpdate retrieves a ledger and locks the row until the surrounding transaction ends
	GetForUpdate(ctx context.Context, userID string) (*entity.Balance, error)

	// Update saves all ledger buckets
	Update(ctx context.Context, balance *entity.Balance) error

	// Increment atomically adds to available_balance and total_earned
	// and returns the ledger after the change
	Increment(ctx context.Context, userID string, availableDelta, earnedDelta int64) (*entity.Balance, error)
}

// BalanceAdjustmentRepository appends balance history
type BalanceAdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.BalanceAdjustment) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.BalanceAdjustment, error)
}
