package entity

import (
	"time"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// Balance is the per-account ledger row. All amounts are stored in cents.
type Balance struct {
	UserID         string
	Available      int64
	Pending        int64
	TotalEarned    int64
	TotalWithdrawn int64
	Currency       string
	UpdatedAt      time.Time
}

// NewBalance creates an empty ledger for a new account
func NewBalance(userID, currency string, timeProvider coreport.TimeProvider) *Balance {
	return &Balance{
		UserID:    userID,
		Currency:  currency,
		UpdatedAt: timeProvider.Now(),
	}
}

// Overwrite replaces the available balance and returns the signed delta
func (b *Balance) Overwrite(amount int64, timeProvider coreport.TimeProvider) (int64, error) {
	if amount < 0 {
		return 0, errs.ErrNegativeBalance
	}

	delta := amount - b.Available
	b.Available = amount
	b.UpdatedAt = timeProvider.Now()
	return delta, nil
}

// Reserve moves amount from available to pending for a withdrawal request
func (b *Balance) Reserve(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > b.Available {
		return errs.NewInsufficientBalanceError(b.UserID, FormatAmount(amount), FormatAmount(b.Available))
	}

	b.Available -= amount
	b.Pending += amount
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// Release returns a reserved amount from pending back to available
func (b *Balance) Release(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > b.Pending {
		return errs.ErrNegativeBalance
	}

	b.Pending -= amount
	b.Available += amount
	b.UpdatedAt = timeProvider.Now()
	return nil
}

// Settle moves a reserved amount out of pending into the withdrawn total
func (b *Balance) Settle(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > b.Pending {
		return errs.ErrNegativeBalance
	}

	b.Pending -= amount
	b.TotalWithdrawn += amount
	b.UpdatedAt = timeProvider.Now()
	return nil
}
