package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// WithdrawalStatus is the processing state of a payout request
type WithdrawalStatus string

// Withdrawal statuses
const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalProcessed WithdrawalStatus = "processed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:  {WithdrawalApproved, WithdrawalRejected},
	WithdrawalApproved: {WithdrawalProcessed},
}

// Withdrawal is a user's payout request
type Withdrawal struct {
	ID             string
	UserID         string
	Amount         int64
	Currency       string
	Status         WithdrawalStatus
	AccountDetails string
	RequestDate    time.Time
	UpdatedAt      time.Time
}

// NewWithdrawal creates a pending payout request
func NewWithdrawal(userID string, amount int64, currency, accountDetails string, timeProvider coreport.TimeProvider) (*Withdrawal, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if strings.TrimSpace(accountDetails) == "" {
		return nil, errs.NewValidationError("account_details", "is required")
	}

	now := timeProvider.Now()
	return &Withdrawal{
		ID:             uuid.NewString(),
		UserID:         userID,
		Amount:         amount,
		Currency:       currency,
		Status:         WithdrawalPending,
		AccountDetails: strings.TrimSpace(accountDetails),
		RequestDate:    now,
		UpdatedAt:      now,
	}, nil
}

// IsValidWithdrawalStatus checks if the status string is a known status
func IsValidWithdrawalStatus(status string) bool {
	switch WithdrawalStatus(status) {
	case WithdrawalPending, WithdrawalApproved, WithdrawalProcessed, WithdrawalRejected:
		return true
	}
	return false
}

// Transition moves the withdrawal to a new status. Same status is a no-op.
func (w *Withdrawal) Transition(to WithdrawalStatus, timeProvider coreport.TimeProvider) (bool, error) {
	if !IsValidWithdrawalStatus(string(to)) {
		return false, errs.NewValidationError("status", "must be pending, approved, processed or rejected")
	}
	if w.Status == to {
		return false, nil
	}

	for _, allowed := range withdrawalTransitions[w.Status] {
		if allowed == to {
			w.Status = to
			w.UpdatedAt = timeProvider.Now()
			return true, nil
		}
	}
	return false, errs.NewStatusTransitionError("withdrawal", w.ID, string(w.Status), string(to))
}
