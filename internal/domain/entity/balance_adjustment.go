package entity

import (
	"time"

	"github.com/google/uuid"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// AdjustmentReason explains why an available balance changed
type AdjustmentReason string

// Adjustment reasons
const (
	AdjustmentReferralCommission  AdjustmentReason = "referral_commission"
	AdjustmentAdminEdit           AdjustmentReason = "admin_edit"
	AdjustmentWithdrawalRequest   AdjustmentReason = "withdrawal_request"
	AdjustmentWithdrawalRefund    AdjustmentReason = "withdrawal_refund"
	AdjustmentWithdrawalProcessed AdjustmentReason = "withdrawal_processed"
)

// BalanceAdjustment is an append-only record of a signed balance change
type BalanceAdjustment struct {
	ID             string
	UserID         string
	Delta          int64 // Signed change of the affected bucket, in cents
	AvailableAfter int64
	Reason         AdjustmentReason
	Reference      string // Withdrawal id, referred account id, etc.
	ActorID        string // Admin id, empty for system changes
	CreatedAt      time.Time
}

// NewBalanceAdjustment records a change that left the ledger in the given state
func NewBalanceAdjustment(
	balance *Balance,
	delta int64,
	reason AdjustmentReason,
	reference string,
	actorID string,
	timeProvider coreport.TimeProvider,
) *BalanceAdjustment {
	return &BalanceAdjustment{
		ID:             uuid.NewString(),
		UserID:         balance.UserID,
		Delta:          delta,
		AvailableAfter: balance.Available,
		Reason:         reason,
		Reference:      reference,
		ActorID:        actorID,
		CreatedAt:      timeProvider.Now(),
	}
}
