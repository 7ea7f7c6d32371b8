package entity

import (
	"time"

	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// DefaultReferralCommission is the fixed commission paid per referred registration (500.00)
const DefaultReferralCommission int64 = 50000

// CommissionTypeReferral tags commission records created by registrations
const CommissionTypeReferral = "referral"

// ReferralEdge links a referrer to the account it brought in
type ReferralEdge struct {
	ReferrerID string
	ReferredID string
	IsActive   bool
	CreatedAt  time.Time
}

// NewReferralEdge creates an active referral edge
func NewReferralEdge(referrerID, referredID string, timeProvider coreport.TimeProvider) *ReferralEdge {
	return &ReferralEdge{
		ReferrerID: referrerID,
		ReferredID: referredID,
		IsActive:   true,
		CreatedAt:  timeProvider.Now(),
	}
}

// CommissionRecord is an immutable record of a commission earned by a referrer
type CommissionRecord struct {
	ID             uint64
	ReferrerID     string
	ReferredID     string
	Amount         int64
	CommissionType string
	CreatedAt      time.Time
}

// NewCommissionRecord creates a referral commission record
func NewCommissionRecord(referrerID, referredID string, amount int64, timeProvider coreport.TimeProvider) *CommissionRecord {
	return &CommissionRecord{
		ReferrerID:     referrerID,
		ReferredID:     referredID,
		Amount:         amount,
		CommissionType: CommissionTypeReferral,
		CreatedAt:      timeProvider.Now(),
	}
}
