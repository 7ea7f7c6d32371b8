package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// GatewayPaymentStatus tracks a hosted checkout through verification
type GatewayPaymentStatus string

// Gateway payment statuses
const (
	GatewayPaymentInitiated   GatewayPaymentStatus = "initiated"
	GatewayPaymentVerified    GatewayPaymentStatus = "verified"
	GatewayPaymentFailed      GatewayPaymentStatus = "failed"
	GatewayPaymentNeedsReview GatewayPaymentStatus = "needs_review"
)

// GatewaySuccessStatus is the status the gateway reports for a settled charge
const GatewaySuccessStatus = "success"

// GatewayPayment is the idempotency record for one checkout reference
type GatewayPayment struct {
	Reference     string
	Email         string
	UserID        string
	ReferrerID    string
	Amount        int64
	Currency      string
	Status        GatewayPaymentStatus
	GatewayStatus string
	FailureReason string
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGatewayPayment creates an initiated checkout record
func NewGatewayPayment(reference, email string, amount int64, currency string, timeProvider coreport.TimeProvider) *GatewayPayment {
	now := timeProvider.Now()
	return &GatewayPayment{
		Reference: reference,
		Email:     NormalizeEmail(email),
		Amount:    amount,
		Currency:  strings.ToUpper(currency),
		Status:    GatewayPaymentInitiated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BuildReference derives a checkout reference from the payer email and a timestamp
func BuildReference(email string, at time.Time) string {
	var b strings.Builder
	for _, r := range strings.ToLower(email) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s_%d", b.String(), at.UnixMilli())
}

// IsVerified reports whether the payment already confirmed an account
func (p *GatewayPayment) IsVerified() bool {
	return p.Status == GatewayPaymentVerified
}

// MarkVerified binds the confirmed payment to an account
func (p *GatewayPayment) MarkVerified(userID, referrerID, gatewayStatus string, timeProvider coreport.TimeProvider) error {
	if p.IsVerified() && p.UserID != userID {
		return errs.ErrReferenceConflict
	}

	now := timeProvider.Now()
	p.UserID = userID
	if referrerID != "" {
		p.ReferrerID = referrerID
	}
	p.Status = GatewayPaymentVerified
	p.GatewayStatus = gatewayStatus
	p.FailureReason = ""
	p.VerifiedAt = &now
	p.UpdatedAt = now
	return nil
}

// MarkFailed records a verification that did not confirm the charge
func (p *GatewayPayment) MarkFailed(userID, gatewayStatus, reason string, timeProvider coreport.TimeProvider) {
	if p.UserID == "" {
		p.UserID = userID
	}
	p.Status = GatewayPaymentFailed
	p.GatewayStatus = gatewayStatus
	p.FailureReason = reason
	p.UpdatedAt = timeProvider.Now()
}

// MarkNeedsReview hands a failed checkout over to manual review
func (p *GatewayPayment) MarkNeedsReview(reason string, timeProvider coreport.TimeProvider) {
	p.Status = GatewayPaymentNeedsReview
	if reason != "" {
		p.FailureReason = reason
	}
	p.UpdatedAt = timeProvider.Now()
}
