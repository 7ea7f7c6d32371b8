package entity

import (
	"time"

	"github.com/google/uuid"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// ProofStatus is the review state of a crypto payment proof
type ProofStatus string

// Proof statuses
const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"
)

// PaymentProof is a manually reviewed cryptocurrency payment submission
type PaymentProof struct {
	ID            string
	UserID        string
	WalletName    string
	WalletAddress string
	ProofURL      string
	Status        ProofStatus
	ReviewedBy    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPaymentProof creates a pending proof for a stored image
func NewPaymentProof(userID, walletName, walletAddress, proofURL string, timeProvider coreport.TimeProvider) *PaymentProof {
	now := timeProvider.Now()
	return &PaymentProof{
		ID:            uuid.NewString(),
		UserID:        userID,
		WalletName:    walletName,
		WalletAddress: walletAddress,
		ProofURL:      proofURL,
		Status:        ProofStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Review applies an admin decision. Repeating the current decision is a no-op and
// reports changed=false; flipping an already decided proof is rejected.
func (p *PaymentProof) Review(status ProofStatus, adminID string, timeProvider coreport.TimeProvider) (bool, error) {
	if status != ProofStatusApproved && status != ProofStatusRejected {
		return false, errs.NewValidationError("status", "must be approved or rejected")
	}

	if p.Status == status {
		return false, nil
	}
	if p.Status != ProofStatusPending {
		return false, errs.NewStatusTransitionError("payment", p.ID, string(p.Status), string(status))
	}

	p.Status = status
	p.ReviewedBy = adminID
	p.UpdatedAt = timeProvider.Now()
	return true, nil
}
