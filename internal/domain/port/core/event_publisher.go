package core

import "context"

// Event subjects published by the workflow
const (
	SubjectAccountRegistered = "affiliate.account.registered"
	SubjectPaymentVerified   = "affiliate.payment.verified"
	SubjectPaymentReviewed   = "affiliate.payment.reviewed"
	SubjectWithdrawalUpdated = "affiliate.withdrawal.updated"
)

// EventPublisher emits domain events to interested subscribers.
// Publishing is always best-effort from the caller's point of view.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload map[string]any) error
}
