package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// CheckoutRequest starts a gateway checkout. Empty amount and currency use the registration fee.
type CheckoutRequest struct {
	Email    string `validate:"required,email"`
	Amount   string
	Currency string `validate:"omitempty,len=3"`
}

// Checkout is what the client needs to open the hosted payment page
type Checkout struct {
	Reference        string
	AuthorizationURL string
	PublicKey        string
	Amount           int64
	Currency         string
	Email            string
}

// VerificationResult describes a confirmed gateway payment
type VerificationResult struct {
	Reference       string
	UserID          string
	AlreadyVerified bool
}

// GatewayPaymentUseCase registers accounts paid through the hosted gateway
type GatewayPaymentUseCase interface {
	Initiate(ctx context.Context, req CheckoutRequest) (*Checkout, error)

	// CompleteRegistration registers an unpaid account, then verifies the payment
	CompleteRegistration(ctx context.Context, reference string, req RegistrationRequest) (*RegistrationResult, error)

	// Verify confirms a reference server-side and marks the account paid
	Verify(ctx context.Context, reference, userID, referrerID string) (*VerificationResult, error)
}

// CryptoSubmission is a registration paid by cryptocurrency with a proof image
type CryptoSubmission struct {
	Registration  RegistrationRequest
	File          entity.ProofFile
	WalletName    string
	WalletAddress string
}

// ProofSubmission is a registered account waiting for proof review
type ProofSubmission struct {
	Account *entity.Account
	Proof   *entity.PaymentProof
	Message string
}

// CryptoPaymentUseCase registers accounts paid by cryptocurrency
type CryptoPaymentUseCase interface {
	SubmitProof(ctx context.Context, submission CryptoSubmission) (*ProofSubmission, error)
}
