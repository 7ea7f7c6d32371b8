package dto

import (
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// InitializeRequest starts a hosted checkout
type InitializeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// CheckoutResponse is what the client needs to open the hosted payment page
type CheckoutResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorizationUrl"`
	PublicKey        string `json:"publicKey"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	Email            string `json:"email"`
}

// CompleteRegistrationRequest is the checkout success callback
type CompleteRegistrationRequest struct {
	Reference    string              `json:"reference" binding:"required"`
	Registration RegistrationRequest `json:"registration"`
}

// RegistrationResponse is a created account with its signup session
type RegistrationResponse struct {
	User           *AccountResponse `json:"user"`
	Session        *SessionResponse `json:"session,omitempty"`
	ReferralStatus string           `json:"referralStatus,omitempty"`
}

// VerifyRequest asks for a server-side verification of a reference
type VerifyRequest struct {
	Reference  string `json:"reference" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	ReferrerID string `json:"referrerId"`
}

// VerifyResponse reports a confirmed payment
type VerifyResponse struct {
	Reference       string `json:"reference"`
	UserID          string `json:"userId"`
	AlreadyVerified bool   `json:"alreadyVerified"`
}

// CryptoSubmitForm is the multipart form of a crypto registration. The
// proof image is sent in the "paymentProof" file field.
type CryptoSubmitForm struct {
	RegistrationRequest
	WalletName    string `form:"walletName"`
	WalletAddress string `form:"walletAddress"`
}

// ProofResponse represents a payment proof
type ProofResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	WalletName    string    `json:"walletName"`
	WalletAddress string    `json:"walletAddress"`
	ProofURL      string    `json:"paymentProofUrl"`
	Status        string    `json:"status"`
	ReviewedBy    string    `json:"reviewedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewProofResponse converts a payment proof
func NewProofResponse(p *entity.PaymentProof) *ProofResponse {
	if p == nil {
		return nil
	}
	return &ProofResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		WalletName:    p.WalletName,
		WalletAddress: p.WalletAddress,
		ProofURL:      p.ProofURL,
		Status:        string(p.Status),
		ReviewedBy:    p.ReviewedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProofSubmissionResponse tells the client to log in once the proof is approved
type ProofSubmissionResponse struct {
	User     *AccountResponse `json:"user"`
	Proof    *ProofResponse   `json:"proof"`
	Message  string           `json:"message"`
	Redirect string           `json:"redirect"`
}

// PaymentReviewResponse is a proof after an admin decision
type PaymentReviewResponse struct {
	Proof   *ProofResponse `json:"proof"`
	Changed bool           `json:"changed"`
}
