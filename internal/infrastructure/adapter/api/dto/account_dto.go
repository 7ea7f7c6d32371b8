package dto

import (
	"time"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// LoginRequest represents the API request for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegistrationRequest represents the registration form shared by both payment variants
type RegistrationRequest struct {
	FullName      string `json:"fullName" form:"fullName"`
	Email         string `json:"email" form:"email"`
	Password      string `json:"password" form:"password"`
	PhoneNumber   string `json:"phoneNumber" form:"phoneNumber"`
	Country       string `json:"country" form:"country"`
	AgreedToTerms bool   `json:"agreedToTerms" form:"agreedToTerms"`
	ReferralCode  string `json:"referralCode" form:"referralCode"`
}

// AccountResponse represents an account profile
type AccountResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Country       string    `json:"country"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"paymentMethod"`
	Paid          bool      `json:"paid"`
	Role          string    `json:"role"`
	ReferredBy    string    `json:"referredBy,omitempty"`
	NeedsReview   bool      `json:"needsReview,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewAccountResponse converts an account
func NewAccountResponse(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:            a.ID,
		Email:         a.Email,
		FullName:      a.FullName,
		PhoneNumber:   a.PhoneNumber,
		Country:       a.Country,
		Currency:      a.Currency,
		PaymentMethod: string(a.PaymentMethod),
		Paid:          a.Paid,
		Role:          string(a.Role),
		ReferredBy:    a.ReferredBy,
		NeedsReview:   a.NeedsReview,
		CreatedAt:     a.CreatedAt,
	}
}

// SessionResponse represents an authenticated session
type SessionResponse struct {
	SessionID   string           `json:"sessionId"`
	AccessToken string           `json:"accessToken,omitempty"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	User        *AccountResponse `json:"user,omitempty"`
}

// SessionStatusResponse reports whether the caller's session is active
type SessionStatusResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"userId,omitempty"`
}

// BalanceResponse represents the API response for a user's ledger
type BalanceResponse struct {
	UserID         string               `json:"userId"`
	Available      string               `json:"availableBalance"`
	Pending        string               `json:"pendingBalance"`
	TotalEarned    string               `json:"totalEarned"`
	TotalWithdrawn string               `json:"totalWithdrawn"`
	Currency       string               `json:"currency"`
	Recent         []AdjustmentResponse `json:"recentAdjustments,omitempty"`
}

// AdjustmentResponse represents a balance history row
type AdjustmentResponse struct {
	Delta          string    `json:"delta"`
	AvailableAfter string    `json:"availableAfter"`
	Reason         string    `json:"reason"`
	Reference      string    `json:"reference,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewBalanceResponse converts a ledger and its recent history
func NewBalanceResponse(b *entity.Balance, recent []*entity.BalanceAdjustment) BalanceResponse {
	resp := BalanceResponse{
		UserID:         b.UserID,
		Available:      entity.FormatAmount(b.Available),
		Pending:        entity.FormatAmount(b.Pending),
		TotalEarned:    entity.FormatAmount(b.TotalEarned),
		TotalWithdrawn: entity.FormatAmount(b.TotalWithdrawn),
		Currency:       b.Currency,
	}
	for _, adj := range recent {
		resp.Recent = append(resp.Recent, AdjustmentResponse{
			Delta:          entity.FormatAmount(adj.Delta),
			AvailableAfter: entity.FormatAmount(adj.AvailableAfter),
			Reason:         string(adj.Reason),
			Reference:      adj.Reference,
			CreatedAt:      adj.CreatedAt,
		})
	}
	return resp
}

// WithdrawalRequest represents a user's payout request
type WithdrawalRequest struct {
	Amount         string `json:"amount" binding:"required"`
	AccountDetails string `json:"accountDetails" binding:"required"`
}

// WithdrawalResponse represents a withdrawal
type WithdrawalResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	AccountDetails string    `json:"accountDetails"`
	RequestDate    time.Time `json:"requestDate"`
	Changed        *bool     `json:"changed,omitempty"`
}

// NewWithdrawalResponse converts a withdrawal
func NewWithdrawalResponse(w *entity.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:             w.ID,
		UserID:         w.UserID,
		Amount:         entity.FormatAmount(w.Amount),
		Currency:       w.Currency,
		Status:         string(w.Status),
		AccountDetails: w.AccountDetails,
		RequestDate:    w.RequestDate,
	}
}
