package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// RegistrationRequest is the data collected by the registration form
type RegistrationRequest struct {
	FullName      string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=8"`
	PhoneNumber   string `validate:"required"`
	Country       string `validate:"required"`
	PaymentMethod string `validate:"required,oneof=gateway crypto"`
	AgreedToTerms bool   `validate:"eq=true"`
	ReferralCode  string `validate:"omitempty,max=64"` // Referrer account id
	Paid          bool
	Role          string `validate:"omitempty,oneof=user admin"`
}

// RegistrationResult is a created account with its signup session
type RegistrationResult struct {
	Account  *entity.Account
	Session  *entity.Session
	Referral *FollowUpOutcome // Nil when no referral code was given
}

// LoginResult is an authenticated session with the hydrated profile
type LoginResult struct {
	Session *entity.Session
	Account *entity.Account
}

// BalanceView is a ledger with its latest adjustments
type BalanceView struct {
	Balance *entity.Balance
	Recent  []*entity.BalanceAdjustment
}

// WithdrawalRequest is a user's payout request
type WithdrawalRequest struct {
	UserID         string `validate:"required"`
	Amount         string `validate:"required"`
	AccountDetails string `validate:"required,max=500"`
}

// Registrar creates accounts
type Registrar interface {
	Register(ctx context.Context, req RegistrationRequest) (*RegistrationResult, error)
}

// AccountUseCase groups the account operations available to end users
type AccountUseCase interface {
	Registrar

	// Login authenticates and refuses accounts without an approved payment
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout revokes a session
	Logout(ctx context.Context, sessionID string) error

	// SessionActive reports whether a session is still valid
	SessionActive(ctx context.Context, sessionID string) (bool, error)

	// GetBalance returns the caller's ledger
	GetBalance(ctx context.Context, userID string) (*BalanceView, error)

	// RequestWithdrawal reserves funds and files a pending payout
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*entity.Withdrawal, error)
}
