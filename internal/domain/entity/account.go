package entity

import (
	"strings"
	"time"

	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
)

// Role controls access to the admin back-office
type Role string

// Roles
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PaymentMethod is the registration payment channel picked by the user
type PaymentMethod string

// Payment methods
const (
	PaymentMethodGateway PaymentMethod = "gateway"
	PaymentMethodCrypto  PaymentMethod = "crypto"
)

// Account is the profile that sits next to an authentication identity
type Account struct {
	ID            string // Same value as the identity id
	Email         string
	FullName      string
	PhoneNumber   string
	Country       string
	Currency      string // Derived from Country, empty when unmapped
	PaymentMethod PaymentMethod
	Paid          bool // Login is refused while false
	Role          Role
	AgreedToTerms bool
	ReferredBy    string // Referrer account id, empty when none
	NeedsReview   bool   // Set when a gateway payment could not be verified
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountParams groups the profile attributes collected by the registration form
type AccountParams struct {
	ID            string
	Email         string
	FullName      string
	PhoneNumber   string
	Country       string
	PaymentMethod PaymentMethod
	Paid          bool
	Role          Role
	AgreedToTerms bool
	ReferredBy    string
}

// NewAccount builds a profile for a freshly created identity
func NewAccount(params AccountParams, timeProvider coreport.TimeProvider) (*Account, error) {
	if strings.TrimSpace(params.ID) == "" {
		return nil, errs.NewValidationError("id", "is required")
	}

	role := params.Role
	if role == "" {
		role = RoleUser
	}
	if !IsValidRole(string(role)) {
		return nil, errs.NewValidationError("role", "must be user or admin")
	}

	now := timeProvider.Now()
	return &Account{
		ID:            params.ID,
		Email:         NormalizeEmail(params.Email),
		FullName:      strings.TrimSpace(params.FullName),
		PhoneNumber:   strings.TrimSpace(params.PhoneNumber),
		Country:       strings.TrimSpace(params.Country),
		Currency:      CurrencyForCountry(params.Country),
		PaymentMethod: params.PaymentMethod,
		Paid:          params.Paid,
		Role:          role,
		AgreedToTerms: params.AgreedToTerms,
		ReferredBy:    params.ReferredBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsAdmin reports whether the account may use the back-office
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// MarkPaid opens the login gate for the account
func (a *Account) MarkPaid(timeProvider coreport.TimeProvider) {
	a.Paid = true
	a.NeedsReview = false
	a.UpdatedAt = timeProvider.Now()
}

// FlagForReview marks the account for manual payment review
func (a *Account) FlagForReview(timeProvider coreport.TimeProvider) {
	a.NeedsReview = true
	a.UpdatedAt = timeProvider.Now()
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidRole checks if the role string is a known role
func IsValidRole(role string) bool {
	return role == string(RoleUser) || role == string(RoleAdmin)
}

// IsValidPaymentMethod checks if the payment method string is supported
func IsValidPaymentMethod(method string) bool {
	return method == string(PaymentMethodGateway) || method == string(PaymentMethodCrypto)
}
