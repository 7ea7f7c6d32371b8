package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation              = 4000
	CodeInsufficientBalance     = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidFile             = 4003
	CodeInvalidCredentials      = 4010
	CodeUnauthorized            = 4011
	CodePaymentVerification     = 4020
	CodeUnpaidAccount           = 4030
	CodeForbidden               = 4031
	CodeAccountNotFound         = 4040
	CodePaymentNotFound         = 4041
	CodeWithdrawalNotFound      = 4042
	CodeEmailTaken              = 4090
	CodeInvalidStatusTransition = 4091
	CodeReferenceConflict       = 4092

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeUpstreamUnavailable = 5020
	CodeProfileUnavailable  = 5030
)

// Base error types
var (
	// ErrValidation is returned when request input is missing or malformed
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAmount is returned when a money amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")
	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrNegativeBalance is returned when an operation would leave a negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")
	// ErrInsufficientBalance is returned when the available balance cannot cover a withdrawal
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidFile is returned when a payment proof is not an image
	ErrInvalidFile = errors.New("payment proof must be an image file")
	// ErrFileTooLarge is returned when a payment proof exceeds the size limit
	ErrFileTooLarge = errors.New("payment proof must be 5MB or smaller")

	// ErrInvalidCredentials is returned when email or password is wrong
	ErrInvalidCredentials = errors.New("invalid login credentials")
	// ErrEmailTaken is returned when an identity with the same email already exists
	ErrEmailTaken = errors.New("user already registered")
	// ErrUnauthorized is returned when a request carries no valid session
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("insufficient permissions")
	// ErrSessionNotFound is returned when a session id is unknown or revoked
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnpaidAccount is returned by the login gate for accounts without an approved payment
	ErrUnpaidAccount = errors.New("your payment is pending approval. This usually takes 24-48 hours. You will be able to log in once it is approved")
	// ErrProfileUnavailable is returned when the profile behind a valid identity cannot be read
	ErrProfileUnavailable = errors.New("unable to verify your account right now. Please try again later")

	// ErrPaymentVerification is returned when the payment gateway does not confirm a transaction
	ErrPaymentVerification = errors.New("payment verification failed")
	// ErrReferenceConflict is returned when a payment reference is already bound to another account
	ErrReferenceConflict = errors.New("payment reference already used")
	// ErrInvalidStatusTransition is returned for status changes that are not allowed
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")
	// ErrPaymentNotFound is returned when the requested payment record doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrWithdrawalNotFound is returned when the requested withdrawal doesn't exist
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	// ErrSettingsNotFound is returned when the system settings row is missing
	ErrSettingsNotFound = errors.New("system settings not found")
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicateRecord is returned when a unique constraint rejects an insert
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrUpstreamUnavailable is returned when an external collaborator fails
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrNegativeBalance):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidFile), errors.Is(err, ErrFileTooLarge):
		return CodeInvalidFile
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return CodeUnauthorized
	case errors.Is(err, ErrPaymentVerification):
		return CodePaymentVerification
	case errors.Is(err, ErrUnpaidAccount):
		return CodeUnpaidAccount
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrInvalidStatusTransition):
		return CodeInvalidStatusTransition
	case errors.Is(err, ErrReferenceConflict):
		return CodeReferenceConflict
	case errors.Is(err, ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	case errors.Is(err, ErrProfileUnavailable):
		return CodeProfileUnavailable
	default:
		return CodeInternalServer
	}
}

// ValidationError carries per-field validation failures
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// PaymentVerificationError describes a gateway verification that did not succeed
type PaymentVerificationError struct {
	Reference string
	UserID    string
	Reason    string
	Err       error
}

// Error implements the error interface
func (e *PaymentVerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment verification failed for reference %s: %s: %v", e.Reference, e.Reason, e.Err)
	}
	return fmt.Sprintf("payment verification failed for reference %s: %s", e.Reference, e.Reason)
}

// Is reports whether target is ErrPaymentVerification
func (e *PaymentVerificationError) Is(target error) bool {
	return target == ErrPaymentVerification
}

// Unwrap returns the underlying error
func (e *PaymentVerificationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentVerificationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "payment_verification",
		"reference":  e.Reference,
		"user_id":    e.UserID,
		"reason":     e.Reason,
		"error_code": CodePaymentVerification,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPaymentVerificationError creates a detailed verification error
func NewPaymentVerificationError(reference, userID, reason string, err error) error {
	return &PaymentVerificationError{
		Reference: reference,
		UserID:    userID,
		Reason:    reason,
		Err:       err,
	}
}

// StatusTransitionError provides details about a rejected status change
type StatusTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

// Error implements the error interface
func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot move %s %s from %s to %s", e.Entity, e.ID, e.From, e.To)
}

// Is reports whether target is ErrInvalidStatusTransition
func (e *StatusTransitionError) Is(target error) bool {
	return target == ErrInvalidStatusTransition
}

// LogFields returns a map of fields for structured logging
func (e *StatusTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "status_transition",
		"entity":     e.Entity,
		"id":         e.ID,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeInvalidStatusTransition,
	}
}

// NewStatusTransitionError creates a new status transition error
func NewStatusTransitionError(entity, id, from, to string) error {
	return &StatusTransitionError{Entity: entity, ID: id, From: from, To: to}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID    string
	Amount    string
	Available string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, available string) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Amount:    amount,
		Available: available,
	}
}

// IsValidationError reports whether err was caused by bad client input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrNegativeBalance) ||
		errors.Is(err, ErrInvalidFile) ||
		errors.Is(err, ErrFileTooLarge)
}

// IsAuthError reports whether err came from the identity provider
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound) ||
		errors.Is(err, ErrSettingsNotFound)
}

// LogFields extracts structured fields from errors that provide them
func LogFields(err error) map[string]any {
	var withFields interface{ LogFields() map[string]any }
	if errors.As(err, &withFields) {
		return withFields.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
