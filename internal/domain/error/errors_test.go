package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if !strings.Contains(ErrUnpaidAccount.Error(), "pending approval") {
		t.Errorf("ErrUnpaidAccount has unexpected message: %s", ErrUnpaidAccount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("email", "is required"), CodeValidation},
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidFile", ErrInvalidFile, 4003},
		{"FileTooLarge", ErrFileTooLarge, 4003},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"SessionNotFound", ErrSessionNotFound, 4011},
		{"PaymentVerification", NewPaymentVerificationError("ref", "u1", "declined", nil), 4020},
		{"UnpaidAccount", ErrUnpaidAccount, 4030},
		{"Forbidden", ErrForbidden, 4031},
		{"AccountNotFound", ErrAccountNotFound, 4040},
		{"EmailTaken", ErrEmailTaken, 4090},
		{"StatusTransition", NewStatusTransitionError("withdrawal", "w1", "pending", "processed"), 4091},
		{"ReferenceConflict", ErrReferenceConflict, 4092},
		{"Upstream", ErrUpstreamUnavailable, 5020},
		{"ProfileUnavailable", ErrProfileUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrWithdrawalNotFound), 4042},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"password": "must be at least 8 characters",
		"email":    "is required",
	}}

	expected := "validation failed: email is required; password must be at least 8 characters"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	empty := &ValidationError{}
	if empty.Error() != ErrValidation.Error() {
		t.Errorf("empty ValidationError.Error() = %s", empty.Error())
	}
}

func TestPaymentVerificationError(t *testing.T) {
	cause := ErrUpstreamUnavailable
	err := NewPaymentVerificationError("ada_1", "user-1", "gateway unreachable", cause)

	if !errors.Is(err, ErrPaymentVerification) {
		t.Errorf("errors.Is(err, ErrPaymentVerification) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}

	expected := "payment verification failed for reference ada_1: gateway unreachable: upstream service unavailable"
	if err.Error() != expected {
		t.Errorf("PaymentVerificationError.Error() = %s, want %s", err.Error(), expected)
	}

	fields := LogFields(err)
	if fields["reference"] != "ada_1" || fields["error"] != cause.Error() {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestStatusTransitionError(t *testing.T) {
	err := NewStatusTransitionError("payment", "p1", "rejected", "approved")

	if !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("errors.Is(err, ErrInvalidStatusTransition) = false, want true")
	}
	if err.Error() != "cannot move payment p1 from rejected to approved" {
		t.Errorf("StatusTransitionError.Error() = %s", err.Error())
	}

	var transitionErr *StatusTransitionError
	if !errors.As(fmt.Errorf("update: %w", err), &transitionErr) {
		t.Fatalf("errors.As failed for wrapped StatusTransitionError")
	}
	if transitionErr.From != "rejected" || transitionErr.To != "approved" {
		t.Errorf("unexpected transition %s -> %s", transitionErr.From, transitionErr.To)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("user-1", "100.50", "50.25")

	expectedErrMsg := "insufficient balance for user user-1: required 100.50, available 50.25"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}

	fields := LogFields(err)
	if fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("log fields error_code = %v, want %d", fields["error_code"], CodeInsufficientBalance)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if !IsValidationError(ErrFileTooLarge) {
		t.Errorf("IsValidationError(ErrFileTooLarge) = false, want true")
	}
	if !IsValidationError(NewValidationError("x", "y")) {
		t.Errorf("IsValidationError(ValidationError) = false, want true")
	}
	if IsValidationError(ErrInternalServer) {
		t.Errorf("IsValidationError(ErrInternalServer) = true, want false")
	}

	if !IsAuthError(ErrEmailTaken) {
		t.Errorf("IsAuthError(ErrEmailTaken) = false, want true")
	}
	if IsAuthError(ErrUnpaidAccount) {
		t.Errorf("IsAuthError(ErrUnpaidAccount) = true, want false")
	}

	if !IsNotFoundError(fmt.Errorf("load: %w", ErrSettingsNotFound)) {
		t.Errorf("IsNotFoundError(wrapped ErrSettingsNotFound) = false, want true")
	}
	if IsNotFoundError(ErrInvalidAmount) {
		t.Errorf("IsNotFoundError(ErrInvalidAmount) = true, want false")
	}
}

func TestLogFieldsFallback(t *testing.T) {
	fields := LogFields(ErrReferenceConflict)
	if fields["error"] != ErrReferenceConflict.Error() {
		t.Errorf("log fields error = %v", fields["error"])
	}
	if fields["error_code"] != CodeReferenceConflict {
		t.Errorf("log fields error_code = %v, want %d", fields["error_code"], CodeReferenceConflict)
	}
}
