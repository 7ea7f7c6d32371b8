package usecase

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockGatewayPaymentUseCase is a testify mock for usecase.GatewayPaymentUseCase
type MockGatewayPaymentUseCase struct {
	mock.Mock
}

// NewMockGatewayPaymentUseCase creates a mock and registers expectation checks on cleanup
func NewMockGatewayPaymentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGatewayPaymentUseCase {
	m := &MockGatewayPaymentUseCase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Initiate provides a mock function
func (m *MockGatewayPaymentUseCase) Initiate(ctx context.Context, req usecase.CheckoutRequest) (*usecase.Checkout, error) {
	args := m.Called(ctx, req)
	var r0 *usecase.Checkout
	if v, ok := args.Get(0).(*usecase.Checkout); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// CompleteRegistration provides a mock function
func (m *MockGatewayPaymentUseCase) CompleteRegistration(ctx context.Context, reference string, req usecase.RegistrationRequest) (*usecase.RegistrationResult, error) {
	args := m.Called(ctx, reference, req)
	var r0 *usecase.RegistrationResult
	if v, ok := args.Get(0).(*usecase.RegistrationResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Verify provides a mock function
func (m *MockGatewayPaymentUseCase) Verify(ctx context.Context, reference string, userID string, referrerID string) (*usecase.VerificationResult, error) {
	args := m.Called(ctx, reference, userID, referrerID)
	var r0 *usecase.VerificationResult
	if v, ok := args.Get(0).(*usecase.VerificationResult); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
