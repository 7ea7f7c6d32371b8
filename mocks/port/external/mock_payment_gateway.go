package external

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/external"
	"github.com/stretchr/testify/mock"
)

// MockPaymentGateway is a testify mock for external.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a mock and registers expectation checks on cleanup
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Initialize provides a mock function
func (m *MockPaymentGateway) Initialize(ctx context.Context, secretKey string, email string, amount int64, currency string, reference string) (string, error) {
	args := m.Called(ctx, secretKey, email, amount, currency, reference)
	return args.String(0), args.Error(1)
}

// Verify provides a mock function
func (m *MockPaymentGateway) Verify(ctx context.Context, secretKey string, reference string) (*external.Verification, error) {
	args := m.Called(ctx, secretKey, reference)
	var r0 *external.Verification
	if v, ok := args.Get(0).(*external.Verification); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
