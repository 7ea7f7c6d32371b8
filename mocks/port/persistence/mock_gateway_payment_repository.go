package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockGatewayPaymentRepository is a testify mock for persistence.GatewayPaymentRepository
type MockGatewayPaymentRepository struct {
	mock.Mock
}

// NewMockGatewayPaymentRepository creates a mock and registers expectation checks on cleanup
func NewMockGatewayPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGatewayPaymentRepository {
	m := &MockGatewayPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockGatewayPaymentRepository) Create(ctx context.Context, payment *entity.GatewayPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// GetByReference provides a mock function
func (m *MockGatewayPaymentRepository) GetByReference(ctx context.Context, reference string) (*entity.GatewayPayment, error) {
	args := m.Called(ctx, reference)
	var r0 *entity.GatewayPayment
	if v, ok := args.Get(0).(*entity.GatewayPayment); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// GetForUpdate provides a mock function
func (m *MockGatewayPaymentRepository) GetForUpdate(ctx context.Context, reference string) (*entity.GatewayPayment, error) {
	args := m.Called(ctx, reference)
	var r0 *entity.GatewayPayment
	if v, ok := args.Get(0).(*entity.GatewayPayment); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Update provides a mock function
func (m *MockGatewayPaymentRepository) Update(ctx context.Context, payment *entity.GatewayPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
