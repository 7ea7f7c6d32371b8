package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockPaymentProofRepository is a testify mock for persistence.PaymentProofRepository
type MockPaymentProofRepository struct {
	mock.Mock
}

// NewMockPaymentProofRepository creates a mock and registers expectation checks on cleanup
func NewMockPaymentProofRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentProofRepository {
	m := &MockPaymentProofRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockPaymentProofRepository) Create(ctx context.Context, proof *entity.PaymentProof) error {
	args := m.Called(ctx, proof)
	return args.Error(0)
}

// GetForUpdate provides a mock function
func (m *MockPaymentProofRepository) GetForUpdate(ctx context.Context, id string) (*entity.PaymentProof, error) {
	args := m.Called(ctx, id)
	var r0 *entity.PaymentProof
	if v, ok := args.Get(0).(*entity.PaymentProof); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Update provides a mock function
func (m *MockPaymentProofRepository) Update(ctx context.Context, proof *entity.PaymentProof) error {
	args := m.Called(ctx, proof)
	return args.Error(0)
}
