package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockBalanceAdjustmentRepository is a testify mock for persistence.BalanceAdjustmentRepository
type MockBalanceAdjustmentRepository struct {
	mock.Mock
}

// NewMockBalanceAdjustmentRepository creates a mock and registers expectation checks on cleanup
func NewMockBalanceAdjustmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBalanceAdjustmentRepository {
	m := &MockBalanceAdjustmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockBalanceAdjustmentRepository) Create(ctx context.Context, adjustment *entity.BalanceAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

// ListByUser provides a mock function
func (m *MockBalanceAdjustmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.BalanceAdjustment, error) {
	args := m.Called(ctx, userID, limit)
	var r0 []*entity.BalanceAdjustment
	if v, ok := args.Get(0).([]*entity.BalanceAdjustment); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
