package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockWithdrawalRepository is a testify mock for persistence.WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

// NewMockWithdrawalRepository creates a mock and registers expectation checks on cleanup
func NewMockWithdrawalRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWithdrawalRepository {
	m := &MockWithdrawalRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockWithdrawalRepository) Create(ctx context.Context, withdrawal *entity.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}

// GetForUpdate provides a mock function
func (m *MockWithdrawalRepository) GetForUpdate(ctx context.Context, id string) (*entity.Withdrawal, error) {
	args := m.Called(ctx, id)
	var r0 *entity.Withdrawal
	if v, ok := args.Get(0).(*entity.Withdrawal); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Update provides a mock function
func (m *MockWithdrawalRepository) Update(ctx context.Context, withdrawal *entity.Withdrawal) error {
	args := m.Called(ctx, withdrawal)
	return args.Error(0)
}
