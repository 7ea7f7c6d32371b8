package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockBalanceRepository is a testify mock for persistence.BalanceRepository
type MockBalanceRepository struct {
	mock.Mock
}

// NewMockBalanceRepository creates a mock and registers expectation checks on cleanup
func NewMockBalanceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBalanceRepository {
	m := &MockBalanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create provides a mock function
func (m *MockBalanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// GetByUserID provides a mock function
func (m *MockBalanceRepository) GetByUserID(ctx context.Context, userID string) (*entity.Balance, error) {
	args := m.Called(ctx, userID)
	var r0 *entity.Balance
	if v, ok := args.Get(0).(*entity.Balance); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// GetForUpdate provides a mock function
func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, userID string) (*entity.Balance, error) {
	args := m.Called(ctx, userID)
	var r0 *entity.Balance
	if v, ok := args.Get(0).(*entity.Balance); ok {
		r0 = v
	}
	return r0, args.Error(1)
}

// Update provides a mock function
func (m *MockBalanceRepository) Update(ctx context.Context, balance *entity.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

// Increment provides a mock function
func (m *MockBalanceRepository) Increment(ctx context.Context, userID string, availableDelta int64, earnedDelta int64) (*entity.Balance, error) {
	args := m.Called(ctx, userID, availableDelta, earnedDelta)
	var r0 *entity.Balance
	if v, ok := args.Get(0).(*entity.Balance); ok {
		r0 = v
	}
	return r0, args.Error(1)
}
