package persistence

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockReferralRepository is a testify mock for persistence.ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

// NewMockReferralRepository creates a mock and registers expectation checks on cleanup
func NewMockReferralRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReferralRepository {
	m := &MockReferralRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateEdge provides a mock function
func (m *MockReferralRepository) CreateEdge(ctx context.Context, edge *entity.ReferralEdge) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

// CreateCommission provides a mock function
func (m *MockReferralRepository) CreateCommission(ctx context.Context, record *entity.CommissionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
